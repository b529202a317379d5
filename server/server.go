package server

import (
	"net/http"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"sarfield/model"
)

type Server struct {
	addr     string
	upgrader websocket.Upgrader
	cfg      model.Config
}

func NewServer(addr string, upgrader websocket.Upgrader, cfg model.Config) *Server {
	return &Server{
		addr:     addr,
		upgrader: upgrader,
		cfg:      cfg,
	}
}

// serveWs handles websocket requests from the peer.
func (s *Server) serveWs(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error(err)
		return
	}
	defer conn.Close()

	hub := NewHub(conn, s.cfg)
	log.WithFields(log.Fields{
		"session": hub.id,
		"remote":  r.RemoteAddr,
	}).Info("连接建立")
	go hub.handleRequest()
	go hub.handleResponse()
	for {
		var msg model.Msg
		err = conn.ReadJSON(&msg)
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.WithField("session", hub.id).Error("err: ", err)
			}
			break
		}
		hub.msg <- msg
	}
	close(hub.msg)
	<-hub.done
	log.WithField("session", hub.id).Info("连接关闭")
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.serveWs)
	return mux
}

func (s *Server) Serve() error {
	log.WithField("addr", s.addr).Info("开始监听")
	return http.ListenAndServe(s.addr, s.Handler())
}
