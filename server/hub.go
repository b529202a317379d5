package server

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"sarfield/calculator"
	"sarfield/model"
	"sarfield/render"
)

// Hub 处理一个 websocket 连接上的请求和响应
// 请求在 handleRequest 中按顺序处理，所有写操作都在 handleResponse 中完成
type Hub struct {
	id   string
	cfg  model.Config
	conn *websocket.Conn
	// request
	msg chan model.Msg
	// response
	reply chan model.Msg
	done  chan struct{}
}

func NewHub(conn *websocket.Conn, cfg model.Config) *Hub {
	return &Hub{
		id:    uuid.NewString(),
		cfg:   cfg,
		conn:  conn,
		msg:   make(chan model.Msg, 10),
		reply: make(chan model.Msg, 10),
		done:  make(chan struct{}),
	}
}

func (h *Hub) send(msg model.Msg) error {
	h.reply <- msg
	return nil
}

func (h *Hub) handleResponse() {
	defer close(h.done)
	for reply := range h.reply {
		err := h.conn.WriteJSON(&reply)
		if err != nil {
			log.WithFields(log.Fields{
				"session": h.id,
				"type":    reply.Type,
			}).Error("err: ", err)
		}
	}
}

func (h *Hub) handleRequest() {
	defer close(h.reply)
	for msg := range h.msg {
		h.handle(msg)
	}
}

func (h *Hub) handle(msg model.Msg) {
	switch msg.Type {
	case model.MsgRender:
		if err := h.render(); err != nil {
			log.WithField("session", h.id).Warn("render failed: ", err)
			_ = h.send(model.Msg{Type: model.MsgError, Content: err.Error()})
		}
	case model.MsgConfig:
		data, err := json.Marshal(h.cfg)
		if err != nil {
			_ = h.send(model.Msg{Type: model.MsgError, Content: err.Error()})
			return
		}
		_ = h.send(model.Msg{Type: model.MsgConfigSet, Content: string(data)})
	case model.MsgStop:
		_ = h.send(model.Msg{Type: model.MsgStopped, Content: "stopped"})
	default:
		log.WithField("session", h.id).Warn("no such type: ", msg.Type)
		_ = h.send(model.Msg{Type: model.MsgError, Content: "no such type: " + msg.Type})
	}
}

// render 计算一次并把场景推送给前端，计算失败时不推送任何场景数据
func (h *Hub) render() error {
	c, err := calculator.NewCalculator(h.cfg)
	if err != nil {
		return err
	}
	res, err := c.Run()
	if err != nil {
		return err
	}
	d := NewWSDriver(h.id, h.send)
	d.SetResult(res)
	return render.Draw(d, res, h.cfg.Render)
}
