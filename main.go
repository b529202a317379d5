package main

import (
	"flag"
	"net/http"
	"os"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"sarfield/calculator"
	"sarfield/server"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

func main() {
	configPath := flag.String("config", "conf/config.ini", "配置文件路径")
	addr := flag.String("addr", "", "监听地址，覆盖配置文件中的 [server] Addr")
	level := flag.String("log-level", "info", "日志级别")
	flag.Parse()

	lvl, err := log.ParseLevel(*level)
	if err != nil {
		log.Fatal("err: ", err)
	}
	log.SetLevel(lvl)

	cfg, err := calculator.LoadConfig(*configPath)
	if err != nil {
		log.Warn("使用默认配置: ", err)
	}
	if *addr != "" {
		cfg.Addr = *addr
	}

	upgrader.CheckOrigin = func(r *http.Request) bool {
		return true
	}
	s := server.NewServer(cfg.Addr, upgrader, cfg)
	if err := s.Serve(); err != nil {
		log.Error("ListenAndServe: ", err)
		os.Exit(1)
	}
}
