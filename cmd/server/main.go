package main

import (
	"log"

	_ "kanbanlive/docs"
	"kanbanlive/internal/config"
	"kanbanlive/internal/server"
)

// @title           Kanban Live API
// @version         1.0
// @description     Real-time Kanban board backend: columns, tasks and a board_updated event stream.

// @host      localhost:8080
// @BasePath  /

// @schemes http
func main() {
	cfg := config.Load()

	s, err := server.Init(cfg)
	if err != nil {
		log.Fatalf("❌ Server initialization failed: %v", err)
	}

	s.Run()
}
