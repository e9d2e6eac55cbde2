// Copyright (c) 2025 Mukesh Ghildiyal.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/Mukesh-ghildiyal/real-time-pollling/cliparse"
	"github.com/Mukesh-ghildiyal/real-time-pollling/handlers"
	"github.com/Mukesh-ghildiyal/real-time-pollling/hub"
	"github.com/Mukesh-ghildiyal/real-time-pollling/middleware"
	"github.com/Mukesh-ghildiyal/real-time-pollling/session"
)

func NewRouter(coord *session.Coordinator, h *hub.Hub, cfg cliparse.Config) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(middleware.CORS(cfg.CORSOrigins))

	// Initialize handlers
	statusHandler := handlers.NewStatusHandler(coord)
	wsHandler := handlers.NewWSHandler(coord, h, cfg)

	// Status (read-only)
	r.Get("/api/health", middleware.WithLogging(statusHandler.Health))
	r.Get("/api/polls", middleware.WithLogging(statusHandler.Polls))

	// Live session; logs its own lifecycle
	r.Get("/ws", wsHandler.ServeWS)

	r.Get("/", statusHandler.Root)

	return r
}
