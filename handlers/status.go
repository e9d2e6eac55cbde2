// Copyright (c) 2025 Mukesh Ghildiyal.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/Mukesh-ghildiyal/real-time-pollling/middleware"
	"github.com/Mukesh-ghildiyal/real-time-pollling/models"
	"github.com/Mukesh-ghildiyal/real-time-pollling/session"
)

const serviceName = "Live Polling System Backend"

type StatusHandler struct {
	coord   *session.Coordinator
	started time.Time
	now     func() time.Time
}

func NewStatusHandler(coord *session.Coordinator) *StatusHandler {
	return &StatusHandler{coord: coord, started: time.Now(), now: time.Now}
}

// Health handles GET /api/health
func (h *StatusHandler) Health(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.HealthResponse{
		Status:  "OK",
		Message: serviceName,
		Uptime:  strings.TrimSpace(humanize.RelTime(h.started, h.now(), "", "")),
	})
}

// Polls handles GET /api/polls. Read-only; never changes the session.
func (h *StatusHandler) Polls(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, h.coord.Snapshot())
}

// Root handles GET /
func (h *StatusHandler) Root(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("real-time-polling API v1"))
}
