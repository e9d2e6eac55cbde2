// Copyright (c) 2025 Mukesh Ghildiyal.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/Mukesh-ghildiyal/real-time-pollling/auth"
	"github.com/Mukesh-ghildiyal/real-time-pollling/cliparse"
	"github.com/Mukesh-ghildiyal/real-time-pollling/hub"
	"github.com/Mukesh-ghildiyal/real-time-pollling/middleware"
	"github.com/Mukesh-ghildiyal/real-time-pollling/models"
	"github.com/Mukesh-ghildiyal/real-time-pollling/session"
)

// Largest inbound frame; a create-poll with many options fits comfortably.
const maxFrameSize = 64 << 10

type WSHandler struct {
	coord    *session.Coordinator
	hub      *hub.Hub
	cfg      cliparse.Config
	upgrader websocket.Upgrader
}

func NewWSHandler(coord *session.Coordinator, h *hub.Hub, cfg cliparse.Config) *WSHandler {
	if cfg.PingInterval <= 0 {
		cfg.PingInterval = cliparse.DefaultPingInterval
	}
	if cfg.ReadTimeout <= 0 {
		cfg.ReadTimeout = cliparse.DefaultReadTimeout
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = cliparse.DefaultWriteTimeout
	}
	if cfg.SendBuffer <= 0 {
		cfg.SendBuffer = cliparse.DefaultSendBuffer
	}

	origins := cfg.CORSOrigins
	return &WSHandler{
		coord: coord,
		hub:   h,
		cfg:   cfg,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				// Non-browser clients send no Origin
				if origin == "" {
					return true
				}
				return middleware.OriginAllowed(origins, origin)
			},
		},
	}
}

// ServeWS handles GET /ws
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	connID, err := auth.NewConnectionID()
	if err != nil {
		slog.Error("failed to generate connection ID", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to open connection")
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error
		slog.Warn("websocket upgrade failed",
			"client", auth.HashIP(middleware.GetClientIP(r), h.cfg.LogSalt),
			"origin", r.Header.Get("Origin"),
			"error", err,
		)
		return
	}

	client := hub.NewClient(connID, h.cfg.SendBuffer)
	h.hub.Register(client)
	h.coord.Connect(connID)

	slog.Info("websocket connected",
		"conn_id", connID,
		"client", auth.HashIP(middleware.GetClientIP(r), h.cfg.LogSalt),
		"clients", h.hub.Len(),
	)

	go h.writePump(client, conn)
	go h.readPump(client, conn)
}

// readPump decodes frames into commands until the socket fails, then
// reports the disconnect.
func (h *WSHandler) readPump(client *hub.Client, conn *websocket.Conn) {
	defer func() {
		h.hub.Unregister(client)
		h.coord.Disconnect(client.ID)
		conn.Close()
		slog.Info("websocket disconnected", "conn_id", client.ID, "clients", h.hub.Len())
	}()

	conn.SetReadLimit(maxFrameSize)
	conn.SetReadDeadline(time.Now().Add(h.cfg.ReadTimeout))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(h.cfg.ReadTimeout))
		return nil
	})

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				slog.Warn("websocket read failed", "conn_id", client.ID, "error", err)
			}
			return
		}

		cmd, err := models.DecodeCommand(raw)
		if err != nil {
			level := slog.LevelDebug
			if errors.Is(err, models.ErrMalformedFrame) {
				level = slog.LevelWarn
			}
			slog.Log(context.Background(), level, "frame dropped", "conn_id", client.ID, "error", err)
			continue
		}

		h.coord.Handle(client.ID, cmd)
	}
}

// writePump drains the client's queue onto the socket and keeps the
// connection alive with pings. A closed queue ends the connection.
func (h *WSHandler) writePump(client *hub.Client, conn *websocket.Conn) {
	ticker := time.NewTicker(h.cfg.PingInterval)
	defer func() {
		ticker.Stop()
		conn.Close()
	}()

	for {
		select {
		case frame, ok := <-client.Send:
			conn.SetWriteDeadline(time.Now().Add(h.cfg.WriteTimeout))
			if !ok {
				conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				return
			}

		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(h.cfg.WriteTimeout))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
