package main

import (
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/Mukesh-ghildiyal/real-time-pollling/cliparse"
	"github.com/Mukesh-ghildiyal/real-time-pollling/hub"
	"github.com/Mukesh-ghildiyal/real-time-pollling/router"
	"github.com/Mukesh-ghildiyal/real-time-pollling/session"
)

func main() {
	var err error

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// One classroom per process
	clients := hub.New()
	coord := session.New(clients, cfg, nil)

	// Create router
	handler := router.NewRouter(coord, clients, cfg)

	// Create server
	server := http.Server{
		Handler: handler,
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		coord.Close()
		server.Close()
	}()

	// Start server
	slog.Info("Listening",
		"port", cfg.Port,
		"origins", len(cfg.CORSOrigins),
		"completion_grace", cfg.CompletionGrace,
		"rejection_notices", cfg.RejectionNotices,
	)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
