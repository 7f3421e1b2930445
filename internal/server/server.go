// Package server exposes a word graph engine over HTTP.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sanonone/wordgraph/internal/server/ui"
	"github.com/sanonone/wordgraph/pkg/engine"
	"github.com/sanonone/wordgraph/pkg/persistence"
)

// Server holds the HTTP interface and the query engine.
type Server struct {
	Engine *engine.Engine

	httpServer *http.Server

	taskManager *TaskManager
	walkWriter  *persistence.WalkWriter
	authToken   string
}

// NewServer wires the HTTP routes around an already opened Engine.
// walks may be nil; when set, every finished walk task is appended to it.
func NewServer(eng *engine.Engine, httpAddr string, authToken string, walks *persistence.WalkWriter) *Server {
	s := &Server{
		Engine:      eng,
		taskManager: NewTaskManager(DefaultTaskRetention),
		walkWriter:  walks,
		authToken:   authToken,
	}

	mux := http.NewServeMux()
	s.registerHTTPHandlers(mux)

	// Chain middlewares: Recovery -> Logging -> Auth -> Mux
	// Recovery must be outer-most to catch everything.
	var handler http.Handler = mux
	handler = s.authMiddleware(handler)
	handler = s.LoggingMiddleware(handler)
	handler = s.RecoveryMiddleware(handler)

	rootMux := http.NewServeMux()
	rootMux.HandleFunc("GET /healthz", s.handleHealthz)
	rootMux.Handle("GET /metrics", promhttp.Handler())
	rootMux.Handle("GET /ui/", http.StripPrefix("/ui/", ui.GetHandler()))
	rootMux.Handle("/", handler)

	s.httpServer = &http.Server{
		Addr:              httpAddr,
		Handler:           rootMux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler returns the root handler, with health and metrics endpoints.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Run starts the HTTP server and blocks until it is shut down.
func (s *Server) Run() error {
	slog.Info("HTTP server listening", "addr", s.httpServer.Addr, "auth", s.authToken != "")
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("HTTP server startup failed: %w", err)
	}
	return nil
}

// Shutdown stops the HTTP server and cancels running walk tasks.
// It does not close the walk writer; the caller owns it.
func (s *Server) Shutdown() {
	slog.Info("Starting graceful shutdown of HTTP server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	s.taskManager.CancelAll()
	s.taskManager.Wait()
}
