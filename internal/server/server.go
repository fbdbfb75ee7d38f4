// Package server provides the HTTP REST API consumed by the graph
// rendering surface.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/skilltree/internal/store"
)

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	profiles   *store.ProfileStore
	custom     *store.CustomGraphStore
	log        *zap.Logger
}

// Config holds server configuration
type Config struct {
	Port    int
	DataDir string
	Logger  *zap.Logger
}

// New creates a new server instance backed by a file store under DataDir.
func New(cfg Config) (*Server, error) {
	backend, err := store.NewFileBackend(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open data directory: %w", err)
	}

	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	s := NewWithBackend(backend, log)
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// NewWithBackend wires a server over an arbitrary store backend. Tests use
// this with an in-memory backend.
func NewWithBackend(backend store.Backend, log *zap.Logger) *Server {
	return &Server{
		profiles: store.NewProfileStore(backend),
		custom:   store.NewCustomGraphStore(backend),
		log:      log,
	}
}

// Handler returns the fully wrapped HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.withLogging(s.withCORS(s.routes()))
}

func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)

	// The annotated, filtered graph the rendering surface draws.
	mux.HandleFunc("GET /graph", s.handleGraph)
	mux.HandleFunc("GET /graph/nodes/{id}", s.handleGraphNode)

	// Profile
	mux.HandleFunc("GET /profile", s.handleGetProfile)
	mux.HandleFunc("PUT /profile", s.handleUpdateProfile)

	// Custom graph layer
	mux.HandleFunc("GET /custom", s.handleGetCustom)
	mux.HandleFunc("POST /custom/nodes", s.handleCreateCustomNode)
	mux.HandleFunc("GET /custom/export", s.handleExportCustom)
	mux.HandleFunc("POST /custom/import", s.handleImportCustom)
	mux.HandleFunc("DELETE /custom", s.handleClearCustom)

	// Resume
	mux.HandleFunc("POST /resume", s.handleResume)

	return mux
}

// Start begins listening for requests and blocks until interrupted.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		s.log.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.log.Fatal("server error", zap.Error(err))
		}
	}()

	<-stop
	s.log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.log.Info("server stopped")
	return nil
}

// withCORS adds CORS headers so a browser-hosted rendering surface can
// call the API directly.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("took", time.Since(start)),
		)
	})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error("encoding JSON response", zap.Error(err))
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}
