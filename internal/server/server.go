// Package server provides the HTTP API for erabu.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hoshii/erabu/internal/config"
	"github.com/hoshii/erabu/internal/pipeline"
)

// Server is the HTTP server for the erabu API.
type Server struct {
	engine     *pipeline.Engine
	store      *config.Store
	configPath string
	logger     *zap.Logger
	server     *http.Server
}

// NewServer creates a server with the given dependencies. configPath may be
// empty; admin config updates are then not persisted to disk.
func NewServer(engine *pipeline.Engine, store *config.Store, configPath string, logger *zap.Logger) *Server {
	return &Server{
		engine:     engine,
		store:      store,
		configPath: configPath,
		logger:     logger,
	}
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Post("/api/v1/search", s.handleSearch)
	r.Get("/api/v1/config", s.handleGetConfig)
	r.Post("/api/v1/config", s.handleUpdateConfig)
	r.Post("/api/v1/digest", s.handleDigest)
	r.Get("/health", s.handleHealth)

	cfg := s.store.Current()
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	s.server = &http.Server{
		Addr:    addr,
		Handler: r,
	}
	s.logger.Info("Starting server", zap.String("addr", addr))
	return s.server.ListenAndServe()
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}

// requestID tags each request with a UUID for log correlation.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r)
	})
}
