// Package server exposes the summarization pipeline over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/cloudsift/cloudsift/internal/summarize"
	"github.com/cloudsift/cloudsift/pkg/logger"
)

// Config configures the HTTP server.
type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
}

// Server routes summarization requests to the pipeline.
type Server struct {
	router          *chi.Mux
	summarizer      *summarize.Summarizer
	logger          logger.Logger
	httpServer      *http.Server
	shutdownTimeout time.Duration
}

// New builds the server and its routes.
func New(cfg Config, summarizer *summarize.Summarizer, log logger.Logger) *Server {
	s := &Server{
		router:          chi.NewRouter(),
		summarizer:      summarizer,
		logger:          log,
		shutdownTimeout: cfg.ShutdownTimeout,
	}
	if s.shutdownTimeout <= 0 {
		s.shutdownTimeout = 10 * time.Second
	}

	s.router.Use(s.requestLogger)
	s.router.Use(middleware.Recoverer)

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Post("/summarize", s.handleSummarize)
		r.Post("/summarize/stream", s.handleSummarizeStream)
	})

	s.httpServer = &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s
}

// Handler returns the HTTP handler, used directly in tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until the context is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("HTTP server listening", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	return s.httpServer.Shutdown(shutdownCtx)
}
