// Package server exposes chain resolution over HTTP. One Dictionary is
// loaded at startup and shared read-only by every request.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/wordchain/core"
)

// shutdownTimeout bounds graceful shutdown once Run's context is done.
const shutdownTimeout = 10 * time.Second

// Config holds server settings.
type Config struct {
	// MaxChains caps chains per response (0 = all).
	MaxChains int

	// Logger receives request and lifecycle records; nil discards them.
	Logger *slog.Logger
}

// Server serves resolution requests against a fixed dictionary.
type Server struct {
	dict      *core.Dictionary
	maxChains int
	logger    *slog.Logger
	registry  *prometheus.Registry
	metrics   *metrics
	engine    *gin.Engine
}

// New builds the router for dict.
func New(dict *core.Dictionary, cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())

	s := &Server{
		dict:      dict,
		maxChains: cfg.MaxChains,
		logger:    logger,
		registry:  reg,
		metrics:   newMetrics(reg),
	}

	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())
	r.GET("/healthz", s.handleHealth)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
	v1 := r.Group("/v1")
	v1.GET("/chains", s.handleChains)
	v1.GET("/dictionary", s.handleDictionary)
	s.engine = r

	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler { return s.engine }

// Run listens on addr until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr, "words", s.dict.Len())
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server: %w", err)
	}

	return nil
}

// requestLogger logs one record per request.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Info("request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
