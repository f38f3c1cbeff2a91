package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/alexanderramin/courseload/internal/service"
	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 5 * time.Second

// Server exposes the estimator over HTTP. It holds no per-request state, so
// requests are evaluated concurrently.
type Server struct {
	router       *gin.Engine
	estimator    service.EstimateService
	rates        service.RateService
	logger       *slog.Logger
	metrics      *Metrics
	defaultWeeks int
}

// New builds the router. defaultWeeks seeds classweeks for request bodies
// that omit it.
func New(estimator service.EstimateService, rates service.RateService, logger *slog.Logger, defaultWeeks int) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Server{
		router:       gin.New(),
		estimator:    estimator,
		rates:        rates,
		logger:       logger,
		metrics:      NewMetrics(),
		defaultWeeks: defaultWeeks,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.Use(gin.Recovery(), requestID(), requestLogger(s.logger), s.metrics.middleware())

	s.router.GET("/healthz", s.health)
	s.router.GET("/metrics", s.metrics.handler())

	api := s.router.Group("/api")
	{
		api.POST("/estimate", s.estimate)
		api.GET("/rates", s.rateTables)
	}

	s.router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, errorBody{Error: "not found"})
	})
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// Run listens on addr and serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled, then drains
// in-flight requests.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", "addr", ln.Addr().String())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	s.logger.Info("server stopped")
	return nil
}
