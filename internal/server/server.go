// Package server exposes a label resolver as a read-only JSON API for
// plotting front-ends.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-labels/labels"
)

const shutdownTimeout = 5 * time.Second

// Server holds the state for the label API.
type Server struct {
	resolver *labels.Resolver
	logger   *zap.Logger
	router   *gin.Engine
}

// New creates a Server over res. A nil logger disables request logging.
func New(res *labels.Resolver, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(logger))

	s := &Server{
		resolver: res,
		logger:   logger,
		router:   r,
	}
	s.setupRoutes()

	return s
}

// Handler returns the HTTP handler of the API.
func (s *Server) Handler() http.Handler { return s.router }

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)

	go func() {
		s.logger.Info("Serving label API", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
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

	s.logger.Info("Shutting down label API")

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *Server) setupRoutes() {
	s.router.GET("/health", s.healthCheck)

	v1 := s.router.Group("/v1")
	v1.GET("/categories", s.handleCategories)
	v1.GET("/filters", s.handleFilters)
	v1.GET("/filters/:id", s.handleFilter)
	v1.GET("/metrics", s.handleMetrics)
	v1.GET("/metrics/:id", s.handleMetric)
	v1.GET("/metrics/:id/key", s.handleMetricKey)
}

func (s *Server) healthCheck(c *gin.Context) {
	c.Status(http.StatusOK)
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		logger.Debug("Request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)))
	}
}
