package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sorel-labs/sorel/internal/api/middleware"
	"github.com/sorel-labs/sorel/internal/api/rest"
	"github.com/sorel-labs/sorel/internal/api/shared/executor"
	"github.com/sorel-labs/sorel/internal/logger"
)

// Config holds the server configuration
type Config struct {
	Debug        bool
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	CORSOrigins  []string
	Auth         middleware.AuthConfig
}

// Server wraps the HTTP server
type Server struct {
	config     Config
	executor   executor.Executor
	httpServer *http.Server
}

// New creates a new API server
func New(cfg Config, exec executor.Executor) *Server {
	return &Server{
		config:   cfg,
		executor: exec,
	}
}

// NewRouter builds the gin engine with middleware and every route registered
func NewRouter(cfg Config, exec executor.Executor) (*gin.Engine, error) {
	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestContext())
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.SetupCORS(cfg.CORSOrigins))

	handler := rest.NewHandler(cfg.Debug, exec)
	if err := rest.SetupRoutes(router, handler, cfg.Auth); err != nil {
		return nil, fmt.Errorf("failed to setup routes: %w", err)
	}

	return router, nil
}

// Start initializes and starts the HTTP server
func (s *Server) Start() error {
	router, err := NewRouter(s.config, s.executor)
	if err != nil {
		return err
	}

	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	logger.Info("Starting API server",
		zap.String("address", addr),
		zap.Bool("auth_enabled", s.config.Auth.Enabled()),
	)

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	logger.Info("Shutting down API server")

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}
	}

	return nil
}
