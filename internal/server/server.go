// Package server wires the command registry, virtual filesystem, and HTTP
// surface into a runnable service.
package server

import (
	"context"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/haloos/shell/internal/commands"
	"github.com/haloos/shell/internal/config"
	shellhttp "github.com/haloos/shell/internal/http"
	"github.com/haloos/shell/internal/logging"
	"github.com/haloos/shell/internal/middleware"
	"github.com/haloos/shell/internal/monitoring"
	"github.com/haloos/shell/internal/shared/paths"
	"github.com/haloos/shell/internal/vfs"
	"github.com/haloos/shell/internal/ws"
)

// Server wraps the HTTP server and dependencies
type Server struct {
	router *gin.Engine
	http   *http.Server
	fs     vfs.FS
	logger *logging.Logger
}

// New creates a new server instance backed by an in-memory filesystem
func New(cfg *config.Config, logger *logging.Logger) *Server {
	fs := vfs.NewMemFS()
	seedStandardDirectories(fs, logger)

	registry := commands.NewDefaultRegistry(fs)
	metrics := monitoring.NewMetrics()

	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(monitoring.Middleware(metrics))
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Content-Type", "Accept", "Origin"},
	}))

	handlers := shellhttp.NewHandlers(registry, metrics, logger)
	wsHandler := ws.NewHandler(registry, metrics, logger)

	router.GET("/", handlers.Root)
	router.GET("/health", handlers.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.GET("/commands", handlers.ListCommands)

	execute := router.Group("/")
	if cfg.RateLimit.Enabled {
		execute.Use(middleware.RateLimit(middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
		}))
	}
	execute.POST("/execute", handlers.Execute)

	router.GET("/stream", wsHandler.HandleConnection)

	return &Server{
		router: router,
		http: &http.Server{
			Addr:    cfg.Server.Host + ":" + cfg.Server.Port,
			Handler: router,
		},
		fs:     fs,
		logger: logger.Named("server"),
	}
}

// Run starts the server and blocks until it stops
func (s *Server) Run() error {
	s.logger.Info("starting shell service", zap.String("addr", s.http.Addr))
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops the server gracefully
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

// seedStandardDirectories ensures the write zones exist on a fresh
// filesystem. Parents are the root, so a single Mkdir per zone suffices.
func seedStandardDirectories(fs vfs.FS, logger *logging.Logger) {
	ctx := context.Background()
	for _, dir := range paths.StandardDirectories() {
		if err := fs.Mkdir(ctx, dir); err != nil {
			logger.Warn("failed to seed directory", zap.String("path", dir), zap.Error(err))
		}
	}
}
