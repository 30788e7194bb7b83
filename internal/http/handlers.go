// Package http provides the HTTP handlers for the shell service.
package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/haloos/shell/internal/commands"
	"github.com/haloos/shell/internal/logging"
	"github.com/haloos/shell/internal/monitoring"
	"github.com/haloos/shell/internal/shared/types"
)

// Handlers contains all HTTP handlers
type Handlers struct {
	registry *commands.Registry
	metrics  *monitoring.Metrics
	logger   *logging.Logger
}

// NewHandlers creates a new handler set
func NewHandlers(registry *commands.Registry, metrics *monitoring.Metrics, logger *logging.Logger) *Handlers {
	return &Handlers{
		registry: registry,
		metrics:  metrics,
		logger:   logger.Named("http"),
	}
}

// Root handles the service banner
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"service": "Shell Service",
		"version": "0.3.0",
	})
}

// Health handles detailed health check
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"registry": h.registry.Stats(),
	})
}

// ListCommands lists all registered commands with their metadata
func (h *Handlers) ListCommands(c *gin.Context) {
	infos := h.registry.List()
	c.JSON(http.StatusOK, gin.H{
		"commands": infos,
		"count":    len(infos),
	})
}

// Execute runs a single command invocation
func (h *Handlers) Execute(c *gin.Context) {
	var req types.ExecuteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cmd, ok := h.registry.Get(req.Command)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown command: " + req.Command})
		return
	}

	start := time.Now()
	res := cmd.Execute(c.Request.Context(), req.Args, req.Cwd, req.Stdin)
	h.metrics.RecordCommand(req.Command, res.ExitCode, time.Since(start))

	h.logger.Debug("command executed",
		zap.String("command", req.Command),
		zap.Strings("args", req.Args),
		zap.String("cwd", req.Cwd),
		zap.Int("exit_code", res.ExitCode),
	)

	c.JSON(http.StatusOK, res)
}
