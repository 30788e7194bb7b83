// Package ws provides the WebSocket shell session surface.
//
// A session is a stream of execute frames from the caller and result frames
// back. Commands within one session run strictly sequentially, in arrival
// order; the session holds no shell state beyond the connection itself (the
// working directory travels on every frame).
package ws

import (
	"context"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/haloos/shell/internal/commands"
	"github.com/haloos/shell/internal/logging"
	"github.com/haloos/shell/internal/monitoring"
	"github.com/haloos/shell/internal/shared/types"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Origin policy is enforced by the fronting proxy
	},
}

// Handler manages WebSocket shell sessions
type Handler struct {
	registry *commands.Registry
	metrics  *monitoring.Metrics
	logger   *logging.Logger
}

// NewHandler creates a new WebSocket handler
func NewHandler(registry *commands.Registry, metrics *monitoring.Metrics, logger *logging.Logger) *Handler {
	return &Handler{
		registry: registry,
		metrics:  metrics,
		logger:   logger.Named("ws"),
	}
}

// HandleConnection upgrades the connection and serves one shell session
func (h *Handler) HandleConnection(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	sessionID := uuid.NewString()
	h.metrics.WSConnections.Inc()
	defer h.metrics.WSConnections.Dec()

	log := h.logger.With(zap.String("session_id", sessionID))
	log.Info("shell session opened")
	defer log.Info("shell session closed")

	reqCtx := c.Request.Context()

	h.send(conn, types.WSResult{Type: "system", ID: sessionID})

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Warn("websocket read error", zap.Error(err))
			}
			return
		}

		var msg types.WSMessage
		if err := sonic.Unmarshal(data, &msg); err != nil {
			h.send(conn, types.WSResult{Type: "error", Error: "malformed frame: " + err.Error()})
			continue
		}
		h.metrics.RecordWSMessage(msg.Type, "in")

		switch msg.Type {
		case "execute":
			h.handleExecute(reqCtx, conn, msg, log)
		case "ping":
			h.send(conn, types.WSResult{Type: "pong", ID: msg.ID})
		default:
			h.send(conn, types.WSResult{Type: "error", ID: msg.ID, Error: "unknown frame type: " + msg.Type})
		}
	}
}

func (h *Handler) handleExecute(ctx context.Context, conn *websocket.Conn, msg types.WSMessage, log *logging.Logger) {
	cmd, ok := h.registry.Get(msg.Command)
	if !ok {
		h.send(conn, types.WSResult{Type: "error", ID: msg.ID, Error: "unknown command: " + msg.Command})
		return
	}

	start := time.Now()
	res := cmd.Execute(ctx, msg.Args, msg.Cwd, msg.Stdin)
	h.metrics.RecordCommand(msg.Command, res.ExitCode, time.Since(start))

	log.Debug("command executed",
		zap.String("command", msg.Command),
		zap.Int("exit_code", res.ExitCode),
	)

	h.send(conn, types.WSResult{
		Type:     "result",
		ID:       msg.ID,
		ExitCode: res.ExitCode,
		Stdout:   res.Stdout,
		Stderr:   res.Stderr,
	})
}

func (h *Handler) send(conn *websocket.Conn, v types.WSResult) {
	data, err := sonic.Marshal(v)
	if err != nil {
		h.logger.Error("frame marshal failed", zap.Error(err))
		return
	}
	h.metrics.RecordWSMessage(v.Type, "out")
	if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
		h.logger.Warn("websocket write failed", zap.Error(err))
	}
}
