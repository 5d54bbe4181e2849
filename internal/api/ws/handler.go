package ws

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/surfgate/backend/internal/infrastructure/logging"
	"github.com/surfgate/backend/internal/infrastructure/monitoring"
	"github.com/surfgate/backend/internal/shared/id"
	"github.com/surfgate/backend/internal/shared/types"
	"github.com/surfgate/backend/internal/urlcheck"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Origin policy is enforced by the CORS layer
	},
}

// Handler manages WebSocket connections
type Handler struct {
	validator *urlcheck.Validator
	metrics   *monitoring.Metrics
	logger    *logging.Logger
}

// NewHandler creates a new WebSocket handler
func NewHandler(validator *urlcheck.Validator, metrics *monitoring.Metrics, logger *logging.Logger) *Handler {
	return &Handler{
		validator: validator,
		metrics:   metrics,
		logger:    logger,
	}
}

// HandleConnection handles WebSocket upgrade and messages
func (h *Handler) HandleConnection(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("WebSocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	connID := id.NewConnID()
	h.metrics.WSConnections.Inc()
	defer h.metrics.WSConnections.Dec()

	h.logger.Info("WebSocket connected", zap.String("conn_id", connID.String()))

	h.send(conn, map[string]interface{}{
		"type":    "system",
		"conn_id": connID.String(),
		"message": "Connected to SurfGate Backend (Go)",
	})

	for {
		var msg types.WSMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Warn("WebSocket read error",
					zap.String("conn_id", connID.String()),
					zap.Error(err),
				)
			}
			break
		}

		h.metrics.RecordWSMessage("in", msg.Type)

		switch msg.Type {
		case "validate":
			h.handleValidate(conn, msg)
		case "validate_batch":
			h.handleValidateBatch(conn, msg)
		case "ping":
			h.send(conn, map[string]interface{}{"type": "pong", "id": msg.ID})
		default:
			h.sendError(conn, msg.ID, "unknown message type")
		}
	}

	h.logger.Info("WebSocket disconnected", zap.String("conn_id", connID.String()))
}

func (h *Handler) handleValidate(conn *websocket.Conn, msg types.WSMessage) {
	timer := monitoring.NewTimer(h.metrics, "navigation.validate")

	result, verr := h.validator.Validate(msg.URL)
	if verr != nil {
		timer.Stop("rejected", string(verr.Code))
		h.send(conn, map[string]interface{}{
			"type": "validate_result",
			"id":   msg.ID,
			"error": map[string]interface{}{
				"code":    string(verr.Code),
				"message": verr.Message,
			},
			"timestamp": time.Now().Unix(),
		})
		return
	}

	timer.Stop("accepted", "")
	h.send(conn, map[string]interface{}{
		"type": "validate_result",
		"id":   msg.ID,
		"result": map[string]interface{}{
			"valid":     result.Valid,
			"sanitized": result.Sanitized,
			"protocol":  result.Protocol,
		},
		"timestamp": time.Now().Unix(),
	})
}

func (h *Handler) handleValidateBatch(conn *websocket.Conn, msg types.WSMessage) {
	timer := monitoring.NewTimer(h.metrics, "navigation.validateBatch")

	items, verr := h.validator.ValidateBatch(msg.URLs)
	if verr != nil {
		timer.Stop("rejected", string(verr.Code))
		h.sendError(conn, msg.ID, verr.Error())
		return
	}

	timer.Stop("accepted", "")
	h.metrics.RecordBatch(len(items))

	encoded := make([]interface{}, len(items))
	for i, item := range items {
		entry := map[string]interface{}{"url": item.URL, "result": nil, "error": nil}
		if item.Result != nil {
			entry["result"] = map[string]interface{}{
				"valid":     item.Result.Valid,
				"sanitized": item.Result.Sanitized,
				"protocol":  item.Result.Protocol,
			}
		}
		if item.Error != nil {
			entry["error"] = map[string]interface{}{
				"code":    string(item.Error.Code),
				"message": item.Error.Message,
			}
		}
		encoded[i] = entry
	}

	h.send(conn, map[string]interface{}{
		"type":      "validate_batch_result",
		"id":        msg.ID,
		"items":     encoded,
		"count":     len(encoded),
		"timestamp": time.Now().Unix(),
	})
}

func (h *Handler) send(conn *websocket.Conn, data map[string]interface{}) error {
	if t, ok := data["type"].(string); ok {
		h.metrics.RecordWSMessage("out", t)
	}
	return conn.WriteJSON(data)
}

func (h *Handler) sendError(conn *websocket.Conn, msgID, message string) error {
	return h.send(conn, map[string]interface{}{
		"type":      "error",
		"id":        msgID,
		"message":   message,
		"timestamp": time.Now().Unix(),
	})
}
