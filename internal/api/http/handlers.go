package http

import (
	"io"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/surfgate/backend/internal/api/middleware"
	"github.com/surfgate/backend/internal/infrastructure/logging"
	"github.com/surfgate/backend/internal/infrastructure/monitoring"
	"github.com/surfgate/backend/internal/service"
	"github.com/surfgate/backend/internal/shared/types"
	"github.com/surfgate/backend/internal/urlcheck"
)

// Handlers contains all HTTP handlers
type Handlers struct {
	registry     *service.Registry
	validator    *urlcheck.Validator
	metrics      *monitoring.Metrics
	logger       *logging.Logger
	maxBatchSize int
}

// NewHandlers creates a new handler set
func NewHandlers(
	registry *service.Registry,
	validator *urlcheck.Validator,
	metrics *monitoring.Metrics,
	logger *logging.Logger,
	maxBatchSize int,
) *Handlers {
	return &Handlers{
		registry:     registry,
		validator:    validator,
		metrics:      metrics,
		logger:       logger,
		maxBatchSize: maxBatchSize,
	}
}

// Root handles the service banner
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"service": "SurfGate Backend (Go)",
		"version": "0.3.0",
	})
}

// Health handles detailed health check
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":            "healthy",
		"service_registry":  h.registry.Stats(),
		"allowed_protocols": urlcheck.AllowedProtocols(),
		"uptime_seconds":    h.metrics.UptimeSeconds(),
	})
}

// ListServices lists all available services
func (h *Handlers) ListServices(c *gin.Context) {
	var category *types.Category
	if categoryStr := c.Query("category"); categoryStr != "" {
		cat := types.Category(categoryStr)
		category = &cat
	}

	services := h.registry.List(category)
	stats := h.registry.Stats()

	c.JSON(http.StatusOK, gin.H{
		"services": services,
		"stats":    stats,
	})
}

// ExecuteService invokes a registered tool by ID
func (h *Handlers) ExecuteService(c *gin.Context) {
	var req types.ExecuteRequest
	if !h.decode(c, &req) {
		return
	}

	if req.ToolID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "tool_id is required"})
		return
	}

	reqID := middleware.GetRequestID(c)
	appCtx := &types.Context{AppID: req.AppID}
	if reqID != "" {
		appCtx.RequestID = &reqID
	}

	result, err := h.registry.Execute(c.Request.Context(), req.ToolID, req.Params, appCtx)
	if err != nil {
		h.logger.Warn("Tool execution failed",
			zap.String("tool_id", req.ToolID),
			zap.String("request_id", reqID),
			zap.Error(err),
		)
		c.JSON(http.StatusNotFound, result)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Validate handles a single address-bar input
func (h *Handlers) Validate(c *gin.Context) {
	var req types.ValidateRequest
	if !h.decode(c, &req) {
		return
	}

	timer := monitoring.NewTimer(h.metrics, "navigation.validate")

	result, verr := h.validator.Validate(req.URL)
	if verr != nil {
		timer.Stop("rejected", string(verr.Code))
		h.logger.Debug("Navigation rejected",
			zap.String("code", string(verr.Code)),
			zap.String("request_id", middleware.GetRequestID(c)),
		)
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": gin.H{
				"code":    string(verr.Code),
				"message": verr.Message,
			},
		})
		return
	}

	timer.Stop("accepted", "")
	c.JSON(http.StatusOK, gin.H{
		"result": gin.H{
			"valid":     result.Valid,
			"sanitized": result.Sanitized,
			"protocol":  result.Protocol,
		},
	})
}

// ValidateBatch handles a list of inputs, one outcome per item
func (h *Handlers) ValidateBatch(c *gin.Context) {
	var req types.ValidateBatchRequest
	if !h.decode(c, &req) {
		return
	}

	if n, ok := batchLen(req.URLs); ok && n > h.maxBatchSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{
			"error": gin.H{
				"code":    "BATCH_TOO_LARGE",
				"message": "batch exceeds the configured maximum size",
			},
			"max_batch_size": h.maxBatchSize,
		})
		return
	}

	timer := monitoring.NewTimer(h.metrics, "navigation.validateBatch")

	items, verr := h.validator.ValidateBatch(req.URLs)
	if verr != nil {
		timer.Stop("rejected", string(verr.Code))
		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{
				"code":    string(verr.Code),
				"message": verr.Message,
			},
		})
		return
	}

	timer.Stop("accepted", "")
	h.metrics.RecordBatch(len(items))

	encoded := make([]gin.H, len(items))
	for i, item := range items {
		entry := gin.H{"url": item.URL, "result": nil, "error": nil}
		if item.Result != nil {
			entry["result"] = gin.H{
				"valid":     item.Result.Valid,
				"sanitized": item.Result.Sanitized,
				"protocol":  item.Result.Protocol,
			}
		}
		if item.Error != nil {
			entry["error"] = gin.H{
				"code":    string(item.Error.Code),
				"message": item.Error.Message,
			}
		}
		encoded[i] = entry
	}

	c.JSON(http.StatusOK, gin.H{
		"items": encoded,
		"count": len(encoded),
	})
}

// MetricsJSON returns an aggregated metrics snapshot
func (h *Handlers) MetricsJSON(c *gin.Context) {
	snap := h.metrics.Snapshot()

	var avgMs float64
	if snap.RequestCount > 0 {
		avgMs = snap.TotalDuration / float64(snap.RequestCount) * 1000
	}

	c.JSON(http.StatusOK, gin.H{
		"requests": gin.H{
			"total":           snap.TotalRequests,
			"errors":          snap.TotalErrors,
			"avg_duration_ms": avgMs,
		},
		"validations": gin.H{
			"total":      snap.TotalValidations,
			"rejections": snap.TotalRejections,
		},
		"uptime_seconds": h.metrics.UptimeSeconds(),
	})
}

// decode reads and unmarshals the request body with sonic. On failure it
// writes a 400 and returns false.
func (h *Handlers) decode(c *gin.Context, dst interface{}) bool {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read request body"})
		return false
	}
	if err := sonic.Unmarshal(body, dst); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON: " + err.Error()})
		return false
	}
	return true
}

// batchLen reports the length of a would-be batch without validating it.
func batchLen(v interface{}) (int, bool) {
	switch arr := v.(type) {
	case []string:
		return len(arr), true
	case []interface{}:
		return len(arr), true
	default:
		return 0, false
	}
}
