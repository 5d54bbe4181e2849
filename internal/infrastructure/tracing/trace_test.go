package tracing

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/surfgate/backend/internal/shared/id"
)

func TestStartSpanNewTrace(t *testing.T) {
	tracer := New("test", zap.NewNop())

	span, ctx := tracer.StartSpan(context.Background(), "op")

	assert.True(t, strings.HasPrefix(span.TraceID.String(), id.TracePrefix+"_"))
	assert.True(t, strings.HasPrefix(span.SpanID.String(), id.SpanPrefix+"_"))
	assert.Empty(t, span.ParentID)
	assert.Equal(t, span.TraceID, GetTraceID(ctx))
	assert.Equal(t, span.SpanID, GetSpanID(ctx))
}

func TestStartSpanInheritsTrace(t *testing.T) {
	tracer := New("test", zap.NewNop())

	parent, ctx := tracer.StartSpan(context.Background(), "parent")
	child, _ := tracer.StartSpan(ctx, "child")

	assert.Equal(t, parent.TraceID, child.TraceID)
	assert.Equal(t, parent.SpanID, child.ParentID)
	assert.NotEqual(t, parent.SpanID, child.SpanID)
}

func TestHTTPMiddlewareHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tracer := New("test", zap.NewNop())

	router := gin.New()
	router.Use(HTTPMiddleware(tracer))
	router.GET("/test", func(c *gin.Context) {
		c.Status(200)
	})

	req := httptest.NewRequest("GET", "/test", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.NotEmpty(t, w.Header().Get(TraceHeader))
	assert.NotEmpty(t, w.Header().Get(SpanHeader))
}

func TestHTTPMiddlewarePropagation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tracer := New("test", zap.NewNop())

	router := gin.New()
	router.Use(HTTPMiddleware(tracer))
	router.GET("/test", func(c *gin.Context) {
		c.Status(200)
	})

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set(TraceHeader, "trace_upstream")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "trace_upstream", w.Header().Get(TraceHeader))
}
