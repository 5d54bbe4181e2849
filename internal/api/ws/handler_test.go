package ws

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/surfgate/backend/internal/infrastructure/logging"
	"github.com/surfgate/backend/internal/infrastructure/monitoring"
	"github.com/surfgate/backend/internal/urlcheck"
)

var testMetrics = monitoring.NewMetrics()

func dialTestServer(t *testing.T) (*websocket.Conn, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	handler := NewHandler(urlcheck.New(), testMetrics, logging.NewDefault())

	router := gin.New()
	router.GET("/stream", handler.HandleConnection)

	srv := httptest.NewServer(router)
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/stream"

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)

	return conn, func() {
		conn.Close()
		srv.Close()
	}
}

func readMessage(t *testing.T, conn *websocket.Conn) map[string]interface{} {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))

	var msg map[string]interface{}
	require.NoError(t, conn.ReadJSON(&msg))
	return msg
}

func TestWelcomeMessage(t *testing.T) {
	conn, done := dialTestServer(t)
	defer done()

	msg := readMessage(t, conn)
	assert.Equal(t, "system", msg["type"])
	assert.Contains(t, msg["conn_id"], "conn_")
}

func TestPing(t *testing.T) {
	conn, done := dialTestServer(t)
	defer done()

	readMessage(t, conn) // welcome

	require.NoError(t, conn.WriteJSON(map[string]interface{}{"type": "ping", "id": "p1"}))

	msg := readMessage(t, conn)
	assert.Equal(t, "pong", msg["type"])
	assert.Equal(t, "p1", msg["id"])
}

func TestValidateOverWebSocket(t *testing.T) {
	conn, done := dialTestServer(t)
	defer done()

	readMessage(t, conn) // welcome

	require.NoError(t, conn.WriteJSON(map[string]interface{}{
		"type": "validate",
		"id":   "v1",
		"url":  "example.com",
	}))

	msg := readMessage(t, conn)
	assert.Equal(t, "validate_result", msg["type"])
	assert.Equal(t, "v1", msg["id"])

	result := msg["result"].(map[string]interface{})
	assert.Equal(t, true, result["valid"])
	assert.Equal(t, "https://example.com", result["sanitized"])
}

func TestRejectionKeepsConnectionOpen(t *testing.T) {
	conn, done := dialTestServer(t)
	defer done()

	readMessage(t, conn) // welcome

	require.NoError(t, conn.WriteJSON(map[string]interface{}{
		"type": "validate",
		"id":   "bad",
		"url":  "javascript:alert(1)",
	}))

	msg := readMessage(t, conn)
	assert.Equal(t, "validate_result", msg["type"])
	errObj := msg["error"].(map[string]interface{})
	assert.Equal(t, string(urlcheck.CodeProtocolNotAllowed), errObj["code"])

	// Connection survives the rejection
	require.NoError(t, conn.WriteJSON(map[string]interface{}{
		"type": "validate",
		"id":   "good",
		"url":  "https://example.com",
	}))

	msg = readMessage(t, conn)
	assert.Equal(t, "good", msg["id"])
	assert.NotNil(t, msg["result"])
}

func TestValidateBatchOverWebSocket(t *testing.T) {
	conn, done := dialTestServer(t)
	defer done()

	readMessage(t, conn) // welcome

	require.NoError(t, conn.WriteJSON(map[string]interface{}{
		"type": "validate_batch",
		"id":   "b1",
		"urls": []string{"https://good.com", "data:text/html,x"},
	}))

	msg := readMessage(t, conn)
	assert.Equal(t, "validate_batch_result", msg["type"])
	assert.Equal(t, float64(2), msg["count"])

	items := msg["items"].([]interface{})
	require.Len(t, items, 2)

	first := items[0].(map[string]interface{})
	assert.NotNil(t, first["result"])

	second := items[1].(map[string]interface{})
	errObj := second["error"].(map[string]interface{})
	assert.Equal(t, string(urlcheck.CodeProtocolNotAllowed), errObj["code"])
}

func TestUnknownMessageType(t *testing.T) {
	conn, done := dialTestServer(t)
	defer done()

	readMessage(t, conn) // welcome

	require.NoError(t, conn.WriteJSON(map[string]interface{}{"type": "bogus", "id": "x"}))

	msg := readMessage(t, conn)
	assert.Equal(t, "error", msg["type"])
	assert.Equal(t, "unknown message type", msg["message"])
}
