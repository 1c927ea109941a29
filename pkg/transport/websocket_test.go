package transport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebSocketTransport_SubscribeAndReceive(t *testing.T) {
	upgrader := websocket.Upgrader{}

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasPrefix(r.Header.Get("Authorization"), "Basic "))

		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		defer conn.Close()

		_, subscribeFrame, err := conn.ReadMessage()
		require.NoError(t, err)
		assert.Contains(t, string(subscribeFrame), "log.subscribe")

		require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`{"id":1}`)))
	}))
	defer ts.Close()

	// This test exercises the transport's Send/Recv/Close behavior directly
	// against a non-TLS test server, rather than through
	// NewWebSocketTransport (which always dials wss://).
	transport := &WebSocketTransport{
		url:    "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws",
		dialer: &websocket.Dialer{HandshakeTimeout: 5 * time.Second},
	}

	require.NoError(t, transport.Open(context.Background()))
	defer transport.Close()

	require.NoError(t, transport.Send([]byte(`{"method":"log.subscribe"}`)))

	record, err := transport.Recv()
	require.NoError(t, err)
	assert.Equal(t, `{"id":1}`, string(record))
}
