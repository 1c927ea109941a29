package transport

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTLSSocketTransport_SendRoundTrip(t *testing.T) {
	ts := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		assert.True(t, strings.HasPrefix(auth, "Basic "))

		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, `{"jsonrpc":"2.0"}`, string(body))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"jsonrpc":"2.0","id":1,"result":true}`))
	}))
	defer ts.Close()

	transport, err := NewTLSSocketTransport(TLSSocketParams{
		URL:      urlFromTestServer(t, ts.URL),
		Username: "adator",
		Password: "secret",
	})
	require.NoError(t, err)

	reply, err := transport.Send(context.Background(), []byte(`{"jsonrpc":"2.0"}`))
	require.NoError(t, err)
	assert.JSONEq(t, `{"jsonrpc":"2.0","id":1,"result":true}`, string(reply))
}
