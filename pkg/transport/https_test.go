package transport

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPSTransport_SendRoundTrip(t *testing.T) {
	ts := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "adator", user)
		assert.Equal(t, "secret", pass)

		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, `{"jsonrpc":"2.0"}`, string(body))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"jsonrpc":"2.0","id":1,"result":true}`))
	}))
	defer ts.Close()

	transport, err := NewHTTPSTransport(HTTPSParams{
		URL:      urlFromTestServer(t, ts.URL),
		Username: "adator",
		Password: "secret",
	})
	require.NoError(t, err)

	reply, err := transport.Send(context.Background(), []byte(`{"jsonrpc":"2.0"}`))
	require.NoError(t, err)
	assert.JSONEq(t, `{"jsonrpc":"2.0","id":1,"result":true}`, string(reply))
}

func TestHTTPSTransport_NonOKStatusIsError(t *testing.T) {
	ts := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte("authentication required"))
	}))
	defer ts.Close()

	transport, err := NewHTTPSTransport(HTTPSParams{URL: urlFromTestServer(t, ts.URL)})
	require.NoError(t, err)

	_, err = transport.Send(context.Background(), []byte(`{}`))
	assert.Error(t, err)
}

func TestHTTPSTransport_AuthenticationRequiredMarker(t *testing.T) {
	ts := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("Authentication required"))
	}))
	defer ts.Close()

	transport, err := NewHTTPSTransport(HTTPSParams{URL: urlFromTestServer(t, ts.URL)})
	require.NoError(t, err)

	_, err = transport.Send(context.Background(), []byte(`{}`))
	assert.ErrorContains(t, err, "authentication required")
}

// urlFromTestServer appends an "/api" endpoint to an httptest.Server's
// "https://127.0.0.1:PORT" URL, giving the "https://host:port/endpoint"
// shape ParseURL expects.
func urlFromTestServer(t *testing.T, base string) string {
	t.Helper()
	return base + "/api"
}
