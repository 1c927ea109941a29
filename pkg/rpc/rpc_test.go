package rpc

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unrealircd/rpc-go/pkg/transport"
)

// fakeRequest is the minimal shape this test harness needs to read out of
// an incoming JSON-RPC request body.
type fakeRequest struct {
	Method string         `json:"method"`
	ID     int            `json:"id"`
	Params map[string]any `json:"params"`
}

// newFakeServer starts an httptest.TLSServer that dispatches by method name
// through handlers, replying with a well-formed JSON-RPC envelope.
func newFakeServer(t *testing.T, handlers map[string]func(fakeRequest) any) *httptest.Server {
	t.Helper()
	ts := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req fakeRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		handler, ok := handlers[req.Method]
		if !ok {
			http.Error(w, fmt.Sprintf("unexpected method %q", req.Method), http.StatusInternalServerError)
			return
		}

		result := handler(req)
		w.Header().Set("Content-Type", "application/json")
		body, err := json.Marshal(map[string]any{
			"jsonrpc": "2.0",
			"id":      req.ID,
			"result":  result,
		})
		require.NoError(t, err)
		_, _ = w.Write(body)
	}))
	return ts
}

func serverGetResult(software string) any {
	return map[string]any{
		"server": map[string]any{
			"name": "irc.example.net",
			"features": map[string]any{
				"software": software,
			},
		},
	}
}

func newTestConnection(t *testing.T, software string, extra map[string]func(fakeRequest) any) (*Connection, *httptest.Server) {
	t.Helper()
	handlers := map[string]func(fakeRequest) any{
		"server.get": func(fakeRequest) any { return serverGetResult(software) },
	}
	for method, h := range extra {
		handlers[method] = h
	}
	ts := newFakeServer(t, handlers)

	conn, err := NewConnection(context.Background(), transport.TagHTTP, transport.HTTPSParams{
		URL:      ts.URL + "/api",
		Username: "adator",
		Password: "secret",
	})
	require.NoError(t, err)
	return conn, ts
}

// S1: a transport that can never be reached must fail setup, producing no
// usable Connection.
func TestNewConnection_BogusPortFailsSetup(t *testing.T) {
	conn, err := NewConnection(context.Background(), transport.TagHTTP, transport.HTTPSParams{
		URL:      "https://127.0.0.1:1/api",
		Username: "adator",
		Password: "secret",
	})
	assert.Error(t, err)
	assert.Nil(t, conn)
}

func TestNewConnection_ProbesVersionOnSetup(t *testing.T) {
	conn, ts := newTestConnection(t, "UnrealIRCd-6.1.8", nil)
	defer ts.Close()

	v, ok := conn.softwareVersion()
	require.True(t, ok)
	assert.Equal(t, "6.1.8", v.String())
}

// S2: user.get decodes result['client'] into a Client and leaves Error at
// its success zero value.
func TestUser_Get(t *testing.T) {
	conn, ts := newTestConnection(t, "UnrealIRCd-6.1.8", map[string]func(fakeRequest) any{
		"user.get": func(req fakeRequest) any {
			assert.Equal(t, "nick", req.Params["nick"])
			return map[string]any{
				"client": map[string]any{
					"name": "nick",
					"id":   "001AAAAAB",
					"user": map[string]any{"username": "ident"},
				},
			}
		},
	})
	defer ts.Close()

	client := conn.User().Get(context.Background(), "nick")
	assert.Equal(t, "nick", client.Name)
	assert.Equal(t, "001AAAAAB", client.ID)
	require.NotNil(t, client.User)
	assert.Equal(t, "ident", client.User.Username)
	assert.True(t, client.Error.IsSuccess())
}

// S3: channel.list on a server error returns an empty, never-nil sequence
// and populates the connection's last error.
func TestChannel_List_ErrorYieldsEmptySequence(t *testing.T) {
	handlers := map[string]func(fakeRequest) any{
		"server.get": func(fakeRequest) any { return serverGetResult("UnrealIRCd-6.1.8") },
	}
	ts := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req fakeRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		if req.Method == "channel.list" {
			w.Header().Set("Content-Type", "application/json")
			body, _ := json.Marshal(map[string]any{
				"jsonrpc": "2.0",
				"id":      req.ID,
				"error":   map[string]any{"code": -12345, "message": "no such permission"},
			})
			_, _ = w.Write(body)
			return
		}

		handler, ok := handlers[req.Method]
		require.True(t, ok, "unexpected method %q", req.Method)
		w.Header().Set("Content-Type", "application/json")
		body, _ := json.Marshal(map[string]any{"jsonrpc": "2.0", "id": req.ID, "result": handler(req)})
		_, _ = w.Write(body)
	}))
	defer ts.Close()

	conn, err := NewConnection(context.Background(), transport.TagHTTP, transport.HTTPSParams{
		URL: ts.URL + "/api",
	})
	require.NoError(t, err)

	channels := conn.Channel().List(context.Background(), 0)
	assert.Empty(t, channels)
	assert.NotNil(t, channels)
	assert.Equal(t, -12345, conn.LastError().Code)
}

// S7: a method gated to a newer release than the probed server's version
// short-circuits before any network call, and the rejection is visible on
// LastError.
func TestQuery_VersionGateShortCircuits(t *testing.T) {
	conn, ts := newTestConnection(t, "UnrealIRCd-6.1.0", map[string]func(fakeRequest) any{
		"connthrottle.status": func(fakeRequest) any {
			t.Fatal("connthrottle.status must not reach the transport below the gate version")
			return nil
		},
	})
	defer ts.Close()

	status := conn.ConnThrottle().Status(context.Background())
	assert.False(t, status.Error.IsSuccess())
	assert.Equal(t, -1, conn.LastError().Code)
	assert.Contains(t, conn.LastError().Message, "6.2.2")
}

// Methods in a gated namespace that meet the minimum version reach the
// transport normally.
func TestQuery_VersionGateAllowsWhenMet(t *testing.T) {
	conn, ts := newTestConnection(t, "UnrealIRCd-6.2.2", map[string]func(fakeRequest) any{
		"connthrottle.status": func(fakeRequest) any {
			return map[string]any{"enabled": true}
		},
	})
	defer ts.Close()

	status := conn.ConnThrottle().Status(context.Background())
	require.True(t, status.Error.IsSuccess())
	assert.True(t, status.Enabled)
}

// S6: rpc.info decodes the dict-keyed-by-name "methods" object into a
// non-empty sequence of populated records.
func TestRpc_Info(t *testing.T) {
	conn, ts := newTestConnection(t, "UnrealIRCd-6.1.8", map[string]func(fakeRequest) any{
		"rpc.info": func(fakeRequest) any {
			return map[string]any{
				"methods": map[string]any{
					"user.list": map[string]any{"name": "user.list", "module": "rpc", "version": "1"},
				},
			}
		},
	})
	defer ts.Close()

	methods := conn.Rpc().Info(context.Background())
	require.Len(t, methods, 1)
	assert.Equal(t, "user.list", methods[0].Name)
}
