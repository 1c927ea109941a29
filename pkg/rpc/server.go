package rpc

import (
	"context"

	"github.com/unrealircd/rpc-go/pkg/model"
)

// Server is the typed facade over the "server" namespace, grounded on
// original_source/unrealircd_rpc_py/Server.py.
type Server struct{ conn *Connection }

// List returns every server currently linked to the network.
func (s Server) List(ctx context.Context, objectDetailLevel int) []model.Server {
	if objectDetailLevel == 0 {
		objectDetailLevel = 1
	}
	res := s.conn.query(ctx, "server.list", map[string]any{"object_detail_level": objectDetailLevel})
	if !res.RPCResult.Error.IsSuccess() {
		return []model.Server{}
	}
	out := []model.Server{}
	for _, e := range toSlice(resultField(res.RPCResult.Result, "list")) {
		out = append(out, model.DecodeServer(e))
	}
	return out
}

// Get fetches one server by name; an empty name means the server this
// connection is talking to.
func (s Server) Get(ctx context.Context, name string) model.Server {
	params := map[string]any{}
	if name != "" {
		params["server"] = name
	}
	res := s.conn.query(ctx, "server.get", params)
	srv := model.DecodeServer(resultField(res.RPCResult.Result, "server"))
	srv.Error = res.RPCResult.Error
	return srv
}

// Rehash triggers a configuration rehash on the named server (empty means
// the local one).
func (s Server) Rehash(ctx context.Context, name string) model.RehashResult {
	params := map[string]any{}
	if name != "" {
		params["server"] = name
	}
	res := s.conn.query(ctx, "server.rehash", params)
	rr := model.DecodeRehashResult(res.RPCResult.Result)
	rr.Error = res.RPCResult.Error
	return rr
}

// Connect links the named server.
func (s Server) Connect(ctx context.Context, name string) model.RPCResult {
	return s.conn.query(ctx, "server.connect", map[string]any{"server": name}).RPCResult
}

// Disconnect unlinks the named server.
func (s Server) Disconnect(ctx context.Context, name string) model.RPCResult {
	return s.conn.query(ctx, "server.disconnect", map[string]any{"server": name}).RPCResult
}

// ModuleList lists the modules loaded on the named server (empty means the
// local one). On failure it returns an empty sequence; the error is
// available from Connection.LastError.
func (s Server) ModuleList(ctx context.Context, name string) []string {
	params := map[string]any{}
	if name != "" {
		params["server"] = name
	}
	res := s.conn.query(ctx, "server.module_list", params)
	if !res.RPCResult.Error.IsSuccess() {
		return []string{}
	}
	out := []string{}
	for _, e := range toSlice(resultField(res.RPCResult.Result, "list")) {
		if s, ok := e.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// toSlice normalizes a decoded JSON value that should be an array into a
// []any, returning nil for anything else (missing field, null, wrong type).
func toSlice(v any) []any {
	s, _ := v.([]any)
	return s
}
