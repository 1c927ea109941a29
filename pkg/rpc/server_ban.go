package rpc

import (
	"context"

	"github.com/unrealircd/rpc-go/pkg/model"
)

// ServerBan is the typed facade over the "server_ban" namespace (g/k/z-line
// style bans), grounded on
// original_source/unrealircd_rpc_py/Server_ban.py.
type ServerBan struct{ conn *Connection }

// List returns every server ban, optionally filtered by ban type ("gline",
// "kline", "zline", ...); an empty banType lists all of them.
func (sb ServerBan) List(ctx context.Context, banType string) []model.ServerBan {
	params := map[string]any{}
	if banType != "" {
		params["type"] = banType
	}
	res := sb.conn.query(ctx, "server_ban.list", params)
	if !res.RPCResult.Error.IsSuccess() {
		return []model.ServerBan{}
	}
	return model.DecodeServerBans(resultField(res.RPCResult.Result, "list"))
}

// Get fetches one server ban by name and type.
func (sb ServerBan) Get(ctx context.Context, name, banType string) model.ServerBan {
	res := sb.conn.query(ctx, "server_ban.get", map[string]any{"name": name, "type": banType})
	b := model.DecodeServerBan(resultField(res.RPCResult.Result, "tkl"))
	b.Error = res.RPCResult.Error
	return b
}

// Add adds a server ban. expireAt, when non-empty, is an absolute expiry
// timestamp; an empty expireAt leaves the ban's expiry to duration.
func (sb ServerBan) Add(ctx context.Context, name, banType, reason, duration, setBy, expireAt string) model.RPCResult {
	return sb.conn.query(ctx, "server_ban.add", map[string]any{
		"name": name, "type": banType, "reason": reason, "duration_string": duration, "set_by": setBy, "expire_at": expireAt,
	}).RPCResult
}

// Del removes a server ban by name and type.
func (sb ServerBan) Del(ctx context.Context, name, banType string) model.RPCResult {
	return sb.conn.query(ctx, "server_ban.del", map[string]any{"name": name, "type": banType}).RPCResult
}
