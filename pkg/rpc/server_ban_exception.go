package rpc

import (
	"context"

	"github.com/unrealircd/rpc-go/pkg/model"
)

// ServerBanException is the typed facade over the "server_ban_exception"
// namespace (E-lines), grounded on
// original_source/unrealircd_rpc_py/Server_ban_exeption.py.
type ServerBanException struct{ conn *Connection }

// List returns every server ban exception, optionally filtered by type.
func (sbe ServerBanException) List(ctx context.Context, banType string) []model.ServerBanException {
	params := map[string]any{}
	if banType != "" {
		params["exception_types"] = banType
	}
	res := sbe.conn.query(ctx, "server_ban_exception.list", params)
	if !res.RPCResult.Error.IsSuccess() {
		return []model.ServerBanException{}
	}
	return model.DecodeServerBanExceptions(resultField(res.RPCResult.Result, "list"))
}

// Get fetches one server ban exception by name and type.
func (sbe ServerBanException) Get(ctx context.Context, name, banType string) model.ServerBanException {
	res := sbe.conn.query(ctx, "server_ban_exception.get", map[string]any{"name": name, "exception_types": banType})
	b := model.DecodeServerBanException(resultField(res.RPCResult.Result, "tkl"))
	b.Error = res.RPCResult.Error
	return b
}

// Add adds a server ban exception. expireAt, when non-empty, is an absolute
// expiry timestamp; an empty expireAt leaves the exception's expiry to
// duration.
func (sbe ServerBanException) Add(ctx context.Context, name, banType, reason, duration, setBy, expireAt string) model.RPCResult {
	return sbe.conn.query(ctx, "server_ban_exception.add", map[string]any{
		"name": name, "exception_types": banType, "reason": reason, "duration_string": duration, "set_by": setBy, "expire_at": expireAt,
	}).RPCResult
}

// Del removes a server ban exception by name and type.
func (sbe ServerBanException) Del(ctx context.Context, name, banType string) model.RPCResult {
	return sbe.conn.query(ctx, "server_ban_exception.del", map[string]any{"name": name, "exception_types": banType}).RPCResult
}
