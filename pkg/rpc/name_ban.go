package rpc

import (
	"context"

	"github.com/unrealircd/rpc-go/pkg/model"
)

// NameBan is the typed facade over the "name_ban" namespace (qlines),
// grounded on original_source/unrealircd_rpc_py/Name_ban.py.
type NameBan struct{ conn *Connection }

// List returns every name ban.
func (nb NameBan) List(ctx context.Context) []model.NameBan {
	res := nb.conn.query(ctx, "name_ban.list", nil)
	if !res.RPCResult.Error.IsSuccess() {
		return []model.NameBan{}
	}
	return model.DecodeNameBans(resultField(res.RPCResult.Result, "list"))
}

// Get fetches one name ban by name.
func (nb NameBan) Get(ctx context.Context, name string) model.NameBan {
	res := nb.conn.query(ctx, "name_ban.get", map[string]any{"name": name})
	b := model.DecodeNameBan(resultField(res.RPCResult.Result, "tkl"))
	b.Error = res.RPCResult.Error
	return b
}

// Add adds a name ban. expireAt, when non-empty, is an absolute expiry
// timestamp; an empty expireAt leaves the ban's expiry to duration.
func (nb NameBan) Add(ctx context.Context, name, reason, duration, setBy, expireAt string) model.RPCResult {
	return nb.conn.query(ctx, "name_ban.add", map[string]any{
		"name": name, "reason": reason, "duration_string": duration, "set_by": setBy, "expire_at": expireAt,
	}).RPCResult
}

// Del removes a name ban by name.
func (nb NameBan) Del(ctx context.Context, name string) model.RPCResult {
	return nb.conn.query(ctx, "name_ban.del", map[string]any{"name": name}).RPCResult
}
