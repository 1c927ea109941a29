package rpc

import (
	"context"

	"github.com/unrealircd/rpc-go/pkg/model"
)

// Rpc is the typed facade over the "rpc" namespace itself (introspection
// and per-connection bookkeeping), grounded on
// original_source/unrealircd_rpc_py/objects/Rpc.py.
type Rpc struct{ conn *Connection }

// Info lists every JSON-RPC method the server exposes. On failure it
// returns an empty sequence (§3 invariant iv).
func (r Rpc) Info(ctx context.Context) []model.RpcInfo {
	res := r.conn.query(ctx, "rpc.info", nil)
	if !res.RPCResult.Error.IsSuccess() {
		return []model.RpcInfo{}
	}
	return model.DecodeRpcInfos(resultField(res.RPCResult.Result, "methods"))
}

// SetIssuer records who is issuing subsequent commands on this connection,
// for the server's unrealircd.org/issued-by message tag. Requires
// UnrealIRCd 6.1.0 or later.
func (r Rpc) SetIssuer(ctx context.Context, name string) model.RPCResult {
	return r.conn.query(ctx, "rpc.set_issuer", map[string]any{"name": name}).RPCResult
}

// AddTimer schedules request to be executed every everyMsec milliseconds
// under timerID. Requires UnrealIRCd 6.1.0 or later.
func (r Rpc) AddTimer(ctx context.Context, timerID string, everyMsec int, request map[string]any) model.RPCResult {
	return r.conn.query(ctx, "rpc.add_timer", map[string]any{
		"timer_id": timerID, "every_msec": everyMsec, "request": request,
	}).RPCResult
}

// DelTimer cancels a previously added timer. Requires UnrealIRCd 6.1.0 or
// later.
func (r Rpc) DelTimer(ctx context.Context, timerID string) model.RPCResult {
	return r.conn.query(ctx, "rpc.del_timer", map[string]any{"timer_id": timerID}).RPCResult
}
