package rpc

import (
	"context"

	"github.com/unrealircd/rpc-go/pkg/model"
)

// Whowas is the typed facade over the "whowas" namespace, grounded on
// original_source/unrealircd_rpc_py/Whowas.py. Requires UnrealIRCd 6.1.0
// or later.
type Whowas struct{ conn *Connection }

// Get returns the historical records for a nick, or every record known to
// the server when nick is empty.
func (w Whowas) Get(ctx context.Context, nick string, objectDetailLevel int) []model.Whowas {
	if objectDetailLevel == 0 {
		objectDetailLevel = 2
	}
	params := map[string]any{"object_detail_level": objectDetailLevel}
	if nick != "" {
		params["nick"] = nick
	}
	res := w.conn.query(ctx, "whowas.get", params)
	if !res.RPCResult.Error.IsSuccess() {
		return []model.Whowas{}
	}
	return model.DecodeWhowasList(res.RPCResult.Result)
}
