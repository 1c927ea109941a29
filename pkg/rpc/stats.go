package rpc

import (
	"context"

	"github.com/unrealircd/rpc-go/pkg/model"
)

// Stats is the typed facade over the "stats" namespace, grounded on
// original_source/unrealircd_rpc_py/Stats.py.
type Stats struct{ conn *Connection }

// Get returns a snapshot of server, user, channel and ban totals.
func (s Stats) Get(ctx context.Context, objectDetailLevel int) model.Stats {
	if objectDetailLevel == 0 {
		objectDetailLevel = 1
	}
	res := s.conn.query(ctx, "stats.get", map[string]any{"object_detail_level": objectDetailLevel})
	st := model.DecodeStats(res.RPCResult.Result)
	st.Error = res.RPCResult.Error
	return st
}
