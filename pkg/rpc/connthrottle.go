package rpc

import (
	"context"

	"github.com/unrealircd/rpc-go/pkg/model"
)

// ConnThrottle is the typed facade over the "connthrottle" namespace,
// grounded on original_source/unrealircd_rpc_py/Connthrottle.py. Requires
// UnrealIRCd 6.2.2 or later.
type ConnThrottle struct{ conn *Connection }

// Status returns the connthrottle module's configuration, counters and
// last-minute statistics.
func (c ConnThrottle) Status(ctx context.Context) model.ConnThrottle {
	res := c.conn.query(ctx, "connthrottle.status", nil)
	ct := model.DecodeConnThrottle(res.RPCResult.Result)
	ct.Error = res.RPCResult.Error
	return ct
}

// Set changes connthrottle's enabled state.
func (c ConnThrottle) Set(ctx context.Context, enabled bool) model.RPCResult {
	return c.conn.query(ctx, "connthrottle.set", map[string]any{"enabled": enabled}).RPCResult
}

// Reset clears connthrottle's rolling counters.
func (c ConnThrottle) Reset(ctx context.Context) model.RPCResult {
	return c.conn.query(ctx, "connthrottle.reset", nil).RPCResult
}
