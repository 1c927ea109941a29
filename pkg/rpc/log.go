package rpc

import (
	"context"
)

// Log is the typed facade over the synchronous half of the "log"
// namespace; the streaming half (subscribe/send/unsubscribe while
// connected) lives on LiveConnection (pkg/rpc/live.go). Grounded on
// original_source/unrealircd_rpc_py/Log.py.
type Log struct{ conn *Connection }

// List fetches past log entries recorded since boot, optionally filtered
// to the given sources (e.g. "!debug", "all"). A nil or empty sources
// means every source.
func (l Log) List(ctx context.Context, sources []string) Attr {
	res := l.conn.query(ctx, "log.list", map[string]any{"sources": sources})
	return res.Attr
}

// Send emits a single log message / server notice over a plain (non-live)
// connection. Requires UnrealIRCd 6.1.8 or later.
func (l Log) Send(ctx context.Context, msg, level, subsystem, eventID string) bool {
	res := l.conn.query(ctx, "log.send", map[string]any{
		"msg": msg, "level": level, "subsystem": subsystem, "event_id": eventID,
	})
	return res.RPCResult.Error.IsSuccess()
}
