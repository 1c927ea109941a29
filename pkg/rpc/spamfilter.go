package rpc

import (
	"context"

	"github.com/unrealircd/rpc-go/pkg/model"
)

// Spamfilter is the typed facade over the "spamfilter" namespace, grounded
// on original_source/unrealircd_rpc_py/Spamfilter.py.
type Spamfilter struct{ conn *Connection }

// List returns every spamfilter entry.
func (sf Spamfilter) List(ctx context.Context) []model.Spamfilter {
	res := sf.conn.query(ctx, "spamfilter.list", nil)
	if !res.RPCResult.Error.IsSuccess() {
		return []model.Spamfilter{}
	}
	return model.DecodeSpamfilters(resultField(res.RPCResult.Result, "list"))
}

// Get fetches one spamfilter entry by name (the match string), match type,
// ban action, and target set; all four narrow the lookup to a single entry.
func (sf Spamfilter) Get(ctx context.Context, name, matchType, banAction, spamfilterTargets string) model.Spamfilter {
	res := sf.conn.query(ctx, "spamfilter.get", map[string]any{
		"name": name, "match_type": matchType, "ban_action": banAction, "spamfilter_targets": spamfilterTargets,
	})
	s := model.DecodeSpamfilter(resultField(res.RPCResult.Result, "tkl"))
	s.Error = res.RPCResult.Error
	return s
}

// Add adds a spamfilter entry.
func (sf Spamfilter) Add(ctx context.Context, matchString, matchType, targets, action, reason, duration string) model.RPCResult {
	return sf.conn.query(ctx, "spamfilter.add", map[string]any{
		"match_string": matchString, "match_type": matchType,
		"spamfilter_targets": targets, "ban_action": action,
		"reason": reason, "ban_duration": duration,
	}).RPCResult
}

// Del removes a spamfilter entry by name and type.
func (sf Spamfilter) Del(ctx context.Context, name, matchType string) model.RPCResult {
	return sf.conn.query(ctx, "spamfilter.del", map[string]any{"name": name, "match_type": matchType}).RPCResult
}
