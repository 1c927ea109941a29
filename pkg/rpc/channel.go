package rpc

import (
	"context"

	"github.com/unrealircd/rpc-go/pkg/model"
)

// Channel is the typed facade over the "channel" namespace, grounded on
// original_source/unrealircd_rpc_py/Channel.py.
type Channel struct{ conn *Connection }

// List returns every channel at the given object detail level (default 1).
func (ch Channel) List(ctx context.Context, objectDetailLevel int) []model.Channel {
	if objectDetailLevel == 0 {
		objectDetailLevel = 1
	}
	res := ch.conn.query(ctx, "channel.list", map[string]any{"object_detail_level": objectDetailLevel})
	if !res.RPCResult.Error.IsSuccess() {
		return []model.Channel{}
	}
	return model.DecodeChannels(resultField(res.RPCResult.Result, "list"))
}

// Get fetches one channel by name at the given object detail level
// (default 3, which includes member sub-records).
func (ch Channel) Get(ctx context.Context, name string, objectDetailLevel int) model.Channel {
	if objectDetailLevel == 0 {
		objectDetailLevel = 3
	}
	res := ch.conn.query(ctx, "channel.get", map[string]any{"channel": name, "object_detail_level": objectDetailLevel})
	c := model.DecodeChannel(resultField(res.RPCResult.Result, "channel"))
	c.Error = res.RPCResult.Error
	return c
}

// SetMode changes a channel's mode string.
func (ch Channel) SetMode(ctx context.Context, name, modes string) model.RPCResult {
	return ch.conn.query(ctx, "channel.set_mode", map[string]any{"channel": name, "modes": modes}).RPCResult
}

// SetTopic sets a channel's topic.
func (ch Channel) SetTopic(ctx context.Context, name, topic, setBy string) model.RPCResult {
	return ch.conn.query(ctx, "channel.set_topic", map[string]any{"channel": name, "topic": topic, "set_by": setBy}).RPCResult
}

// Kick removes a user from a channel with the given reason.
func (ch Channel) Kick(ctx context.Context, name, nickOrUID, reason string) model.RPCResult {
	return ch.conn.query(ctx, "channel.kick", map[string]any{"channel": name, "nick": nickOrUID, "reason": reason}).RPCResult
}
