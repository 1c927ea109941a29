package rpc

import (
	"context"

	"github.com/unrealircd/rpc-go/pkg/model"
)

// Message is the typed facade over the "message" namespace, used to have
// the server speak on behalf of the RPC user. Requires UnrealIRCd 6.2.2 or
// later for every method, per the version gate table.
type Message struct{ conn *Connection }

// SendPrivmsg sends a PRIVMSG as if from, to a nick, channel or server mask.
func (m Message) SendPrivmsg(ctx context.Context, from, to, text string) model.RPCResult {
	return m.conn.query(ctx, "message.send_privmsg", map[string]any{"from": from, "to": to, "msg": text}).RPCResult
}

// SendNotice sends a NOTICE as if from, to a nick, channel or server mask.
func (m Message) SendNotice(ctx context.Context, from, to, text string) model.RPCResult {
	return m.conn.query(ctx, "message.send_notice", map[string]any{"from": from, "to": to, "msg": text}).RPCResult
}

// SendNumeric sends a raw numeric reply to the given target.
func (m Message) SendNumeric(ctx context.Context, from, to, numeric, text string) model.RPCResult {
	return m.conn.query(ctx, "message.send_numeric", map[string]any{
		"from": from, "to": to, "numeric": numeric, "msg": text,
	}).RPCResult
}

// SendStandardReply sends an IRCv3 standard-reply (STANDARD-REPLIES spec)
// message to the given target.
func (m Message) SendStandardReply(ctx context.Context, from, to, command, code, text string) model.RPCResult {
	return m.conn.query(ctx, "message.send_standard_reply", map[string]any{
		"from": from, "to": to, "command": command, "code": code, "text": text,
	}).RPCResult
}
