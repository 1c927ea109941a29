package rpc

import (
	"context"

	"github.com/unrealircd/rpc-go/pkg/model"
)

// User is the typed facade over the "user" namespace, grounded on
// original_source/unrealircd_rpc_py/User.py (forward params, decode
// result['client']/result['list'] into the Client model).
type User struct{ conn *Connection }

// List returns every connected user at the given object detail level
// (default 2 per §4.5). On failure it returns an empty sequence and the
// error is available from Connection.LastError (§3 invariant iv).
func (u User) List(ctx context.Context, objectDetailLevel int) []model.Client {
	if objectDetailLevel == 0 {
		objectDetailLevel = 2
	}
	res := u.conn.query(ctx, "user.list", map[string]any{"object_detail_level": objectDetailLevel})
	if !res.RPCResult.Error.IsSuccess() {
		return []model.Client{}
	}
	return model.DecodeClients(resultField(res.RPCResult.Result, "list"))
}

// Get fetches one user by nick or UID. On failure it returns a
// default-valued Client with Error populated.
func (u User) Get(ctx context.Context, nickOrUID string) model.Client {
	res := u.conn.query(ctx, "user.get", map[string]any{"nick": nickOrUID})
	client := model.DecodeClient(resultField(res.RPCResult.Result, "client"))
	client.Error = res.RPCResult.Error
	return client
}

// SetNick changes a user's nickname. force bypasses Q-line checks.
func (u User) SetNick(ctx context.Context, nickOrUID, newNick string, force bool) model.RPCResult {
	return u.conn.query(ctx, "user.set_nick", map[string]any{"nick": nickOrUID, "newnick": newNick, "force": force}).RPCResult
}

// SetUsername changes a user's ident/username.
func (u User) SetUsername(ctx context.Context, nickOrUID, username string) model.RPCResult {
	return u.conn.query(ctx, "user.set_username", map[string]any{"nick": nickOrUID, "username": username}).RPCResult
}

// SetRealname changes a user's realname/gecos.
func (u User) SetRealname(ctx context.Context, nickOrUID, realname string) model.RPCResult {
	return u.conn.query(ctx, "user.set_realname", map[string]any{"nick": nickOrUID, "realname": realname}).RPCResult
}

// SetVhost sets a user's virtual host.
func (u User) SetVhost(ctx context.Context, nickOrUID, vhost string) model.RPCResult {
	return u.conn.query(ctx, "user.set_vhost", map[string]any{"nick": nickOrUID, "vhost": vhost}).RPCResult
}

// SetMode changes a user's mode string, e.g. "-i+w".
func (u User) SetMode(ctx context.Context, nickOrUID, modes string) model.RPCResult {
	return u.conn.query(ctx, "user.set_mode", map[string]any{"nick": nickOrUID, "modes": modes}).RPCResult
}

// Join joins a user to one or more channels.
func (u User) Join(ctx context.Context, nickOrUID, channel, key string, force bool) model.RPCResult {
	return u.conn.query(ctx, "user.join", map[string]any{"nick": nickOrUID, "channel": channel, "key": key, "force": force}).RPCResult
}

// Part parts a user from one or more channels.
func (u User) Part(ctx context.Context, nickOrUID, channel string, force bool) model.RPCResult {
	return u.conn.query(ctx, "user.part", map[string]any{"nick": nickOrUID, "channel": channel, "force": force}).RPCResult
}

// Kill forcefully disconnects a user, showing it as a kill.
func (u User) Kill(ctx context.Context, nickOrUID, reason string) model.RPCResult {
	return u.conn.query(ctx, "user.kill", map[string]any{"nick": nickOrUID, "reason": reason}).RPCResult
}

// Quit disconnects a user, showing it as a normal quit.
func (u User) Quit(ctx context.Context, nickOrUID, reason string) model.RPCResult {
	return u.conn.query(ctx, "user.quit", map[string]any{"nick": nickOrUID, "reason": reason}).RPCResult
}
