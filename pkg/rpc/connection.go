package rpc

import (
	"context"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/unrealircd/rpc-go/pkg/jsonrpc"
	"github.com/unrealircd/rpc-go/pkg/model"
	"github.com/unrealircd/rpc-go/pkg/rpcerrors"
	"github.com/unrealircd/rpc-go/pkg/rpclog"
	"github.com/unrealircd/rpc-go/pkg/transport"
)

// Connection is a synchronous connection to one UnrealIRCd daemon. It owns
// a transport and a named logger, and caches the server's parsed software
// version for the version gate. A Connection is not reentrant: callers
// sharing one across goroutines must serialize access (§5).
type Connection struct {
	transport transport.Transport
	idGen     jsonrpc.IDGenerator
	logger    *log.Logger

	mu         sync.Mutex
	version    version
	hasVersion bool
	lastError  rpcerrors.RPCError
}

func newConnection(t transport.Transport) *Connection {
	base := rpclog.New("rpc", log.InfoLevel, nil)
	return &Connection{
		transport: t,
		idGen:     jsonrpc.NextID,
		logger:    rpclog.Named(base, uuid.NewString()[:8]),
		lastError: rpcerrors.Success,
	}
}

func (c *Connection) nextID() int { return c.idGen() }

// SetIDGenerator overrides the correlation id generator; tests use this to
// supply a deterministic id (testable property 3).
func (c *Connection) SetIDGenerator(gen jsonrpc.IDGenerator) { c.idGen = gen }

// SetLevel adjusts this connection's logger level.
func (c *Connection) SetLevel(level log.Level) { c.logger.SetLevel(level) }

func (c *Connection) setLastError(err rpcerrors.RPCError) {
	c.mu.Lock()
	c.lastError = err
	c.mu.Unlock()
}

// LastError returns the error from the most recent facade call on this
// connection (§5's "current-error accessor"). Reading it from a goroutine
// other than the one driving calls races with the next call and is
// unsupported, per §5.
func (c *Connection) LastError() rpcerrors.RPCError {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastError
}

func (c *Connection) softwareVersion() (version, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.version, c.hasVersion
}

// User returns the facade over the "user" namespace.
func (c *Connection) User() User { return User{conn: c} }

// Channel returns the facade over the "channel" namespace.
func (c *Connection) Channel() Channel { return Channel{conn: c} }

// Server returns the facade over the "server" namespace.
func (c *Connection) Server() Server { return Server{conn: c} }

// ServerBan returns the facade over the "server_ban" namespace.
func (c *Connection) ServerBan() ServerBan { return ServerBan{conn: c} }

// ServerBanException returns the facade over the "server_ban_exception"
// namespace.
func (c *Connection) ServerBanException() ServerBanException { return ServerBanException{conn: c} }

// NameBan returns the facade over the "name_ban" namespace.
func (c *Connection) NameBan() NameBan { return NameBan{conn: c} }

// Spamfilter returns the facade over the "spamfilter" namespace.
func (c *Connection) Spamfilter() Spamfilter { return Spamfilter{conn: c} }

// Rpc returns the facade over the "rpc" namespace itself.
func (c *Connection) Rpc() Rpc { return Rpc{conn: c} }

// Log returns the facade over the synchronous half of the "log" namespace.
func (c *Connection) Log() Log { return Log{conn: c} }

// Stats returns the facade over the "stats" namespace.
func (c *Connection) Stats() Stats { return Stats{conn: c} }

// Whowas returns the facade over the "whowas" namespace.
func (c *Connection) Whowas() Whowas { return Whowas{conn: c} }

// Message returns the facade over the "message" namespace.
func (c *Connection) Message() Message { return Message{conn: c} }

// ConnThrottle returns the facade over the "connthrottle" namespace.
func (c *Connection) ConnThrottle() ConnThrottle { return ConnThrottle{conn: c} }

// SecurityGroup returns the facade over the "security_group" namespace.
func (c *Connection) SecurityGroup() SecurityGroup { return SecurityGroup{conn: c} }

// probeVersion issues an un-gated server.get call to cache the server's
// software version for the version gate (component 13). A failure here is
// a setup-time problem and is returned as a plain error, per §7 ("setup-time
// problems ... are allowed to surface as raised exceptions").
func (c *Connection) probeVersion(ctx context.Context) error {
	res := c.query(ctx, "server.get", nil)
	if !res.RPCResult.Error.IsSuccess() {
		c.logger.Error("setup probe failed", "error", res.RPCResult.Error.Message)
		return fmt.Errorf("rpc: setup probe (server.get) failed: %w", res.RPCResult.Error)
	}

	server := model.DecodeServer(resultField(res.RPCResult.Result, "server"))
	if v, ok := parseVersion(server.Features.Software); ok {
		c.mu.Lock()
		c.version, c.hasVersion = v, true
		c.mu.Unlock()
	}
	return nil
}
