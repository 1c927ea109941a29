package rpc

import (
	"context"
	"encoding/json"
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

// LiveConnection drives the log.subscribe state machine (§4.4): Idle ->
// Streaming -> Idle. Exactly one actor should call Subscribe; Unsubscribe
// is the one documented exception to "a connection is not reentrant" and
// may be called concurrently from a second actor (§5), grounded on the
// teacher's pkg/sse/client.go stopChan/reconnectChan shape generalized
// from "reconnect on EOF" to "run until cancelled."
type LiveConnection struct {
	liveTransport transport.LiveTransport
	logger        *log.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
}

func newLiveConnection(t transport.LiveTransport) *LiveConnection {
	base := rpclog.New("rpc-live", log.InfoLevel, nil)
	return &LiveConnection{
		liveTransport: t,
		logger:        rpclog.Named(base, uuid.NewString()[:8]),
	}
}

// SetLevel adjusts this connection's logger level.
func (lc *LiveConnection) SetLevel(level log.Level) { lc.logger.SetLevel(level) }

// Subscribe opens the live transport, sends one log.subscribe request with
// the given source filter (default ["!debug","all"] when sources is empty,
// per the Open Question decision in DESIGN.md), then delivers every
// decoded frame to callback until Unsubscribe is called or ctx is
// cancelled. It blocks until the loop exits and never returns an error for
// a clean unsubscribe — transport failures during the loop are delivered
// to callback as an error frame rather than returned, since callback is
// the loop's only output channel once streaming has begun.
func (lc *LiveConnection) Subscribe(ctx context.Context, sources []string, callback func(model.LiveRPCResult)) error {
	if len(sources) == 0 {
		sources = []string{"!debug", "all"}
	}

	runCtx, cancel := context.WithCancel(ctx)
	lc.mu.Lock()
	lc.cancel = cancel
	lc.mu.Unlock()
	defer func() {
		lc.mu.Lock()
		lc.cancel = nil
		lc.mu.Unlock()
		cancel()
	}()

	if err := lc.liveTransport.Open(runCtx); err != nil {
		lc.logger.Error("failed to open live transport", "error", err)
		return fmt.Errorf("rpc: live subscribe: %w", err)
	}

	subscribe := jsonrpc.NewRequest("log.subscribe", map[string]any{"sources": sources}, jsonrpc.NextID())
	frame, err := subscribe.Marshal()
	if err != nil {
		return fmt.Errorf("rpc: encode subscribe request: %w", err)
	}
	if err := lc.liveTransport.Send(frame); err != nil {
		lc.logger.Error("failed to send subscribe request", "error", err)
		return fmt.Errorf("rpc: send subscribe request: %w", err)
	}

	records := make(chan []byte)
	recvErrs := make(chan error, 1)
	go func() {
		for {
			record, err := lc.liveTransport.Recv()
			if err != nil {
				recvErrs <- err
				return
			}
			select {
			case records <- record:
			case <-runCtx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-runCtx.Done():
			callback(normalClosureResult())
			return nil
		case err := <-recvErrs:
			lc.logger.Error("live transport read failed", "error", err)
			callback(model.LiveRPCResult{JSONRPC: "2.0", Error: rpcerrors.Transport("%s", err.Error())})
			return nil
		case record := <-records:
			callback(decodeLiveFrame(record))
		}
	}
}

// Unsubscribe sends log.unsubscribe followed by a synthetic log.send audit
// event ("REMOTE_CLIENT_DISCONNECT") over the live transport, then cancels
// the running Subscribe loop. It is safe to call from any goroutine while
// Subscribe is blocked in Recv (§5).
func (lc *LiveConnection) Unsubscribe() error {
	lc.mu.Lock()
	cancel := lc.cancel
	lc.mu.Unlock()
	if cancel == nil {
		return nil
	}

	unsubscribe := jsonrpc.NewRequest("log.unsubscribe", nil, jsonrpc.NextID())
	if frame, err := unsubscribe.Marshal(); err == nil {
		_ = lc.liveTransport.Send(frame)
	}

	audit := jsonrpc.NewRequest("log.send", map[string]any{
		"msg":       "REMOTE_CLIENT_DISCONNECT",
		"level":     "info",
		"subsystem": "rpc",
		"event_id":  "REMOTE_CLIENT_DISCONNECT",
	}, jsonrpc.NextID())
	if frame, err := audit.Marshal(); err == nil {
		_ = lc.liveTransport.Send(frame)
	}

	cancel()
	return nil
}

// decodeLiveFrame parses one newline- or text-frame-delimited JSON record
// into a LiveRPCResult.
func decodeLiveFrame(record []byte) model.LiveRPCResult {
	parsed, err := jsonrpc.ParseResponse(record)
	if err != nil {
		return model.LiveRPCResult{JSONRPC: "2.0", Error: rpcerrors.Internal(fmt.Errorf("decode live frame: %w", err))}
	}

	result := model.LiveRPCResult{JSONRPC: "2.0", Method: parsed.Method, ID: parsed.ID, Error: rpcerrors.Success}
	if parsed.Error != nil {
		result.Error = rpcerrors.RPCError{Code: parsed.Error.Code, Message: parsed.Error.Message}
		return result
	}

	var decoded any
	if len(parsed.Result) > 0 {
		_ = json.Unmarshal(parsed.Result, &decoded)
	}
	result.Result = decoded
	return result
}

// normalClosureResult is the synthetic frame delivered once after
// Unsubscribe cancels the loop (§4.4).
func normalClosureResult() model.LiveRPCResult {
	return model.LiveRPCResult{
		JSONRPC: "2.0",
		Error:   rpcerrors.RPCError{Code: rpcerrors.CodeSuccess, Message: "WebSocket/UnixSocket normal closure"},
		Result:  true,
	}
}
