package rpc

import (
	"fmt"

	"github.com/unrealircd/rpc-go/pkg/transport"
)

// LiveWebSocketParams configures a WebSocket LiveConnection.
type LiveWebSocketParams = transport.WebSocketParams

// LiveUnixStreamParams configures a UNIX-stream LiveConnection.
type LiveUnixStreamParams = transport.UnixStreamParams

// NewLiveConnection builds a LiveConnection over the live transport named
// by tag (§4.6). Unlike NewConnection, no version probe runs at setup time:
// the live transports don't speak the synchronous request/response
// protocol server.get needs. A LiveConnection applies no version gate to
// log.subscribe; checking the server version is the caller's
// responsibility.
func NewLiveConnection(tag transport.Tag, params any) (*LiveConnection, error) {
	switch tag {
	case transport.TagHTTP:
		p, ok := params.(transport.WebSocketParams)
		if !ok {
			return nil, fmt.Errorf("rpc: live transport %q requires transport.WebSocketParams, got %T", tag, params)
		}
		t, err := transport.NewWebSocketTransport(p)
		if err != nil {
			return nil, err
		}
		return newLiveConnection(t), nil
	case transport.TagUnixSocket:
		p, ok := params.(transport.UnixStreamParams)
		if !ok {
			return nil, fmt.Errorf("rpc: live transport %q requires transport.UnixStreamParams, got %T", tag, params)
		}
		t, err := transport.NewUnixStreamTransport(p)
		if err != nil {
			return nil, err
		}
		return newLiveConnection(t), nil
	default:
		return nil, fmt.Errorf("rpc: unknown live transport tag %q", tag)
	}
}
