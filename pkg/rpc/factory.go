package rpc

import (
	"context"
	"fmt"

	"github.com/unrealircd/rpc-go/pkg/transport"
)

// NewConnection builds a synchronous Connection over the transport named
// by tag, then probes the server's version once before returning (§4.6,
// §13). An unknown tag, a bad setup parameter, or a failed probe (e.g. the
// bogus-port scenario S1) is returned as a plain error and no Connection is
// produced — callers must not be able to make a facade call on a
// connection whose setup failed.
func NewConnection(ctx context.Context, tag transport.Tag, params any) (*Connection, error) {
	t, err := buildTransport(tag, params)
	if err != nil {
		return nil, err
	}

	conn := newConnection(t)
	if err := conn.probeVersion(ctx); err != nil {
		return nil, err
	}
	return conn, nil
}

func buildTransport(tag transport.Tag, params any) (transport.Transport, error) {
	switch tag {
	case transport.TagHTTP:
		p, ok := params.(transport.HTTPSParams)
		if !ok {
			return nil, fmt.Errorf("rpc: transport %q requires transport.HTTPSParams, got %T", tag, params)
		}
		return transport.NewHTTPSTransport(p)
	case transport.TagTLSSocket:
		p, ok := params.(transport.TLSSocketParams)
		if !ok {
			return nil, fmt.Errorf("rpc: transport %q requires transport.TLSSocketParams, got %T", tag, params)
		}
		return transport.NewTLSSocketTransport(p)
	case transport.TagUnixSocket:
		p, ok := params.(transport.UnixSocketParams)
		if !ok {
			return nil, fmt.Errorf("rpc: transport %q requires transport.UnixSocketParams, got %T", tag, params)
		}
		return transport.NewUnixSocketTransport(p)
	default:
		return nil, fmt.Errorf("rpc: unknown transport tag %q", tag)
	}
}
