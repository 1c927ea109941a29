package transport

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/unrealircd/rpc-go/internal/urlutil"
)

// UnixSocketParams configures the UNIX-domain-socket synchronous
// transport.
type UnixSocketParams struct {
	PathToSocketFile string
	ReadTimeout      time.Duration
}

// UnixSocketTransport writes one CRLF-terminated JSON-RPC envelope per
// call and reads the matching newline-terminated reply. This transport
// frames each request with a trailing "\r\n" and accumulates 4KiB reads of
// the reply until it has seen a trailing "\n".
type UnixSocketTransport struct {
	path        string
	readTimeout time.Duration
}

// NewUnixSocketTransport verifies that path names an existing UNIX socket.
func NewUnixSocketTransport(params UnixSocketParams) (*UnixSocketTransport, error) {
	if err := urlutil.CheckSocketPath(params.PathToSocketFile); err != nil {
		return nil, err
	}
	readTimeout := params.ReadTimeout
	if readTimeout <= 0 {
		readTimeout = 10 * time.Second
	}
	return &UnixSocketTransport{path: params.PathToSocketFile, readTimeout: readTimeout}, nil
}

// Send dials a fresh connection, writes payload followed by "\r\n", and
// reads 4KiB chunks until the accumulated buffer ends in "\n".
func (t *UnixSocketTransport) Send(ctx context.Context, payload []byte) ([]byte, error) {
	dialer := &net.Dialer{}
	conn, err := dialer.DialContext(ctx, "unix", t.path)
	if err != nil {
		return nil, fmt.Errorf("transport: dial unix socket %s: %w", t.path, err)
	}
	defer conn.Close()

	framed := append(append([]byte{}, payload...), '\r', '\n')
	if _, err := conn.Write(framed); err != nil {
		return nil, fmt.Errorf("transport: write to unix socket %s: %w", t.path, err)
	}

	body, err := readUntilNewline(conn, t.readTimeout)
	if err != nil {
		return nil, fmt.Errorf("transport: read from unix socket %s: %w", t.path, err)
	}
	return body, nil
}

// readUntilNewline reads 4KiB chunks from conn, extending deadline each
// read, until the accumulated buffer's last byte is '\n' or the connection
// is closed by the peer.
func readUntilNewline(conn net.Conn, timeout time.Duration) ([]byte, error) {
	var buf []byte
	chunk := make([]byte, 4096)
	for {
		if err := conn.SetReadDeadline(time.Now().Add(timeout)); err != nil {
			return nil, err
		}
		n, err := conn.Read(chunk)
		if n > 0 {
			buf = append(buf, chunk[:n]...)
			if buf[len(buf)-1] == '\n' {
				return buf, nil
			}
		}
		if err != nil {
			if len(buf) > 0 {
				return buf, nil
			}
			return nil, err
		}
	}
}
