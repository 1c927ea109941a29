package transport

import (
	"bytes"
	"context"
	"fmt"
	"net"
	"sync"

	"github.com/unrealircd/rpc-go/internal/urlutil"
)

// UnixStreamParams configures the UNIX-domain-socket live transport used
// for log.subscribe streams.
type UnixStreamParams struct {
	PathToSocketFile string
}

// UnixStreamTransport is a LiveTransport over one long-lived UNIX socket
// connection. Unlike UnixSocketTransport (one connection per call), this
// type holds its connection open across many newline-framed records and
// lets a second goroutine write an unsubscribe frame down the same
// connection while the first is blocked reading — see DESIGN.md's
// resolution of the live-unsubscribe open question.
type UnixStreamTransport struct {
	path string

	mu   sync.Mutex
	conn net.Conn

	pending []byte // bytes read past the last delivered record
}

// NewUnixStreamTransport verifies that path names an existing UNIX socket.
func NewUnixStreamTransport(params UnixStreamParams) (*UnixStreamTransport, error) {
	if err := urlutil.CheckSocketPath(params.PathToSocketFile); err != nil {
		return nil, err
	}
	return &UnixStreamTransport{path: params.PathToSocketFile}, nil
}

// Open dials the long-lived connection.
func (t *UnixStreamTransport) Open(ctx context.Context) error {
	dialer := &net.Dialer{}
	conn, err := dialer.DialContext(ctx, "unix", t.path)
	if err != nil {
		return fmt.Errorf("transport: dial unix stream %s: %w", t.path, err)
	}
	t.mu.Lock()
	t.conn = conn
	t.mu.Unlock()
	return nil
}

// Send writes frame followed by "\n" to the shared connection. Safe to
// call concurrently with Recv: this is how an unsubscribe request is
// delivered while another goroutine waits in Recv for the next record.
func (t *UnixStreamTransport) Send(frame []byte) error {
	t.mu.Lock()
	conn := t.conn
	t.mu.Unlock()
	if conn == nil {
		return fmt.Errorf("transport: unix stream %s is not open", t.path)
	}
	if _, err := conn.Write(append(append([]byte{}, frame...), '\n')); err != nil {
		return fmt.Errorf("transport: write to unix stream %s: %w", t.path, err)
	}
	return nil
}

// Recv returns the next newline-delimited record, reading and buffering
// 4KiB chunks until a full record has accumulated. Only one goroutine may
// call Recv at a time; Send is safe to call concurrently with it.
func (t *UnixStreamTransport) Recv() ([]byte, error) {
	t.mu.Lock()
	conn := t.conn
	t.mu.Unlock()
	if conn == nil {
		return nil, fmt.Errorf("transport: unix stream %s is not open", t.path)
	}

	for {
		if i := bytes.IndexByte(t.pending, '\n'); i >= 0 {
			record := t.pending[:i]
			t.pending = t.pending[i+1:]
			return record, nil
		}

		chunk := make([]byte, 4096)
		n, err := conn.Read(chunk)
		if n > 0 {
			t.pending = append(t.pending, chunk[:n]...)
		}
		if err != nil {
			if i := bytes.IndexByte(t.pending, '\n'); i >= 0 {
				record := t.pending[:i]
				t.pending = t.pending[i+1:]
				return record, nil
			}
			return nil, fmt.Errorf("transport: read from unix stream %s: %w", t.path, err)
		}
	}
}

// Close releases the shared connection.
func (t *UnixStreamTransport) Close() error {
	t.mu.Lock()
	conn := t.conn
	t.conn = nil
	t.mu.Unlock()
	if conn == nil {
		return nil
	}
	return conn.Close()
}
