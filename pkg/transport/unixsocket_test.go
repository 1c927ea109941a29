package transport

import (
	"context"
	"net"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnixSocketTransport_SendRoundTrip(t *testing.T) {
	sockPath := filepath.Join(t.TempDir(), "rpc.sock")
	listener, err := net.Listen("unix", sockPath)
	require.NoError(t, err)
	defer listener.Close()

	go func() {
		conn, err := listener.Accept()
		if err != nil {
			return
		}
		defer conn.Close()

		buf := make([]byte, 4096)
		n, _ := conn.Read(buf)
		assert.Equal(t, "{\"jsonrpc\":\"2.0\"}\r\n", string(buf[:n]))

		_, _ = conn.Write([]byte(`{"jsonrpc":"2.0","id":1,"result":true}` + "\n"))
	}()

	transport, err := NewUnixSocketTransport(UnixSocketParams{PathToSocketFile: sockPath})
	require.NoError(t, err)

	reply, err := transport.Send(context.Background(), []byte(`{"jsonrpc":"2.0"}`))
	require.NoError(t, err)
	assert.Equal(t, `{"jsonrpc":"2.0","id":1,"result":true}`+"\n", string(reply))
}

func TestUnixSocketTransport_AccumulatesMultipleChunks(t *testing.T) {
	sockPath := filepath.Join(t.TempDir(), "rpc.sock")
	listener, err := net.Listen("unix", sockPath)
	require.NoError(t, err)
	defer listener.Close()

	go func() {
		conn, err := listener.Accept()
		if err != nil {
			return
		}
		defer conn.Close()

		buf := make([]byte, 4096)
		_, _ = conn.Read(buf)

		// Write the reply split across two writes with a delay, to
		// exercise the accumulate-until-newline loop rather than a
		// single Read returning the whole reply.
		_, _ = conn.Write([]byte(`{"jsonrpc":"2.0",`))
		time.Sleep(20 * time.Millisecond)
		_, _ = conn.Write([]byte(`"id":1,"result":true}` + "\n"))
	}()

	transport, err := NewUnixSocketTransport(UnixSocketParams{PathToSocketFile: sockPath})
	require.NoError(t, err)

	reply, err := transport.Send(context.Background(), []byte(`{}`))
	require.NoError(t, err)
	assert.Equal(t, `{"jsonrpc":"2.0","id":1,"result":true}`+"\n", string(reply))
}
