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

func TestUnixStreamTransport_DeliversSeparateRecords(t *testing.T) {
	sockPath := filepath.Join(t.TempDir(), "live.sock")
	listener, err := net.Listen("unix", sockPath)
	require.NoError(t, err)
	defer listener.Close()

	go func() {
		conn, err := listener.Accept()
		if err != nil {
			return
		}
		defer conn.Close()

		// Drain the subscribe frame.
		buf := make([]byte, 4096)
		_, _ = conn.Read(buf)

		// Write two records in one chunk, then a third byte-at-a-time, to
		// exercise both whole-record and partial-chunk framing.
		_, _ = conn.Write([]byte(`{"id":1}` + "\n" + `{"id":2}` + "\n"))
		time.Sleep(10 * time.Millisecond)
		for _, b := range []byte(`{"id":3}` + "\n") {
			_, _ = conn.Write([]byte{b})
			time.Sleep(time.Millisecond)
		}
	}()

	transport, err := NewUnixStreamTransport(UnixStreamParams{PathToSocketFile: sockPath})
	require.NoError(t, err)
	require.NoError(t, transport.Open(context.Background()))
	defer transport.Close()

	require.NoError(t, transport.Send([]byte(`{"method":"log.subscribe"}`)))

	first, err := transport.Recv()
	require.NoError(t, err)
	assert.Equal(t, `{"id":1}`, string(first))

	second, err := transport.Recv()
	require.NoError(t, err)
	assert.Equal(t, `{"id":2}`, string(second))

	third, err := transport.Recv()
	require.NoError(t, err)
	assert.Equal(t, `{"id":3}`, string(third))
}

func TestUnixStreamTransport_SendWhileRecvBlocked(t *testing.T) {
	sockPath := filepath.Join(t.TempDir(), "live.sock")
	listener, err := net.Listen("unix", sockPath)
	require.NoError(t, err)
	defer listener.Close()

	serverGotUnsubscribe := make(chan struct{})
	go func() {
		conn, err := listener.Accept()
		if err != nil {
			return
		}
		defer conn.Close()

		buf := make([]byte, 4096)
		n, _ := conn.Read(buf) // subscribe frame
		assert.Contains(t, string(buf[:n]), "log.subscribe")

		n, _ = conn.Read(buf) // unsubscribe frame, arrives while client Recv is blocked
		if string(buf[:n]) == "{\"method\":\"log.unsubscribe\"}\n" {
			close(serverGotUnsubscribe)
		}
		_, _ = conn.Write([]byte(`{"id":9}` + "\n"))
	}()

	transport, err := NewUnixStreamTransport(UnixStreamParams{PathToSocketFile: sockPath})
	require.NoError(t, err)
	require.NoError(t, transport.Open(context.Background()))
	defer transport.Close()

	require.NoError(t, transport.Send([]byte(`{"method":"log.subscribe"}`)))

	recvDone := make(chan []byte, 1)
	go func() {
		record, err := transport.Recv()
		require.NoError(t, err)
		recvDone <- record
	}()

	time.Sleep(20 * time.Millisecond)
	require.NoError(t, transport.Send([]byte(`{"method":"log.unsubscribe"}`)))

	select {
	case <-serverGotUnsubscribe:
	case <-time.After(2 * time.Second):
		t.Fatal("server never observed unsubscribe frame")
	}

	select {
	case record := <-recvDone:
		assert.Equal(t, `{"id":9}`, string(record))
	case <-time.After(2 * time.Second):
		t.Fatal("Recv never returned")
	}
}
