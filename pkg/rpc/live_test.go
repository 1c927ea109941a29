package rpc

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unrealircd/rpc-go/pkg/model"
)

// fakeLiveTransport is an in-memory transport.LiveTransport: Send appends
// to a log the test can inspect, Recv blocks on a channel the test feeds
// or closes to simulate the peer hanging up.
type fakeLiveTransport struct {
	mu   sync.Mutex
	sent []string

	frames chan []byte
	opened bool
	closed bool
}

func newFakeLiveTransport() *fakeLiveTransport {
	return &fakeLiveTransport{frames: make(chan []byte, 8)}
}

func (f *fakeLiveTransport) Open(ctx context.Context) error {
	f.opened = true
	return nil
}

func (f *fakeLiveTransport) Send(frame []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, string(frame))
	return nil
}

func (f *fakeLiveTransport) Recv() ([]byte, error) {
	frame, ok := <-f.frames
	if !ok {
		<-make(chan struct{}) // block forever; cancellation is what ends the test
	}
	return frame, nil
}

func (f *fakeLiveTransport) Close() error {
	f.closed = true
	return nil
}

func (f *fakeLiveTransport) methodsSent() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.sent))
	for _, raw := range f.sent {
		var req struct {
			Method string `json:"method"`
		}
		_ = json.Unmarshal([]byte(raw), &req)
		out = append(out, req.Method)
	}
	return out
}

// S5: after Unsubscribe, the callback is invoked exactly once more (the
// synthetic normal-closure frame) and never again.
func TestLiveConnection_UnsubscribeDeliversExactlyOneMoreCallback(t *testing.T) {
	ft := newFakeLiveTransport()
	lc := newLiveConnection(ft)

	var mu sync.Mutex
	var received []model.LiveRPCResult
	done := make(chan struct{})

	go func() {
		_ = lc.Subscribe(context.Background(), nil, func(r model.LiveRPCResult) {
			mu.Lock()
			received = append(received, r)
			mu.Unlock()
		})
		close(done)
	}()

	// give Subscribe time to open, send log.subscribe and start its recv loop
	time.Sleep(20 * time.Millisecond)

	require.NoError(t, lc.Unsubscribe())

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Subscribe did not return after Unsubscribe")
	}

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, received, 1)
	assert.True(t, received[0].Error.IsSuccess())
	assert.Equal(t, true, received[0].Result)

	sentMethods := ft.methodsSent()
	assert.Contains(t, sentMethods, "log.subscribe")
	assert.Contains(t, sentMethods, "log.unsubscribe")
	assert.Contains(t, sentMethods, "log.send")
}

func TestLiveConnection_DeliversDecodedFramesWhileStreaming(t *testing.T) {
	ft := newFakeLiveTransport()
	lc := newLiveConnection(ft)

	var mu sync.Mutex
	var received []model.LiveRPCResult
	done := make(chan struct{})

	go func() {
		_ = lc.Subscribe(context.Background(), []string{"all"}, func(r model.LiveRPCResult) {
			mu.Lock()
			received = append(received, r)
			mu.Unlock()
		})
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	ft.frames <- []byte(`{"jsonrpc":"2.0","method":"log.send","result":{"msg":"hello"}}`)
	time.Sleep(20 * time.Millisecond)

	require.NoError(t, lc.Unsubscribe())
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Subscribe did not return after Unsubscribe")
	}

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, received, 2)
	assert.Equal(t, "log.send", received[0].Method)
	assert.True(t, received[1].Result == true)
}
