// Package transport implements the five wire-level mechanisms this client
// speaks to an UnrealIRCd daemon: three synchronous request/response
// variants (HTTPS, a TLS raw socket, a UNIX-domain stream socket) and two
// long-lived streaming variants (WebSocket, UNIX stream) used for the live
// log subscription.
//
// The synchronous variants are grounded on this repository's own earlier
// pkg/jsonrpc/client.go (the *http.Client + context.Context + Basic-auth
// shape); the streaming variants are grounded on pkg/sse/client.go's
// reconnect-loop shape, generalized from "reconnect on EOF" to "run until
// the caller cancels."
package transport

import "context"

// Tag names a transport the factories in pkg/rpc can build.
type Tag string

const (
	TagHTTP       Tag = "http"
	TagTLSSocket  Tag = "tlssocket"
	TagUnixSocket Tag = "unixsocket"
)

// Transport is the contract every synchronous variant implements: given a
// serialized JSON-RPC envelope, return the serialized reply body. No
// variant retries or pools connections; each call opens and closes its own
// connection. A non-nil error means the round-trip failed; the dispatcher
// promotes it into a transport error (code -1). A nil error with a nil or
// empty body means the round-trip completed but returned nothing to parse
// (code -2).
type Transport interface {
	Send(ctx context.Context, payload []byte) ([]byte, error)
}

// LiveTransport is the contract both streaming variants implement: connect,
// exchange an initial subscribe frame, then deliver every subsequent frame
// to Recv until the caller calls Close. Unsubscribe is handled by the
// caller (pkg/rpc/live.go) issuing a Send while another goroutine is
// blocked in Recv. Both variants carry the unsubscribe request over the
// same connection that Recv reads from; see DESIGN.md's "open question"
// resolution for the UNIX case.
type LiveTransport interface {
	Open(ctx context.Context) error
	Send(frame []byte) error
	Recv() ([]byte, error)
	Close() error
}
