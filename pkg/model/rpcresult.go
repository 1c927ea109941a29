package model

import "github.com/unrealircd/rpc-go/pkg/rpcerrors"

// RPCResult wraps every synchronous reply. Exactly one of {Result, Error}
// is meaningful, but both fields are always present with default values so
// the shape stays uniform whether the call succeeded or failed.
type RPCResult struct {
	JSONRPC string
	Method  string
	ID      int
	Error   rpcerrors.RPCError
	Result  any
}

// LiveRPCResult is the streamed counterpart of RPCResult: Result carries a
// decoded log record, or the boolean true once a subscription has been
// activated.
type LiveRPCResult struct {
	JSONRPC string
	Method  string
	ID      int
	Error   rpcerrors.RPCError
	Result  any
}
