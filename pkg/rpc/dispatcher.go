package rpc

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/unrealircd/rpc-go/pkg/jsonrpc"
	"github.com/unrealircd/rpc-go/pkg/model"
	"github.com/unrealircd/rpc-go/pkg/rpcerrors"
)

// queryResult is what the dispatcher hands back to a facade: the decoded
// RPCResult plus the raw response map and an attribute-style view of it,
// per §4.3 step 3 and §9's "keep both a typed record and a raw-result
// handle" design note.
type queryResult struct {
	RPCResult model.RPCResult
	Raw       map[string]any
	Attr      Attr
}

// query is the dispatcher's single entry point (§4.3). It never returns a
// Go error itself: every failure mode (version gate, transport, empty
// reply, decode failure, server-reported error) is represented inside the
// returned RPCResult, so every facade method can share one
// inspect-then-decode shape, grounded on `pkg/jsonrpc/server.go`'s
// dispatch-by-method-name pattern and `pkg/jsonrpc/client.go`'s
// {result,error} decode.
func (c *Connection) query(ctx context.Context, method string, params map[string]any) queryResult {
	if minVersion, gated := versionMinimum(method); gated {
		if current, known := c.softwareVersion(); known && current.less(minVersion) {
			err := rpcerrors.Transport(
				"object %s not available for this ircd version; must be %s or higher",
				method, minVersion.String())
			c.setLastError(err)
			c.logger.Error("version gate rejected method", "method", method, "error", err.Message)
			return queryResult{RPCResult: model.RPCResult{JSONRPC: "2.0", Method: method, Error: err}}
		}
	}

	id := c.nextID()
	req := jsonrpc.NewRequest(method, params, id)
	body, err := req.Marshal()
	if err != nil {
		rerr := rpcerrors.Internal(fmt.Errorf("encode request: %w", err))
		c.setLastError(rerr)
		c.logger.Error("failed to encode request", "method", method, "error", err)
		return queryResult{RPCResult: model.RPCResult{JSONRPC: "2.0", Method: method, ID: id, Error: rerr}}
	}

	reply, sendErr := c.transport.Send(ctx, body)
	if sendErr != nil || len(reply) == 0 {
		var rerr rpcerrors.RPCError
		if sendErr != nil {
			rerr = rpcerrors.Transport("%s", sendErr.Error())
			c.logger.Error("transport error", "method", method, "error", sendErr)
		} else {
			rerr = rpcerrors.EmptyResponse()
			c.logger.Error("empty response", "method", method)
		}
		c.setLastError(rerr)
		return queryResult{RPCResult: model.RPCResult{JSONRPC: "2.0", Method: method, ID: id, Error: rerr}}
	}

	var raw map[string]any
	if err := json.Unmarshal(reply, &raw); err != nil {
		rerr := rpcerrors.Internal(fmt.Errorf("decode response: %w", err))
		c.setLastError(rerr)
		c.logger.Error("failed to decode response", "method", method, "error", err)
		return queryResult{RPCResult: model.RPCResult{JSONRPC: "2.0", Method: method, ID: id, Error: rerr}}
	}

	parsed, err := jsonrpc.ParseResponse(reply)
	if err != nil {
		rerr := rpcerrors.Internal(fmt.Errorf("decode envelope: %w", err))
		c.setLastError(rerr)
		return queryResult{RPCResult: model.RPCResult{JSONRPC: "2.0", Method: method, ID: id, Error: rerr}, Raw: raw, Attr: NewAttr(raw)}
	}

	result := model.RPCResult{JSONRPC: "2.0", Method: method, ID: id, Error: rpcerrors.Success}
	if parsed.Error != nil {
		result.Error = rpcerrors.RPCError{Code: parsed.Error.Code, Message: parsed.Error.Message}
		c.setLastError(result.Error)
		c.logger.Error("server reported error", "method", method, "code", parsed.Error.Code, "message", parsed.Error.Message)
	} else {
		var decoded any
		if len(parsed.Result) > 0 {
			_ = json.Unmarshal(parsed.Result, &decoded)
		}
		result.Result = decoded
		c.setLastError(rpcerrors.Success)
	}

	return queryResult{RPCResult: result, Raw: raw, Attr: NewAttr(raw)}
}

// resultField extracts a nested key from a decoded JSON-RPC result value,
// mirroring the original source's response['result']['<entity>'] indexing
// (e.g. "client", "server", "tkl", "list", "methods").
func resultField(v any, key string) any {
	m, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	return m[key]
}
