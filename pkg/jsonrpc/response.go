package jsonrpc

import "encoding/json"

// WireError is the {code, message} shape a server sends on failure.
type WireError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Response is the raw decoded shape of a synchronous reply, before the
// dispatcher promotes it into a model.RPCResult. Result is left as
// json.RawMessage because the dispatcher decodes it into a generic
// map[string]any itself (see pkg/rpc/dispatcher.go), not into a Go struct
// at this layer.
type Response struct {
	Envelope
	Method string          `json:"method,omitempty"`
	Result json.RawMessage `json:"result,omitempty"`
	Error  *WireError      `json:"error,omitempty"`
}

// ParseResponse decodes a raw JSON body into a Response.
func ParseResponse(body []byte) (Response, error) {
	var resp Response
	if err := json.Unmarshal(body, &resp); err != nil {
		return Response{}, err
	}
	return resp, nil
}
