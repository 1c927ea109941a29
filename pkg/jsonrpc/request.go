package jsonrpc

import "encoding/json"

// Request is a single, non-batched JSON-RPC 2.0 request envelope. params is
// always included, defaulting to an empty object when unspecified, per the
// core spec's request builder contract.
type Request struct {
	Envelope
	Method string         `json:"method"`
	Params map[string]any `json:"params"`
}

// NewRequest builds a request envelope for method with the given params and
// correlation id. A nil params map is normalized to an empty map so the
// marshaled JSON always carries a "params" object, never null.
func NewRequest(method string, params map[string]any, id int) Request {
	if params == nil {
		params = map[string]any{}
	}
	return Request{
		Envelope: Envelope{JSONRPC: "2.0", ID: id},
		Method:   method,
		Params:   params,
	}
}

// Marshal serializes the request as compact JSON with no trailing
// whitespace, matching the wire format documented for the transport layer.
func (r Request) Marshal() ([]byte, error) {
	return json.Marshal(r)
}
