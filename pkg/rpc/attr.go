package rpc

// Attr is a read-only, recursive attribute-style view over a decoded
// JSON-RPC response map. It exists alongside the typed facades so a caller
// can reach a field the typed model doesn't yet cover, grounded on the
// original Python source's SimpleNamespace-based response_np and this
// module's design note on keeping both a typed record and a raw-result
// handle (§9).
type Attr struct {
	value any
}

// NewAttr wraps v (typically a map[string]any decoded from a response
// body) in an Attr.
func NewAttr(v any) Attr {
	return Attr{value: v}
}

// Get walks path through nested maps, returning the value at the end of
// the path or nil if any segment is absent or not itself a map.
func (a Attr) Get(path ...string) any {
	cur := a.value
	for _, key := range path {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		next, present := m[key]
		if !present {
			return nil
		}
		cur = next
	}
	return cur
}

// String returns Get(path...) coerced to a string, or "" if absent.
func (a Attr) String(path ...string) string {
	s, _ := a.Get(path...).(string)
	return s
}

// Raw returns the wrapped value unmodified.
func (a Attr) Raw() any {
	return a.value
}
