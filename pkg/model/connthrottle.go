package model

import "github.com/unrealircd/rpc-go/pkg/rpcerrors"

// ConnThrottleBucket is one stacking-count threshold's configuration and
// live counters, decoded from Connthrottle.py's nested-dict-keyed-by-count
// shape into a flat sequence.
type ConnThrottleBucket struct {
	StackingCount  int    `json:"stacking_count"`
	Period         string `json:"period"`
	MaxConnections int    `json:"max_connections"`
	CurrentCount   int    `json:"current_count"`
}

func decodeConnThrottleBuckets(v any) []ConnThrottleBucket {
	m := asMap(v)
	out := make([]ConnThrottleBucket, 0, len(m))
	for key, raw := range m {
		bm := asMap(raw)
		out = append(out, ConnThrottleBucket{
			StackingCount:  asInt(field(bm, "stacking_count")),
			Period:         asString(field(bm, "period")),
			MaxConnections: asInt(field(bm, "max_connections")),
			CurrentCount:   asInt(field(bm, "current_count")),
		})
		_ = key
	}
	return out
}

// ConnThrottleLastMinute is the connthrottle module's rolling one-minute
// counter snapshot.
type ConnThrottleLastMinute struct {
	Connections int `json:"connections"`
	Rejected    int `json:"rejected"`
}

func decodeConnThrottleLastMinute(v any) ConnThrottleLastMinute {
	m := asMap(v)
	return ConnThrottleLastMinute{
		Connections: asInt(field(m, "connections")),
		Rejected:    asInt(field(m, "rejected")),
	}
}

// ConnThrottle is the connthrottle module's configuration, counters and
// last-minute statistics.
type ConnThrottle struct {
	Enabled    bool
	Buckets    []ConnThrottleBucket
	LastMinute ConnThrottleLastMinute
	Error      rpcerrors.RPCError
}

// DecodeConnThrottle decodes a connthrottle.status result.
func DecodeConnThrottle(v any) ConnThrottle {
	m := asMap(v)
	return ConnThrottle{
		Enabled:    asBool(field(m, "enabled")),
		Buckets:    decodeConnThrottleBuckets(field(m, "buckets")),
		LastMinute: decodeConnThrottleLastMinute(field(m, "last_minute")),
	}
}
