package jsonrpc

import (
	"math/rand"
	"time"
)

// IDGenerator produces a correlation id for a new request. Tests may
// substitute a deterministic generator; connections default to NextID.
type IDGenerator func() int

// NextID returns unix_seconds() + a random value in [1, 6000], the default
// correlation id scheme documented for the request builder.
func NextID() int {
	return int(time.Now().Unix()) + 1 + rand.Intn(6000)
}
