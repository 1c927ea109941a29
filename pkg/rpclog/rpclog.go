// Package rpclog provides the single named, non-propagating logger used by
// every connection in this module. It wraps github.com/charmbracelet/log,
// the logging library this repository's teacher corpus uses throughout
// pkg/catalog, pkg/client and pkg/a2a.
package rpclog

import (
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/log"
)

var (
	mu      sync.Mutex
	loggers = map[string]*log.Logger{}
)

// New creates (or replaces) the named logger with a single stream handler
// writing to out (os.Stderr when out is nil) at the given level. Calling
// New again with the same name discards the previous logger instead of
// stacking a second handler behind it, so re-running setup in the same
// process never duplicates output lines.
func New(name string, level log.Level, out io.Writer) *log.Logger {
	if out == nil {
		out = os.Stderr
	}

	mu.Lock()
	defer mu.Unlock()

	l := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          name,
	})
	l.SetLevel(level)

	// Replace, never stack: this is the "remove any prior handler for the
	// same logger name" guard the spec requires.
	loggers[name] = l
	return l
}

// Named returns a child logger scoped to a single connection instance. It
// does not propagate to any parent logger beyond the one created by New —
// each connection's logger is independent, matching the non-propagating
// requirement.
func Named(base *log.Logger, connID string) *log.Logger {
	return base.With("conn", connID)
}
