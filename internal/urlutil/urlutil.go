// Package urlutil validates the two connection addressing schemes this
// module accepts: an "https?://host:port/endpoint" URL for the HTTPS and
// TLS raw-socket transports, and a filesystem path for the UNIX-domain
// socket transports.
package urlutil

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
)

var urlPattern = regexp.MustCompile(`^(https?)://([A-Za-z0-9.\-]+):(\d+)/(.+)$`)

// ParsedURL is the result of parsing a "scheme://host:port/endpoint" string.
type ParsedURL struct {
	Scheme   string
	Host     string
	Port     int
	Endpoint string
}

// ParseURL validates raw against "^https?://([A-Za-z0-9.\-]+):(\d+)/(.+)$"
// and returns its components. Any other shape is an invalid-URL error.
func ParseURL(raw string) (ParsedURL, error) {
	m := urlPattern.FindStringSubmatch(raw)
	if m == nil {
		return ParsedURL{}, fmt.Errorf("urlutil: invalid URL %q: expected https?://host:port/endpoint", raw)
	}

	port, err := strconv.Atoi(m[3])
	if err != nil {
		return ParsedURL{}, fmt.Errorf("urlutil: invalid URL %q: port %q is not numeric", raw, m[3])
	}

	return ParsedURL{
		Scheme:   m[1],
		Host:     m[2],
		Port:     port,
		Endpoint: m[4],
	}, nil
}

// CheckSocketPath verifies that path exists and is a UNIX socket; any
// other kind of file, or a directory, is rejected. Setup-time
// problems like a missing socket file are allowed to surface as a plain Go
// error, since they are programmer errors rather than runtime conditions.
func CheckSocketPath(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("urlutil: socket path %q: %w", path, err)
	}
	if info.Mode()&os.ModeSocket == 0 {
		return fmt.Errorf("urlutil: %q is not a UNIX socket", path)
	}
	return nil
}
