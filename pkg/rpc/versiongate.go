package rpc

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// version is a parsed "X.Y.Z" UnrealIRCd release number.
type version struct {
	major, minor, patch int
}

func (v version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.major, v.minor, v.patch)
}

// less reports whether v is strictly older than other.
func (v version) less(other version) bool {
	if v.major != other.major {
		return v.major < other.major
	}
	if v.minor != other.minor {
		return v.minor < other.minor
	}
	return v.patch < other.patch
}

var softwarePattern = regexp.MustCompile(`UnrealIRCd-(\d+)\.(\d+)\.(\d+)`)

// parseVersion extracts the X.Y.Z triple from a "software" feature string
// such as "UnrealIRCd-6.1.8".
func parseVersion(software string) (version, bool) {
	m := softwarePattern.FindStringSubmatch(software)
	if m == nil {
		return version{}, false
	}
	major, _ := strconv.Atoi(m[1])
	minor, _ := strconv.Atoi(m[2])
	patch, _ := strconv.Atoi(m[3])
	return version{major: major, minor: minor, patch: patch}, true
}

// minimumVersions maps a gated namespace or fully-qualified method name to
// the minimum server version it requires, per §6's version gate table.
var minimumVersions = map[string]version{
	"message":         {6, 2, 2},
	"connthrottle":    {6, 2, 2},
	"security_group":  {6, 2, 2},
	"log.subscribe":   {6, 1, 8},
	"log.send":        {6, 1, 8},
	"whowas":          {6, 1, 0},
	"rpc.set_issuer":  {6, 1, 0},
	"rpc.add_timer":   {6, 1, 0},
	"rpc.del_timer":   {6, 1, 0},
}

// versionMinimum reports the minimum version gating method, checking the
// fully-qualified method name first and falling back to its namespace.
func versionMinimum(method string) (version, bool) {
	if v, ok := minimumVersions[method]; ok {
		return v, true
	}
	if v, ok := minimumVersions[namespaceOf(method)]; ok {
		return v, true
	}
	return version{}, false
}

func namespaceOf(method string) string {
	if i := strings.IndexByte(method, '.'); i >= 0 {
		return method[:i]
	}
	return method
}
