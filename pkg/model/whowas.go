package model

import "github.com/unrealircd/rpc-go/pkg/rpcerrors"

// WhowasEvent enumerates the closed set of events Whowas.py's source
// decodes, rather than leaving event as a bare string.
type WhowasEvent string

const (
	WhowasConnect    WhowasEvent = "connect"
	WhowasDisconnect WhowasEvent = "disconnect"
	WhowasNickChange WhowasEvent = "nick-change"
)

// Whowas is a historical client record: the same sub-records as Client,
// marked with the event that created the history entry and its logon/logoff
// timestamps.
type Whowas struct {
	Name       string
	Hostname   string
	IP         string
	Geoip      GeoIP
	TLS        TLSInfo
	User       *User
	Event      WhowasEvent
	LogonTime  string
	LogoffTime string
	Error      rpcerrors.RPCError
}

// DecodeWhowas decodes a single whowas.get entry.
func DecodeWhowas(v any) Whowas {
	m := asMap(v)
	w := Whowas{
		Name:       asString(field(m, "name")),
		Hostname:   asString(field(m, "hostname")),
		IP:         asString(field(m, "ip")),
		Geoip:      decodeGeoIP(field(m, "geoip")),
		TLS:        decodeTLSInfo(field(m, "tls")),
		Event:      WhowasEvent(asString(field(m, "event"))),
		LogonTime:  asString(field(m, "logon_time")),
		LogoffTime: asString(field(m, "logoff_time")),
	}
	if u, ok := field(m, "user").(map[string]any); ok {
		decoded := DecodeUser(u)
		w.User = &decoded
	}
	return w
}

// DecodeWhowasList decodes the sequence whowas.get() returns.
func DecodeWhowasList(v any) []Whowas {
	s := asSlice(v)
	out := make([]Whowas, 0, len(s))
	for _, e := range s {
		out = append(out, DecodeWhowas(e))
	}
	return out
}
