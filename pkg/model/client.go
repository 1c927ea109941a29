package model

import "github.com/unrealircd/rpc-go/pkg/rpcerrors"

// Client is a connected entity on the IRC network: identity, network ports
// and timestamps, plus the geoip/tls sub-records and either a User (for
// end-users) or a ClientServer (for servers). Error is populated by
// single-record facade calls (e.g. user.get) on failure, per invariant (iv)
// — the zero Client plus a non-success Error.
type Client struct {
	Name           string             `json:"name"`
	ID             string             `json:"id"`
	Hostname       string             `json:"hostname"`
	IP             string             `json:"ip"`
	Details        string             `json:"details"`
	LocalPort      int                `json:"local_port"`
	RemotePort     int                `json:"remote_port"`
	ConnectedSince string             `json:"connected_since"`
	Idle           int                `json:"idle_since"`
	Reputation     int                `json:"reputation"`
	Shunned        bool               `json:"shunned"`
	Geoip          GeoIP              `json:"geoip"`
	TLS            TLSInfo            `json:"tls"`
	User           *User              `json:"user,omitempty"`
	Server         *ClientServer      `json:"server,omitempty"`
	Error          rpcerrors.RPCError `json:"-"`
}

// DecodeClient decodes a "client" object from a raw response map. Per
// invariant (iii), a partial or erroring response still yields a Client
// with every field at its zero value rather than a nil dereference; the
// User/Server pointers are populated only when the corresponding
// sub-object is present, matching the "either user or server" shape.
func DecodeClient(v any) Client {
	m := asMap(v)

	c := Client{
		Name:           asString(field(m, "name")),
		ID:             asString(field(m, "id")),
		Hostname:       asString(field(m, "hostname")),
		IP:             asString(field(m, "ip")),
		Details:        asString(field(m, "details")),
		LocalPort:      asInt(field(m, "local_port")),
		RemotePort:     asInt(field(m, "remote_port")),
		ConnectedSince: asString(field(m, "connected_since")),
		Idle:           asInt(field(m, "idle_since")),
		Reputation:     asInt(field(m, "reputation")),
		Shunned:        asBool(field(m, "shunned")),
		Geoip:          decodeGeoIP(field(m, "geoip")),
		TLS:            decodeTLSInfo(field(m, "tls")),
	}

	if u, ok := field(m, "user").(map[string]any); ok {
		decoded := DecodeUser(u)
		c.User = &decoded
	}
	if s, ok := field(m, "server").(map[string]any); ok {
		decoded := decodeClientServer(s)
		c.Server = &decoded
	}

	return c
}

// DecodeClients decodes the sequence user.list/server.list return.
func DecodeClients(v any) []Client {
	s := asSlice(v)
	out := make([]Client, 0, len(s))
	for _, e := range s {
		out = append(out, DecodeClient(e))
	}
	return out
}
