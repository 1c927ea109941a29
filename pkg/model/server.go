package model

import "github.com/unrealircd/rpc-go/pkg/rpcerrors"

// ServerFeatures is the nested feature/version block every server object
// carries; Software is the string the version gate (pkg/rpc/versiongate.go)
// parses as "UnrealIRCd-X.Y.Z".
type ServerFeatures struct {
	Software        string   `json:"software"`
	SoftwareVersion string   `json:"software_version"`
	Protocol        int      `json:"protocol"`
	ModuleList      []string `json:"modulelist"`
}

func decodeServerFeatures(v any) ServerFeatures {
	m := asMap(v)
	return ServerFeatures{
		Software:        asString(field(m, "software")),
		SoftwareVersion: asString(field(m, "software_version")),
		Protocol:        asInt(field(m, "protocol")),
		ModuleList:      asStringSlice(field(m, "modulelist")),
	}
}

// Server is a server entry as returned by server.list/server.get, and the
// nested record a ClientServer carries for a server-type Client.
type Server struct {
	Name      string         `json:"name"`
	Info      string         `json:"info"`
	Hops      int            `json:"hops"`
	BootTime  string         `json:"boot_time"`
	NumUsers  int            `json:"num_users"`
	Features  ServerFeatures     `json:"features"`
	UplinkID  string             `json:"uplink"`
	Error     rpcerrors.RPCError `json:"-"`
}

// DecodeServer decodes a "server" object from a raw response map.
func DecodeServer(v any) Server {
	m := asMap(v)
	return Server{
		Name:     asString(field(m, "name")),
		Info:     asString(field(m, "info")),
		Hops:     asInt(field(m, "hops")),
		BootTime: asString(field(m, "boot_time")),
		NumUsers: asInt(field(m, "num_users")),
		Features: decodeServerFeatures(field(m, "features")),
		UplinkID: asString(field(m, "uplink")),
	}
}

// RehashResult is the result of server.rehash. Some server topologies
// return a nested object describing what was reloaded; older ones return a
// bare boolean. Both shapes decode into this type: OK reports success
// either way, and Log/Errors are only populated when the nested shape was
// sent.
type RehashResult struct {
	Success bool               `json:"success"`
	Log     []string           `json:"log"`
	Errors  []string           `json:"errors"`
	Error   rpcerrors.RPCError `json:"-"`
}

// OK reports whether the rehash succeeded, regardless of which of the two
// documented response shapes the server used.
func (r RehashResult) OK() bool { return r.Success }

// DecodeRehashResult accepts either a bare boolean or the nested object
// shape server.rehash may return.
func DecodeRehashResult(v any) RehashResult {
	if b, ok := v.(bool); ok {
		return RehashResult{Success: b}
	}
	m := asMap(v)
	return RehashResult{
		Success: asBool(field(m, "success")),
		Log:     asStringSlice(field(m, "log")),
		Errors:  asStringSlice(field(m, "errors")),
	}
}

// ClientServer is the server-type payload nested under a Client when that
// Client represents a server rather than an end-user connection.
type ClientServer struct {
	Server Server `json:"server"`
}

func decodeClientServer(v any) ClientServer {
	return ClientServer{Server: DecodeServer(v)}
}
