package model

// RpcInfo describes one exposed JSON-RPC method, as returned by rpc.info().
type RpcInfo struct {
	Name    string `json:"name"`
	Module  string `json:"module"`
	Version string `json:"version"`
}

// DecodeRpcInfo decodes a single rpc.info entry.
func DecodeRpcInfo(v any) RpcInfo {
	m := asMap(v)
	return RpcInfo{
		Name:    asString(field(m, "name")),
		Module:  asString(field(m, "module")),
		Version: asString(field(m, "version")),
	}
}

// DecodeRpcInfos decodes rpc.info's "methods" value, which the server sends
// as an object keyed by method name rather than an array (see
// objects/Rpc.py's "for rpcinfo in rpcinfos" over a dict).
func DecodeRpcInfos(v any) []RpcInfo {
	m := asMap(v)
	out := make([]RpcInfo, 0, len(m))
	for name, e := range m {
		info := DecodeRpcInfo(e)
		if info.Name == "" {
			info.Name = name
		}
		out = append(out, info)
	}
	return out
}
