package model

import "github.com/unrealircd/rpc-go/pkg/rpcerrors"

// UserStats is the users block of a stats snapshot, with an optional
// per-country breakdown.
type UserStats struct {
	Total      int            `json:"total"`
	Invisible  int            `json:"invisible"`
	Operators  int            `json:"operators"`
	Unknown    int            `json:"unknown"`
	PerCountry map[string]int `json:"country,omitempty"`
}

func decodeUserStats(v any) UserStats {
	m := asMap(v)
	us := UserStats{
		Total:     asInt(field(m, "total")),
		Invisible: asInt(field(m, "invisible")),
		Operators: asInt(field(m, "operators")),
		Unknown:   asInt(field(m, "unknown")),
	}
	if cm, ok := field(m, "country").(map[string]any); ok {
		us.PerCountry = make(map[string]int, len(cm))
		for k, v := range cm {
			us.PerCountry[k] = asInt(v)
		}
	}
	return us
}

// BanTotals counts ban-list entries by kind.
type BanTotals struct {
	ServerBans          int `json:"server_bans"`
	ServerBanExceptions int `json:"server_ban_exceptions"`
	NameBans            int `json:"name_bans"`
	Spamfilters         int `json:"spamfilters"`
}

func decodeBanTotals(v any) BanTotals {
	m := asMap(v)
	return BanTotals{
		ServerBans:          asInt(field(m, "server_bans")),
		ServerBanExceptions: asInt(field(m, "server_ban_exceptions")),
		NameBans:            asInt(field(m, "name_bans")),
		Spamfilters:         asInt(field(m, "spamfilters")),
	}
}

// Stats is a grouped snapshot of server, user, channel and ban totals.
type Stats struct {
	Servers  int
	Users    UserStats
	Channels int
	Bans     BanTotals
	Error    rpcerrors.RPCError
}

// DecodeStats decodes a stats.get result.
func DecodeStats(v any) Stats {
	m := asMap(v)
	servers := asMap(field(m, "server"))
	channels := asMap(field(m, "channels"))
	return Stats{
		Servers:  asInt(field(servers, "total")),
		Users:    decodeUserStats(field(m, "users")),
		Channels: asInt(field(channels, "total")),
		Bans:     decodeBanTotals(field(m, "bans")),
	}
}
