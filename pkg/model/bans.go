package model

import "github.com/unrealircd/rpc-go/pkg/rpcerrors"

// BanEnvelope is the common envelope every ban-list-shaped entry shares:
// NameBan, ServerBan, ServerBanException and Spamfilter all embed it.
type BanEnvelope struct {
	Type           string `json:"type"`
	TypeString     string `json:"type_string"`
	SetBy          string `json:"set_by"`
	SetAt          string `json:"set_at"`
	ExpireAt       string `json:"expire_at"`
	DurationString string `json:"duration_string"`
	SetInConfig    bool   `json:"set_in_config"`
	Reason         string `json:"reason"`
}

func decodeBanEnvelope(m map[string]any) BanEnvelope {
	return BanEnvelope{
		Type:           asString(field(m, "type")),
		TypeString:     asString(field(m, "type_string")),
		SetBy:          asString(field(m, "set_by")),
		SetAt:          asString(field(m, "set_at")),
		ExpireAt:       asString(field(m, "expire_at")),
		DurationString: asString(field(m, "duration_string")),
		SetInConfig:    asBool(field(m, "set_in_config")),
		Reason:         asString(field(m, "reason")),
	}
}

// NameBan is a qline/name-ban entry.
type NameBan struct {
	BanEnvelope
	Name  string `json:"name"`
	Error rpcerrors.RPCError `json:"-"`
}

// DecodeNameBan decodes a single name_ban entry.
func DecodeNameBan(v any) NameBan {
	m := asMap(v)
	return NameBan{BanEnvelope: decodeBanEnvelope(m), Name: asString(field(m, "name"))}
}

// DecodeNameBans decodes a sequence of name_ban entries, returning an empty
// (never nil) slice when there are none.
func DecodeNameBans(v any) []NameBan {
	s := asSlice(v)
	out := make([]NameBan, 0, len(s))
	for _, e := range s {
		out = append(out, DecodeNameBan(e))
	}
	return out
}

// ServerBan is a gline/kline/zline-style server ban entry.
type ServerBan struct {
	BanEnvelope
	Name  string `json:"name"`
	Error rpcerrors.RPCError `json:"-"`
}

// DecodeServerBan decodes a single server_ban entry.
func DecodeServerBan(v any) ServerBan {
	m := asMap(v)
	return ServerBan{BanEnvelope: decodeBanEnvelope(m), Name: asString(field(m, "name"))}
}

// DecodeServerBans decodes a sequence of server_ban entries.
func DecodeServerBans(v any) []ServerBan {
	s := asSlice(v)
	out := make([]ServerBan, 0, len(s))
	for _, e := range s {
		out = append(out, DecodeServerBan(e))
	}
	return out
}

// ServerBanException is an exception ("E-line") entry.
type ServerBanException struct {
	BanEnvelope
	Name  string `json:"name"`
	Error rpcerrors.RPCError `json:"-"`
}

// DecodeServerBanException decodes a single server_ban_exception entry.
func DecodeServerBanException(v any) ServerBanException {
	m := asMap(v)
	return ServerBanException{BanEnvelope: decodeBanEnvelope(m), Name: asString(field(m, "name"))}
}

// DecodeServerBanExceptions decodes a sequence of server_ban_exception
// entries.
func DecodeServerBanExceptions(v any) []ServerBanException {
	s := asSlice(v)
	out := make([]ServerBanException, 0, len(s))
	for _, e := range s {
		out = append(out, DecodeServerBanException(e))
	}
	return out
}

// SpamfilterHit is the nested hit-counter record Spamfilter.py keeps as a
// dict rather than two flat fields.
type SpamfilterHit struct {
	Count   int    `json:"count"`
	LastHit string `json:"last_hit"`
}

func decodeSpamfilterHit(v any) SpamfilterHit {
	m := asMap(v)
	return SpamfilterHit{Count: asInt(field(m, "count")), LastHit: asString(field(m, "last_hit"))}
}

// Spamfilter is a spamfilter entry: a ban envelope plus the match
// configuration (simple or regex) and target/action fields.
type Spamfilter struct {
	BanEnvelope
	MatchType         string        `json:"match_type"`
	MatchString       string        `json:"match_string"`
	BanAction         string        `json:"ban_action"`
	BanDuration       string        `json:"ban_duration"`
	SpamfilterTargets string        `json:"spamfilter_targets"`
	Hits              SpamfilterHit `json:"hits"`
	Error             rpcerrors.RPCError `json:"-"`
}

// DecodeSpamfilter decodes a single spamfilter entry.
func DecodeSpamfilter(v any) Spamfilter {
	m := asMap(v)
	return Spamfilter{
		BanEnvelope:       decodeBanEnvelope(m),
		MatchType:         asString(field(m, "match_type")),
		MatchString:       asString(field(m, "match_string")),
		BanAction:         asString(field(m, "ban_action")),
		BanDuration:       asString(field(m, "ban_duration")),
		SpamfilterTargets: asString(field(m, "spamfilter_targets")),
		Hits:              decodeSpamfilterHit(field(m, "hits")),
	}
}

// DecodeSpamfilters decodes a sequence of spamfilter entries.
func DecodeSpamfilters(v any) []Spamfilter {
	s := asSlice(v)
	out := make([]Spamfilter, 0, len(s))
	for _, e := range s {
		out = append(out, DecodeSpamfilter(e))
	}
	return out
}
