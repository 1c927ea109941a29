package model

import "github.com/unrealircd/rpc-go/pkg/rpcerrors"

// ChannelBanEntry is one entry in a channel's bans, ban_exemptions or
// invite_exceptions sequence.
type ChannelBanEntry struct {
	Name  string `json:"name"`
	SetBy string `json:"set_by"`
	SetAt string `json:"set_at"`
}

func decodeChannelBanEntries(v any) []ChannelBanEntry {
	s := asSlice(v)
	out := make([]ChannelBanEntry, 0, len(s))
	for _, e := range s {
		m := asMap(e)
		out = append(out, ChannelBanEntry{
			Name:  asString(field(m, "name")),
			SetBy: asString(field(m, "set_by")),
			SetAt: asString(field(m, "set_at")),
		})
	}
	return out
}

// ChannelMember is one entry in a channel's members sequence. The
// user/tls/geoip sub-records are populated only when object_detail_level
// is at least 3.
type ChannelMember struct {
	Name  string  `json:"name"`
	Level string  `json:"level"`
	User  *User   `json:"user,omitempty"`
	TLS   *TLSInfo `json:"tls,omitempty"`
	Geoip *GeoIP  `json:"geoip,omitempty"`
}

func decodeChannelMembers(v any) []ChannelMember {
	s := asSlice(v)
	out := make([]ChannelMember, 0, len(s))
	for _, e := range s {
		m := asMap(e)
		cm := ChannelMember{
			Name:  asString(field(m, "name")),
			Level: asString(field(m, "level")),
		}
		if u, ok := field(m, "user").(map[string]any); ok {
			decoded := DecodeUser(u)
			cm.User = &decoded
		}
		if t, ok := field(m, "tls").(map[string]any); ok {
			decoded := decodeTLSInfo(t)
			cm.TLS = &decoded
		}
		if g, ok := field(m, "geoip").(map[string]any); ok {
			decoded := decodeGeoIP(g)
			cm.Geoip = &decoded
		}
		out = append(out, cm)
	}
	return out
}

// ChannelTopic is a channel's topic metadata.
type ChannelTopic struct {
	Text  string `json:"topic"`
	SetBy string `json:"topic_set_by"`
	SetAt string `json:"topic_set_at"`
}

func decodeChannelTopic(m map[string]any) ChannelTopic {
	return ChannelTopic{
		Text:  asString(field(m, "topic")),
		SetBy: asString(field(m, "topic_set_by")),
		SetAt: asString(field(m, "topic_set_at")),
	}
}

// Channel is a channel entry: name, creation time, user count, topic
// metadata, mode string, and the four parallel sequences bans,
// ban_exemptions, invite_exceptions and members.
type Channel struct {
	Name             string
	CreationTime     string
	UserCount        int
	Topic            ChannelTopic
	Mode             string
	ModeLocked       string
	Bans             []ChannelBanEntry
	BanExemptions    []ChannelBanEntry
	InviteExceptions []ChannelBanEntry
	Members          []ChannelMember
	Error            rpcerrors.RPCError
}

// DecodeChannel decodes a single channel object. The four sequence fields
// are always non-nil, even on a channel with no bans or members, per the
// core spec's S3 scenario.
func DecodeChannel(v any) Channel {
	m := asMap(v)
	return Channel{
		Name:             asString(field(m, "name")),
		CreationTime:     asString(field(m, "creation_time")),
		UserCount:        asInt(field(m, "num_users")),
		Topic:            decodeChannelTopic(m),
		Mode:             asString(field(m, "modes")),
		ModeLocked:       asString(field(m, "mlock")),
		Bans:             decodeChannelBanEntries(field(m, "bans")),
		BanExemptions:    decodeChannelBanEntries(field(m, "ban_exemptions")),
		InviteExceptions: decodeChannelBanEntries(field(m, "invite_exceptions")),
		Members:          decodeChannelMembers(field(m, "members")),
	}
}

// DecodeChannels decodes a sequence of channel objects, returning an empty
// (never nil) slice on an empty or missing input.
func DecodeChannels(v any) []Channel {
	s := asSlice(v)
	out := make([]Channel, 0, len(s))
	for _, e := range s {
		out = append(out, DecodeChannel(e))
	}
	return out
}
