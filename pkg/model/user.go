package model

// UserChannel is one entry in a User's channel membership sequence: the
// channel name and that user's membership level string (e.g. "o", "+o").
type UserChannel struct {
	Name  string `json:"name"`
	Level string `json:"level"`
}

func decodeUserChannels(v any) []UserChannel {
	s := asSlice(v)
	out := make([]UserChannel, 0, len(s))
	for _, e := range s {
		m := asMap(e)
		out = append(out, UserChannel{
			Name:  asString(field(m, "name")),
			Level: asString(field(m, "level")),
		})
	}
	return out
}

// OperInfo carries the IRC operator attributes of a User, present only when
// the client is opered.
type OperInfo struct {
	OperAccount string `json:"operaccount"`
	OperClass   string `json:"operclass"`
	Snomask     string `json:"snomask"`
}

func decodeOperInfo(v any) OperInfo {
	m := asMap(v)
	return OperInfo{
		OperAccount: asString(field(m, "operaccount")),
		OperClass:   asString(field(m, "operclass")),
		Snomask:     asString(field(m, "snomask")),
	}
}

// User is the end-user sub-record of a Client: username/realname/vhost,
// reputation, the unordered set of security groups the client matches, its
// channel memberships and, when opered, its OperInfo.
type User struct {
	Username        string        `json:"username"`
	Realname        string        `json:"realname"`
	Vhost           string        `json:"vhost"`
	Reputation      int           `json:"reputation"`
	SecurityGroups  []string      `json:"security_groups"`
	Channels        []UserChannel `json:"channels"`
	Oper            OperInfo      `json:"oper"`
}

// DecodeUser decodes a "user" sub-object from a raw response map. Every
// field defaults to its zero value when absent, so a partial response
// never produces a nil-pointer access downstream.
func DecodeUser(v any) User {
	m := asMap(v)
	return User{
		Username:       asString(field(m, "username")),
		Realname:       asString(field(m, "realname")),
		Vhost:          asString(field(m, "vhost")),
		Reputation:     asInt(field(m, "reputation")),
		SecurityGroups: asStringSlice(renamed(m, "security_groups", "security-groups")),
		Channels:       decodeUserChannels(field(m, "channels")),
		Oper:           decodeOperInfo(field(m, "oper")),
	}
}
