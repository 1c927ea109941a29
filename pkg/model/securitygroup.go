package model

import "github.com/unrealircd/rpc-go/pkg/rpcerrors"

// SecurityGroupCriterion is one named matching rule inside a security
// group's criteria set (e.g. "webirc", "identified", "reputation-score").
type SecurityGroupCriterion struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

func decodeSecurityGroupCriteria(v any) []SecurityGroupCriterion {
	s := asSlice(v)
	out := make([]SecurityGroupCriterion, 0, len(s))
	for _, e := range s {
		m := asMap(e)
		out = append(out, SecurityGroupCriterion{
			Name:  asString(field(m, "name")),
			Value: asString(field(m, "value")),
		})
	}
	return out
}

// SecurityGroup is a named set of matching criteria (e.g. "known-users").
type SecurityGroup struct {
	Name     string
	Criteria []SecurityGroupCriterion
	Error    rpcerrors.RPCError
}

// DecodeSecurityGroup decodes a single security_group entry.
func DecodeSecurityGroup(v any) SecurityGroup {
	m := asMap(v)
	return SecurityGroup{
		Name:     asString(field(m, "name")),
		Criteria: decodeSecurityGroupCriteria(field(m, "criteria")),
	}
}

// DecodeSecurityGroups decodes the sequence security_group.list() returns.
func DecodeSecurityGroups(v any) []SecurityGroup {
	s := asSlice(v)
	out := make([]SecurityGroup, 0, len(s))
	for _, e := range s {
		out = append(out, DecodeSecurityGroup(e))
	}
	return out
}
