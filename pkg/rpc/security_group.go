package rpc

import (
	"context"

	"github.com/unrealircd/rpc-go/pkg/model"
)

// SecurityGroup is the typed facade over the "security_group" namespace,
// grounded on original_source/unrealircd_rpc_py/Security_group.py. Requires
// UnrealIRCd 6.2.2 or later.
type SecurityGroup struct{ conn *Connection }

// List returns every named security group.
func (s SecurityGroup) List(ctx context.Context) []model.SecurityGroup {
	res := s.conn.query(ctx, "security_group.list", nil)
	if !res.RPCResult.Error.IsSuccess() {
		return []model.SecurityGroup{}
	}
	return model.DecodeSecurityGroups(resultField(res.RPCResult.Result, "list"))
}

// Get fetches one security group by name.
func (s SecurityGroup) Get(ctx context.Context, name string) model.SecurityGroup {
	res := s.conn.query(ctx, "security_group.get", map[string]any{"name": name})
	g := model.DecodeSecurityGroup(res.RPCResult.Result)
	g.Error = res.RPCResult.Error
	return g
}
