package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeUser_SecurityGroupsKeyRename(t *testing.T) {
	raw := map[string]any{
		"username":        "adator",
		"security-groups": []any{"a", "b"},
	}

	u := DecodeUser(raw)

	assert.Equal(t, "adator", u.Username)
	assert.Equal(t, []string{"a", "b"}, u.SecurityGroups)
}

func TestDecodeClient_S2Scenario(t *testing.T) {
	raw := map[string]any{
		"name":     "adator",
		"hostname": "h",
		"id":       "001AAA",
	}

	c := DecodeClient(raw)

	assert.Equal(t, "adator", c.Name)
	assert.Equal(t, "h", c.Hostname)
	assert.Equal(t, "001AAA", c.ID)
	assert.Nil(t, c.User)
	assert.Nil(t, c.Server)
	assert.Equal(t, GeoIP{}, c.Geoip)
	assert.Equal(t, TLSInfo{}, c.TLS)
}

func TestDecodeChannels_S3Scenario(t *testing.T) {
	raw := []any{
		map[string]any{"name": "#a"},
		map[string]any{"name": "#b"},
	}

	channels := DecodeChannels(raw)

	assert.Len(t, channels, 2)
	for _, ch := range channels {
		assert.NotNil(t, ch.Bans)
		assert.Empty(t, ch.Bans)
		assert.NotNil(t, ch.Members)
		assert.Empty(t, ch.Members)
	}
}

func TestDecodeChannels_EmptyOnNil(t *testing.T) {
	channels := DecodeChannels(nil)
	assert.NotNil(t, channels)
	assert.Empty(t, channels)
}

func TestDecodeRpcInfos_DictKeyedByName(t *testing.T) {
	raw := map[string]any{
		"user.list": map[string]any{"name": "user.list", "module": "rpc", "version": "6.1.0"},
		"rpc.info":  map[string]any{"name": "rpc.info", "module": "rpc", "version": "6.1.0"},
	}

	infos := DecodeRpcInfos(raw)

	assert.Len(t, infos, 2)
	names := []string{infos[0].Name, infos[1].Name}
	assert.ElementsMatch(t, []string{"user.list", "rpc.info"}, names)
}

func TestDecodeRehashResult_AcceptsEitherShape(t *testing.T) {
	assert.True(t, DecodeRehashResult(true).OK())
	assert.False(t, DecodeRehashResult(false).OK())

	nested := DecodeRehashResult(map[string]any{
		"success": true,
		"log":     []any{"reloaded modules"},
	})
	assert.True(t, nested.OK())
	assert.Equal(t, []string{"reloaded modules"}, nested.Log)
}
