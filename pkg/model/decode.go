// Package model holds the typed, default-valued records this client
// decodes every documented UnrealIRCd JSON-RPC object into, plus the decode
// helpers that pull them out of the map[string]any the dispatcher parses
// each reply into. Grounded on pkg/types/card.go's field-by-field
// construction of a typed struct from a loosely typed source.
package model

// asMap, asSlice, asString, asInt, asBool and asStringSlice never panic on a
// missing or mistyped field: every record field has a well-defined zero
// value so a partial or surprising response never produces a runtime
// error, per the core spec's invariant (i).

func asMap(v any) map[string]any {
	if m, ok := v.(map[string]any); ok {
		return m
	}
	return nil
}

func asSlice(v any) []any {
	if s, ok := v.([]any); ok {
		return s
	}
	return nil
}

func asString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

func asBool(v any) bool {
	if b, ok := v.(bool); ok {
		return b
	}
	return false
}

func asInt(v any) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	case int64:
		return int(n)
	default:
		return 0
	}
}

func asStringSlice(v any) []string {
	s := asSlice(v)
	if s == nil {
		return []string{}
	}
	out := make([]string, 0, len(s))
	for _, e := range s {
		out = append(out, asString(e))
	}
	return out
}

func field(m map[string]any, key string) any {
	if m == nil {
		return nil
	}
	return m[key]
}

// renamed looks a value up under any of several server-side key spellings,
// so renames like "security-groups" -> "security_groups" and
// "country-code" -> "country_code" are applied once at decode time (core
// spec invariant (ii)) instead of leaking the hyphenated wire spelling into
// the typed model.
func renamed(m map[string]any, keys ...string) any {
	for _, k := range keys {
		if v, ok := m[k]; ok {
			return v
		}
	}
	return nil
}
