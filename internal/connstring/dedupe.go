package connstring

import "strings"

// multiValueKeys lists the query parameter keys that legitimately accept
// multiple values, per the MongoDB connection string specification. Keys are
// lowercased; comparison is case-insensitive. Extend here if the upstream
// specification adds more multi-valued keys.
var multiValueKeys = map[string]struct{}{
	"readpreferencetags": {},
}

func isMultiValueKey(key string) bool {
	_, ok := multiValueKeys[strings.ToLower(key)]
	return ok
}

// HasDuplicateParameters reports whether at least one key appears more than
// once with the same value. Repeats of a key with different values are a
// conflict, resolved by deduplication, but not flagged here.
func (cs *ConnString) HasDuplicateParameters() bool {
	seen := make(map[string]map[string]struct{})
	for _, p := range cs.params {
		key := strings.ToLower(p.Key)
		values, ok := seen[key]
		if !ok {
			values = make(map[string]struct{})
			seen[key] = values
		}
		if _, dup := values[p.Value]; dup {
			return true
		}
		values[p.Value] = struct{}{}
	}
	return false
}

// DeduplicateQueryParameters collapses repeated query parameter keys and
// returns the reserialized connection string. Whitelisted multi-value keys
// keep all distinct values in input order, dropping only exact repeats;
// every other repeated key keeps only its last value. Distinct keys keep the
// relative order and spelling of their first appearance. Applying this to its
// own output is a no-op.
func (cs *ConnString) DeduplicateQueryParameters() string {
	if len(cs.params) == 0 {
		return cs.String()
	}

	type group struct {
		key    string
		values []string
	}
	var order []string
	groups := make(map[string]*group)
	for _, p := range cs.params {
		key := strings.ToLower(p.Key)
		g, ok := groups[key]
		if !ok {
			g = &group{key: p.Key}
			groups[key] = g
			order = append(order, key)
		}
		g.values = append(g.values, p.Value)
	}

	out := make([]Param, 0, len(order))
	for _, key := range order {
		g := groups[key]
		if isMultiValueKey(key) {
			seen := make(map[string]struct{}, len(g.values))
			for _, v := range g.values {
				if _, dup := seen[v]; dup {
					continue
				}
				seen[v] = struct{}{}
				out = append(out, Param{Key: g.key, Value: v})
			}
			continue
		}
		out = append(out, Param{Key: g.key, Value: g.values[len(g.values)-1]})
	}
	cs.params = out

	return cs.String()
}

// Normalize parses raw and deduplicates its query parameters. It never fails:
// an empty input returns "", and anything that does not parse as a connection
// string is returned unchanged. This makes it safe to run unconditionally
// over stored strings of unknown provenance.
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}
	cs, err := Parse(raw)
	if err != nil {
		return raw
	}
	return cs.DeduplicateQueryParameters()
}
