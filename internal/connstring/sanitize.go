package connstring

import "strings"

// sanitizeQuery rewrites the query section of a raw connection string so that
// reserved characters inside parameter values cannot be misread as structural
// delimiters. Values such as appName=@my-app@ would otherwise make the '@'
// credentials split land inside the query.
//
// The query is split permissively into key=value pairs on '&'. Each value is
// percent-decoded once, to normalize whatever encoding state it arrived in,
// and then re-encoded with escape. Keys are never touched. A key without '='
// is kept as a pair with an empty value.
//
// This runs exactly once, before structural parsing; it is not idempotent on
// arbitrary already-sanitized input that contains literal '%' values.
func sanitizeQuery(raw string) string {
	idx := strings.Index(raw, "?")
	if idx == -1 {
		return raw
	}
	prefix, query := raw[:idx], raw[idx+1:]
	if query == "" {
		return prefix + "?"
	}

	pairs := strings.Split(query, "&")
	out := make([]string, 0, len(pairs))
	for _, pair := range pairs {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		decoded, err := unescape(value)
		if err != nil {
			// Malformed escape from another tool; re-encoding the raw '%'
			// would corrupt a value that was previously readable.
			out = append(out, pair)
			continue
		}
		out = append(out, key+"="+escape(decoded))
	}
	return prefix + "?" + strings.Join(out, "&")
}
