// Package connstring parses, normalizes, and re-serializes MongoDB-style
// connection strings (mongodb:// and mongodb+srv://). It exists because
// general-purpose URL parsers misread '@' inside query-parameter values as a
// credentials separator and mishandle round-trip encoding of usernames and
// passwords containing URL-reserved characters.
package connstring

import (
	"errors"
	"fmt"
	"strings"

	"mongouri/internal/common"
)

// Scheme is the connection string protocol tag.
type Scheme string

const (
	// SchemeMongoDB is the direct host-list scheme.
	SchemeMongoDB Scheme = "mongodb"
	// SchemeMongoDBSRV is the DNS seedlist discovery scheme. Resolution of the
	// seedlist happens elsewhere; here it is an opaque tag.
	SchemeMongoDBSRV Scheme = "mongodb+srv"
)

// Param is a single query parameter occurrence. Repeated keys are legal and
// order is significant, so parameters live in a slice, not a map.
type Param struct {
	Key   string
	Value string
}

// WarnFunc receives non-fatal diagnostics, such as a stored credential that
// cannot be percent-decoded. The default is to drop them.
type WarnFunc func(format string, args ...any)

// ConnString is a parsed connection string. Username and password are stored
// percent-encoded, exactly as they serialize; the accessors expose decoded
// plaintext. Hosts are kept verbatim in input order, duplicates included.
type ConnString struct {
	scheme   Scheme
	username string
	password string
	hosts    []string
	database string
	params   []Param

	onWarning WarnFunc
}

// Parse parses a raw connection string. The raw string is sanitized before
// structural splitting so reserved characters inside query values cannot
// derail the credentials or host sections. A string that is not a
// syntactically valid connection URI yields an InvalidConnStringError.
func Parse(raw string) (*ConnString, error) {
	cs := &ConnString{}
	if err := cs.parse(raw); err != nil {
		return nil, &common.InvalidConnStringError{Reason: err.Error(), Err: err}
	}
	return cs, nil
}

func (cs *ConnString) parse(raw string) error {
	switch {
	case strings.HasPrefix(raw, string(SchemeMongoDBSRV)+"://"):
		cs.scheme = SchemeMongoDBSRV
	case strings.HasPrefix(raw, string(SchemeMongoDB)+"://"):
		cs.scheme = SchemeMongoDB
	default:
		return errors.New(`scheme must be "mongodb" or "mongodb+srv"`)
	}

	rest := sanitizeQuery(raw)[len(cs.scheme)+3:]

	var query string
	hasQuery := false
	if idx := strings.Index(rest, "?"); idx != -1 {
		rest, query, hasQuery = rest[:idx], rest[idx+1:], true
	}

	if idx := strings.Index(rest, "/"); idx != -1 {
		cs.database = rest[idx+1:]
		rest = rest[:idx]
	}

	// The last '@' separates credentials from hosts; earlier '@' bytes belong
	// to the username or password and stay in their encoded form.
	if idx := strings.LastIndex(rest, "@"); idx != -1 {
		userinfo := rest[:idx]
		rest = rest[idx+1:]
		if c := strings.Index(userinfo, ":"); c != -1 {
			cs.username, cs.password = userinfo[:c], userinfo[c+1:]
		} else {
			cs.username = userinfo
		}
	}

	if rest == "" {
		return errors.New("must have at least 1 host")
	}
	hosts := strings.Split(rest, ",")
	for _, host := range hosts {
		if host == "" {
			return fmt.Errorf("empty host in host list %q", rest)
		}
	}
	cs.hosts = hosts

	if hasQuery && query != "" {
		for _, pair := range strings.Split(query, "&") {
			if pair == "" {
				continue
			}
			key, value, _ := strings.Cut(pair, "=")
			if key == "" {
				return fmt.Errorf("query parameter %q has an empty key", pair)
			}
			decoded, err := unescape(value)
			if err != nil {
				// Keep the raw value; it is still usable as an opaque string.
				decoded = value
			}
			cs.params = append(cs.params, Param{Key: key, Value: decoded})
		}
	}

	return nil
}

// SetWarningHandler installs the sink for non-fatal diagnostics.
func (cs *ConnString) SetWarningHandler(fn WarnFunc) {
	cs.onWarning = fn
}

func (cs *ConnString) warnf(format string, args ...any) {
	if cs.onWarning != nil {
		cs.onWarning(format, args...)
	}
}

// Scheme returns the protocol tag.
func (cs *ConnString) Scheme() Scheme {
	return cs.scheme
}

// Hosts returns the host list verbatim, in input order.
func (cs *ConnString) Hosts() []string {
	out := make([]string, len(cs.hosts))
	copy(out, cs.hosts)
	return out
}

// Database returns the database path component, which is treated as opaque.
func (cs *ConnString) Database() string {
	return cs.database
}

// SetDatabase replaces the database path component.
func (cs *ConnString) SetDatabase(db string) {
	cs.database = db
}

// Username returns the decoded username, or "" if absent. A stored value that
// cannot be percent-decoded is returned raw after a warning; it remains
// usable as an opaque string even if its plaintext is unrecoverable.
func (cs *ConnString) Username() string {
	return cs.decodeCredential("username", cs.username)
}

// SetUsername stores the plaintext username percent-encoded.
func (cs *ConnString) SetUsername(plaintext string) {
	cs.username = escape(plaintext)
}

// Password returns the decoded password, or "" if absent, with the same
// degraded behavior as Username for undecodable stored values.
func (cs *ConnString) Password() string {
	return cs.decodeCredential("password", cs.password)
}

// SetPassword stores the plaintext password percent-encoded. Setting "" drops
// the password entirely: serialization emits no ':' before '@'.
func (cs *ConnString) SetPassword(plaintext string) {
	cs.password = escape(plaintext)
}

func (cs *ConnString) decodeCredential(slot, stored string) string {
	if stored == "" {
		return ""
	}
	decoded, err := unescape(stored)
	if err != nil {
		cs.warnf("connection string %s is not percent-decodable, returning it verbatim: %v", slot, err)
		return stored
	}
	return decoded
}

// Params returns a copy of the ordered query parameter list with decoded
// values.
func (cs *ConnString) Params() []Param {
	out := make([]Param, len(cs.params))
	copy(out, cs.params)
	return out
}

// Get returns the value of the last occurrence of key, which is the one the
// driver would honor for single-valued options. Key comparison is
// case-insensitive.
func (cs *ConnString) Get(key string) (string, bool) {
	for i := len(cs.params) - 1; i >= 0; i-- {
		if strings.EqualFold(cs.params[i].Key, key) {
			return cs.params[i].Value, true
		}
	}
	return "", false
}

// Values returns every value recorded for key, in input order.
func (cs *ConnString) Values(key string) []string {
	var out []string
	for _, p := range cs.params {
		if strings.EqualFold(p.Key, key) {
			out = append(out, p.Value)
		}
	}
	return out
}

// Set replaces every occurrence of key with a single occurrence holding
// value, at the position of the first occurrence, or appends if absent.
func (cs *ConnString) Set(key, value string) {
	out := cs.params[:0]
	replaced := false
	for _, p := range cs.params {
		if strings.EqualFold(p.Key, key) {
			if !replaced {
				out = append(out, Param{Key: p.Key, Value: value})
				replaced = true
			}
			continue
		}
		out = append(out, p)
	}
	if !replaced {
		out = append(out, Param{Key: key, Value: value})
	}
	cs.params = out
}

// Delete removes every occurrence of key.
func (cs *ConnString) Delete(key string) {
	out := cs.params[:0]
	for _, p := range cs.params {
		if !strings.EqualFold(p.Key, key) {
			out = append(out, p)
		}
	}
	cs.params = out
}

// String serializes the connection string. Credentials are emitted from their
// stored encoded form and query values are percent-encoded, so the output is
// always safe to re-parse, persist, or hand to a driver.
func (cs *ConnString) String() string {
	var b strings.Builder
	b.WriteString(string(cs.scheme))
	b.WriteString("://")
	if cs.username != "" || cs.password != "" {
		b.WriteString(cs.username)
		if cs.password != "" {
			b.WriteByte(':')
			b.WriteString(cs.password)
		}
		b.WriteByte('@')
	}
	b.WriteString(strings.Join(cs.hosts, ","))
	if cs.database != "" || len(cs.params) > 0 {
		b.WriteByte('/')
		b.WriteString(cs.database)
	}
	if len(cs.params) > 0 {
		b.WriteByte('?')
		for i, p := range cs.params {
			if i > 0 {
				b.WriteByte('&')
			}
			b.WriteString(p.Key)
			b.WriteByte('=')
			b.WriteString(escape(p.Value))
		}
	}
	return b.String()
}

// Redacted returns the serialized connection string with the password, if
// any, replaced by "***" for display and logging.
func (cs *ConnString) Redacted() string {
	if cs.password == "" {
		return cs.String()
	}
	clone := *cs
	clone.password = "***"
	return clone.String()
}
