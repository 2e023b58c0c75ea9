package connstring

import (
	"net/url"
	"strings"
)

const upperhex = "0123456789ABCDEF"

// unreserved reports whether c may appear literally in an encoded component.
// The set matches RFC 3986 unreserved characters; everything else, including
// '@', ':', '/', '?', '#', '[', ']', '&' and '=', is percent-encoded so a
// delimiter-based parser can never mistake a value byte for structure.
func unreserved(c byte) bool {
	switch {
	case 'A' <= c && c <= 'Z', 'a' <= c && c <= 'z', '0' <= c && c <= '9':
		return true
	case c == '-' || c == '.' || c == '_' || c == '~':
		return true
	}
	return false
}

// escape percent-encodes every byte of s outside the unreserved set.
func escape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if unreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&0x0F])
	}
	return b.String()
}

// unescape reverses escape. Unlike query unescaping, '+' stays a literal plus.
func unescape(s string) (string, error) {
	return url.PathUnescape(s)
}

// roundTrips reports whether s survives an encode/decode cycle unchanged.
func roundTrips(s string) bool {
	decoded, err := unescape(escape(s))
	return err == nil && decoded == s
}

// ValidateUsername reports whether the candidate username can be stored and
// read back losslessly. The codec is byte-oriented, so this holds for every
// string; the predicate exists as the documented contract for input validation.
func ValidateUsername(candidate string) bool {
	return roundTrips(candidate)
}

// ValidatePassword reports whether the candidate password can be stored and
// read back losslessly.
func ValidatePassword(candidate string) bool {
	return roundTrips(candidate)
}
