package rtr

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/rohanthewiz/serr"
)

const upperHex = "0123456789ABCDEF"

// shouldEscape reports whether the byte must be percent-encoded in a URI component.
// Only the unreserved set survives: A-Z a-z 0-9 - _ . ! ~ * ' ( )
// Everything else, including '/', '?', '&', '=', ':' and '+', is escaped.
func shouldEscape(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return false
	}

	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return false
	}
	return true
}

// EscapeComponent percent-encodes s for use as a single path segment or query key/value.
// Multi-byte UTF-8 sequences are escaped byte by byte.
//
// Example:
//   "hello world" -> "hello%20world"
//   "a/b"         -> "a%2Fb"
func EscapeComponent(s string) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if shouldEscape(s[i]) {
			n++
		}
	}

	// Nothing to do, avoid the allocation
	if n == 0 {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(s) + 2*n)

	for i := 0; i < len(s); i++ {
		c := s[i]
		if shouldEscape(c) {
			sb.WriteByte('%')
			sb.WriteByte(upperHex[c>>4])
			sb.WriteByte(upperHex[c&15])
			continue
		}
		sb.WriteByte(c)
	}

	return sb.String()
}

// UnescapeComponent reverses EscapeComponent.
// Every %XX sequence is decoded, including %2F, and '+' is left alone.
// A malformed escape or a result that is not valid UTF-8 is an error.
func UnescapeComponent(s string) (string, error) {
	if strings.IndexByte(s, '%') < 0 {
		return s, nil
	}

	decoded, err := url.PathUnescape(s)
	if err != nil {
		return "", serr.Wrap(err, "malformed percent-encoding", "segment", s)
	}

	if !utf8.ValidString(decoded) {
		return "", serr.New("percent-decoded segment is not valid UTF-8", "segment", s)
	}

	return decoded, nil
}
