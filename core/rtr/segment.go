package rtr

import (
	"strings"

	"github.com/rohanthewiz/routes/consts"
)

// Segment is one '/'-delimited piece of a pattern.
// A parameter segment starts with ':' and Text holds the name without the sentinel.
// A literal segment is matched verbatim, and may be the empty string
// (leading, trailing and double slashes all produce empty literals).
type Segment struct {
	Text  string
	Param bool
}

// Tokenize splits a pattern into its segments.
//
// Example:
//   "/users/:id" -> [{"" false} {"users" false} {"id" true}]
func Tokenize(pattern string) []Segment {
	parts := strings.Split(pattern, consts.StrSlash)
	segments := make([]Segment, len(parts))

	for i, part := range parts {
		if IsParam(part) {
			segments[i] = Segment{Text: part[1:], Param: true}
			continue
		}
		segments[i] = Segment{Text: part}
	}

	return segments
}

// IsParam reports whether a raw pattern segment is a parameter segment.
func IsParam(segment string) bool {
	return len(segment) > 0 && segment[0] == consts.RuneColon
}

// HasParams reports whether the pattern contains at least one parameter segment.
func HasParams(pattern string) bool {
	// Cheap rejection for static routes
	if strings.IndexByte(pattern, consts.RuneColon) < 0 {
		return false
	}

	for _, seg := range Tokenize(pattern) {
		if seg.Param {
			return true
		}
	}
	return false
}

// StripQuery drops everything from the first '?' onward.
func StripQuery(path string) string {
	if i := strings.IndexByte(path, consts.RuneQuestion); i >= 0 {
		return path[:i]
	}
	return path
}
