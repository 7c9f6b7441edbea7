package routes

import (
	"strings"

	"github.com/rohanthewiz/routes/consts"
	"github.com/rohanthewiz/routes/core/rtr"
)

// Generate builds a concrete URL from a pattern.
// Each parameter segment is replaced by the percent-encoded string form of its value,
// so a value containing '/' stays within its segment. Literal segments are copied as-is.
// A non-empty query is appended after '?' in the order given.
//
// A parameter without a value (absent from params, nil, or a nil pointer) yields a *MissingParamError.
// Zero and the empty string are ordinary values.
//
// Example:
//   Generate("/blog/posts/:id", Params{"id": 42}, nil)
//   // -> "/blog/posts/42"
//
//   Generate("/blog/posts/:id", Params{"id": 42}, Query{{"tab", "comments"}, {"page", 2}})
//   // -> "/blog/posts/42?tab=comments&page=2"
func Generate(pattern string, params Params, query Query) (string, error) {
	var sb strings.Builder
	sb.Grow(len(pattern))

	if !rtr.HasParams(pattern) {
		sb.WriteString(pattern)
	} else {
		for i, seg := range rtr.Tokenize(pattern) {
			if i > 0 {
				sb.WriteByte(consts.RuneFwdSlash)
			}

			if !seg.Param {
				sb.WriteString(seg.Text)
				continue
			}

			value, ok := params[seg.Text]
			if !ok || isNil(value) {
				return "", &MissingParamError{Name: seg.Text, Pattern: pattern}
			}
			sb.WriteString(rtr.EscapeComponent(stringify(value)))
		}
	}

	if qs := query.Encode(); qs != "" {
		sb.WriteByte(consts.RuneQuestion)
		sb.WriteString(qs)
	}

	return sb.String(), nil
}

// MustGenerate is like Generate but panics on a missing parameter.
// Intended for URLs built from constant inputs.
func MustGenerate(pattern string, params Params, query Query) string {
	url, err := Generate(pattern, params, query)
	if err != nil {
		panic(err.Error())
	}
	return url
}
