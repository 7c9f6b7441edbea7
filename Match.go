package routes

import "github.com/rohanthewiz/routes/core/rtr"

// PathParams holds the parameters extracted by Match, already percent-decoded.
type PathParams map[string]string

// Get returns the named parameter, or "" when it was not bound.
func (p PathParams) Get(name string) string {
	return p[name]
}

// Match tests pathname against pattern and extracts the parameter values.
//
// A query suffix on pathname is ignored. Segment counts must agree and every literal
// segment must be equal byte for byte; otherwise ok is false. That is the normal
// "no match" outcome, not an error. A fully literal match returns an empty, non-nil PathParams.
// An error is returned only when a parameter segment holds a malformed escape.
//
// Example:
//   Match("/blog/posts/:id", "/blog/posts/42?tab=comments") // {"id": "42"}, true, nil
//   Match("/products/:id", "/login")                       // nil, false, nil
func Match(pattern string, pathname string) (params PathParams, ok bool, err error) {
	params = PathParams{}

	ok, err = rtr.MatchNoAlloc(pattern, pathname, func(key string, value string) {
		params[key] = value
	})
	if err != nil || !ok {
		return nil, false, err
	}

	return params, true, nil
}

// Matches reports whether pathname matches pattern.
// A decoding error counts as no match.
func Matches(pattern string, pathname string) bool {
	ok, err := rtr.MatchNoAlloc(pattern, pathname, func(string, string) {})
	return ok && err == nil
}
