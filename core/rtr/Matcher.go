package rtr

import (
	"strings"

	"github.com/rohanthewiz/routes/consts"
	"github.com/rohanthewiz/serr"
)

// Match tests the path against the pattern and collects the bound parameters.
// This is a convenience wrapper around MatchNoAlloc.
//
// The returned slice is nil on a mismatch. On a match it holds one entry per
// parameter segment in pattern order, so a fully literal pattern yields (nil, true).
func Match(pattern string, path string) ([]Parameter, bool, error) {
	var params []Parameter

	ok, err := MatchNoAlloc(pattern, path, func(key string, value string) {
		params = append(params, Parameter{key, value})
	})
	if err != nil || !ok {
		return nil, false, err
	}

	return params, true, nil
}

// MatchNoAlloc walks pattern and path segment by segment without splitting either string.
//
// Algorithm:
// 1. Drop the query suffix of the path
// 2. Reject when the segment counts differ (no prefix matching, no trailing slash folding)
// 3. Walk both strings in lockstep:
//    - literal segments must be byte-for-byte equal, otherwise stop with false
//    - parameter segments are percent-decoded and reported through addParameter
//
// An empty path segment binds the empty string to its parameter.
// addParameter may already have been called for earlier segments when the
// result turns out to be false, so callers that need all-or-nothing should buffer.
// A malformed escape in a parameter segment is returned as an error.
func MatchNoAlloc(pattern string, path string, addParameter func(key string, value string)) (bool, error) {
	path = StripQuery(path)

	if strings.Count(pattern, consts.StrSlash) != strings.Count(path, consts.StrSlash) {
		return false, nil
	}

	for {
		var patternPart, pathPart string

		// The counts are equal, so both run out of separators on the same iteration
		i := strings.IndexByte(pattern, consts.RuneFwdSlash)
		j := strings.IndexByte(path, consts.RuneFwdSlash)

		if i < 0 {
			patternPart, pathPart = pattern, path
		} else {
			patternPart, pathPart = pattern[:i], path[:j]
		}

		if IsParam(patternPart) {
			value, err := UnescapeComponent(pathPart)
			if err != nil {
				return false, serr.Wrap(err, "unable to decode route parameter", "param", patternPart[1:])
			}
			addParameter(patternPart[1:], value)
		} else if patternPart != pathPart {
			return false, nil
		}

		if i < 0 {
			return true, nil
		}

		pattern = pattern[i+1:]
		path = path[j+1:]
	}
}
