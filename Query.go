package routes

import (
	"strings"

	"github.com/rohanthewiz/routes/consts"
	"github.com/rohanthewiz/routes/core/rtr"
)

// QueryParam is a single query string entry.
// A nil Value, or a nil pointer, marks the entry as absent: it is dropped, not rendered as "key=".
type QueryParam struct {
	Key   string
	Value any
}

// Query is an ordered list of query entries.
// The encoded query string keeps this order; it is never sorted.
type Query []QueryParam

// Add returns the query with a new entry appended.
func (q Query) Add(key string, value any) Query {
	return append(q, QueryParam{Key: key, Value: value})
}

// Encode renders the query as key=value pairs joined by '&', without the leading '?'.
// Keys and values are percent-encoded; absent entries are skipped.
func (q Query) Encode() string {
	var sb strings.Builder

	for _, p := range q {
		if isNil(p.Value) {
			continue
		}

		if sb.Len() > 0 {
			sb.WriteByte(consts.RuneAmp)
		}
		sb.WriteString(rtr.EscapeComponent(p.Key))
		sb.WriteByte(consts.RuneEquals)
		sb.WriteString(rtr.EscapeComponent(stringify(p.Value)))
	}

	return sb.String()
}
