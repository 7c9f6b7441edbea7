package routes

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/rohanthewiz/routes/core/rtr"
)

// Params holds the values substituted into a pattern's parameter segments.
// Values may be strings, any integer or float kind, bools or fmt.Stringers,
// or pointers to any of these. A nil value counts as missing, typed nils included.
type Params map[string]any

// ParamNames returns the distinct parameter names of the pattern, left to right.
//
// Example:
//   ParamNames("/users/:userId/posts/:postId") // ["userId", "postId"]
//   ParamNames("/login")                       // nil
func ParamNames(pattern string) []string {
	if !rtr.HasParams(pattern) {
		return nil
	}

	var names []string
	for _, seg := range rtr.Tokenize(pattern) {
		if !seg.Param || contains(names, seg.Text) {
			continue
		}
		names = append(names, seg.Text)
	}

	return names
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

// stringify renders a param or query value as text.
// Numbers are plain decimal, never locale formatted.
func stringify(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case int8:
		return strconv.FormatInt(int64(v), 10)
	case int16:
		return strconv.FormatInt(int64(v), 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint8:
		return strconv.FormatUint(uint64(v), 10)
	case uint16:
		return strconv.FormatUint(uint64(v), 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case fmt.Stringer:
		return v.String()
	}

	// *string, *int and friends render as what they point to
	if rv := reflect.ValueOf(value); rv.Kind() == reflect.Ptr && !rv.IsNil() {
		return stringify(rv.Elem().Interface())
	}
	return fmt.Sprint(value)
}

// isNil reports whether value holds nothing, including typed nils such as (*string)(nil).
func isNil(value any) bool {
	if value == nil {
		return true
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
