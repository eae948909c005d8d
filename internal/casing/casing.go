// Package casing converts JSON key casing between the backend's snake_case
// wire format and the camelCase domain format used everywhere else in the
// client. The conversion is structural only: keys are rewritten, leaf values
// are never inspected or altered.
package casing

import "strings"

// SnakeToCamel converts a single snake_case key to camelCase. An underscore
// or hyphen followed by a lowercase letter is replaced by the uppercased
// letter; any other character passes through unchanged. Keys with no
// delimiters are returned as-is.
func SnakeToCamel(s string) string {
	if !strings.ContainsAny(s, "_-") {
		return s
	}

	var b strings.Builder

	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c == '_' || c == '-') && i+1 < len(s) && s[i+1] >= 'a' && s[i+1] <= 'z' {
			b.WriteByte(s[i+1] - 'a' + 'A')
			i++

			continue
		}

		b.WriteByte(c)
	}

	return b.String()
}

// CamelToSnake converts a single camelCase key to snake_case by inserting an
// underscore before every ASCII uppercase letter and lowercasing it. There is
// no special handling of consecutive capitals or digits; "imageURL" becomes
// "image_u_r_l". The backend's payloads never use such keys.
func CamelToSnake(s string) string {
	var b strings.Builder

	b.Grow(len(s) + 2)

	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			b.WriteByte('_')
			b.WriteByte(c - 'A' + 'a')

			continue
		}

		b.WriteByte(c)
	}

	return b.String()
}

// CamelizeKeys returns a deep copy of a JSON-shaped value with every object
// key converted to camelCase. Arrays keep their order and length, scalars
// (including nil) are returned unchanged, and the input is never mutated.
func CamelizeKeys(v any) any {
	return mapKeys(v, SnakeToCamel)
}

// SnakeKeys is the inverse boundary transform: every object key is converted
// to snake_case for the wire.
func SnakeKeys(v any) any {
	return mapKeys(v, CamelToSnake)
}

func mapKeys(v any, convert func(string) string) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[convert(k)] = mapKeys(val, convert)
		}

		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = mapKeys(val, convert)
		}

		return out
	default:
		return v
	}
}
