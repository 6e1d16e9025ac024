package textutil

import "encoding/json"

// IsValidJSON reports whether s is a syntactically valid JSON document.
func IsValidJSON(s string) bool {
	return json.Valid([]byte(s))
}

// ParseJSON decodes s and returns the resulting value. Malformed input
// yields (nil, false) rather than an error; bad JSON is an expected outcome
// here, not an exceptional one.
func ParseJSON(s string) (any, bool) {
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return nil, false
	}
	return v, true
}
