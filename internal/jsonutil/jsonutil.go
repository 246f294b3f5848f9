// Package jsonutil provides helpers for decoding loosely typed JSON
// responses from remote services.
package jsonutil

import (
	"encoding/json"
	"fmt"
)

// UnmarshalWithContext unmarshals JSON data into v and wraps any error
// with the provided context message.
func UnmarshalWithContext(data []byte, v interface{}, context string) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%s: %w", context, err)
	}
	return nil
}

// Object decodes a JSON object. An empty body is an error.
func Object(data []byte, context string) (map[string]interface{}, error) {
	var m map[string]interface{}
	if err := UnmarshalWithContext(data, &m, context); err != nil {
		return nil, err
	}
	if m == nil {
		return nil, fmt.Errorf("%s: not an object", context)
	}
	return m, nil
}

// ToString converts an interface{} value to a string representation.
// Handles string, float64 (formatted as integer), bool, and other types.
// Numeric keys come back from JSON as float64.
func ToString(v interface{}) string {
	if v == nil {
		return ""
	}
	switch val := v.(type) {
	case string:
		return val
	case float64:
		if val == float64(int64(val)) {
			return fmt.Sprintf("%.0f", val)
		}
		return fmt.Sprintf("%g", val)
	case bool:
		return fmt.Sprintf("%t", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
