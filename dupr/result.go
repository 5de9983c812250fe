package dupr

import (
	"encoding/json"
	"fmt"
)

// Result is a decoded response body. Successful calls with an empty body
// yield an empty, non-nil Result.
type Result map[string]any

// Value returns the "result" member of the response envelope.
func (r Result) Value() any {
	return r["result"]
}

// Success reports the "success" flag of the response envelope.
func (r Result) Success() bool {
	ok, _ := r["success"].(bool)
	return ok
}

// Items returns the "result" member when it is a list, otherwise nil.
func (r Result) Items() []any {
	items, _ := r["result"].([]any)
	return items
}

// Decode converts the whole payload into v.
func (r Result) Decode(v any) error {
	return convert(map[string]any(r), v)
}

// DecodeValue converts the "result" member into v.
func (r Result) DecodeValue(v any) error {
	value, ok := r["result"]
	if !ok {
		return fmt.Errorf("response has no result member")
	}
	return convert(value, v)
}

func convert(in, out any) error {
	data, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to encode payload: %w", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode payload: %w", err)
	}
	return nil
}
