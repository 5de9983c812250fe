package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
)

// parseID parses a numeric resource identifier from a positional argument
func parseID(kind, arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s ID %q: must be a positive integer", kind, arg)
	}
	return id, nil
}

// readJSONFile loads a request payload from disk, or stdin when path is "-"
func readJSONFile(path string) (any, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	// numbers stay json.Number so large IDs keep every digit
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var payload any
	if err := dec.Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("failed to parse %s: unexpected data after JSON value", path)
	}
	return payload, nil
}

// optionalID returns a pointer to id, or nil when the flag was left at zero
func optionalID(id int64) *int64 {
	if id == 0 {
		return nil
	}
	return &id
}

// optionalString returns a pointer to s, or nil when empty
func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
