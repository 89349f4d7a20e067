package jsonutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
)

// Sentinel errors the CLI entry points classify input failures with.
var (
	ErrNotFound    = errors.New("input file not found")
	ErrInvalidJSON = errors.New("invalid JSON")
)

// ReadFile reads a JSON file and unmarshals it into the provided destination.
// Missing files and malformed payloads are wrapped with the sentinels above so
// callers can map them to their own error reporting.
func ReadFile(path string, dest any) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	return nil
}

// Float64 is a lenient monetary/percentage value. It decodes from a JSON
// number or a numeric string; anything else (null, text, wrong type) decodes
// to zero instead of failing the whole payload.
type Float64 float64

func (f *Float64) UnmarshalJSON(b []byte) error {
	var n float64
	if err := json.Unmarshal(b, &n); err == nil {
		*f = Float64(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		if n, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			*f = Float64(n)
			return nil
		}
	}
	*f = 0
	return nil
}
