// Package source reads property mappings from JSON and YAML documents. The
// top-level document must be an object (a mapping in YAML); its keys become
// ineed.Properties in document order, so validators report the first
// offending key as it appears in the input.
//
// Nested objects decode to nested ineed.Properties, arrays to []any, JSON
// numbers to json.Number and null to nil (an absent value).
package source

import (
	"errors"
	"strings"
)

var (
	// ErrNotObject is returned when the document root is not an object.
	ErrNotObject = errors.New("source: document root is not an object")
	// ErrDuplicateKey is returned when an object repeats a key.
	ErrDuplicateKey = errors.New("source: duplicate key")
)

// pointer appends key to a JSON Pointer, escaping '~' and '/' per RFC6901.
func pointer(parent, key string) string {
	esc := strings.ReplaceAll(strings.ReplaceAll(key, "~", "~0"), "/", "~1")
	return parent + "/" + esc
}
