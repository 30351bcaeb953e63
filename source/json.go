package source

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	j "github.com/goccy/go-json"

	"github.com/reoring/ineed"
)

// JSON reads a property mapping from a JSON object.
func JSON(data []byte) (ineed.Properties, error) { return JSONReader(bytes.NewReader(data)) }

// JSONReader reads a property mapping from a JSON object. Trailing data after
// the object is an error.
func JSONReader(r io.Reader) (ineed.Properties, error) {
	dec := j.NewDecoder(r)
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("source: read json: %w", err)
	}
	if d, ok := tok.(j.Delim); !ok || d != '{' {
		return nil, ErrNotObject
	}
	props, err := readObject(dec, "")
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("source: unexpected data after top-level object")
	}
	return props, nil
}

// readObject consumes object members up to and including the closing brace.
func readObject(dec *j.Decoder, path string) (ineed.Properties, error) {
	props := ineed.Properties{}
	seen := map[string]struct{}{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("source: read key at %s: %w", pathOrRoot(path), err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("source: expected key at %s, got %v", pathOrRoot(path), tok)
		}
		at := pointer(path, key)
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("%w at %s", ErrDuplicateKey, at)
		}
		seen[key] = struct{}{}
		v, err := readValue(dec, at)
		if err != nil {
			return nil, err
		}
		props = append(props, ineed.Property{Name: key, Value: v})
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("source: close object at %s: %w", pathOrRoot(path), err)
	}
	return props, nil
}

func readArray(dec *j.Decoder, path string) ([]any, error) {
	out := []any{}
	for i := 0; dec.More(); i++ {
		v, err := readValue(dec, path+"/"+strconv.Itoa(i))
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("source: close array at %s: %w", path, err)
	}
	return out, nil
}

func readValue(dec *j.Decoder, path string) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("source: read value at %s: %w", path, err)
	}
	switch t := tok.(type) {
	case j.Delim:
		switch t {
		case '{':
			return readObject(dec, path)
		case '[':
			return readArray(dec, path)
		}
		return nil, fmt.Errorf("source: unexpected %q at %s", rune(t), path)
	case j.Number:
		return json.Number(string(t)), nil
	case float64:
		return json.Number(strconv.FormatFloat(t, 'g', -1, 64)), nil
	default:
		// string, bool and nil pass through unchanged.
		return t, nil
	}
}

func pathOrRoot(p string) string {
	if p == "" {
		return "/"
	}
	return p
}
