package source

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/reoring/ineed"
)

// YAML reads a property mapping from the first document of a YAML stream.
// Aliases are resolved; merge keys are not expanded.
func YAML(data []byte) (ineed.Properties, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(bytes.NewReader(data)).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNotObject
		}
		return nil, fmt.Errorf("source: read yaml: %w", err)
	}
	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	root = resolveAlias(root)
	if root.Kind != yaml.MappingNode {
		return nil, ErrNotObject
	}
	return yamlMapping(root, "")
}

func yamlMapping(n *yaml.Node, path string) (ineed.Properties, error) {
	props := make(ineed.Properties, 0, len(n.Content)/2)
	seen := map[string]struct{}{}
	for i := 0; i+1 < len(n.Content); i += 2 {
		kn := resolveAlias(n.Content[i])
		if kn.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("source: non-scalar key at %s (line %d)", pathOrRoot(path), kn.Line)
		}
		key := kn.Value
		at := pointer(path, key)
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("%w at %s (line %d)", ErrDuplicateKey, at, kn.Line)
		}
		seen[key] = struct{}{}
		v, err := yamlValue(n.Content[i+1], at)
		if err != nil {
			return nil, err
		}
		props = append(props, ineed.Property{Name: key, Value: v})
	}
	return props, nil
}

func yamlValue(n *yaml.Node, path string) (any, error) {
	n = resolveAlias(n)
	switch n.Kind {
	case yaml.MappingNode:
		return yamlMapping(n, path)
	case yaml.SequenceNode:
		out := make([]any, 0, len(n.Content))
		for i, c := range n.Content {
			v, err := yamlValue(c, path+"/"+strconv.Itoa(i))
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	case yaml.ScalarNode:
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, fmt.Errorf("source: decode scalar at %s (line %d): %w", path, n.Line, err)
		}
		return v, nil
	default:
		return nil, fmt.Errorf("source: unsupported yaml node at %s (line %d)", path, n.Line)
	}
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}
