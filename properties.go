package ineed

import (
	"fmt"
	"sort"
)

// Property is a single name/value pair under test.
type Property struct {
	Name  string
	Value any
}

// Properties is an ordered property mapping. Validators walk it in slice
// order, which is the order the caller supplied the pairs in.
type Properties []Property

// Props builds Properties from alternating name/value arguments:
//
//	ineed.Props("id", id, "email", email)
//
// It panics when a name is not a string or the last name has no value.
func Props(kv ...any) Properties {
	if len(kv)%2 != 0 {
		panic(fmt.Sprintf("ineed: Props got %d arguments; want name/value pairs", len(kv)))
	}
	out := make(Properties, 0, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		name, ok := kv[i].(string)
		if !ok {
			panic(fmt.Sprintf("ineed: Props argument %d is %T; want a string name", i, kv[i]))
		}
		out = append(out, Property{Name: name, Value: kv[i+1]})
	}
	return out
}

// FromMap converts a Go map into Properties. Maps have no insertion order, so
// names are sorted to keep the reported property deterministic.
func FromMap(m map[string]any) Properties {
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	sort.Strings(names)
	out := make(Properties, 0, len(names))
	for _, k := range names {
		out = append(out, Property{Name: k, Value: m[k]})
	}
	return out
}

func (p Properties) Len() int { return len(p) }

// Names returns the property names in order.
func (p Properties) Names() []string {
	out := make([]string, len(p))
	for i, it := range p {
		out[i] = it.Name
	}
	return out
}

// Get returns the value of the first property with the given name.
func (p Properties) Get(name string) (any, bool) {
	for _, it := range p {
		if it.Name == name {
			return it.Value, true
		}
	}
	return nil, false
}
