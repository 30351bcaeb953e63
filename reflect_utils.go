package ineed

import (
	"fmt"
	"reflect"
	"strings"
)

// FromStruct lists the exported fields of a struct, or a pointer to one, as
// Properties in declaration order. Embedded structs are not flattened.
//
// Field names resolve as ineed:"name=..." > json tag name > field name; a name
// of "-" skips the field. Nil pointer fields stay nil so they read as absent:
//
//	type CreateUser struct {
//		Email    string  `json:"email"`
//		Nickname *string `json:"nickname,omitempty"`
//	}
func FromStruct(v any) (Properties, error) {
	rv, ok := indirect(v)
	if !ok || rv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("ineed: FromStruct got %T; want a struct", v)
	}
	rt := rv.Type()
	out := make(Properties, 0, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		name := resolveStructKey(sf)
		if name == "-" {
			continue
		}
		out = append(out, Property{Name: name, Value: rv.Field(i).Interface()})
	}
	return out, nil
}

func resolveStructKey(sf reflect.StructField) string {
	if tag := sf.Tag.Get("ineed"); tag != "" {
		for _, p := range strings.Split(tag, ",") {
			p = strings.TrimSpace(p)
			if p == "-" {
				return "-"
			}
			if strings.HasPrefix(p, "name=") {
				return strings.TrimPrefix(p, "name=")
			}
		}
	}
	if jt := sf.Tag.Get("json"); jt != "" {
		if i := strings.IndexByte(jt, ','); i >= 0 {
			jt = jt[:i]
		}
		if jt != "" {
			return jt
		}
	}
	return sf.Name
}
