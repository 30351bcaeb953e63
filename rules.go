package ineed

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strconv"
)

var (
	nonEmptyStrings = AssertAll(CodeNonEmptyString, func(v any, name string, _ Properties, _ any) string {
		if s, ok := stringValue(v); !ok || s == "" {
			return fmt.Sprintf("%s must be non empty string", name)
		}
		return ""
	})

	stringsOrUndefined = AssertAll(CodeStringOrUndefined, func(v any, name string, _ Properties, _ any) string {
		if k := KindOf(v); k != KindString && k != KindAbsent {
			return fmt.Sprintf("If %s is specified it must be a string", name)
		}
		return ""
	})

	stringsNotMatch = AssertAll(CodeStringNotMatch, func(v any, name string, _ Properties, opts any) string {
		s, ok := stringValue(v)
		re, expr := pattern(opts)
		if !ok || re == nil || re.MatchString(s) {
			return fmt.Sprintf("%s must be a string and it can't match %s", name, expr)
		}
		return ""
	})

	arrays = AssertAll(CodeArray, func(v any, name string, _ Properties, _ any) string {
		if KindOf(v) != KindSequence {
			return fmt.Sprintf("%s must be an array", name)
		}
		return ""
	})

	arraysOfNonEmptyStrings = AssertAll(CodeArrayOfNonEmptyStrings, func(v any, name string, _ Properties, _ any) string {
		if !isSequenceOfNonEmptyStrings(v) {
			return fmt.Sprintf("%s must be an array of non empty strings", name)
		}
		return ""
	})

	objects = AssertAll(CodeObject, func(v any, name string, _ Properties, _ any) string {
		if KindOf(v) != KindRecord {
			return fmt.Sprintf("%s must be an object", name)
		}
		return ""
	})

	specificValues = AssertAll(CodeSpecificValue, func(v any, name string, _ Properties, opts any) string {
		if !strictEqual(v, opts) {
			return fmt.Sprintf("%s must be %v", name, opts)
		}
		return ""
	})
)

var catalog = map[string]Validator{
	CodeNonEmptyString:         nonEmptyStrings,
	CodeStringOrUndefined:      stringsOrUndefined,
	CodeStringNotMatch:         stringsNotMatch,
	CodeArray:                  arrays,
	CodeArrayOfNonEmptyStrings: arraysOfNonEmptyStrings,
	CodeObject:                 objects,
	CodeSpecificValue:          specificValues,
	CodeNumber:                 numbers,
}

// Lookup returns the catalog validator registered under a rule code, such as
// CodeNumber. Lookup validators take their rule argument (pattern, expected
// value, bounds) from Opt.Options, which lets checks be driven by decoded
// configuration.
func Lookup(code string) (Validator, bool) {
	v, ok := catalog[code]
	return v, ok
}

// NonEmptyStrings requires every property to be a string of non-zero length.
func NonEmptyStrings(props Properties, opts ...Opt) error {
	return nonEmptyStrings(props, opts...)
}

// StringsOrUndefined requires every property to be a string or absent (nil).
func StringsOrUndefined(props Properties, opts ...Opt) error {
	return stringsOrUndefined(props, opts...)
}

// StringsNotMatch requires every property to be a string that pattern does not
// match. A nil pattern matches everything.
func StringsNotMatch(props Properties, pattern *regexp.Regexp, opts ...Opt) error {
	return stringsNotMatch(props, withOptions(pattern, opts))
}

// Arrays requires every property to be a slice or an array.
func Arrays(props Properties, opts ...Opt) error {
	return arrays(props, opts...)
}

// ArraysOfNonEmptyStrings requires every property to be a slice or an array
// whose elements are all non-empty strings.
func ArraysOfNonEmptyStrings(props Properties, opts ...Opt) error {
	return arraysOfNonEmptyStrings(props, opts...)
}

// Objects requires every property to be a record: a map, a struct or nested
// Properties. Sequences are rejected.
func Objects(props Properties, opts ...Opt) error {
	return objects(props, opts...)
}

// SpecificValues requires every property to be strictly equal to expected.
func SpecificValues(props Properties, expected any, opts ...Opt) error {
	return specificValues(props, withOptions(expected, opts))
}

// pattern resolves the options of the pattern rule and how the message shows
// it. Strings, as found in decoded configuration, are compiled on use; one that
// does not compile yields nil, which rejects every value.
func pattern(opts any) (*regexp.Regexp, string) {
	switch p := opts.(type) {
	case *regexp.Regexp:
		if p != nil {
			return p, "/" + p.String() + "/"
		}
	case string:
		if re, err := regexp.Compile(p); err == nil {
			return re, "/" + p + "/"
		}
		return nil, "/" + p + "/ (invalid pattern)"
	}
	return nil, "<no pattern>"
}

func isSequenceOfNonEmptyStrings(v any) bool {
	if KindOf(v) != KindSequence {
		return false
	}
	rv, _ := indirect(v)
	for i := 0; i < rv.Len(); i++ {
		if s, ok := stringValue(rv.Index(i).Interface()); !ok || s == "" {
			return false
		}
	}
	return true
}

// strictEqual reports identity-style equality. Absent values (nil and nil
// pointers) equal each other. Numbers compare by value across Go numeric types
// and json.Number, exactly for integers. Everything else, pointers included,
// uses == on identical comparable types; uncomparable values are never equal.
func strictEqual(a, b any) bool {
	absentA, absentB := KindOf(a) == KindAbsent, KindOf(b) == KindAbsent
	if absentA || absentB {
		return absentA && absentB
	}
	if x, ok := numberOf(a); ok {
		y, ok := numberOf(b)
		return ok && x.equal(y)
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	if !reflect.ValueOf(a).Comparable() {
		return false
	}
	return a == b
}

type numberKind int

const (
	numInt numberKind = iota
	numUint
	numFloat
)

// number holds a numeric value without losing integer precision.
type number struct {
	kind numberKind
	i    int64
	u    uint64
	f    float64
}

// numberOf reads a numeric value as is; pointers are not followed.
func numberOf(v any) (number, bool) {
	if n, ok := v.(json.Number); ok {
		s := string(n)
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return number{kind: numInt, i: i}, true
		}
		if u, err := strconv.ParseUint(s, 10, 64); err == nil {
			return number{kind: numUint, u: u}, true
		}
		f, err := n.Float64()
		return number{kind: numFloat, f: f}, err == nil
	}
	rv := reflect.ValueOf(v)
	switch k := rv.Kind(); {
	case k >= reflect.Int && k <= reflect.Int64:
		return number{kind: numInt, i: rv.Int()}, true
	case k >= reflect.Uint && k <= reflect.Uintptr:
		return number{kind: numUint, u: rv.Uint()}, true
	case isFloatLike(k):
		return number{kind: numFloat, f: rv.Float()}, true
	default:
		return number{}, false
	}
}

func (x number) equal(y number) bool {
	if x.kind > y.kind {
		x, y = y, x
	}
	switch {
	case x.kind == numInt && y.kind == numInt:
		return x.i == y.i
	case x.kind == numUint && y.kind == numUint:
		return x.u == y.u
	case x.kind == numInt && y.kind == numUint:
		return x.i >= 0 && uint64(x.i) == y.u
	case x.kind == numFloat:
		return x.f == y.f
	}
	// integer against float: equal only when the float holds that exact integer.
	f := y.f
	if f != math.Trunc(f) {
		return false
	}
	if x.kind == numInt {
		return f >= -(1<<63) && f < 1<<63 && int64(f) == x.i
	}
	return f >= 0 && f < 1<<64 && uint64(f) == x.u
}
