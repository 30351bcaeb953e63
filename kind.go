package ineed

import (
	"encoding/json"
	"reflect"
)

// Kind is the runtime shape of a property value as seen by the catalog rules.
type Kind int

const (
	KindAbsent Kind = iota
	KindString
	KindNumber
	KindBool
	KindSequence
	KindRecord
	KindOther
)

func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindSequence:
		return "sequence"
	case KindRecord:
		return "record"
	default:
		return "other"
	}
}

var (
	numberType     = reflect.TypeOf(json.Number(""))
	propertiesType = reflect.TypeOf(Properties(nil))
)

// KindOf classifies v. nil and nil pointers are absent; a non-nil pointer is
// classified by what it points to. Slices and arrays are sequences, while maps,
// structs and Properties are records, so a map that mimics a sequence is still
// a record.
func KindOf(v any) Kind {
	rv, ok := indirect(v)
	if !ok {
		return KindAbsent
	}
	switch rv.Type() {
	case numberType:
		if _, err := json.Number(rv.String()).Float64(); err == nil {
			return KindNumber
		}
		return KindString
	case propertiesType:
		return KindRecord
	}
	switch k := rv.Kind(); {
	case k == reflect.String:
		return KindString
	case isIntLike(k), isFloatLike(k):
		return KindNumber
	case k == reflect.Bool:
		return KindBool
	case k == reflect.Slice, k == reflect.Array:
		return KindSequence
	case k == reflect.Map, k == reflect.Struct:
		return KindRecord
	default:
		return KindOther
	}
}

// indirect unwraps one level of pointer or interface. ok is false for absent
// values.
func indirect(v any) (reflect.Value, bool) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return rv, false
	}
	if rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return rv, false
		}
		rv = rv.Elem()
	}
	return rv, rv.IsValid()
}

// toFloat64 converts numeric values, including json.Number, to float64.
func toFloat64(v any) (float64, bool) {
	rv, ok := indirect(v)
	if !ok {
		return 0, false
	}
	if rv.Type() == numberType {
		f, err := json.Number(rv.String()).Float64()
		return f, err == nil
	}
	switch k := rv.Kind(); {
	case k >= reflect.Int && k <= reflect.Int64:
		return float64(rv.Int()), true
	case k >= reflect.Uint && k <= reflect.Uintptr:
		return float64(rv.Uint()), true
	case isFloatLike(k):
		return rv.Float(), true
	default:
		return 0, false
	}
}

// stringValue returns the text of string-kinded values.
func stringValue(v any) (string, bool) {
	if KindOf(v) != KindString {
		return "", false
	}
	rv, _ := indirect(v)
	return rv.String(), true
}

func isIntLike(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	default:
		return false
	}
}

func isFloatLike(k reflect.Kind) bool {
	return k == reflect.Float32 || k == reflect.Float64
}
