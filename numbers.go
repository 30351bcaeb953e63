package ineed

import (
	"math"
	"strconv"
	"strings"
)

// Numeric is the set of Go number types accepted by Bound.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Bounds constrains the Numbers validator. Nil fields impose no constraint;
// the zero value only requires a number.
type Bounds struct {
	Greater        *float64
	GreaterOrEqual *float64
	Less           *float64
	LessOrEqual    *float64
}

// Bound returns a pointer suitable for a Bounds field.
func Bound[T Numeric](x T) *float64 {
	f := float64(x)
	return &f
}

var numbers = AssertAll(CodeNumber, func(v any, name string, _ Properties, opts any) string {
	b := boundsOf(opts)
	n, ok := toFloat64(v)
	var clauses []string
	check := func(bound *float64, clause string, holds func(n, x float64) bool) {
		if bound == nil {
			return
		}
		clauses = append(clauses, clause+" "+formatNumber(*bound))
		if !holds(n, *bound) {
			ok = false
		}
	}
	// Negated comparisons: NaN satisfies every bound.
	check(b.Greater, "greater than", func(n, x float64) bool { return !(n <= x) })
	check(b.GreaterOrEqual, "greater than or equal", func(n, x float64) bool { return !(n < x) })
	check(b.Less, "less than", func(n, x float64) bool { return !(n >= x) })
	check(b.LessOrEqual, "less than or equal", func(n, x float64) bool { return !(n > x) })
	if ok {
		return ""
	}
	msg := name + " must be a number"
	if len(clauses) > 0 {
		msg += " " + strings.Join(clauses, " and ")
	}
	return msg
})

// Numbers requires every property to be a number satisfying all bounds set in
// b. The message lists every bound, for example
// "age must be a number greater than 0 and less than 150".
func Numbers(props Properties, b Bounds, opts ...Opt) error {
	return numbers(props, withOptions(b, opts))
}

// boundsOf reads the options of the numbers rule. Besides Bounds it accepts a
// map keyed greater, greaterOrEqual, less and lessOrEqual, as produced by the
// source package; bound values that are not numbers are ignored, and any other
// options value means no bounds.
func boundsOf(opts any) Bounds {
	switch o := opts.(type) {
	case Bounds:
		return o
	case *Bounds:
		if o != nil {
			return *o
		}
	case map[string]any:
		return Bounds{
			Greater:        mapBound(o, "greater"),
			GreaterOrEqual: mapBound(o, "greaterOrEqual"),
			Less:           mapBound(o, "less"),
			LessOrEqual:    mapBound(o, "lessOrEqual"),
		}
	case Properties:
		return boundsOf(o.asMap())
	}
	return Bounds{}
}

func mapBound(m map[string]any, key string) *float64 {
	v, ok := m[key]
	if !ok || KindOf(v) != KindNumber {
		return nil
	}
	f, ok := toFloat64(v)
	if !ok {
		return nil
	}
	return &f
}

func (p Properties) asMap() map[string]any {
	m := make(map[string]any, len(p))
	for _, it := range p {
		if _, dup := m[it.Name]; !dup {
			m[it.Name] = it.Value
		}
	}
	return m
}

// formatNumber renders a bound the way JavaScript's Number#toString does:
// plain decimals for 1e-6 <= |f| < 1e21, otherwise exponent form such as
// "1e-7" or "1.5e+21".
func formatNumber(f float64) string {
	switch {
	case f == 0:
		return "0"
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	if abs := math.Abs(f); abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	s := strconv.FormatFloat(f, 'e', -1, 64)
	mant, exp, _ := strings.Cut(s, "e")
	sign := exp[:1]
	exp = strings.TrimLeft(exp[1:], "0")
	return mant + "e" + sign + exp
}
