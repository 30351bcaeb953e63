package ineed_test

import (
	"encoding/json"
	"math"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/ineed"
)

func TestNumbers(t *testing.T) {
	t.Parallel()

	t.Run("passes without bounds", func(t *testing.T) {
		err := ineed.Numbers(ineed.Props("a", 1, "b", -2.5, "c", uint16(3), "d", json.Number("4")), ineed.Bounds{})
		assert.NoError(t, err)
	})

	t.Run("fails on non-number without bounds", func(t *testing.T) {
		err := ineed.Numbers(ineed.Props("a", "5"), ineed.Bounds{})
		requireFailure(t, err, "a", ineed.CodeNumber, "a must be a number")
	})

	t.Run("greater", func(t *testing.T) {
		b := ineed.Bounds{Greater: ineed.Bound(3)}
		assert.NoError(t, ineed.Numbers(ineed.Props("a", 5), b))

		err := ineed.Numbers(ineed.Props("a", 2), b)
		requireFailure(t, err, "a", ineed.CodeNumber, "a must be a number greater than 3")
		assert.Contains(t, err.Error(), "greater than 3")

		err = ineed.Numbers(ineed.Props("a", 3), b)
		requireFailure(t, err, "a", ineed.CodeNumber, "")
	})

	t.Run("greater or equal", func(t *testing.T) {
		b := ineed.Bounds{GreaterOrEqual: ineed.Bound(3)}
		assert.NoError(t, ineed.Numbers(ineed.Props("a", 3), b))

		err := ineed.Numbers(ineed.Props("a", 2.9), b)
		requireFailure(t, err, "a", ineed.CodeNumber, "a must be a number greater than or equal 3")
	})

	t.Run("less", func(t *testing.T) {
		b := ineed.Bounds{Less: ineed.Bound(0.5)}
		assert.NoError(t, ineed.Numbers(ineed.Props("a", 0.25), b))

		err := ineed.Numbers(ineed.Props("a", 0.5), b)
		requireFailure(t, err, "a", ineed.CodeNumber, "a must be a number less than 0.5")
	})

	t.Run("less or equal compares against its own bound", func(t *testing.T) {
		b := ineed.Bounds{GreaterOrEqual: ineed.Bound(0), LessOrEqual: ineed.Bound(10)}
		assert.NoError(t, ineed.Numbers(ineed.Props("a", 10), b))

		err := ineed.Numbers(ineed.Props("a", 11), b)
		requireFailure(t, err, "a", ineed.CodeNumber, "a must be a number greater than or equal 0 and less than or equal 10")
	})

	t.Run("joins every supplied clause", func(t *testing.T) {
		b := ineed.Bounds{
			Greater:        ineed.Bound(1),
			GreaterOrEqual: ineed.Bound(2),
			Less:           ineed.Bound(100000000),
			LessOrEqual:    ineed.Bound(99),
		}
		err := ineed.Numbers(ineed.Props("n", "x"), b)
		requireFailure(t, err, "n", ineed.CodeNumber,
			"n must be a number greater than 1 and greater than or equal 2 and less than 100000000 and less than or equal 99")
	})

	t.Run("formats bounds like JavaScript numbers", func(t *testing.T) {
		err := ineed.Numbers(ineed.Props("a", "x"), ineed.Bounds{
			Greater:        ineed.Bound(math.Copysign(0, -1)),
			GreaterOrEqual: ineed.Bound(1e-7),
			Less:           ineed.Bound(1.5e21),
			LessOrEqual:    ineed.Bound(0.000001),
		})
		requireFailure(t, err, "a", ineed.CodeNumber,
			"a must be a number greater than 0 and greater than or equal 1e-7 and less than 1.5e+21 and less than or equal 0.000001")
	})

	t.Run("reports first failing property", func(t *testing.T) {
		b := ineed.Bounds{Less: ineed.Bound(10)}
		err := ineed.Numbers(ineed.Props("a", 1, "b", 20, "c", 30), b)
		requireFailure(t, err, "b", ineed.CodeNumber, "")
	})

	t.Run("NaN passes bounds", func(t *testing.T) {
		assert.NoError(t, ineed.Numbers(ineed.Props("a", math.NaN()), ineed.Bounds{Greater: ineed.Bound(3)}))
	})

	t.Run("pointer bounds", func(t *testing.T) {
		b := &ineed.Bounds{Less: ineed.Bound(3)}
		v, ok := ineed.Lookup(ineed.CodeNumber)
		require.True(t, ok)
		err := v(ineed.Props("a", 3), ineed.Opt{Options: b})
		requireFailure(t, err, "a", ineed.CodeNumber, "a must be a number less than 3")
	})

	t.Run("custom message", func(t *testing.T) {
		err := ineed.Numbers(ineed.Props("age", -1), ineed.Bounds{GreaterOrEqual: ineed.Bound(0)},
			ineed.Opt{MessageFunc: func(name string) string { return name + " is out of range" }})
		requireFailure(t, err, "age", ineed.CodeNumber, "age is out of range")
	})
}

func TestNumbers_MapBounds(t *testing.T) {
	t.Parallel()

	v, ok := ineed.Lookup(ineed.CodeNumber)
	require.True(t, ok)

	t.Run("applies numeric entries", func(t *testing.T) {
		opts := ineed.Opt{Options: map[string]any{"greater": 3, "lessOrEqual": json.Number("10")}}
		assert.NoError(t, v(ineed.Props("a", 5), opts))

		err := v(ineed.Props("a", 11), opts)
		requireFailure(t, err, "a", ineed.CodeNumber, "a must be a number greater than 3 and less than or equal 10")
	})

	t.Run("ignores non-numeric entries", func(t *testing.T) {
		opts := ineed.Opt{Options: map[string]any{"greater": "3", "less": nil}}
		assert.NoError(t, v(ineed.Props("a", 1), opts))
	})

	t.Run("reads nested properties", func(t *testing.T) {
		opts := ineed.Opt{Options: ineed.Props("less", 2)}
		err := v(ineed.Props("a", 2), opts)
		requireFailure(t, err, "a", ineed.CodeNumber, "a must be a number less than 2")
	})

	t.Run("unstructured options mean no bounds", func(t *testing.T) {
		assert.NoError(t, v(ineed.Props("a", -100), ineed.Opt{Options: 5}))
		err := v(ineed.Props("a", "x"), ineed.Opt{Options: "greater"})
		requireFailure(t, err, "a", ineed.CodeNumber, "a must be a number")
	})
}

func TestLookup(t *testing.T) {
	t.Parallel()

	t.Run("resolves every catalog code", func(t *testing.T) {
		for _, code := range []string{
			ineed.CodeNonEmptyString,
			ineed.CodeStringOrUndefined,
			ineed.CodeStringNotMatch,
			ineed.CodeArray,
			ineed.CodeArrayOfNonEmptyStrings,
			ineed.CodeObject,
			ineed.CodeSpecificValue,
			ineed.CodeNumber,
		} {
			v, ok := ineed.Lookup(code)
			assert.True(t, ok, code)
			assert.NotNil(t, v, code)
		}
	})

	t.Run("unknown code", func(t *testing.T) {
		_, ok := ineed.Lookup("nope")
		assert.False(t, ok)
	})

	t.Run("string pattern from options", func(t *testing.T) {
		v, _ := ineed.Lookup(ineed.CodeStringNotMatch)
		err := v(ineed.Props("slug", "ok", "title", "has space"), ineed.Opt{Options: `\s`})
		requireFailure(t, err, "title", ineed.CodeStringNotMatch, `title must be a string and it can't match /\s/`)
	})

	t.Run("invalid string pattern rejects values", func(t *testing.T) {
		v, _ := ineed.Lookup(ineed.CodeStringNotMatch)
		err := v(ineed.Props("slug", "ok"), ineed.Opt{Options: `(`})
		requireFailure(t, err, "slug", ineed.CodeStringNotMatch, "slug must be a string and it can't match /(/ (invalid pattern)")
	})

	t.Run("matches the typed entry point", func(t *testing.T) {
		v, _ := ineed.Lookup(ineed.CodeStringNotMatch)
		props := ineed.Props("a", "abc1")
		re := regexp.MustCompile(`\d`)
		assert.Equal(t, ineed.StringsNotMatch(props, re), v(props, ineed.Opt{Options: re}))
	})
}
