// Package ineed provides runtime argument checks for function and API
// boundaries:
//
// - An ordered property mapping (Properties) holding name/value pairs to check
// - A rule engine (AssertAll) turning a single-value Rule into a batch Validator
// - A catalog of ready-made validators (NonEmptyStrings, Arrays, Numbers, ...)
// - A single error kind (*ValidationError, matched by ErrValidation)
//
// A validator either returns nil or the first violation in mapping order;
// later properties are not evaluated. Validators are stateless and safe for
// concurrent use.
//
// Typical usage:
//
//	err := ineed.NonEmptyStrings(ineed.Props("id", id, "email", email))
//	err = ineed.Numbers(ineed.Props("age", age), ineed.Bounds{GreaterOrEqual: ineed.Bound(0)})
//	err = ineed.Arrays(ineed.Props("tags", tags), ineed.Opt{Message: "tags are required"})
//
//	if verr, ok := ineed.AsValidationError(err); ok {
//		log.Printf("bad %s: %s", verr.Property, verr.Message)
//	}
//
// Property mappings can also be read from JSON and YAML documents with the
// source subpackage, which keeps keys in document order.
package ineed
