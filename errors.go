package ineed

import "errors"

// ErrValidation matches every *ValidationError through errors.Is.
var ErrValidation = errors.New("validation failed")

// Rule codes carried by ValidationError.Code.
const (
	CodeNonEmptyString         = "non_empty_string"
	CodeStringOrUndefined      = "string_or_undefined"
	CodeStringNotMatch         = "string_not_match"
	CodeArray                  = "array"
	CodeArrayOfNonEmptyStrings = "array_of_non_empty_strings"
	CodeObject                 = "object"
	CodeSpecificValue          = "specific_value"
	CodeNumber                 = "number"
)

// ValidationError describes the first property that failed a validator.
type ValidationError struct {
	Property string // Name of the offending property.
	Code     string // Code of the rule that rejected it.
	Message  string
}

func (e *ValidationError) Error() string { return e.Message }

// Is reports whether target is ErrValidation.
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// AsValidationError extracts a *ValidationError from an error using errors.As.
func AsValidationError(err error) (*ValidationError, bool) {
	if err == nil {
		return nil, false
	}
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}

// IsValidationError reports whether err carries a *ValidationError.
func IsValidationError(err error) bool {
	_, ok := AsValidationError(err)
	return ok
}
