package model

import "errors"

var (
	ErrValidation         = errors.New("validation error")                  // 400
	ErrBadGateway         = errors.New("bad gateway")                       // 500, upstream failure
	ErrCheckoutURLMissing = errors.New("checkout url missing from response") // 500
	ErrOrderNotFound      = errors.New("order not found")
	ErrUnknownAPIVersion  = errors.New("unknown api version")
	ErrUnknownStrategy    = errors.New("unknown address strategy")
	ErrGeoLookup          = errors.New("geolocation lookup failed")
)

// ValidationError carries a client-facing message and matches ErrValidation.
type ValidationError struct {
	Field   string
	Message string
}

func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Field: field, Message: msg}
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }
