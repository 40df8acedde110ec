package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")

	// Projection errors. A missing reference means a required single-valued
	// relation (sender, owner, admin, location, ...) was absent on the input
	// record. It is a data-integrity violation: the projection fails whole,
	// nothing is silently omitted.
	ErrMissingReference = errors.New("missing required reference")

	// Authentication errors
	ErrTokenExpired  = errors.New("token expired")
	ErrTokenInvalid  = errors.New("invalid token")
	ErrTokenNotFound = errors.New("token not found")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
)

// Location errors
var (
	ErrLocationNotFound    = errors.New("location not found")
	ErrLocationInUse       = errors.New("location is referenced by meetups")
	ErrInvalidLocationType = errors.New("invalid location type")
	ErrInvalidCoordinates  = errors.New("invalid coordinates")
	ErrGeocodingFailed     = errors.New("geocoding failed")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// NewMissingReferenceError reports an absent required relation, e.g.
// "message has no sender".
func NewMissingReferenceError(message string) error {
	return &CustomError{
		Err:     ErrMissingReference,
		Message: message,
	}
}

// NewValidationError creates a validation failure with a message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}
