package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidQuery         = "INVALID_QUERY"
	ErrCodeSourceUnavailable    = "SOURCE_UNAVAILABLE"
	ErrCodeStoreUnavailable     = "STORE_UNAVAILABLE"
	ErrCodeUnresolvableCategory = "UNRESOLVABLE_CATEGORY"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying cause, if any.
func (e *DomainError) Unwrap() error {
	return e.Err
}

// Is reports whether target is a DomainError with the same code, so wrapped
// copies still match the package-level sentinels with errors.Is.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Wrap returns a copy of the error carrying err as its cause.
func (e *DomainError) Wrap(err error) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Err:     err,
	}
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrInvalidQuery         = NewDomainError(ErrCodeInvalidQuery, "invalid query parameters")
	ErrSourceUnavailable    = NewDomainError(ErrCodeSourceUnavailable, "source dataset unavailable")
	ErrStoreUnavailable     = NewDomainError(ErrCodeStoreUnavailable, "catalog store unavailable")
	ErrUnresolvableCategory = NewDomainError(ErrCodeUnresolvableCategory, "category could not be resolved")
)
