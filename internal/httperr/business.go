package httperr

import "errors"

// Business error codes used by the use cases.
const (
	CodeValidation   = "validation"
	CodeNotFound     = "not_found"
	CodeInvalidState = "invalid_state"
	CodeConflict     = "conflict"
)

type BusinessError struct {
	Code    string
	Message string
}

func (e BusinessError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Code
}

func ErrBusiness(code, message string) error {
	return BusinessError{Code: code, Message: message}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// Message returns the human-readable text of a business error, or the
// fallback for anything else (storage internals stay out of responses).
func Message(err error, fallback string) string {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Error()
	}
	return fallback
}
