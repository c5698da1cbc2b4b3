package errs

import (
	"errors"
	"fmt"
	"net/http"

	"gametracker/internal/pkg/logx"
)

// CustomError carries a business code, a user-facing message and the HTTP status the
// handlers respond with.
type CustomError struct {
	Code    int
	Message string
	Status  int
}

// Error implements the error interface.
func (e *CustomError) Error() string {
	return fmt.Sprintf("error code %d (HTTP %d): %s", e.Code, e.Status, e.Message)
}

// Is reports whether target is a CustomError with the same code, so callers can write
// errors.Is(err, errs.NewError(errs.ErrGameNotFound)).
func (e *CustomError) Is(target error) bool {
	var other *CustomError
	if !errors.As(target, &other) {
		return false
	}
	return other.Code == e.Code
}

// NewError returns the CustomError registered for code. An unknown code yields ErrUnknown.
// For ErrUnknown, an error passed in details is logged as the underlying cause.
func NewError(code int, details ...any) *CustomError {
	tmpl, ok := errorMap[code]
	if !ok {
		logx.Error(fmt.Errorf("no entry for code %d", code), "errs: unknown error code requested")
		tmpl = errorMap[ErrUnknown]
	}

	out := tmpl
	if out.Status == 0 {
		out.Status = http.StatusBadRequest
	}

	if code == ErrUnknown && len(details) > 0 {
		if cause, ok := details[0].(error); ok {
			logx.Error(cause, "errs: internal error")
		}
	}

	return &out
}

// Code extracts the business code from err, or 0 when err is not a CustomError.
func Code(err error) int {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce.Code
	}
	return 0
}
