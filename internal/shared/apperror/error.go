package apperror

import "fmt"

type AppError struct {
	Code       string         // machine-readable code (e.g. INVALID_INPUT)
	Message    string         // user-facing message
	HTTPStatus int            // HTTP status code
	Err        error          // wrapped original error (optional)
	Meta       map[string]any // structured detail (optional, e.g. quota reset date)
}

// WithMeta returns a copy of the error carrying structured detail, so the
// shared sentinels stay immutable.
func (e *AppError) WithMeta(meta map[string]any) *AppError {
	clone := *e
	clone.Meta = meta
	return &clone
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap supports errors.Is / errors.As over the wrapped cause.
func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates an AppError without a wrapped cause.
func New(code, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap creates an AppError carrying an underlying cause.
func Wrap(err error, code, message string, httpStatus int) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}
