// Package errors carries coded errors across layer boundaries. The
// faq domain wraps failures with stable codes (corpus_load,
// corpus_unavailable) and the transport maps those codes to HTTP
// statuses without string matching.
package errors

import "errors"

// AppError pairs an error with a stable machine-readable code.
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Wrap tags err with a code. A nil err produces a standalone coded error.
func Wrap(code, message string, err error) error {
	if err == nil {
		return &AppError{Code: code, Message: message}
	}
	return &AppError{Code: code, Message: message, Err: err}
}

// IsCode reports whether err carries the given code anywhere in its chain.
func IsCode(err error, code string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}
