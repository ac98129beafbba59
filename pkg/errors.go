// Package pkg holds shared helpers used across layers.
package pkg

import "fmt"

// AppError is the HTTP-facing error envelope produced by handlers.
//
// Code is a stable machine-readable identifier (e.g. "DOSSIER_NOT_FOUND"),
// Message is safe to show to API consumers, Err (optional) keeps the wrapped
// cause for logging.
type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error { return e.Err }

// NewDomainError builds an AppError wrapping an underlying cause.
func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

// NewDomainErrorSimple builds an AppError with no wrapped cause.
func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

// HTTPError is the JSON body written for failed requests.
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ToHTTPError strips the internal cause before serialization.
func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Code: e.Code, Message: e.Message}
}
