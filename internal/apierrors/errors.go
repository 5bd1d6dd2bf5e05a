// Package apierrors defines errors that are safe to return to API clients.
package apierrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes exposed to clients.
const (
	CodeValidation                = "validation_error"
	CodePasswordMismatch          = "password_mismatch"
	CodeEmailIsTaken              = "email_taken"
	CodeInvalidLink               = "invalid_link"
	CodeUnknownEmail              = "unknown_email"
	CodeInvalidCredentials        = "invalid_credentials"
	CodeInactiveAccount           = "inactive_account"
	CodeMissingToken              = "missing_token"
	CodeInvalidToken              = "invalid_token"
	CodeMissingAuthorizationToken = "not_authenticated"
	CodeInvalidAuthorizationToken = "authentication_failed"
	CodeInternal                  = "internal_error"
)

// APIError is an error with an HTTP status and a client-facing message.
type APIError struct {
	HTTPCode int
	Code     string
	Message  string
	Fields   map[string]string
	Err      error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// As returns the APIError wrapped in err, if any.
func As(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

func NewErrValidation(fields map[string]string) *APIError {
	return &APIError{
		HTTPCode: http.StatusBadRequest,
		Code:     CodeValidation,
		Message:  "Invalid input.",
		Fields:   fields,
	}
}

func NewErrPasswordMismatch() *APIError {
	return &APIError{
		HTTPCode: http.StatusBadRequest,
		Code:     CodePasswordMismatch,
		Message:  "Passwords do not match.",
	}
}

func NewErrEmailIsTaken(email string) *APIError {
	return &APIError{
		HTTPCode: http.StatusBadRequest,
		Code:     CodeEmailIsTaken,
		Message:  "Email is already in use.",
		Fields:   map[string]string{"email": email},
	}
}

// NewErrInvalidLink covers malformed, unknown, expired and reused links alike.
func NewErrInvalidLink() *APIError {
	return &APIError{
		HTTPCode: http.StatusBadRequest,
		Code:     CodeInvalidLink,
		Message:  "Activation link is invalid or has expired.",
	}
}

func NewErrUnknownEmail() *APIError {
	return &APIError{
		HTTPCode: http.StatusBadRequest,
		Code:     CodeUnknownEmail,
		Message:  "User with this email does not exist.",
	}
}

func NewErrInvalidCredentials() *APIError {
	return &APIError{
		HTTPCode: http.StatusBadRequest,
		Code:     CodeInvalidCredentials,
		Message:  "No active account found with the given credentials",
	}
}

func NewErrInactiveAccount() *APIError {
	return &APIError{
		HTTPCode: http.StatusUnauthorized,
		Code:     CodeInactiveAccount,
		Message:  "Account is not activated. Please check your email.",
	}
}

func NewErrMissingToken() *APIError {
	return &APIError{
		HTTPCode: http.StatusBadRequest,
		Code:     CodeMissingToken,
		Message:  "Refresh token not provided.",
	}
}

// NewErrInvalidToken is returned for unusable refresh tokens. The status
// differs between refresh (401) and logout (400).
func NewErrInvalidToken(httpCode int, err error) *APIError {
	return &APIError{
		HTTPCode: httpCode,
		Code:     CodeInvalidToken,
		Message:  "Invalid refresh token.",
		Err:      err,
	}
}

func NewErrMissingAuthorizationToken() *APIError {
	return &APIError{
		HTTPCode: http.StatusUnauthorized,
		Code:     CodeMissingAuthorizationToken,
		Message:  "Authentication credentials were not provided.",
	}
}

func NewErrInvalidAuthorizationToken() *APIError {
	return &APIError{
		HTTPCode: http.StatusUnauthorized,
		Code:     CodeInvalidAuthorizationToken,
		Message:  "Given token not valid for any token type",
	}
}

func NewErrInternalServerError() *APIError {
	return &APIError{
		HTTPCode: http.StatusInternalServerError,
		Code:     CodeInternal,
		Message:  "internal server error",
	}
}
