package oautherrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is a closed protocol error carrying an RFC 6749 error code and the
// HTTP status it maps to. The wrapped cause is never serialized to clients.
type Error struct {
	Code        string `json:"error"`
	Description string `json:"error_description,omitempty"`
	Status      int    `json:"-"`
	Err         error  `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Description, e.Err)
	}
	if e.Description != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Description)
	}
	return e.Code
}

// Unwrap returns the wrapped cause.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// New creates a new protocol error.
func New(code string, status int, description string) *Error {
	return &Error{Code: code, Status: status, Description: description}
}

// Wrap attaches an internal cause to a protocol error. The cause is kept for
// logging only and never reaches the response body.
func Wrap(err error, code string, status int, description string) *Error {
	return &Error{Code: code, Status: status, Description: description, Err: err}
}

// The complete error taxonomy per RFC 6749 §5.2 and RFC 7009 §2.2.1.
// invalid_client is the only 400-family code mapped to 401.
var (
	ErrInvalidRequest       = New("invalid_request", http.StatusBadRequest, "the request is missing a required parameter or is otherwise malformed")
	ErrInvalidClient        = New("invalid_client", http.StatusUnauthorized, "client authentication failed")
	ErrInvalidGrant         = New("invalid_grant", http.StatusBadRequest, "the provided grant is invalid, expired, or revoked")
	ErrUnsupportedGrantType = New("unsupported_grant_type", http.StatusBadRequest, "the grant type is not supported by this server")
	ErrInvalidScope         = New("invalid_scope", http.StatusBadRequest, "the requested scope exceeds the scope granted to the client")
	ErrServerError          = New("server_error", http.StatusInternalServerError, "the authorization server encountered an unexpected condition")
)

// FromError normalises any error into a protocol error. Unknown errors become
// server_error with a generic description so internal detail never leaks.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Wrap(err, ErrServerError.Code, ErrServerError.Status, ErrServerError.Description)
}

// Clone returns a copy of the error with an overridden description.
func Clone(err *Error, description string) *Error {
	if err == nil {
		return nil
	}
	clone := *err
	if description != "" {
		clone.Description = description
	}
	return &clone
}
