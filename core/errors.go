package core

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// ErrorKind classifies an APIError so callers can react without matching on message text.
type ErrorKind int

const (
	// KindNetwork covers transport failures and generic non-2xx responses.
	KindNetwork ErrorKind = iota
	// KindAuthentication is a failed credentials exchange; never retried automatically.
	KindAuthentication
	// KindMissingToken is a caller contract violation: an authorized call with no token held.
	KindMissingToken
	// KindUnauthorized is a rejected (expired/invalid) token; triggers session invalidation.
	KindUnauthorized
)

// APIError is the single failure shape for every remote call.
type APIError struct {
	Status int
	Detail string
	Kind   ErrorKind
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("error %d", e.Status)
}

func NewAPIError(status int, detail string) *APIError {
	kind := KindNetwork
	if status == http.StatusUnauthorized {
		kind = KindUnauthorized
	}
	return &APIError{Status: status, Detail: detail, Kind: kind}
}

func NewAuthenticationError(detail string) *APIError {
	if detail == "" {
		detail = "incorrect username or password"
	}
	return &APIError{Status: http.StatusBadRequest, Detail: detail, Kind: KindAuthentication}
}

// ErrMissingToken is returned when an authorized operation is attempted with no token held.
var ErrMissingToken = &APIError{Kind: KindMissingToken, Detail: "no access token held"}

func errorIsKind(err error, kind ErrorKind) bool {
	if apiErr, ok := errors.Cause(err).(*APIError); ok {
		return apiErr.Kind == kind
	}
	return false
}

func IsAuthenticationFailed(err error) bool { return errorIsKind(err, KindAuthentication) }
func IsMissingToken(err error) bool         { return errorIsKind(err, KindMissingToken) }
func IsUnauthorized(err error) bool         { return errorIsKind(err, KindUnauthorized) }

// FieldError is used to indicate an error with a specific struct field.
type FieldError struct {
	Field string
	Error string
}

type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{err, flds}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		return ""
	}
	return err.Err.Error()
}
