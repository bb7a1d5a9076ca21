package errors

import (
	"errors"
	"net/http"
)

// Kind classifies a failure. Every kind maps to exactly one HTTP status.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindAuthorization
	KindAuthentication
	KindInvariant
	KindPersistence
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindAuthorization:
		return "authorization"
	case KindAuthentication:
		return "authentication"
	case KindInvariant:
		return "invariant"
	case KindPersistence:
		return "persistence"
	default:
		return "internal"
	}
}

func (k Kind) StatusCode() int {
	switch k {
	case KindValidation, KindInvariant:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindAuthorization:
		return http.StatusForbidden
	case KindAuthentication:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// default error is internal service error at handler level
// if error has different status code use ErrorWithStatusCode
type ErrorWithStatusCode struct {
	Message    string
	StatusCode int
	Kind       Kind
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}

func newError(kind Kind, message string) *ErrorWithStatusCode {
	return &ErrorWithStatusCode{Message: message, StatusCode: kind.StatusCode(), Kind: kind}
}

func Validation(message string) error     { return newError(KindValidation, message) }
func NotFound(message string) error       { return newError(KindNotFound, message) }
func Authorization(message string) error  { return newError(KindAuthorization, message) }
func Authentication(message string) error { return newError(KindAuthentication, message) }
func Invariant(message string) error      { return newError(KindInvariant, message) }
func Persistence(message string) error    { return newError(KindPersistence, message) }

// KindOf reports the kind of err, KindInternal for anything unclassified.
func KindOf(err error) Kind {
	var e *ErrorWithStatusCode
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
