// Package apierror provides the typed error taxonomy shared by services and
// handlers. Services return *apierror.Error values; handlers map the Kind to an
// HTTP status without ever leaking internal details (stack traces, DB errors).
package apierror

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies an error for transport-layer mapping.
type Kind int

const (
	// KindInternal is any unexpected failure. Logged server-side, surfaced
	// to the caller with a generic message.
	KindInternal Kind = iota
	// KindValidation is a missing or malformed input field. Never logged as
	// a server fault, never reaches the datastore.
	KindValidation
	// KindNotFound means a referenced id does not exist.
	KindNotFound
	// KindConflict is a unique-constraint violation from the datastore.
	KindConflict
)

// Error is the canonical service-layer error. Fields lists the offending
// field names for validation errors.
type Error struct {
	Kind    Kind     `json:"-"`
	Message string   `json:"detail"`
	Fields  []string `json:"fields,omitempty"`
}

func (e *Error) Error() string { return e.Message }

// Validation builds a validation error naming the missing/malformed fields.
func Validation(fields ...string) *Error {
	return &Error{
		Kind:    KindValidation,
		Message: fmt.Sprintf("Los campos %s son obligatorios o tienen un formato invalido.", strings.Join(fields, ", ")),
		Fields:  fields,
	}
}

// ValidationMsg builds a validation error with a custom message.
func ValidationMsg(msg string, fields ...string) *Error {
	return &Error{Kind: KindValidation, Message: msg, Fields: fields}
}

func NotFound(msg string) *Error { return &Error{Kind: KindNotFound, Message: msg} }

func Conflict(msg string) *Error { return &Error{Kind: KindConflict, Message: msg} }

func Internal(msg string) *Error { return &Error{Kind: KindInternal, Message: msg} }

// KindOf extracts the Kind from any error; non-apierror values are internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
