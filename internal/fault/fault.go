// Package fault provides the structured domain errors returned by the
// inventory managers and rendered by the API.
package fault

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a fault independent of its reason.
type Kind string

const (
	KindNotFound        Kind = "NOT_FOUND"
	KindUniqueViolation Kind = "UNIQUE_VIOLATION"
	KindConflict        Kind = "CONFLICT"
	KindInvalid         Kind = "INVALID"
)

// HTTPStatus maps a fault kind to the HTTP status the API responds with.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindNotFound:
		return http.StatusNotFound
	case KindUniqueViolation, KindConflict:
		return http.StatusConflict
	case KindInvalid:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Sentinels for matching by kind with errors.Is.
var (
	ErrNotFound        = &Fault{Kind: KindNotFound}
	ErrUniqueViolation = &Fault{Kind: KindUniqueViolation}
	ErrConflict        = &Fault{Kind: KindConflict}
	ErrInvalid         = &Fault{Kind: KindInvalid}
)

// Fault is a domain error with a machine-readable reason.
type Fault struct {
	Kind    Kind
	Reason  Reason
	Message string
	Cause   error
}

// Error implements the error interface.
func (f *Fault) Error() string {
	if f.Message == "" {
		return string(f.Reason)
	}
	return f.Message
}

// Unwrap returns the underlying cause.
func (f *Fault) Unwrap() error {
	return f.Cause
}

// Is matches a target fault by reason, or by kind when the target carries no reason.
func (f *Fault) Is(target error) bool {
	t, ok := target.(*Fault)
	if !ok {
		return false
	}
	if t.Reason != "" {
		return f.Reason == t.Reason
	}
	return f.Kind == t.Kind
}

func newFault(kind Kind, reason Reason, format string, args ...any) *Fault {
	return &Fault{Kind: kind, Reason: reason, Message: fmt.Sprintf(format, args...)}
}

// NotFound returns a not-found fault.
func NotFound(reason Reason, format string, args ...any) *Fault {
	return newFault(KindNotFound, reason, format, args...)
}

// UniqueViolation returns a unique-key violation fault.
func UniqueViolation(reason Reason, format string, args ...any) *Fault {
	return newFault(KindUniqueViolation, reason, format, args...)
}

// Conflict returns a fault for an operation the current state does not allow.
func Conflict(reason Reason, format string, args ...any) *Fault {
	return newFault(KindConflict, reason, format, args...)
}

// Invalid returns a validation fault.
func Invalid(reason Reason, format string, args ...any) *Fault {
	return newFault(KindInvalid, reason, format, args...)
}

// As extracts the fault from an error chain.
func As(err error) (*Fault, bool) {
	var f *Fault
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}

// KindOf returns the kind of the fault in err, or "" if err carries none.
func KindOf(err error) Kind {
	if f, ok := As(err); ok {
		return f.Kind
	}
	return ""
}
