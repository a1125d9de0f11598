// Package apperr classifies failures crossing the library surface so callers
// can map them to structured results without inspecting error strings.
package apperr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	// NotFound signals an absent entity id.
	NotFound Kind = iota + 1
	// Precondition signals a required field missing, e.g. no YouTube link.
	Precondition
	// Persistence signals a failed transactional write.
	Persistence
	// RemoteService signals a failed remote call or malformed remote data.
	RemoteService
	// Template signals an unrenderable instrumentation-type selector.
	Template
)

func (k Kind) String() string {
	switch k {
	case NotFound:
		return "not found"
	case Precondition:
		return "precondition failed"
	case Persistence:
		return "persistence failed"
	case RemoteService:
		return "remote service failed"
	case Template:
		return "template failed"
	}
	return "unknown"
}

type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func New(k Kind, msg string) error {
	return &Error{Kind: k, Message: msg}
}

func Newf(k Kind, format string, args ...any) error {
	return &Error{Kind: k, Message: fmt.Sprintf(format, args...)}
}

func Wrap(k Kind, err error, msg string) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: k, Message: msg, Cause: err}
}

// Is reports whether any error in the chain carries the given kind.
func Is(err error, k Kind) bool {
	return KindOf(err) == k
}

// KindOf returns the kind of the outermost classified error in the chain,
// or 0 if the chain carries none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
