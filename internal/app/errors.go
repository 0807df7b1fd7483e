// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"errors"
	"fmt"
)

// Kind classifies a failure for display purposes.
type Kind int

const (
	// KindUnknown is any error not produced through this package.
	KindUnknown Kind = iota

	// KindValidation is malformed user input caught on the client.
	KindValidation

	// KindApplication is an API answer carrying a human-readable message.
	KindApplication

	// KindConnectivity is a transport failure: DNS, refused connection,
	// timeout, or an unreadable response.
	KindConnectivity

	// KindStorage is a failure of the local persistent store.
	KindStorage
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindApplication:
		return "application"
	case KindConnectivity:
		return "connectivity"
	case KindStorage:
		return "storage"
	default:
		return "unknown"
	}
}

// Error is the typed result of a failed client operation. Callers switch on
// Kind (or use [KindOf]) to decide what to display.
type Error struct {
	Kind Kind

	// Message is the displayable text. For KindApplication it is the server
	// message verbatim; for KindValidation it names the broken rule.
	Message string

	// Field is the offending form field for KindValidation.
	Field string

	// Err is the underlying cause, if any.
	Err error
}

func (e *Error) Error() string {
	switch {
	case e.Message != "" && e.Err != nil:
		return fmt.Sprintf("%s error: %s: %v", e.Kind, e.Message, e.Err)
	case e.Message != "":
		return fmt.Sprintf("%s error: %s", e.Kind, e.Message)
	case e.Err != nil:
		return fmt.Sprintf("%s error: %v", e.Kind, e.Err)
	default:
		return e.Kind.String() + " error"
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewValidationError builds a KindValidation error for field.
func NewValidationError(field, message string) *Error {
	return &Error{Kind: KindValidation, Field: field, Message: message}
}

// NewApplicationError builds a KindApplication error carrying the server
// message. cause is usually one of the adapter's HTTP sentinels.
func NewApplicationError(message string, cause error) *Error {
	return &Error{Kind: KindApplication, Message: message, Err: cause}
}

// NewConnectivityError wraps a transport failure.
func NewConnectivityError(cause error) *Error {
	return &Error{Kind: KindConnectivity, Err: cause}
}

// NewStorageError wraps a local store failure.
func NewStorageError(cause error) *Error {
	return &Error{Kind: KindStorage, Err: cause}
}

// KindOf returns the Kind of the first [*Error] in err's chain, or
// KindUnknown.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnknown
}

// Message returns the text to show the user for err: the carried message for
// application and validation errors, fallback otherwise.
func Message(err error, fallback string) string {
	var appErr *Error
	if !errors.As(err, &appErr) {
		return fallback
	}

	switch appErr.Kind {
	case KindApplication, KindValidation:
		if appErr.Message != "" {
			return appErr.Message
		}
	}
	return fallback
}
