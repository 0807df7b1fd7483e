// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"errors"

	"github.com/MKhiriev/go-gym-client/internal/app"
	"github.com/MKhiriev/go-gym-client/internal/service"
)

// Error is a failed command. Message is the text shown to the user; Err is
// the cause, kept for logging.
type Error struct {
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// fail turns err into an *Error. Server messages are shown verbatim,
// transport failures get the connectivity text and anything else gets
// fallback.
func fail(err error, fallback string) error {
	var msg string
	switch {
	case errors.Is(err, service.ErrNotSignedIn):
		msg = app.MsgNotSignedIn
	case errors.Is(err, service.ErrSessionExpired):
		msg = app.MsgSessionExpired
	case app.KindOf(err) == app.KindConnectivity:
		msg = app.MsgConnectivity
	default:
		msg = app.Message(err, fallback)
	}

	if msg == "" {
		msg = app.MsgConnectivity
	}
	return &Error{Message: msg, Err: err}
}
