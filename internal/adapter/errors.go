// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// HTTP status sentinels produced by mapHTTPError.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrPayloadTooLarge     = errors.New("payload too large")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrUnexpectedStatus    = errors.New("unexpected status")
)

var (
	// ErrMalformedResponse is returned when a successful response cannot be
	// decoded or lacks required fields.
	ErrMalformedResponse = errors.New("malformed response")

	// ErrNoRefreshToken is returned by RefreshTokens when no refresh token is
	// installed.
	ErrNoRefreshToken = errors.New("no refresh token")

	// ErrCredentialsChanged is returned when the credentials were replaced or
	// cleared while a refresh was in flight. The refreshed pair is discarded.
	ErrCredentialsChanged = errors.New("credentials changed during refresh")

	// ErrFileUnreadable is returned when a local file to upload cannot be
	// opened. No request is sent.
	ErrFileUnreadable = errors.New("upload file unreadable")
)
