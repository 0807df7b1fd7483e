// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants and the typed
// error used across the gym client.
//
// Msg* constants fall into two groups: messages the remote API writes into
// error bodies (matched by the adapter), and user-facing fallback texts shown
// when an error carries no displayable server message.
package app

// Messages produced by the remote API.
const (
	// MsgTokenExpired is sent with 401 when the access token is past its
	// expiry. The client may refresh and retry.
	MsgTokenExpired = "token.expired"

	// MsgTokenInvalid is sent with 401 when the access token cannot be
	// verified. The client may refresh and retry.
	MsgTokenInvalid = "token.invalid"
)

// User-facing fallback messages.
const (
	// MsgConnectivity is the generic text for transport failures and
	// unknown errors.
	MsgConnectivity = "Could not reach the server. Try again later."

	// MsgSignInFailed is shown when sign-in fails without a server message.
	MsgSignInFailed = "Could not sign in. Try again later."

	// MsgSignUpFailed is shown when account creation fails without a server
	// message.
	MsgSignUpFailed = "Could not create the account. Try again."

	// MsgGroupsFailed is shown when muscle groups cannot be loaded.
	MsgGroupsFailed = "Could not load the muscle groups."

	// MsgExercisesFailed is shown when the exercise list cannot be loaded.
	MsgExercisesFailed = "Could not load the exercises."

	// MsgExerciseFailed is shown when exercise details cannot be loaded.
	MsgExerciseFailed = "Could not load the exercise details."

	// MsgHistoryFailed is shown when the history cannot be loaded.
	MsgHistoryFailed = "Could not load the history."

	// MsgRegisterFailed is shown when marking an exercise as done fails.
	MsgRegisterFailed = "Could not register the exercise."

	// MsgProfileFailed is shown when the profile update fails.
	MsgProfileFailed = "Could not update the profile. Try again later."

	// MsgAvatarFailed is shown when the avatar upload fails.
	MsgAvatarFailed = "Could not update the photo. Try again later."

	// MsgNotSignedIn is shown when a command requires a session.
	MsgNotSignedIn = "You are not signed in."

	// MsgSessionExpired is shown when the API rejected the session during a
	// command.
	MsgSessionExpired = "Your session has expired. Sign in again."

	// MsgEmailAlreadyUsed is shown when sign-up hits an existing account and
	// the server sent no message.
	MsgEmailAlreadyUsed = "This e-mail is already in use."
)
