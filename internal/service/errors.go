// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrNotSignedIn      = errors.New("not signed in")
	ErrSessionExpired   = errors.New("session expired")
	ErrEmailAlreadyUsed = errors.New("email already in use")
	ErrNotFound         = errors.New("not found")
	ErrAvatarUnreadable = errors.New("avatar file cannot be read")
	ErrAvatarRejected   = errors.New("avatar rejected by the server")
	ErrEmptyGroup       = errors.New("muscle group is required")
	ErrEmptyExerciseID  = errors.New("exercise id is required")
)
