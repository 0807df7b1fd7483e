// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrNameRequired            = errors.New("name is required")
	ErrEmailRequired           = errors.New("email is required")
	ErrInvalidEmail            = errors.New("invalid email")
	ErrPasswordRequired        = errors.New("password is required")
	ErrPasswordTooShort        = errors.New("password is too short")
	ErrPasswordConfirmRequired = errors.New("password confirmation is required")
	ErrPasswordMismatch        = errors.New("password confirmation does not match")
	ErrOldPasswordRequired     = errors.New("old password is required")
	ErrAvatarPathRequired      = errors.New("avatar path is required")
	ErrAvatarNotImage          = errors.New("avatar is not an image")
	ErrAvatarTooLarge          = errors.New("avatar is too large")
)
