// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks user input on the client before it reaches the
// session manager or the API.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation.
//   - FormValidator: the rules of the sign-in, sign-up and profile forms and
//     of the avatar file.
//
// Failures are *app.Error values of kind validation; their Err is one of the
// sentinels in errors.go so callers can use [errors.Is].
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
