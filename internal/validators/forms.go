// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/MKhiriev/go-gym-client/internal/app"
	"github.com/MKhiriev/go-gym-client/models"
)

// Field name constants used to restrict validation to a subset of fields.
// They double as the Field of the returned *app.Error.
const (
	// FieldName targets the user's display name.
	FieldName = "name"

	// FieldEmail targets the login e-mail.
	FieldEmail = "email"

	// FieldPassword targets the (new) password.
	FieldPassword = "password"

	// FieldPasswordConfirm targets the repeated password.
	FieldPasswordConfirm = "password_confirm"

	// FieldOldPassword targets the current password when changing it.
	FieldOldPassword = "old_password"

	// FieldAvatar targets the avatar image file.
	FieldAvatar = "avatar"
)

const (
	// MinPasswordLength is the shortest password the API accepts.
	MinPasswordLength = 6

	// MaxAvatarSize is the largest avatar upload, in bytes.
	MaxAvatarSize = 2 << 20
)

var emailPattern = regexp.MustCompile(`(?i)^[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}$`)

var avatarContentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// user-facing texts per rule
var messages = map[error]string{
	ErrNameRequired:            "Enter your name.",
	ErrEmailRequired:           "Enter your e-mail.",
	ErrInvalidEmail:            "Invalid e-mail.",
	ErrPasswordRequired:        "Enter your password.",
	ErrPasswordTooShort:        fmt.Sprintf("The password must have at least %d characters.", MinPasswordLength),
	ErrPasswordConfirmRequired: "Confirm the password.",
	ErrPasswordMismatch:        "The password confirmation does not match.",
	ErrOldPasswordRequired:     "Enter your current password.",
	ErrAvatarPathRequired:      "Choose an image.",
	ErrAvatarNotImage:          "The file must be a JPEG, PNG, GIF or WebP image.",
	ErrAvatarTooLarge:          "The image is too large. Choose one up to 2MB.",
}

func invalid(field string, rule error) error {
	err := app.NewValidationError(field, messages[rule])
	err.Err = rule
	return err
}

// AvatarContentType returns the MIME type for the file extension of path and
// whether it is an accepted avatar image.
func AvatarContentType(path string) (string, bool) {
	contentType, ok := avatarContentTypes[strings.ToLower(filepath.Ext(path))]
	return contentType, ok
}

// FormValidator checks the forms the user fills in before anything is sent
// to the API. Every failure is an *app.Error of kind validation naming the
// first offending field.
type FormValidator struct{}

// NewFormValidator returns a [Validator] for [models.SignInForm],
// [models.SignUpForm], [models.ProfileForm] and [models.AvatarFile].
func NewFormValidator() Validator {
	return &FormValidator{}
}

// Validate implements [Validator]. With no fields every rule of the form is
// checked.
func (v *FormValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SignInForm:
		return v.validateSignIn(value, fields...)
	case *models.SignInForm:
		return v.validateSignIn(*value, fields...)

	case models.SignUpForm:
		return v.validateSignUp(value, fields...)
	case *models.SignUpForm:
		return v.validateSignUp(*value, fields...)

	case models.ProfileForm:
		return v.validateProfile(value, fields...)
	case *models.ProfileForm:
		return v.validateProfile(*value, fields...)

	case models.AvatarFile:
		return v.validateAvatar(value, fields...)
	case *models.AvatarFile:
		return v.validateAvatar(*value, fields...)

	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

type check struct {
	field string
	run   func() error
}

func runChecks(checks []check, fields ...string) error {
	if len(fields) == 0 {
		for _, c := range checks {
			if err := c.run(); err != nil {
				return err
			}
		}
		return nil
	}

	for _, field := range fields {
		found := false
		for _, c := range checks {
			if c.field != field {
				continue
			}
			found = true
			if err := c.run(); err != nil {
				return err
			}
		}
		if !found {
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}
	return nil
}

func (v *FormValidator) validateSignIn(form models.SignInForm, fields ...string) error {
	return runChecks([]check{
		{FieldEmail, func() error { return checkEmail(form.Email) }},
		{FieldPassword, func() error { return checkPassword(FieldPassword, form.Password) }},
	}, fields...)
}

func (v *FormValidator) validateSignUp(form models.SignUpForm, fields ...string) error {
	return runChecks([]check{
		{FieldName, func() error { return checkName(form.Name) }},
		{FieldEmail, func() error { return checkEmail(form.Email) }},
		{FieldPassword, func() error { return checkPassword(FieldPassword, form.Password) }},
		{FieldPasswordConfirm, func() error { return checkConfirm(form.Password, form.PasswordConfirm) }},
	}, fields...)
}

// validateProfile leaves the password fields alone unless the form changes
// the password.
func (v *FormValidator) validateProfile(form models.ProfileForm, fields ...string) error {
	changing := form.ChangesPassword()

	return runChecks([]check{
		{FieldName, func() error { return checkName(form.Name) }},
		{FieldOldPassword, func() error {
			if changing && form.OldPassword == "" {
				return invalid(FieldOldPassword, ErrOldPasswordRequired)
			}
			return nil
		}},
		{FieldPassword, func() error {
			if !changing {
				return nil
			}
			return checkPassword(FieldPassword, form.Password)
		}},
		{FieldPasswordConfirm, func() error {
			if !changing {
				return nil
			}
			return checkConfirm(form.Password, form.PasswordConfirm)
		}},
	}, fields...)
}

func (v *FormValidator) validateAvatar(file models.AvatarFile, fields ...string) error {
	return runChecks([]check{
		{FieldAvatar, func() error {
			switch {
			case strings.TrimSpace(file.Path) == "":
				return invalid(FieldAvatar, ErrAvatarPathRequired)
			case file.Size > MaxAvatarSize:
				return invalid(FieldAvatar, ErrAvatarTooLarge)
			}
			if _, ok := AvatarContentType(file.Path); !ok {
				return invalid(FieldAvatar, ErrAvatarNotImage)
			}
			return nil
		}},
	}, fields...)
}

func checkName(name string) error {
	if strings.TrimSpace(name) == "" {
		return invalid(FieldName, ErrNameRequired)
	}
	return nil
}

func checkEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return invalid(FieldEmail, ErrEmailRequired)
	}
	if !emailPattern.MatchString(email) {
		return invalid(FieldEmail, ErrInvalidEmail)
	}
	return nil
}

func checkPassword(field, password string) error {
	if password == "" {
		return invalid(field, ErrPasswordRequired)
	}
	if len([]rune(password)) < MinPasswordLength {
		return invalid(field, ErrPasswordTooShort)
	}
	return nil
}

func checkConfirm(password, confirm string) error {
	if confirm == "" {
		return invalid(FieldPasswordConfirm, ErrPasswordConfirmRequired)
	}
	if confirm != password {
		return invalid(FieldPasswordConfirm, ErrPasswordMismatch)
	}
	return nil
}
