// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/MKhiriev/go-gym-client/internal/app"
	"github.com/MKhiriev/go-gym-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validSignUp() models.SignUpForm {
	return models.SignUpForm{
		Name:            "A",
		Email:           "a@b.com",
		Password:        "secret1",
		PasswordConfirm: "secret1",
	}
}

func assertRule(t *testing.T, err error, field string, rule error) {
	t.Helper()
	require.Error(t, err)
	assert.ErrorIs(t, err, rule)

	var appErr *app.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, app.KindValidation, appErr.Kind)
	assert.Equal(t, field, appErr.Field)
	assert.NotEmpty(t, appErr.Message)
}

// ---------------------------------------------------------------------------
// Sign in
// ---------------------------------------------------------------------------

func TestValidate_SignIn(t *testing.T) {
	v := NewFormValidator()
	ctx := context.Background()

	tests := []struct {
		name  string
		form  models.SignInForm
		field string
		rule  error
	}{
		{"missing email", models.SignInForm{Password: "secret1"}, FieldEmail, ErrEmailRequired},
		{"blank email", models.SignInForm{Email: "  ", Password: "secret1"}, FieldEmail, ErrEmailRequired},
		{"bad email", models.SignInForm{Email: "a@b", Password: "secret1"}, FieldEmail, ErrInvalidEmail},
		{"missing password", models.SignInForm{Email: "a@b.com"}, FieldPassword, ErrPasswordRequired},
		{"short password", models.SignInForm{Email: "a@b.com", Password: "12345"}, FieldPassword, ErrPasswordTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertRule(t, v.Validate(ctx, tt.form), tt.field, tt.rule)
		})
	}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, v.Validate(ctx, models.SignInForm{Email: "A.B@Example.COM", Password: "secret1"}))
		assert.NoError(t, v.Validate(ctx, &models.SignInForm{Email: "a@b.com", Password: "secret1"}))
	})
}

// ---------------------------------------------------------------------------
// Sign up
// ---------------------------------------------------------------------------

func TestValidate_SignUp(t *testing.T) {
	v := NewFormValidator()
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(f *models.SignUpForm)
		field  string
		rule   error
	}{
		{"missing name", func(f *models.SignUpForm) { f.Name = " " }, FieldName, ErrNameRequired},
		{"bad email", func(f *models.SignUpForm) { f.Email = "nope" }, FieldEmail, ErrInvalidEmail},
		{"short password", func(f *models.SignUpForm) { f.Password, f.PasswordConfirm = "123", "123" }, FieldPassword, ErrPasswordTooShort},
		{"missing confirmation", func(f *models.SignUpForm) { f.PasswordConfirm = "" }, FieldPasswordConfirm, ErrPasswordConfirmRequired},
		{"mismatch", func(f *models.SignUpForm) { f.PasswordConfirm = "secret2" }, FieldPasswordConfirm, ErrPasswordMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validSignUp()
			tt.mutate(&form)
			assertRule(t, v.Validate(ctx, form), tt.field, tt.rule)
		})
	}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, v.Validate(ctx, validSignUp()))
	})

	t.Run("first failing field wins", func(t *testing.T) {
		assertRule(t, v.Validate(ctx, models.SignUpForm{}), FieldName, ErrNameRequired)
	})
}

// ---------------------------------------------------------------------------
// Profile
// ---------------------------------------------------------------------------

func TestValidate_Profile(t *testing.T) {
	v := NewFormValidator()
	ctx := context.Background()

	t.Run("name only", func(t *testing.T) {
		assert.NoError(t, v.Validate(ctx, models.ProfileForm{Name: "B"}))
	})

	t.Run("name required", func(t *testing.T) {
		assertRule(t, v.Validate(ctx, models.ProfileForm{}), FieldName, ErrNameRequired)
	})

	t.Run("password change", func(t *testing.T) {
		form := models.ProfileForm{Name: "B", OldPassword: "secret1", Password: "secret2", PasswordConfirm: "secret2"}
		assert.NoError(t, v.Validate(ctx, form))
	})

	t.Run("old password required", func(t *testing.T) {
		form := models.ProfileForm{Name: "B", Password: "secret2", PasswordConfirm: "secret2"}
		assertRule(t, v.Validate(ctx, form), FieldOldPassword, ErrOldPasswordRequired)
	})

	t.Run("new password too short", func(t *testing.T) {
		form := models.ProfileForm{Name: "B", OldPassword: "secret1", Password: "abc", PasswordConfirm: "abc"}
		assertRule(t, v.Validate(ctx, form), FieldPassword, ErrPasswordTooShort)
	})

	t.Run("confirmation required", func(t *testing.T) {
		form := models.ProfileForm{Name: "B", OldPassword: "secret1", Password: "secret2"}
		assertRule(t, v.Validate(ctx, form), FieldPasswordConfirm, ErrPasswordConfirmRequired)
	})

	t.Run("confirmation without password", func(t *testing.T) {
		form := models.ProfileForm{Name: "B", OldPassword: "secret1", PasswordConfirm: "secret2"}
		assertRule(t, v.Validate(ctx, form), FieldPassword, ErrPasswordRequired)
	})
}

// ---------------------------------------------------------------------------
// Avatar
// ---------------------------------------------------------------------------

func TestValidate_Avatar(t *testing.T) {
	v := NewFormValidator()
	ctx := context.Background()

	tests := []struct {
		name string
		file models.AvatarFile
		rule error
	}{
		{"empty path", models.AvatarFile{}, ErrAvatarPathRequired},
		{"not an image", models.AvatarFile{Path: "notes.txt", Size: 10}, ErrAvatarNotImage},
		{"no extension", models.AvatarFile{Path: "photo", Size: 10}, ErrAvatarNotImage},
		{"too large", models.AvatarFile{Path: "me.png", Size: MaxAvatarSize + 1}, ErrAvatarTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertRule(t, v.Validate(ctx, tt.file), FieldAvatar, tt.rule)
		})
	}

	t.Run("exactly the limit", func(t *testing.T) {
		assert.NoError(t, v.Validate(ctx, &models.AvatarFile{Path: "ME.JPG", Size: MaxAvatarSize}))
	})
}

func TestAvatarContentType(t *testing.T) {
	ct, ok := AvatarContentType("/tmp/Me.PNG")
	assert.True(t, ok)
	assert.Equal(t, "image/png", ct)

	ct, ok = AvatarContentType("a.jpeg")
	assert.True(t, ok)
	assert.Equal(t, "image/jpeg", ct)

	_, ok = AvatarContentType("a.bmp")
	assert.False(t, ok)
}

// ---------------------------------------------------------------------------
// Field scoping and unsupported input
// ---------------------------------------------------------------------------

func TestValidate_FieldScoping(t *testing.T) {
	v := NewFormValidator()
	ctx := context.Background()
	form := models.SignUpForm{Email: "a@b.com"}

	assert.NoError(t, v.Validate(ctx, form, FieldEmail))
	assertRule(t, v.Validate(ctx, form, FieldEmail, FieldPassword), FieldPassword, ErrPasswordRequired)

	err := v.Validate(ctx, form, "nickname")
	assert.ErrorIs(t, err, ErrUnknownField)
	assert.True(t, strings.Contains(err.Error(), "nickname"))
}

func TestValidate_UnsupportedType(t *testing.T) {
	err := NewFormValidator().Validate(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}
