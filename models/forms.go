// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SignInForm is the sign-in input as typed by the user.
type SignInForm struct {
	Email    string
	Password string
}

// SignUpForm is the account creation input as typed by the user.
type SignUpForm struct {
	Name            string
	Email           string
	Password        string
	PasswordConfirm string
}

// ProfileForm is the profile edit input. The password fields are optional;
// when Password is set, OldPassword and PasswordConfirm are required.
type ProfileForm struct {
	Name            string
	OldPassword     string
	Password        string
	PasswordConfirm string
}

// ChangesPassword reports whether the form asks for a new password.
func (f ProfileForm) ChangesPassword() bool {
	return f.Password != "" || f.PasswordConfirm != "" || f.OldPassword != ""
}
