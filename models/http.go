// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SignInRequest is the body of POST /sessions.
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignInResponse is the body returned by POST /sessions. A response missing
// any of the three fields is treated as malformed.
type SignInResponse struct {
	User         User   `json:"user"`
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token"`
}

// TokenPair returns the credentials carried by the response.
func (r SignInResponse) TokenPair() TokenPair {
	return TokenPair{AccessToken: r.Token, RefreshToken: r.RefreshToken}
}

// RefreshTokenRequest is the body of POST /sessions/refresh-token.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// SignUpRequest is the body of POST /users.
type SignUpRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ProfileUpdateRequest is the body of PUT /users. Password and OldPassword
// are only sent when the user changes the password.
type ProfileUpdateRequest struct {
	Name        string `json:"name"`
	Password    string `json:"password,omitempty"`
	OldPassword string `json:"old_password,omitempty"`
}

// HistoryRegisterRequest is the body of POST /history.
type HistoryRegisterRequest struct {
	ExerciseID ID `json:"exercise_id"`
}

// ErrorResponse is the error body produced by the API for 4xx/5xx answers.
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
