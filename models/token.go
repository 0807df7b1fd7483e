// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// TokenPair is the access/refresh credential pair issued by POST /sessions
// and rotated by POST /sessions/refresh-token. Both halves are stored and
// cleared together.
type TokenPair struct {
	// AccessToken is the short-lived bearer credential.
	AccessToken string `json:"token"`

	// RefreshToken is exchanged for a new pair when the access token expires.
	RefreshToken string `json:"refresh_token"`
}

// IsZero reports whether the pair has no access token.
func (p TokenPair) IsZero() bool {
	return p.AccessToken == ""
}
