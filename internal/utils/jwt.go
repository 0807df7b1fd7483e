// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoExpiry is returned by [TokenExpiry] when the token carries no exp claim.
var ErrNoExpiry = errors.New("token has no expiration claim")

// TokenExpiry returns the exp claim of a JWT access token.
//
// The signature is not verified: the client cannot verify it and only uses
// the expiry to schedule a refresh before the server starts rejecting the
// token. Opaque (non-JWT) tokens return an error.
func TokenExpiry(tokenString string) (time.Time, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, fmt.Errorf("error parsing token: %w", err)
	}

	exp, err := token.Claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, fmt.Errorf("error reading expiration claim: %w", err)
	}
	if exp == nil {
		return time.Time{}, ErrNoExpiry
	}

	return exp.Time, nil
}

// ExpiresWithin reports whether tokenString expires within d from now.
// Tokens whose expiry cannot be read report false: they are left for the
// server to judge.
func ExpiresWithin(tokenString string, d time.Duration, now time.Time) bool {
	exp, err := TokenExpiry(tokenString)
	if err != nil {
		return false
	}

	return !exp.After(now.Add(d))
}

// GenerateJWTToken creates an HMAC-SHA256 JWT with the given subject that
// expires after ttl. A negative ttl yields an already expired token.
func GenerateJWTToken(subject string, ttl time.Duration, signKey string) (string, error) {
	if signKey == "" {
		return "", errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return signed, nil
}
