// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto seals values the client persists on disk.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/sealer_mock.go -package=mock

// Sealer protects persisted session values at rest.
//
// Seal and Open are inverse operations: Open(Seal(p)) == p for every p.
// Implementations are safe for concurrent use.
type Sealer interface {
	// Seal encrypts plaintext and returns an opaque blob.
	Seal(plaintext []byte) ([]byte, error)

	// Open reverses Seal. It returns [ErrOpenFailed] when the blob was
	// produced with a different key or has been tampered with.
	Open(sealed []byte) ([]byte, error)
}
