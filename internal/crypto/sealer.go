// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

// SaltSize is the length of the random salt used for key derivation.
const SaltSize = 16

var (
	// ErrEmptyPassphrase is returned by [NewSealer] for an empty passphrase.
	ErrEmptyPassphrase = errors.New("empty passphrase")
	// ErrInvalidSalt is returned by [NewSealer] for a salt of the wrong size.
	ErrInvalidSalt = errors.New("invalid salt")
	// ErrOpenFailed is returned by [Sealer.Open] when the blob cannot be
	// authenticated with the current key.
	ErrOpenFailed = errors.New("unable to open sealed value")
)

// KeyParams are the Argon2id tuning parameters used to derive the sealing
// key from a passphrase.
type KeyParams struct {
	Time    uint32
	Memory  uint32
	Threads uint8
}

// DefaultKeyParams follows the OWASP (2024) Argon2id recommendation:
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
var DefaultKeyParams = KeyParams{
	Time:    1,
	Memory:  64 * 1024,
	Threads: 4,
}

const keyLen = 32 // AES-256

// aesSealer is the AES-256-GCM implementation of [Sealer].
type aesSealer struct {
	aead cipher.AEAD
}

// GenerateSalt reads [SaltSize] random bytes from the OS CSPRNG.
func GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	return salt, nil
}

// NewSealer derives a 256-bit key from passphrase and salt with Argon2id and
// returns an AES-256-GCM [Sealer] bound to it. Sealed blobs have the layout
// nonce (12 bytes) ‖ ciphertext.
func NewSealer(passphrase string, salt []byte, params KeyParams) (Sealer, error) {
	if passphrase == "" {
		return nil, ErrEmptyPassphrase
	}
	if len(salt) != SaltSize {
		return nil, ErrInvalidSalt
	}

	key := argon2.IDKey([]byte(passphrase), salt, params.Time, params.Memory, params.Threads, keyLen)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return &aesSealer{aead: gcm}, nil
}

// Seal implements [Sealer].
func (s *aesSealer) Seal(plaintext []byte) ([]byte, error) {
	nonce := make([]byte, s.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	return s.aead.Seal(nonce, nonce, plaintext, nil), nil
}

// Open implements [Sealer].
func (s *aesSealer) Open(sealed []byte) ([]byte, error) {
	nonceSize := s.aead.NonceSize()
	if len(sealed) < nonceSize {
		return nil, fmt.Errorf("%w: ciphertext too short", ErrOpenFailed)
	}

	nonce, ciphertext := sealed[:nonceSize], sealed[nonceSize:]
	plaintext, err := s.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenFailed, err)
	}

	return plaintext, nil
}

type nopSealer struct{}

// NopSealer returns a [Sealer] that stores values as they are. It is used
// when no encryption key is configured.
func NopSealer() Sealer {
	return nopSealer{}
}

func (nopSealer) Seal(plaintext []byte) ([]byte, error) { return plaintext, nil }

func (nopSealer) Open(sealed []byte) ([]byte, error) { return sealed, nil }
