// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The locsync Authors

package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20poly1305"
)

// fieldSealer is the private implementation of [Sealer]. It uses
// XChaCha20-Poly1305 with a random 24-byte nonce prepended to the
// ciphertext: blob = nonce ‖ ciphertext.
type fieldSealer struct {
	key []byte
}

// DeriveKey derives a 256-bit sealing key from an arbitrary secret string.
// The derivation is a plain SHA-256: the secret is a locally stored
// machine key, not a human password, so a memory-hard KDF buys nothing here.
func DeriveKey(secret string) []byte {
	sum := sha256.Sum256([]byte(secret))
	return sum[:]
}

// NewSealer constructs a [Sealer] from a 32-byte key (see [DeriveKey]).
// Returns an error for any other key length.
func NewSealer(key []byte) (Sealer, error) {
	if len(key) != chacha20poly1305.KeySize {
		return nil, fmt.Errorf("sealer key must be %d bytes, got %d", chacha20poly1305.KeySize, len(key))
	}
	k := make([]byte, len(key))
	copy(k, key)
	return &fieldSealer{key: k}, nil
}

// Seal implements [Sealer]. A fresh random nonce is generated per call and
// prepended to the ciphertext so Open can split it out.
func (s *fieldSealer) Seal(plaintext []byte) ([]byte, error) {
	aead, err := chacha20poly1305.NewX(s.key)
	if err != nil {
		return nil, fmt.Errorf("create aead: %w", err)
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	ciphertext := aead.Seal(nil, nonce, plaintext, nil)
	return append(nonce, ciphertext...), nil
}

// Open implements [Sealer]. The blob must be at least as long as the nonce
// (24 bytes). An authentication failure almost always means the blob was
// sealed with a different key.
func (s *fieldSealer) Open(blob []byte) ([]byte, error) {
	aead, err := chacha20poly1305.NewX(s.key)
	if err != nil {
		return nil, fmt.Errorf("create aead: %w", err)
	}

	nonceSize := aead.NonceSize()
	if len(blob) < nonceSize {
		return nil, fmt.Errorf("sealed blob too short")
	}

	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]
	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("open sealed blob: %w", err)
	}

	return plaintext, nil
}

// nopSealer passes values through unchanged. For tests.
type nopSealer struct{}

// NewNopSealer returns a [Sealer] that performs no encryption. It is
// intended for tests that assert on projected field contents.
func NewNopSealer() Sealer {
	return nopSealer{}
}

func (nopSealer) Seal(plaintext []byte) ([]byte, error) { return plaintext, nil }

func (nopSealer) Open(blob []byte) ([]byte, error) { return blob, nil }
