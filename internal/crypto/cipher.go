// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"

	"github.com/MKhiriev/go-journal-keeper/models"
)

// aesGCMCipher is the AES-256-GCM implementation of [Cipher].
// It holds no key state and is safe for concurrent use.
type aesGCMCipher struct {
	rand io.Reader
}

// NewCipher constructs the AES-256-GCM [Cipher].
func NewCipher() Cipher {
	return &aesGCMCipher{rand: rand.Reader}
}

// Encrypt implements [Cipher]. A random 12-byte IV is generated for every
// call, so encrypting the same plaintext twice yields different blobs.
func (c *aesGCMCipher) Encrypt(plaintext string, key AccountKey) (models.EncryptedBlob, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return models.EncryptedBlob{}, err
	}

	iv := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(c.rand, iv); err != nil {
		return models.EncryptedBlob{}, fmt.Errorf("generate iv: %w", err)
	}

	return models.EncryptedBlob{
		Ciphertext: gcm.Seal(nil, iv, []byte(plaintext), nil),
		IV:         iv,
	}, nil
}

// Decrypt implements [Cipher].
func (c *aesGCMCipher) Decrypt(blob models.EncryptedBlob, key AccountKey) (string, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}

	if len(blob.IV) != gcm.NonceSize() {
		return "", fmt.Errorf("%w: iv must be %d bytes, got %d", ErrDecryptionFailed, gcm.NonceSize(), len(blob.IV))
	}
	if len(blob.Ciphertext) < gcm.Overhead() {
		return "", fmt.Errorf("%w: ciphertext too short", ErrDecryptionFailed)
	}

	// An error here almost always means the wrong key; a tampered blob fails
	// the same tag check.
	plaintext, err := gcm.Open(nil, blob.IV, blob.Ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}

	return string(plaintext), nil
}

func newGCM(key AccountKey) (cipher.AEAD, error) {
	if len(key.b) != KeySize {
		return nil, fmt.Errorf("%w: key is not set", ErrInvalidKey)
	}

	block, err := aes.NewCipher(key.b)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
