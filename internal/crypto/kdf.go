// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"

	"github.com/MKhiriev/go-journal-keeper/models"
)

const (
	// SaltSize is the length of freshly generated salts.
	SaltSize = 16

	// verifierLabel domain-separates the verifier from every other value
	// computed under the account key.
	verifierLabel = "go-journal-keeper/password-verifier/v1"

	// maxMemoryKiB caps the memory cost at 4 GiB.
	maxMemoryKiB = 4 * 1024 * 1024
)

// argonKeyDeriver is the private implementation of [KeyDeriver].
type argonKeyDeriver struct {
	// defaults are used for every new credential. They can be tuned per
	// deployment target (e.g. mobile vs. desktop); existing credentials keep
	// the params they were created with.
	defaults models.KDFParams
	rand     io.Reader
}

// DefaultKDFParams returns the Argon2id parameters recommended by OWASP:
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func DefaultKDFParams() models.KDFParams {
	return models.KDFParams{
		Time:      1,
		MemoryKiB: 64 * 1024,
		Threads:   4,
		KeyLen:    KeySize,
	}
}

// NewKeyDeriver constructs a [KeyDeriver] that creates new credentials with
// defaults. Zero fields in defaults are filled from [DefaultKDFParams].
// Returns ErrDerivationParamsInvalid if the resulting params are unusable.
func NewKeyDeriver(defaults models.KDFParams) (KeyDeriver, error) {
	base := DefaultKDFParams()
	if defaults.Time != 0 {
		base.Time = defaults.Time
	}
	if defaults.MemoryKiB != 0 {
		base.MemoryKiB = defaults.MemoryKiB
	}
	if defaults.Threads != 0 {
		base.Threads = defaults.Threads
	}
	if defaults.KeyLen != 0 {
		base.KeyLen = defaults.KeyLen
	}

	if err := ValidateKDFParams(base); err != nil {
		return nil, err
	}

	return &argonKeyDeriver{defaults: base, rand: rand.Reader}, nil
}

// ValidateKDFParams checks that params can be fed to Argon2id and yield an
// [AccountKey].
func ValidateKDFParams(params models.KDFParams) error {
	switch {
	case params.Time < 1:
		return fmt.Errorf("%w: time cost must be at least 1", ErrDerivationParamsInvalid)
	case params.Threads < 1:
		return fmt.Errorf("%w: parallelism must be at least 1", ErrDerivationParamsInvalid)
	case params.MemoryKiB < 8*uint32(params.Threads):
		return fmt.Errorf("%w: memory cost must be at least 8 KiB per thread", ErrDerivationParamsInvalid)
	case params.MemoryKiB > maxMemoryKiB:
		return fmt.Errorf("%w: memory cost %d KiB exceeds limit", ErrDerivationParamsInvalid, params.MemoryKiB)
	case params.KeyLen != KeySize:
		return fmt.Errorf("%w: key length must be %d bytes", ErrDerivationParamsInvalid, KeySize)
	}
	return nil
}

// GenerateSalt implements [KeyDeriver]. It reads [SaltSize] random bytes
// from the OS CSPRNG.
func (k *argonKeyDeriver) GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(k.rand, salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	return salt, nil
}

// DefaultParams implements [KeyDeriver].
func (k *argonKeyDeriver) DefaultParams() models.KDFParams {
	return k.defaults
}

// Derive implements [KeyDeriver]. The result exists only in client memory.
func (k *argonKeyDeriver) Derive(password string, salt []byte, params models.KDFParams) (AccountKey, error) {
	if err := ValidateKDFParams(params); err != nil {
		return AccountKey{}, err
	}
	if len(salt) < SaltSize {
		return AccountKey{}, fmt.Errorf("%w: salt must be at least %d bytes", ErrDerivationParamsInvalid, SaltSize)
	}

	raw := argon2.IDKey([]byte(password), salt, params.Time, params.MemoryKiB, params.Threads, params.KeyLen)
	defer clear(raw)

	return NewAccountKey(raw)
}

// NewVerifier implements [KeyDeriver]. It computes
// HMAC-SHA256(key, verifierLabel); the server compares it on unlock but cannot
// compute the key back from it.
func (k *argonKeyDeriver) NewVerifier(key AccountKey) []byte {
	mac := hmac.New(sha256.New, key.b)
	mac.Write([]byte(verifierLabel))
	return mac.Sum(nil)
}

// Verify implements [KeyDeriver].
func (k *argonKeyDeriver) Verify(key AccountKey, verifier []byte) bool {
	if key.IsZero() || len(verifier) == 0 {
		return false
	}
	return hmac.Equal(k.NewVerifier(key), verifier)
}
