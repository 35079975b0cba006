package crypto

import "errors"

var (
	// ErrDecryptionFailed means the field is unreadable under the key it was
	// opened with: the key is wrong, or the IV/ciphertext was tampered with or
	// corrupted.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrDerivationParamsInvalid is a configuration/programmer error: the KDF
	// parameters or the salt cannot be used for key derivation.
	ErrDerivationParamsInvalid = errors.New("key derivation parameters are invalid")

	// ErrInvalidKey is returned when a key of the wrong size is supplied.
	ErrInvalidKey = errors.New("invalid account key")
)
