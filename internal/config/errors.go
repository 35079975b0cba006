package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when a
// configuration group is incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates an unknown driver or a missing DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidCryptoConfigs indicates unusable KDF or tokenizer settings.
	ErrInvalidCryptoConfigs = errors.New("invalid crypto configuration")
	// ErrInvalidSessionConfigs indicates a negative idle timeout.
	ErrInvalidSessionConfigs = errors.New("invalid session configuration")
	// ErrInvalidReencryptConfigs indicates a non-positive worker count.
	ErrInvalidReencryptConfigs = errors.New("invalid re-encryption configuration")
)
