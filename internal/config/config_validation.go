// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the merged [StructuredConfig] can be used at startup.
// Zero-valued groups are accepted when no source set them at all, so that a
// partially built config (as in tests) is still usable; defaults fill them
// in GetStructuredConfig.
func (cfg *StructuredConfig) validate() error {
	db := cfg.Storage.DB
	switch db.Driver {
	case "":
	case "memory":
	case "postgres", "sqlite":
		if db.DSN == "" {
			return fmt.Errorf("%w: %s driver needs a DSN", ErrInvalidStorageConfigs, db.Driver)
		}
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, db.Driver)
	}
	if db.MaxOpenConns < 0 || db.MaxIdleConns < 0 {
		return fmt.Errorf("%w: connection limits must not be negative", ErrInvalidStorageConfigs)
	}

	c := cfg.Crypto
	if c.KDFThreads != 0 && c.KDFMemoryKiB != 0 && c.KDFMemoryKiB < 8*uint32(c.KDFThreads) {
		return fmt.Errorf("%w: kdf memory must be at least 8 KiB per thread", ErrInvalidCryptoConfigs)
	}
	if c.MinTokenLength < 0 {
		return fmt.Errorf("%w: min token length must not be negative", ErrInvalidCryptoConfigs)
	}

	if cfg.Session.IdleTimeout < 0 {
		return ErrInvalidSessionConfigs
	}
	if cfg.Reencrypt.Workers < 0 {
		return ErrInvalidReencryptConfigs
	}

	return nil
}
