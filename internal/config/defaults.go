package config

import "time"

// Defaults returns the configuration used for every field no other source
// sets. The KDF values are the OWASP Argon2id recommendation.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{LogLevel: "info"},
		Storage: Storage{
			DB: DBConfig{
				Driver:       "sqlite",
				DSN:          "journal.db",
				MaxOpenConns: 10,
				MaxIdleConns: 4,
			},
		},
		Crypto: Crypto{
			KDFTime:        1,
			KDFMemoryKiB:   64 * 1024,
			KDFThreads:     4,
			MinTokenLength: 3,
		},
		Session:   Session{IdleTimeout: 15 * time.Minute},
		Reencrypt: Reencrypt{Workers: 4},
	}
}
