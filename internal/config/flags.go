package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// ParseFlags parses the process command line.
//
// Flags:
//
//	-driver storage driver (postgres, sqlite, memory)
//	-d database DSN or SQLite file path
//	-c/-config json file path with configs
//	-kdf-time Argon2id time cost
//	-kdf-memory Argon2id memory cost in KiB
//	-kdf-threads Argon2id parallelism
//	-min-token-length shortest indexed word
//	-idle-timeout session idle timeout (e.g., "15m")
//	-workers re-encryption worker count
//	-log-level log level
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("journal-keeper", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		driver         string
		databaseDSN    string
		jsonConfigPath string
		kdfTime        uint
		kdfMemory      uint
		kdfThreads     uint
		minTokenLength int
		idleTimeout    time.Duration
		workers        int
		logLevel       string
	)

	fs.StringVar(&driver, "driver", "", "Storage driver: postgres, sqlite or memory")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN or SQLite file path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.UintVar(&kdfTime, "kdf-time", 0, "Argon2id time cost")
	fs.UintVar(&kdfMemory, "kdf-memory", 0, "Argon2id memory cost in KiB")
	fs.UintVar(&kdfThreads, "kdf-threads", 0, "Argon2id parallelism")
	fs.IntVar(&minTokenLength, "min-token-length", 0, "Shortest word, in runes, that is indexed for search")
	fs.DurationVar(&idleTimeout, "idle-timeout", 0, "Lock the session after this long without activity (e.g., 15m)")
	fs.IntVar(&workers, "workers", 0, "Re-encryption worker count")
	fs.StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}
	if kdfThreads > 255 {
		return nil, fmt.Errorf("error parsing flags: -kdf-threads must be at most 255")
	}

	return &StructuredConfig{
		App: App{LogLevel: logLevel},
		Storage: Storage{
			DB: DBConfig{
				Driver: driver,
				DSN:    databaseDSN,
			},
		},
		Crypto: Crypto{
			KDFTime:        uint32(kdfTime),
			KDFMemoryKiB:   uint32(kdfMemory),
			KDFThreads:     uint8(kdfThreads),
			MinTokenLength: minTokenLength,
		},
		Session:      Session{IdleTimeout: idleTimeout},
		Reencrypt:    Reencrypt{Workers: workers},
		JSONFilePath: jsonConfigPath,
	}, nil
}
