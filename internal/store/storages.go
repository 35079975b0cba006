package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-journal-keeper/internal/config"
	"github.com/MKhiriev/go-journal-keeper/internal/logger"
)

// Storages groups the storage layer handed to the service layer.
type Storages struct {
	AccountStore AccountStore

	db *DB
}

// NewStorages opens the database selected by cfg.DB.Driver, applies
// migrations and returns the wired storage layer.
//
// Supported drivers: "postgres", "sqlite" and "memory" (nothing persisted).
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Str("func", "NewStorages").Str("driver", cfg.DB.Driver).Msg("creating new storages...")

	var (
		db  *DB
		err error
	)
	switch cfg.DB.Driver {
	case DriverMemory:
		return &Storages{AccountStore: NewMemoryAccountStore()}, nil
	case DriverPostgres:
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	case DriverSQLite:
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.DB.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("%s connection error: %w", cfg.DB.Driver, err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		AccountStore: NewSQLAccountStore(db),
		db:           db,
	}, nil
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
