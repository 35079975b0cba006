package store

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-journal-keeper/internal/logger"
	"github.com/MKhiriev/go-journal-keeper/migrations"
)

// DB is an open SQL connection together with the dialect it speaks.
type DB struct {
	*sql.DB
	dialect            dialect
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the embedded migrations of the global tables.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect.gooseDialect)
}

// wrap annotates err with kind and, when the failure is transient, with
// ErrStorageUnavailable so that callers can tell "try again later" from
// "this will never work".
func (db *DB) wrap(kind error, err error) error {
	if db.transient(err) {
		return fmt.Errorf("%w: %w: %w", ErrStorageUnavailable, kind, err)
	}
	return fmt.Errorf("%w: %w", kind, err)
}

func (db *DB) transient(err error) bool {
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) {
		return true
	}
	if db.errorClassificator == nil {
		return false
	}
	return db.errorClassificator.Classify(err) == Retryable
}
