package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/MKhiriev/go-journal-keeper/internal/config"
	"github.com/MKhiriev/go-journal-keeper/internal/logger"

	sq "github.com/Masterminds/squirrel"
)

var postgresDialect = dialect{
	name:              DriverPostgres,
	gooseDialect:      "pgx",
	placeholder:       sq.Dollar,
	blobType:          "BYTEA",
	timestampType:     "TIMESTAMPTZ",
	lockRowSuffix:     "FOR UPDATE",
	schemaPerSpace:    true,
	isUniqueViolation: isPostgresUniqueViolation,
}

// NewConnectPostgres opens and pings a PostgreSQL database through the pgx
// database/sql driver.
func NewConnectPostgres(ctx context.Context, cfg config.DBConfig, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	conn.SetMaxOpenConns(cfg.MaxOpenConns)
	conn.SetMaxIdleConns(cfg.MaxIdleConns)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	return &DB{
		DB:                 conn,
		dialect:            postgresDialect,
		logger:             log,
		errorClassificator: NewPostgresErrorClassifier(),
	}, nil
}

func isPostgresUniqueViolation(err error) bool {
	return postgresError(err) == pgerrcode.UniqueViolation
}

func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
