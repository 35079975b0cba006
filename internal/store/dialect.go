package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

// Driver names accepted in configuration.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
)

// dialect captures what differs between the SQL backends: placeholders,
// how a namespace maps onto tables, and the DDL that provisions it.
//
// PostgreSQL gets one schema per account ("acct_x"."records"), SQLite has no
// schemas so it gets one table-name prefix per account ("acct_x__records").
type dialect struct {
	name           string
	gooseDialect   string
	placeholder    sq.PlaceholderFormat
	blobType       string
	timestampType  string
	lockRowSuffix  string
	schemaPerSpace bool

	isUniqueViolation func(err error) bool
}

func (d dialect) builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(d.placeholder)
}

func (d dialect) table(ns, name string) string {
	if d.schemaPerSpace {
		return pgx.Identifier{ns, name}.Sanitize()
	}
	return pgx.Identifier{ns + "__" + name}.Sanitize()
}

func (d dialect) recordsTable(ns string) string {
	return d.table(ns, "records")
}

func (d dialect) tokensTable(ns string) string {
	return d.table(ns, "record_tokens")
}

// provisionStatements returns the DDL creating the tables of ns. ns must
// have passed ValidateNamespace.
func (d dialect) provisionStatements(ns string) []string {
	records := d.recordsTable(ns)
	tokens := d.tokensTable(ns)
	index := pgx.Identifier{ns + "__record_tokens_token_idx"}.Sanitize()

	stmts := make([]string, 0, 4)
	if d.schemaPerSpace {
		stmts = append(stmts, fmt.Sprintf("CREATE SCHEMA %s", pgx.Identifier{ns}.Sanitize()))
		// postgres places an index in the schema of its table
		index = pgx.Identifier{"record_tokens_token_idx"}.Sanitize()
	}

	stmts = append(stmts,
		fmt.Sprintf(`CREATE TABLE %s (
	id         TEXT PRIMARY KEY,
	kind       TEXT NOT NULL,
	ciphertext %s NOT NULL,
	iv         %s NOT NULL,
	updated_at %s NOT NULL
)`, records, d.blobType, d.blobType, d.timestampType),
		fmt.Sprintf(`CREATE TABLE %s (
	record_id TEXT NOT NULL REFERENCES %s (id) ON DELETE CASCADE,
	token     TEXT NOT NULL,
	PRIMARY KEY (record_id, token)
)`, tokens, records),
		fmt.Sprintf("CREATE INDEX %s ON %s (token)", index, tokens),
	)
	return stmts
}
