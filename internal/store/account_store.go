package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/MKhiriev/go-journal-keeper/internal/logger"
	"github.com/MKhiriev/go-journal-keeper/models"
)

// sqlAccountStore is the database/sql implementation of [AccountStore] for
// both PostgreSQL and SQLite; the differences live in [dialect].
//
// The namespace of an account is read from its row in the global accounts
// table on every call and validated before it is spliced into a table name,
// so a record query can only ever reach the tables of that one account.
type sqlAccountStore struct {
	db  *DB
	now func() time.Time
}

// NewSQLAccountStore constructs an [AccountStore] over db.
func NewSQLAccountStore(db *DB) AccountStore {
	return &sqlAccountStore{db: db, now: func() time.Time { return time.Now().UTC() }}
}

type rowQuerier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// ProvisionAccount implements [AccountStore]. The account row and the
// namespace tables are created in one transaction.
func (s *sqlAccountStore) ProvisionAccount(ctx context.Context, cred models.Credential) error {
	log := logger.FromContext(ctx)

	if cred.AccountID == "" || len(cred.Salt) == 0 || len(cred.Verifier) == 0 {
		return fmt.Errorf("provision account: %w", ErrInvalidRecord)
	}

	ns := NamespaceFor(cred.AccountID)
	d := s.db.dialect

	query, args, err := buildInsertAccountQuery(d, cred, ns, s.now())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "sqlAccountStore.ProvisionAccount").Msg("failed to begin transaction")
		return s.db.wrap(ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		if d.isUniqueViolation(err) {
			log.Warn().Str("func", "sqlAccountStore.ProvisionAccount").Msg("account already exists")
			return ErrAccountAlreadyExists
		}
		log.Err(err).Str("func", "sqlAccountStore.ProvisionAccount").Msg("failed to insert account")
		return s.db.wrap(ErrExecutingQuery, err)
	}

	for _, stmt := range d.provisionStatements(ns) {
		if _, err = tx.ExecContext(ctx, stmt); err != nil {
			log.Err(err).
				Str("func", "sqlAccountStore.ProvisionAccount").
				Str("namespace", ns).
				Msg("failed to provision namespace")
			return s.db.wrap(ErrExecutingQuery, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "sqlAccountStore.ProvisionAccount").Msg("failed to commit transaction")
		return s.db.wrap(ErrCommitingTransaction, err)
	}

	log.Info().
		Str("func", "sqlAccountStore.ProvisionAccount").
		Str("namespace", ns).
		Msg("account provisioned")
	return nil
}

// FetchCredential implements [AccountStore].
func (s *sqlAccountStore) FetchCredential(ctx context.Context, accountID string) (models.Credential, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectCredentialQuery(s.db.dialect, accountID)
	if err != nil {
		return models.Credential{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		cred                                models.Credential
		kdfTime, kdfMem, kdfThreads, keyLen int64
		createdAt, updatedAt                time.Time
	)
	err = s.db.QueryRowContext(ctx, query, args...).Scan(
		&cred.AccountID,
		&cred.Namespace,
		&cred.Salt,
		&cred.Verifier,
		&kdfTime,
		&kdfMem,
		&kdfThreads,
		&keyLen,
		&cred.Version,
		&createdAt,
		&updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Credential{}, ErrAccountNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "sqlAccountStore.FetchCredential").Msg("failed to fetch credential")
		return models.Credential{}, s.db.wrap(ErrExecutingQuery, err)
	}

	cred.KDF = models.KDFParams{
		Time:      uint32(kdfTime),
		MemoryKiB: uint32(kdfMem),
		Threads:   uint8(kdfThreads),
		KeyLen:    uint32(keyLen),
	}
	cred.CreatedAt = &createdAt
	cred.UpdatedAt = &updatedAt

	return cred, nil
}

// FetchAllEncryptedRecords implements [AccountStore]. Records and tokens are
// read in one transaction so both come from the same state.
func (s *sqlAccountStore) FetchAllEncryptedRecords(ctx context.Context, accountID string) ([]models.EncryptedRecord, error) {
	log := logger.FromContext(ctx)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "sqlAccountStore.FetchAllEncryptedRecords").Msg("failed to begin transaction")
		return nil, s.db.wrap(ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	ns, _, err := s.resolveNamespace(ctx, tx, accountID, false)
	if err != nil {
		return nil, err
	}

	records, err := s.selectRecords(ctx, tx, ns)
	if err != nil {
		log.Err(err).
			Str("func", "sqlAccountStore.FetchAllEncryptedRecords").
			Str("namespace", ns).
			Msg("failed to read records")
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, s.db.wrap(ErrCommitingTransaction, err)
	}

	log.Debug().
		Str("func", "sqlAccountStore.FetchAllEncryptedRecords").
		Str("namespace", ns).
		Int("records", len(records)).
		Msg("fetched encrypted records")
	return records, nil
}

// PutRecords implements [AccountStore].
func (s *sqlAccountStore) PutRecords(ctx context.Context, accountID string, records []models.EncryptedRecord) error {
	log := logger.FromContext(ctx)

	if len(records) == 0 {
		return nil
	}
	if err := validateRecords(records); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "sqlAccountStore.PutRecords").Msg("failed to begin transaction")
		return s.db.wrap(ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	ns, _, err := s.resolveNamespace(ctx, tx, accountID, false)
	if err != nil {
		return err
	}

	now := s.now()
	for idx, rec := range records {
		query, args, buildErr := buildUpsertRecordQuery(s.db.dialect, ns, rec, now)
		if buildErr != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "sqlAccountStore.PutRecords").
				Int("iteration", idx+1).
				Str("record_id", rec.ID).
				Msg("failed to upsert record")
			return s.db.wrap(ErrExecutingQuery, err)
		}
		if err = s.replaceTokens(ctx, tx, ns, rec); err != nil {
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "sqlAccountStore.PutRecords").Msg("failed to commit transaction")
		return s.db.wrap(ErrCommitingTransaction, err)
	}

	log.Debug().
		Str("func", "sqlAccountStore.PutRecords").
		Str("namespace", ns).
		Int("records", len(records)).
		Msg("records stored")
	return nil
}

// FindRecordIDsByTokens implements [AccountStore].
func (s *sqlAccountStore) FindRecordIDsByTokens(ctx context.Context, accountID string, tokens []models.BlindToken) ([]string, error) {
	log := logger.FromContext(ctx)

	wanted := uniqueTokens(tokens)
	if len(wanted) == 0 {
		return []string{}, nil
	}

	ns, _, err := s.resolveNamespace(ctx, s.db, accountID, false)
	if err != nil {
		return nil, err
	}

	query, args, err := buildFindByTokensQuery(s.db.dialect, ns, wanted)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "sqlAccountStore.FindRecordIDsByTokens").
			Int("tokens", len(wanted)).
			Msg("failed to search tokens")
		return nil, s.db.wrap(ErrExecutingQuery, err)
	}
	defer rows.Close()

	ids := make([]string, 0, 16)
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, s.db.wrap(ErrScanningRow, err)
	}

	return ids, nil
}

// WriteRecordsAndCredentialAtomically implements [AccountStore].
//
// Inside one transaction, in this order:
//  1. lock the account row and check the credential version;
//  2. check that the stored record count equals len(records);
//  3. rewrite every record (exactly one row each) and its tokens;
//  4. swap the credential, conditional on the version.
//
// The credential is replaced last, so until commit the old password keeps
// working; any failure rolls everything back.
func (s *sqlAccountStore) WriteRecordsAndCredentialAtomically(ctx context.Context, accountID string, records []models.EncryptedRecord, newCred models.Credential) error {
	log := logger.FromContext(ctx)

	if newCred.AccountID == "" {
		newCred.AccountID = accountID
	}
	if newCred.AccountID != accountID || len(newCred.Salt) == 0 || len(newCred.Verifier) == 0 {
		return fmt.Errorf("atomic rewrite: credential does not belong to account: %w", ErrInvalidRecord)
	}
	if err := validateRecords(records); err != nil {
		return err
	}

	d := s.db.dialect

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "sqlAccountStore.WriteRecordsAndCredentialAtomically").Msg("failed to begin transaction")
		return s.db.wrap(ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	ns, version, err := s.resolveNamespace(ctx, tx, accountID, true)
	if err != nil {
		return err
	}
	if version != newCred.Version {
		log.Warn().
			Str("func", "sqlAccountStore.WriteRecordsAndCredentialAtomically").
			Int64("db_version", version).
			Int64("provided_version", newCred.Version).
			Msg("optimistic lock failed: credential version mismatch")
		return ErrCredentialConflict
	}

	query, args, err := buildCountRecordsQuery(d, ns)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	var stored int
	if err = tx.QueryRowContext(ctx, query, args...).Scan(&stored); err != nil {
		log.Err(err).Str("func", "sqlAccountStore.WriteRecordsAndCredentialAtomically").Msg("failed to count records")
		return s.db.wrap(ErrExecutingQuery, err)
	}
	if stored != len(records) {
		log.Warn().
			Str("func", "sqlAccountStore.WriteRecordsAndCredentialAtomically").
			Int("stored", stored).
			Int("provided", len(records)).
			Msg("record set changed")
		return ErrRecordSetChanged
	}

	now := s.now()
	for idx, rec := range records {
		query, args, err = buildRewriteRecordQuery(d, ns, rec, now)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		res, execErr := tx.ExecContext(ctx, query, args...)
		if execErr != nil {
			log.Err(execErr).
				Str("func", "sqlAccountStore.WriteRecordsAndCredentialAtomically").
				Int("iteration", idx+1).
				Int("total", len(records)).
				Str("record_id", rec.ID).
				Msg("failed to rewrite record")
			return s.db.wrap(ErrExecutingQuery, execErr)
		}
		if n, _ := res.RowsAffected(); n != 1 {
			log.Warn().
				Str("func", "sqlAccountStore.WriteRecordsAndCredentialAtomically").
				Str("record_id", rec.ID).
				Msg("record missing or changed kind")
			return fmt.Errorf("%w: record %s", ErrRecordSetChanged, rec.ID)
		}
		if err = s.replaceTokens(ctx, tx, ns, rec); err != nil {
			return err
		}
	}

	query, args, err = buildUpdateCredentialQuery(d, newCred, now)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "sqlAccountStore.WriteRecordsAndCredentialAtomically").Msg("failed to update credential")
		return s.db.wrap(ErrExecutingQuery, err)
	}
	if n, _ := res.RowsAffected(); n != 1 {
		return ErrCredentialConflict
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "sqlAccountStore.WriteRecordsAndCredentialAtomically").Msg("failed to commit transaction")
		return s.db.wrap(ErrCommitingTransaction, err)
	}

	log.Info().
		Str("func", "sqlAccountStore.WriteRecordsAndCredentialAtomically").
		Str("namespace", ns).
		Int("records", len(records)).
		Int64("credential_version", version+1).
		Msg("records and credential rewritten")
	return nil
}

func (s *sqlAccountStore) resolveNamespace(ctx context.Context, q rowQuerier, accountID string, lock bool) (string, int64, error) {
	query, args, err := buildSelectNamespaceQuery(s.db.dialect, accountID, lock)
	if err != nil {
		return "", 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		ns      string
		version int64
	)
	err = q.QueryRowContext(ctx, query, args...).Scan(&ns, &version)
	if errors.Is(err, sql.ErrNoRows) {
		return "", 0, ErrAccountNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "sqlAccountStore.resolveNamespace").Msg("failed to resolve namespace")
		return "", 0, s.db.wrap(ErrExecutingQuery, err)
	}
	if err = ValidateNamespace(ns); err != nil {
		return "", 0, err
	}
	return ns, version, nil
}

func (s *sqlAccountStore) selectRecords(ctx context.Context, tx *sql.Tx, ns string) ([]models.EncryptedRecord, error) {
	query, args, err := buildSelectRecordsQuery(s.db.dialect, ns)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, s.db.wrap(ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.EncryptedRecord, 0, 50)
	index := make(map[string]int)
	for rows.Next() {
		var (
			rec       models.EncryptedRecord
			kind      string
			updatedAt time.Time
		)
		if err = rows.Scan(&rec.ID, &kind, &rec.Blob.Ciphertext, &rec.Blob.IV, &updatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		rec.Kind = models.RecordKind(kind)
		rec.UpdatedAt = &updatedAt
		index[rec.ID] = len(records)
		records = append(records, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, s.db.wrap(ErrScanningRow, err)
	}

	query, args, err = buildSelectTokensQuery(s.db.dialect, ns)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	tokenRows, err := tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, s.db.wrap(ErrExecutingQuery, err)
	}
	defer tokenRows.Close()

	for tokenRows.Next() {
		var recordID, token string
		if err = tokenRows.Scan(&recordID, &token); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		if i, ok := index[recordID]; ok {
			records[i].Tokens = append(records[i].Tokens, models.BlindToken(token))
		}
	}
	if err = tokenRows.Err(); err != nil {
		return nil, s.db.wrap(ErrScanningRow, err)
	}

	return records, nil
}

func (s *sqlAccountStore) replaceTokens(ctx context.Context, tx *sql.Tx, ns string, rec models.EncryptedRecord) error {
	query, args, err := buildDeleteTokensQuery(s.db.dialect, ns, rec.ID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return s.db.wrap(ErrExecutingQuery, err)
	}

	tokens := uniqueTokens(rec.Tokens)
	if len(tokens) == 0 {
		return nil
	}

	blind := make([]models.BlindToken, len(tokens))
	for i, t := range tokens {
		blind[i] = models.BlindToken(t)
	}
	query, args, err = buildInsertTokensQuery(s.db.dialect, ns, rec.ID, blind)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return s.db.wrap(ErrExecutingQuery, err)
	}
	return nil
}

func validateRecords(records []models.EncryptedRecord) error {
	seen := make(map[string]struct{}, len(records))
	for _, rec := range records {
		switch {
		case rec.ID == "":
			return fmt.Errorf("%w: empty id", ErrInvalidRecord)
		case !rec.Kind.Valid():
			return fmt.Errorf("%w: record %s has unknown kind %q", ErrInvalidRecord, rec.ID, rec.Kind)
		case len(rec.Blob.IV) == 0 || len(rec.Blob.Ciphertext) == 0:
			return fmt.Errorf("%w: record %s has no ciphertext", ErrInvalidRecord, rec.ID)
		}
		if _, dup := seen[rec.ID]; dup {
			return fmt.Errorf("%w: duplicate id %s", ErrInvalidRecord, rec.ID)
		}
		seen[rec.ID] = struct{}{}
	}
	return nil
}

// uniqueTokens drops empty and repeated tokens and returns the rest sorted.
func uniqueTokens(tokens []models.BlindToken) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if t != "" {
			out = append(out, string(t))
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}
