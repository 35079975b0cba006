package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-journal-keeper/models"
)

const accountsTable = "accounts"

var accountColumns = []string{
	"account_id",
	"namespace",
	"salt",
	"verifier",
	"kdf_time",
	"kdf_memory_kib",
	"kdf_threads",
	"kdf_key_len",
	"credential_version",
	"created_at",
	"updated_at",
}

func buildSelectCredentialQuery(d dialect, accountID string) (string, []any, error) {
	return d.builder().
		Select(accountColumns...).
		From(accountsTable).
		Where(sq.Eq{"account_id": accountID}).
		ToSql()
}

// buildSelectNamespaceQuery resolves the namespace of an account. With lock
// set the account row stays locked until the transaction ends, which
// serializes concurrent password changes of one account.
func buildSelectNamespaceQuery(d dialect, accountID string, lock bool) (string, []any, error) {
	q := d.builder().
		Select("namespace", "credential_version").
		From(accountsTable).
		Where(sq.Eq{"account_id": accountID})
	if lock && d.lockRowSuffix != "" {
		q = q.Suffix(d.lockRowSuffix)
	}
	return q.ToSql()
}

func buildInsertAccountQuery(d dialect, cred models.Credential, ns string, now time.Time) (string, []any, error) {
	return d.builder().
		Insert(accountsTable).
		Columns(accountColumns...).
		Values(
			cred.AccountID,
			ns,
			cred.Salt,
			cred.Verifier,
			int64(cred.KDF.Time),
			int64(cred.KDF.MemoryKiB),
			int64(cred.KDF.Threads),
			int64(cred.KDF.KeyLen),
			int64(1),
			now,
			now,
		).
		ToSql()
}

// buildUpdateCredentialQuery swaps salt, verifier and KDF params and bumps
// the version, but only if the version is still the one the caller read.
func buildUpdateCredentialQuery(d dialect, cred models.Credential, now time.Time) (string, []any, error) {
	return d.builder().
		Update(accountsTable).
		Set("salt", cred.Salt).
		Set("verifier", cred.Verifier).
		Set("kdf_time", int64(cred.KDF.Time)).
		Set("kdf_memory_kib", int64(cred.KDF.MemoryKiB)).
		Set("kdf_threads", int64(cred.KDF.Threads)).
		Set("kdf_key_len", int64(cred.KDF.KeyLen)).
		Set("credential_version", sq.Expr("credential_version + 1")).
		Set("updated_at", now).
		Where(sq.Eq{"account_id": cred.AccountID, "credential_version": cred.Version}).
		ToSql()
}

func buildSelectRecordsQuery(d dialect, ns string) (string, []any, error) {
	return d.builder().
		Select("id", "kind", "ciphertext", "iv", "updated_at").
		From(d.recordsTable(ns)).
		OrderBy("id").
		ToSql()
}

func buildSelectTokensQuery(d dialect, ns string) (string, []any, error) {
	return d.builder().
		Select("record_id", "token").
		From(d.tokensTable(ns)).
		OrderBy("record_id", "token").
		ToSql()
}

func buildCountRecordsQuery(d dialect, ns string) (string, []any, error) {
	return d.builder().
		Select("COUNT(*)").
		From(d.recordsTable(ns)).
		ToSql()
}

func buildUpsertRecordQuery(d dialect, ns string, rec models.EncryptedRecord, now time.Time) (string, []any, error) {
	return d.builder().
		Insert(d.recordsTable(ns)).
		Columns("id", "kind", "ciphertext", "iv", "updated_at").
		Values(rec.ID, string(rec.Kind), rec.Blob.Ciphertext, rec.Blob.IV, now).
		Suffix("ON CONFLICT (id) DO UPDATE SET " +
			"kind = excluded.kind, " +
			"ciphertext = excluded.ciphertext, " +
			"iv = excluded.iv, " +
			"updated_at = excluded.updated_at").
		ToSql()
}

// buildRewriteRecordQuery replaces the blob of an existing record. Matching
// on kind as well as id makes a record that changed kind count as missing.
func buildRewriteRecordQuery(d dialect, ns string, rec models.EncryptedRecord, now time.Time) (string, []any, error) {
	return d.builder().
		Update(d.recordsTable(ns)).
		Set("ciphertext", rec.Blob.Ciphertext).
		Set("iv", rec.Blob.IV).
		Set("updated_at", now).
		Where(sq.Eq{"id": rec.ID, "kind": string(rec.Kind)}).
		ToSql()
}

func buildDeleteTokensQuery(d dialect, ns, recordID string) (string, []any, error) {
	return d.builder().
		Delete(d.tokensTable(ns)).
		Where(sq.Eq{"record_id": recordID}).
		ToSql()
}

func buildInsertTokensQuery(d dialect, ns, recordID string, tokens []models.BlindToken) (string, []any, error) {
	q := d.builder().
		Insert(d.tokensTable(ns)).
		Columns("record_id", "token")
	for _, t := range tokens {
		q = q.Values(recordID, string(t))
	}
	return q.ToSql()
}

// buildFindByTokensQuery selects records holding all of tokens: every
// matching row contributes one distinct token, so a record qualifies exactly
// when its distinct count reaches len(tokens).
func buildFindByTokensQuery(d dialect, ns string, tokens []string) (string, []any, error) {
	return d.builder().
		Select("record_id").
		From(d.tokensTable(ns)).
		Where(sq.Eq{"token": tokens}).
		GroupBy("record_id").
		Having("COUNT(DISTINCT token) = ?", len(tokens)).
		OrderBy("record_id").
		ToSql()
}
