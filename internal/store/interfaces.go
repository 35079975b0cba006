package store

import (
	"context"

	"github.com/MKhiriev/go-journal-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// AccountStore is the persistence boundary of the encryption core. Every
// record-level call is scoped to the namespace of exactly one account; there
// is no operation that reads or writes across namespaces.
//
// The store only ever sees ciphertext, IVs, blind tokens and the credential
// (salt + verifier).
type AccountStore interface {
	// ProvisionAccount registers cred and creates the account's namespace.
	// Returns ErrAccountAlreadyExists if the account is known.
	ProvisionAccount(ctx context.Context, cred models.Credential) error

	// FetchCredential returns the credential of accountID or
	// ErrAccountNotFound.
	FetchCredential(ctx context.Context, accountID string) (models.Credential, error)

	// FetchAllEncryptedRecords returns every record of the account.
	FetchAllEncryptedRecords(ctx context.Context, accountID string) ([]models.EncryptedRecord, error)

	// PutRecords upserts records and replaces the tokens of each.
	PutRecords(ctx context.Context, accountID string, records []models.EncryptedRecord) error

	// FindRecordIDsByTokens returns the IDs of records holding every token
	// in tokens, sorted.
	FindRecordIDsByTokens(ctx context.Context, accountID string, tokens []models.BlindToken) ([]string, error)

	// WriteRecordsAndCredentialAtomically rewrites every record of the account
	// and swaps the credential in one transaction. records must be the
	// complete record set (ErrRecordSetChanged otherwise) and newCred.Version
	// must equal the stored version (ErrCredentialConflict otherwise). On any
	// error nothing is changed.
	WriteRecordsAndCredentialAtomically(ctx context.Context, accountID string, records []models.EncryptedRecord, newCred models.Credential) error
}

// ErrorClassificator decides whether a driver error is transient.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
