package service

import (
	"context"

	"github.com/MKhiriev/go-journal-keeper/internal/crypto"
	"github.com/MKhiriev/go-journal-keeper/internal/reencrypt"
	"github.com/MKhiriev/go-journal-keeper/internal/session"
	"github.com/MKhiriev/go-journal-keeper/models"
)

// VaultService is the client-side entry point of the encryption core. It ties
// the key session to the cipher, the blind indexer and the account store.
//
// Every method that needs the account key returns session.ErrKeyUnavailable
// while the session is locked. Plaintext and keys never reach the store.
type VaultService interface {
	// Signup creates the credential of a new account (fresh salt, default KDF
	// params, verifier), provisions its namespace and unlocks the session.
	// Returns ErrEmptyPassword, store.ErrAccountAlreadyExists or a storage
	// error.
	Signup(ctx context.Context, accountID, password string) error

	// Unlock derives the key from password and the stored salt, checks it
	// against the verifier and installs it in the session. The returned key
	// is a copy the caller should zero.
	// Returns ErrWrongPassword on mismatch and store.ErrAccountNotFound for an
	// unknown account.
	Unlock(ctx context.Context, accountID, password string) (crypto.AccountKey, error)

	// Bootstrap restores a key kept in the transient cache, if any. It is
	// meant to run once on start-up; later calls return false.
	Bootstrap(ctx context.Context) bool

	// Lock clears the key, the transient cache and every decrypted view.
	Lock(reason session.ClearReason)

	// EncryptField seals plaintext under the session key.
	EncryptField(plaintext string) (models.EncryptedBlob, error)

	// DecryptField opens blob under the session key. Returns
	// crypto.ErrDecryptionFailed for a damaged blob or a foreign key.
	DecryptField(blob models.EncryptedBlob) (string, error)

	// DecryptFieldOrPlaceholder is DecryptField for display: a field that
	// cannot be opened renders as app.MsgDecryptionFailedPlaceholder. A locked
	// session is still reported as session.ErrKeyUnavailable.
	DecryptFieldOrPlaceholder(blob models.EncryptedBlob) (string, error)

	// SearchTokensFor returns the query tokens of text.
	SearchTokensFor(text string) ([]models.BlindToken, error)

	// NameTokenFor returns the exact-match token of a topic name.
	NameTokenFor(name string) (models.BlindToken, error)

	// SaveRecord encrypts plaintext, computes the tokens its kind carries and
	// stores it. An empty id gets a new UUID, which is returned.
	SaveRecord(ctx context.Context, kind models.RecordKind, id, plaintext string) (string, error)

	// Records fetches and decrypts every record of the unlocked account.
	// Unreadable records are returned with Readable false and a placeholder
	// text rather than failing the whole listing.
	Records(ctx context.Context) ([]models.DecryptedRecord, error)

	// Search returns the IDs of entries containing every word of query.
	Search(ctx context.Context, query string) ([]string, error)

	// FindTopic returns the IDs of topics whose name equals name after
	// normalization.
	FindTopic(ctx context.Context, name string) ([]string, error)

	// ChangePassword checks currentPassword against the stored credential and
	// re-encrypts the whole account under newPassword. On success the session
	// is cleared with session.ReasonPasswordChange and the caller has to unlock
	// again with the new password.
	ChangePassword(ctx context.Context, currentPassword, newPassword string, onProgress func(reencrypt.Event)) (reencrypt.Result, error)
}
