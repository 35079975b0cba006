package session

import "github.com/MKhiriev/go-journal-keeper/internal/crypto"

//go:generate mockgen -source=interfaces.go -destination=../mock/session_mock.go -package=mock

// KeySession is the single holder of the active account key on the client.
//
// Readers always observe either the old or the new key, never a mix. Writes
// are last-writer-wins.
type KeySession interface {
	// SetKey installs key for accountID, replacing whatever was held.
	SetKey(accountID string, key crypto.AccountKey)

	// GetKey returns a copy of the active key. ok is false when the session
	// is locked.
	GetKey() (key crypto.AccountKey, ok bool)

	// AccountID returns the account the active key belongs to, or "".
	AccountID() string

	// ReplaceKey swaps the key of the current account. Used after a completed
	// password change.
	ReplaceKey(key crypto.AccountKey) error

	// ClearKey wipes the in-memory key and the transient cache and notifies
	// every listener registered with OnClear. It is idempotent.
	ClearKey(reason ClearReason)

	// SaveToTransientCache seals the active key into the transient cache so
	// that a UI reload can resume without a password prompt.
	SaveToTransientCache() error

	// RestoreFromTransientCache installs the cached key if one exists. It
	// succeeds at most once per session.
	RestoreFromTransientCache() bool

	// DropTransientCache wipes the transient cache but keeps the in-memory
	// key. Used when the cached key has been superseded.
	DropTransientCache()

	// OnClear registers fn to be called synchronously from ClearKey.
	OnClear(fn func(reason ClearReason))
}

// TransientCache keeps a key across UI reloads within one process lifetime.
// Implementations must never write the key to disk.
type TransientCache interface {
	Put(accountID string, key crypto.AccountKey) error
	Get() (accountID string, key crypto.AccountKey, err error)
	Wipe()
}
