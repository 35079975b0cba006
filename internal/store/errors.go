package store

import "errors"

// Sentinel errors returned by AccountStore implementations. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrStorageUnavailable is returned when the backing database cannot be
	// reached or rejected the operation for a transient reason. The operation
	// had no effect and may be retried by the user.
	ErrStorageUnavailable = errors.New("storage is unavailable")

	// ErrAccountNotFound is returned when no account with the given ID exists.
	ErrAccountNotFound = errors.New("account not found")

	// ErrAccountAlreadyExists is returned by ProvisionAccount for a known ID.
	ErrAccountAlreadyExists = errors.New("account already exists")

	// ErrCredentialConflict is returned when the credential was changed by
	// someone else after it was read (optimistic lock failure).
	ErrCredentialConflict = errors.New("credential was modified concurrently")

	// ErrRecordSetChanged is returned by an atomic rewrite when the records
	// supplied are not exactly the records stored: one was added, removed or
	// changed kind since they were fetched.
	ErrRecordSetChanged = errors.New("record set changed since it was fetched")

	// ErrInvalidRecord is returned for records that cannot be stored: empty
	// ID, unknown kind, duplicate ID or missing ciphertext/IV.
	ErrInvalidRecord = errors.New("invalid record")

	// ErrInvalidNamespace is returned when a namespace name does not have the
	// expected shape and must not be embedded into SQL.
	ErrInvalidNamespace = errors.New("invalid account namespace")
)

// Low-level database operation errors. These are returned (or wrapped) by
// store methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning a result row fails.
	ErrScanningRow = errors.New("failed to scan row")
)
