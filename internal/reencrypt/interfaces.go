package reencrypt

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/reencrypt_mock.go -package=mock

// Coordinator rotates the key of a whole account.
type Coordinator interface {
	// Run re-encrypts every record of req.AccountID under a key derived from
	// req.NewPassword and swaps the credential, all or nothing. The old key
	// is taken from the session. Failures are *AbortedError.
	Run(ctx context.Context, req Request) (Result, error)
}
