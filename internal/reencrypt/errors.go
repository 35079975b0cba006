package reencrypt

import (
	"errors"
	"fmt"
)

var (
	// ErrReencryptionAborted is matched by every *AbortedError. The account
	// is still on the key it had before the run.
	ErrReencryptionAborted = errors.New("re-encryption aborted")

	// ErrStaleKey means the session key does not open the stored credential;
	// the password was changed elsewhere since this session was unlocked.
	ErrStaleKey = errors.New("session key does not match the stored credential")

	// ErrInvalidRequest is returned for a request without account or password.
	ErrInvalidRequest = errors.New("invalid re-encryption request")
)

// AbortedError reports where a run stopped and how far it got.
type AbortedError struct {
	Stage     Stage
	Processed int
	Total     int
	Err       error
}

func (e *AbortedError) Error() string {
	return fmt.Sprintf("re-encryption aborted at %s after %d of %d records: %v", e.Stage, e.Processed, e.Total, e.Err)
}

// Is makes errors.Is(err, ErrReencryptionAborted) hold.
func (e *AbortedError) Is(target error) bool {
	return target == ErrReencryptionAborted
}

func (e *AbortedError) Unwrap() error {
	return e.Err
}
