package session

import "errors"

// ErrKeyUnavailable is returned by every operation that needs the account key
// while the session holds none (locked, logged out or never unlocked).
var ErrKeyUnavailable = errors.New("account key is not available")

// ErrCacheEmpty is returned when the transient cache holds no key.
var ErrCacheEmpty = errors.New("transient key cache is empty")
