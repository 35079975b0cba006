// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/subtle"
	"fmt"
)

// KeySize is the size of an account key in bytes (AES-256).
const KeySize = 32

// AccountKey is the symmetric key derived from a user's password.
// It is the root of trust for all encryption of the account and must never
// be persisted or sent to the server.
//
// The zero value is an absent key.
type AccountKey struct {
	b []byte
}

// NewAccountKey copies raw into a new AccountKey. raw must be [KeySize] bytes.
func NewAccountKey(raw []byte) (AccountKey, error) {
	if len(raw) != KeySize {
		return AccountKey{}, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidKey, len(raw), KeySize)
	}
	b := make([]byte, KeySize)
	copy(b, raw)
	return AccountKey{b: b}, nil
}

// Bytes returns a copy of the key material.
func (k AccountKey) Bytes() []byte {
	if k.b == nil {
		return nil
	}
	out := make([]byte, len(k.b))
	copy(out, k.b)
	return out
}

// IsZero reports whether no key material is held.
func (k AccountKey) IsZero() bool {
	return len(k.b) == 0
}

// Equal compares two keys in constant time.
func (k AccountKey) Equal(other AccountKey) bool {
	if k.IsZero() || other.IsZero() {
		return false
	}
	return subtle.ConstantTimeCompare(k.b, other.b) == 1
}

// Clone returns an independent copy of the key.
func (k AccountKey) Clone() AccountKey {
	return AccountKey{b: k.Bytes()}
}

// Zero wipes the key material in place. Other clones are unaffected.
func (k *AccountKey) Zero() {
	clear(k.b)
	k.b = nil
}

// String never prints key material so that a key accidentally passed to a
// logger or fmt verb does not leak.
func (k AccountKey) String() string {
	if k.IsZero() {
		return "AccountKey(none)"
	}
	return "AccountKey(redacted)"
}

// GoString implements fmt.GoStringer with the same redaction as String.
func (k AccountKey) GoString() string {
	return k.String()
}
