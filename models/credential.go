// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// KDFParams holds the Argon2id cost parameters an account key was derived
// with. They are stored next to the salt so that a key can be re-derived on
// any device, even after the deployment defaults change.
type KDFParams struct {
	// Time is the number of Argon2id passes over memory.
	Time uint32 `json:"time"`

	// MemoryKiB is the memory cost in kibibytes.
	MemoryKiB uint32 `json:"memory_kib"`

	// Threads is the degree of parallelism.
	Threads uint8 `json:"threads"`

	// KeyLen is the length of the derived key in bytes.
	KeyLen uint32 `json:"key_len"`
}

// Credential is the server-held record used to (re)derive and check an
// account key. It contains the salt and a password verifier, never the
// password or the key itself.
//
// A Credential is created at signup and is replaced as a whole on password
// change, when the salt is regenerated.
type Credential struct {
	// AccountID is the owner of the credential.
	AccountID string `json:"account_id"`

	// Namespace is the isolated storage boundary of the account.
	Namespace string `json:"namespace"`

	// Salt is the per-account random salt fed into key derivation.
	// It is not secret.
	Salt []byte `json:"salt"`

	// Verifier lets the client confirm that a derived key is the right one
	// without the server ever learning it.
	Verifier []byte `json:"verifier"`

	// KDF holds the derivation parameters used with Salt.
	KDF KDFParams `json:"kdf"`

	// Version is incremented every time the credential is replaced and is
	// used as an optimistic lock when a new credential is committed.
	Version int64 `json:"version"`

	// CreatedAt is the time the account was provisioned.
	CreatedAt *time.Time `json:"created_at,omitempty"`

	// UpdatedAt is the time the credential was last replaced.
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}
