// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/base64"
	"errors"
	"strings"
)

// ErrMalformedBlob is returned by [ParseEncryptedBlob] when the transport
// form cannot be split into an IV and a ciphertext.
var ErrMalformedBlob = errors.New("malformed encrypted blob")

// EncryptedBlob is the universal encrypted payload shape used for entry
// bodies, topic names and structured field values.
//
// IV is unique per encryption operation. It is not secret and always travels
// together with the ciphertext.
type EncryptedBlob struct {
	Ciphertext []byte `json:"ciphertext"`
	IV         []byte `json:"iv"`
}

// IsZero reports whether the blob carries no data at all.
func (b EncryptedBlob) IsZero() bool {
	return len(b.Ciphertext) == 0 && len(b.IV) == 0
}

// String returns the transport form of the blob: base64(iv) "." base64(ciphertext).
func (b EncryptedBlob) String() string {
	return base64.StdEncoding.EncodeToString(b.IV) + "." + base64.StdEncoding.EncodeToString(b.Ciphertext)
}

// ParseEncryptedBlob is the inverse of [EncryptedBlob.String].
func ParseEncryptedBlob(s string) (EncryptedBlob, error) {
	ivPart, ctPart, ok := strings.Cut(s, ".")
	if !ok || ivPart == "" || ctPart == "" {
		return EncryptedBlob{}, ErrMalformedBlob
	}

	iv, err := base64.StdEncoding.DecodeString(ivPart)
	if err != nil {
		return EncryptedBlob{}, errors.Join(ErrMalformedBlob, err)
	}
	ct, err := base64.StdEncoding.DecodeString(ctPart)
	if err != nil {
		return EncryptedBlob{}, errors.Join(ErrMalformedBlob, err)
	}

	return EncryptedBlob{Ciphertext: ct, IV: iv}, nil
}
