// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"io"
	"slices"

	"golang.org/x/crypto/hkdf"

	"github.com/MKhiriev/go-journal-keeper/models"
)

const (
	// indexKeyInfo is the HKDF info string of the blind-index sub-key. The
	// account key itself is never used directly as an HMAC key.
	indexKeyInfo = "go-journal-keeper/blind-index/v1"

	wordDomain byte = 0x01
	nameDomain byte = 0x02
)

// hmacBlindIndexer is the HMAC-SHA256 implementation of [BlindIndexer].
//
// Tokens are HMAC(indexKey, domain || normalized), hex-encoded, where
// indexKey = HKDF-SHA256(accountKey, info=indexKeyInfo). Because the account
// key is part of the derivation, token spaces of different accounts are
// unrelated.
type hmacBlindIndexer struct {
	minTokenLength int
}

// NewBlindIndexer constructs a [BlindIndexer]. Words shorter than
// minTokenLength runes are not indexed; a non-positive value selects
// [DefaultMinTokenLength].
func NewBlindIndexer(minTokenLength int) BlindIndexer {
	if minTokenLength <= 0 {
		minTokenLength = DefaultMinTokenLength
	}
	return &hmacBlindIndexer{minTokenLength: minTokenLength}
}

// Tokenize implements [BlindIndexer]. The result is a sorted set.
func (b *hmacBlindIndexer) Tokenize(text string, key AccountKey) []models.BlindToken {
	if key.IsZero() {
		return nil
	}

	words := NormalizeWords(text, b.minTokenLength)
	if len(words) == 0 {
		return nil
	}

	mac := hmac.New(sha256.New, indexKey(key))
	seen := make(map[models.BlindToken]struct{}, len(words))
	tokens := make([]models.BlindToken, 0, len(words))
	for _, w := range words {
		t := digest(mac, wordDomain, w)
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		tokens = append(tokens, t)
	}

	slices.Sort(tokens)
	return tokens
}

// NameToken implements [BlindIndexer].
func (b *hmacBlindIndexer) NameToken(name string, key AccountKey) models.BlindToken {
	if key.IsZero() {
		return ""
	}

	normalized := NormalizeName(name)
	if normalized == "" {
		return ""
	}

	mac := hmac.New(sha256.New, indexKey(key))
	return digest(mac, nameDomain, normalized)
}

func digest(mac hash.Hash, domain byte, s string) models.BlindToken {
	mac.Reset()
	mac.Write([]byte{domain})
	mac.Write([]byte(s))
	return models.BlindToken(hex.EncodeToString(mac.Sum(nil)))
}

func indexKey(key AccountKey) []byte {
	out := make([]byte, sha256.Size)
	// hkdf only fails when asked for more than 255*HashLen bytes.
	_, _ = io.ReadFull(hkdf.New(sha256.New, key.b, nil, []byte(indexKeyInfo)), out)
	return out
}

// RecordTokens returns the tokens stored alongside a record of kind: word
// tokens for entry bodies, the name token for topic names and none for
// custom fields. Every write path goes through here so that a record
// re-encrypted under a new key is indexed exactly like a freshly saved one.
func RecordTokens(idx BlindIndexer, kind models.RecordKind, plaintext string, key AccountKey) []models.BlindToken {
	switch kind {
	case models.KindEntryBody:
		return idx.Tokenize(plaintext, key)
	case models.KindTopicName:
		if t := idx.NameToken(plaintext, key); t != "" {
			return []models.BlindToken{t}
		}
	}
	return nil
}
