// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session holds the active account key for the lifetime of an
// unlocked session and is the only place that decides when it is dropped.
package session

import (
	"fmt"
	"sync"

	"github.com/MKhiriev/go-journal-keeper/internal/crypto"
	"github.com/MKhiriev/go-journal-keeper/internal/logger"
)

type keySession struct {
	mu        sync.RWMutex
	accountID string
	key       crypto.AccountKey
	restored  bool

	// generation changes whenever the key is installed, replaced or cleared.
	generation uint64

	cache TransientCache

	listenersMu sync.Mutex
	listeners   []func(ClearReason)

	logger *logger.Logger
}

// NewKeySession creates an empty (locked) session. cache may be nil, in which
// case nothing survives a reload.
func NewKeySession(cache TransientCache, log *logger.Logger) KeySession {
	if log == nil {
		log = logger.Nop()
	}
	return &keySession{cache: cache, logger: log}
}

// SetKey implements KeySession. The session keeps its own copy of key.
func (s *keySession) SetKey(accountID string, key crypto.AccountKey) {
	next := key.Clone()

	s.mu.Lock()
	prev := s.key
	s.accountID = accountID
	s.key = next
	s.generation++
	s.mu.Unlock()

	prev.Zero()
	s.logger.Debug().Str("func", "keySession.SetKey").Str("account_id", accountID).Msg("account key installed")
}

// GetKey implements KeySession.
func (s *keySession) GetKey() (crypto.AccountKey, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.key.IsZero() {
		return crypto.AccountKey{}, false
	}
	return s.key.Clone(), true
}

// AccountID implements KeySession.
func (s *keySession) AccountID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accountID
}

// ReplaceKey implements KeySession.
func (s *keySession) ReplaceKey(key crypto.AccountKey) error {
	if key.IsZero() {
		return fmt.Errorf("replace key: %w", crypto.ErrInvalidKey)
	}

	s.mu.Lock()
	if s.key.IsZero() {
		s.mu.Unlock()
		return ErrKeyUnavailable
	}
	prev := s.key
	s.key = key.Clone()
	s.generation++
	s.mu.Unlock()

	prev.Zero()
	return nil
}

// ClearKey implements KeySession. Listeners run after the key is gone, on the
// caller's goroutine, so that by the time ClearKey returns no decrypted state
// is left anywhere that registered for it.
func (s *keySession) ClearKey(reason ClearReason) {
	s.mu.Lock()
	held := !s.key.IsZero()
	accountID := s.accountID
	s.key.Zero()
	s.accountID = ""
	s.generation++
	s.mu.Unlock()

	if s.cache != nil {
		s.cache.Wipe()
	}

	s.listenersMu.Lock()
	listeners := make([]func(ClearReason), len(s.listeners))
	copy(listeners, s.listeners)
	s.listenersMu.Unlock()

	for _, fn := range listeners {
		fn(reason)
	}

	if held {
		s.logger.Info().
			Str("func", "keySession.ClearKey").
			Str("account_id", accountID).
			Str("reason", string(reason)).
			Msg("account key cleared")
	}
}

// SaveToTransientCache implements KeySession. If the key is cleared or
// swapped while Put runs, the cached copy is wiped again so it can never
// outlive the key it was taken from.
func (s *keySession) SaveToTransientCache() error {
	if s.cache == nil {
		return nil
	}

	s.mu.RLock()
	accountID := s.accountID
	key := s.key.Clone()
	generation := s.generation
	s.mu.RUnlock()
	defer key.Zero()

	if key.IsZero() {
		return ErrKeyUnavailable
	}

	if err := s.cache.Put(accountID, key); err != nil {
		s.logger.Err(err).Str("func", "keySession.SaveToTransientCache").Msg("failed to cache key")
		return fmt.Errorf("save key to transient cache: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generation != generation {
		s.cache.Wipe()
		s.logger.Debug().Str("func", "keySession.SaveToTransientCache").Msg("key changed while caching, cache wiped")
		return ErrKeyUnavailable
	}
	return nil
}

// RestoreFromTransientCache implements KeySession.
func (s *keySession) RestoreFromTransientCache() bool {
	s.mu.Lock()
	if s.restored || s.cache == nil {
		s.mu.Unlock()
		return false
	}
	s.restored = true
	s.mu.Unlock()

	accountID, key, err := s.cache.Get()
	if err != nil {
		s.logger.Debug().Err(err).Str("func", "keySession.RestoreFromTransientCache").Msg("nothing to restore")
		return false
	}
	defer key.Zero()

	s.SetKey(accountID, key)
	return true
}

// DropTransientCache implements KeySession.
func (s *keySession) DropTransientCache() {
	if s.cache != nil {
		s.cache.Wipe()
	}
}

// OnClear implements KeySession.
func (s *keySession) OnClear(fn func(reason ClearReason)) {
	if fn == nil {
		return
	}
	s.listenersMu.Lock()
	s.listeners = append(s.listeners, fn)
	s.listenersMu.Unlock()
}
