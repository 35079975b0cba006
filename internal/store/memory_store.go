package store

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-journal-keeper/internal/logger"
	"github.com/MKhiriev/go-journal-keeper/models"
)

// memoryAccountStore is an in-process [AccountStore]. Each account's records
// live in their own map, reachable only through that account's entry.
// Atomic rewrites build a complete new map and swap it in under the lock.
type memoryAccountStore struct {
	mu       sync.RWMutex
	accounts map[string]*memoryNamespace
	now      func() time.Time
}

type memoryNamespace struct {
	cred    models.Credential
	records map[string]models.EncryptedRecord
}

// NewMemoryAccountStore constructs an empty in-memory [AccountStore].
func NewMemoryAccountStore() AccountStore {
	return &memoryAccountStore{
		accounts: make(map[string]*memoryNamespace),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// ProvisionAccount implements [AccountStore].
func (m *memoryAccountStore) ProvisionAccount(ctx context.Context, cred models.Credential) error {
	if cred.AccountID == "" || len(cred.Salt) == 0 || len(cred.Verifier) == 0 {
		return fmt.Errorf("provision account: %w", ErrInvalidRecord)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.accounts[cred.AccountID]; ok {
		return ErrAccountAlreadyExists
	}

	now := m.now()
	stored := cloneCredential(cred)
	stored.Namespace = NamespaceFor(cred.AccountID)
	stored.Version = 1
	stored.CreatedAt = &now
	stored.UpdatedAt = &now

	m.accounts[cred.AccountID] = &memoryNamespace{
		cred:    stored,
		records: make(map[string]models.EncryptedRecord),
	}

	logger.FromContext(ctx).Info().
		Str("func", "memoryAccountStore.ProvisionAccount").
		Str("namespace", stored.Namespace).
		Msg("account provisioned")
	return nil
}

// FetchCredential implements [AccountStore].
func (m *memoryAccountStore) FetchCredential(ctx context.Context, accountID string) (models.Credential, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ns, ok := m.accounts[accountID]
	if !ok {
		return models.Credential{}, ErrAccountNotFound
	}
	return cloneCredential(ns.cred), nil
}

// FetchAllEncryptedRecords implements [AccountStore]. Records are returned
// sorted by ID like the SQL store.
func (m *memoryAccountStore) FetchAllEncryptedRecords(ctx context.Context, accountID string) ([]models.EncryptedRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ns, ok := m.accounts[accountID]
	if !ok {
		return nil, ErrAccountNotFound
	}

	out := make([]models.EncryptedRecord, 0, len(ns.records))
	for _, rec := range ns.records {
		out = append(out, cloneRecord(rec))
	}
	slices.SortFunc(out, func(a, b models.EncryptedRecord) int {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	})
	return out, nil
}

// PutRecords implements [AccountStore].
func (m *memoryAccountStore) PutRecords(ctx context.Context, accountID string, records []models.EncryptedRecord) error {
	if err := validateRecords(records); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	ns, ok := m.accounts[accountID]
	if !ok {
		return ErrAccountNotFound
	}

	now := m.now()
	for _, rec := range records {
		stored := cloneRecord(rec)
		stored.Tokens = blindTokens(uniqueTokens(rec.Tokens))
		stored.UpdatedAt = &now
		ns.records[rec.ID] = stored
	}
	return nil
}

// FindRecordIDsByTokens implements [AccountStore].
func (m *memoryAccountStore) FindRecordIDsByTokens(ctx context.Context, accountID string, tokens []models.BlindToken) ([]string, error) {
	wanted := uniqueTokens(tokens)

	m.mu.RLock()
	defer m.mu.RUnlock()

	ns, ok := m.accounts[accountID]
	if !ok {
		return nil, ErrAccountNotFound
	}

	ids := make([]string, 0)
	if len(wanted) == 0 {
		return ids, nil
	}

	for id, rec := range ns.records {
		if holdsAll(rec.Tokens, wanted) {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	return ids, nil
}

// WriteRecordsAndCredentialAtomically implements [AccountStore].
func (m *memoryAccountStore) WriteRecordsAndCredentialAtomically(ctx context.Context, accountID string, records []models.EncryptedRecord, newCred models.Credential) error {
	if newCred.AccountID == "" {
		newCred.AccountID = accountID
	}
	if newCred.AccountID != accountID || len(newCred.Salt) == 0 || len(newCred.Verifier) == 0 {
		return fmt.Errorf("atomic rewrite: credential does not belong to account: %w", ErrInvalidRecord)
	}
	if err := validateRecords(records); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	ns, ok := m.accounts[accountID]
	if !ok {
		return ErrAccountNotFound
	}
	if ns.cred.Version != newCred.Version {
		return ErrCredentialConflict
	}
	if len(ns.records) != len(records) {
		return ErrRecordSetChanged
	}

	now := m.now()
	next := make(map[string]models.EncryptedRecord, len(records))
	for _, rec := range records {
		old, ok := ns.records[rec.ID]
		if !ok || old.Kind != rec.Kind {
			return fmt.Errorf("%w: record %s", ErrRecordSetChanged, rec.ID)
		}
		stored := cloneRecord(rec)
		stored.Tokens = blindTokens(uniqueTokens(rec.Tokens))
		stored.UpdatedAt = &now
		next[rec.ID] = stored
	}

	cred := cloneCredential(newCred)
	cred.Namespace = ns.cred.Namespace
	cred.Version = ns.cred.Version + 1
	cred.CreatedAt = ns.cred.CreatedAt
	cred.UpdatedAt = &now

	ns.records = next
	ns.cred = cred

	logger.FromContext(ctx).Info().
		Str("func", "memoryAccountStore.WriteRecordsAndCredentialAtomically").
		Str("namespace", ns.cred.Namespace).
		Int("records", len(records)).
		Msg("records and credential rewritten")
	return nil
}

func holdsAll(have []models.BlindToken, wanted []string) bool {
	for _, w := range wanted {
		if !slices.Contains(have, models.BlindToken(w)) {
			return false
		}
	}
	return true
}

func blindTokens(tokens []string) []models.BlindToken {
	if len(tokens) == 0 {
		return nil
	}
	out := make([]models.BlindToken, len(tokens))
	for i, t := range tokens {
		out[i] = models.BlindToken(t)
	}
	return out
}

func cloneRecord(rec models.EncryptedRecord) models.EncryptedRecord {
	rec.Blob = models.EncryptedBlob{
		Ciphertext: slices.Clone(rec.Blob.Ciphertext),
		IV:         slices.Clone(rec.Blob.IV),
	}
	rec.Tokens = slices.Clone(rec.Tokens)
	return rec
}

func cloneCredential(cred models.Credential) models.Credential {
	cred.Salt = slices.Clone(cred.Salt)
	cred.Verifier = slices.Clone(cred.Verifier)
	return cred
}
