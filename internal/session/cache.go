package session

import (
	"fmt"
	"sync"

	"github.com/awnumar/memguard"

	"github.com/MKhiriev/go-journal-keeper/internal/crypto"
)

// enclaveCache is a TransientCache that keeps the key sealed in a memguard
// Enclave: encrypted at rest in process memory, unsealed only into a locked,
// guarded buffer for the duration of Get.
type enclaveCache struct {
	mu        sync.Mutex
	accountID string
	enclave   *memguard.Enclave
}

// NewEnclaveCache returns the default TransientCache.
func NewEnclaveCache() TransientCache {
	return &enclaveCache{}
}

// Put implements TransientCache.
func (c *enclaveCache) Put(accountID string, key crypto.AccountKey) error {
	if key.IsZero() {
		return ErrKeyUnavailable
	}

	// NewEnclave wipes its argument, and Bytes already returns a copy.
	enclave := memguard.NewEnclave(key.Bytes())
	if enclave == nil {
		return fmt.Errorf("seal key: %w", crypto.ErrInvalidKey)
	}

	c.mu.Lock()
	c.accountID = accountID
	c.enclave = enclave
	c.mu.Unlock()
	return nil
}

// Get implements TransientCache.
func (c *enclaveCache) Get() (string, crypto.AccountKey, error) {
	c.mu.Lock()
	accountID, enclave := c.accountID, c.enclave
	c.mu.Unlock()

	if enclave == nil {
		return "", crypto.AccountKey{}, ErrCacheEmpty
	}

	buf, err := enclave.Open()
	if err != nil {
		return "", crypto.AccountKey{}, fmt.Errorf("unseal key: %w", err)
	}
	defer buf.Destroy()

	key, err := crypto.NewAccountKey(buf.Bytes())
	if err != nil {
		return "", crypto.AccountKey{}, err
	}
	return accountID, key, nil
}

// Wipe implements TransientCache. The sealed ciphertext becomes unreachable;
// without the enclave there is nothing left to unseal.
func (c *enclaveCache) Wipe() {
	c.mu.Lock()
	c.accountID = ""
	c.enclave = nil
	c.mu.Unlock()
}
