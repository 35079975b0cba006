package service

import (
	"fmt"

	"github.com/MKhiriev/go-journal-keeper/internal/config"
	"github.com/MKhiriev/go-journal-keeper/internal/crypto"
	"github.com/MKhiriev/go-journal-keeper/internal/logger"
	"github.com/MKhiriev/go-journal-keeper/internal/reencrypt"
	"github.com/MKhiriev/go-journal-keeper/internal/session"
	"github.com/MKhiriev/go-journal-keeper/internal/store"
	"github.com/MKhiriev/go-journal-keeper/internal/utils"
	"github.com/MKhiriev/go-journal-keeper/models"
)

// Services groups everything the client application needs.
type Services struct {
	Vault       VaultService
	Session     session.KeySession
	Coordinator reencrypt.Coordinator
	IdleWatcher *session.IdleWatcher
}

// NewServices builds the crypto primitives from cfg.Crypto, a key session
// backed by the in-memory enclave cache, the re-encryption coordinator and
// the vault service on top of accountStore.
func NewServices(accountStore store.AccountStore, cfg *config.StructuredConfig, log *logger.Logger) (*Services, error) {
	deriver, err := crypto.NewKeyDeriver(models.KDFParams{
		Time:      cfg.Crypto.KDFTime,
		MemoryKiB: cfg.Crypto.KDFMemoryKiB,
		Threads:   cfg.Crypto.KDFThreads,
		KeyLen:    crypto.KeySize,
	})
	if err != nil {
		return nil, fmt.Errorf("create key deriver: %w", err)
	}
	cipher := crypto.NewCipher()
	indexer := crypto.NewBlindIndexer(cfg.Crypto.MinTokenLength)

	keySession := session.NewKeySession(session.NewEnclaveCache(), log)
	coordinator := reencrypt.NewCoordinator(accountStore, keySession, deriver, cipher, indexer, cfg.Reencrypt.Workers)

	vault := NewVaultService(accountStore, keySession, deriver, cipher, indexer, coordinator, utils.NewUUIDGenerator(), log)

	return &Services{
		Vault:       vault,
		Session:     keySession,
		Coordinator: coordinator,
		IdleWatcher: session.NewIdleWatcher(keySession, cfg.Session.IdleTimeout),
	}, nil
}
