package service

import (
	"github.com/MKhiriev/go-journal-keeper/internal/crypto"
	"github.com/MKhiriev/go-journal-keeper/internal/logger"
	"github.com/MKhiriev/go-journal-keeper/internal/reencrypt"
	"github.com/MKhiriev/go-journal-keeper/internal/session"
	"github.com/MKhiriev/go-journal-keeper/internal/store"
)

type idGenerator interface {
	Generate() string
}

type vaultService struct {
	store       store.AccountStore
	session     session.KeySession
	deriver     crypto.KeyDeriver
	cipher      crypto.Cipher
	indexer     crypto.BlindIndexer
	coordinator reencrypt.Coordinator
	ids         idGenerator
	logger      *logger.Logger
}

// NewVaultService wires a VaultService. log may be nil.
func NewVaultService(
	accountStore store.AccountStore,
	keySession session.KeySession,
	deriver crypto.KeyDeriver,
	cipher crypto.Cipher,
	indexer crypto.BlindIndexer,
	coordinator reencrypt.Coordinator,
	ids idGenerator,
	log *logger.Logger,
) VaultService {
	if log == nil {
		log = logger.Nop()
	}
	return &vaultService{
		store:       accountStore,
		session:     keySession,
		deriver:     deriver,
		cipher:      cipher,
		indexer:     indexer,
		coordinator: coordinator,
		ids:         ids,
		logger:      log,
	}
}

// key returns a copy of the session key. Callers zero it when done.
func (v *vaultService) key() (crypto.AccountKey, error) {
	key, ok := v.session.GetKey()
	if !ok {
		return crypto.AccountKey{}, session.ErrKeyUnavailable
	}
	return key, nil
}
