package service

import (
	"errors"

	"github.com/MKhiriev/go-journal-keeper/internal/app"
	"github.com/MKhiriev/go-journal-keeper/internal/crypto"
	"github.com/MKhiriev/go-journal-keeper/models"
)

func (v *vaultService) EncryptField(plaintext string) (models.EncryptedBlob, error) {
	key, err := v.key()
	if err != nil {
		return models.EncryptedBlob{}, err
	}
	defer key.Zero()

	return v.cipher.Encrypt(plaintext, key)
}

func (v *vaultService) DecryptField(blob models.EncryptedBlob) (string, error) {
	key, err := v.key()
	if err != nil {
		return "", err
	}
	defer key.Zero()

	return v.cipher.Decrypt(blob, key)
}

func (v *vaultService) DecryptFieldOrPlaceholder(blob models.EncryptedBlob) (string, error) {
	plaintext, err := v.DecryptField(blob)
	if errors.Is(err, crypto.ErrDecryptionFailed) {
		v.logger.Debug().Err(err).Str("func", "vaultService.DecryptFieldOrPlaceholder").Msg("field not readable")
		return app.MsgDecryptionFailedPlaceholder, nil
	}
	return plaintext, err
}

func (v *vaultService) SearchTokensFor(text string) ([]models.BlindToken, error) {
	key, err := v.key()
	if err != nil {
		return nil, err
	}
	defer key.Zero()

	return v.indexer.Tokenize(text, key), nil
}

func (v *vaultService) NameTokenFor(name string) (models.BlindToken, error) {
	key, err := v.key()
	if err != nil {
		return "", err
	}
	defer key.Zero()

	return v.indexer.NameToken(name, key), nil
}
