package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-journal-keeper/internal/app"
	"github.com/MKhiriev/go-journal-keeper/internal/crypto"
	"github.com/MKhiriev/go-journal-keeper/internal/session"
	"github.com/MKhiriev/go-journal-keeper/models"
)

func (v *vaultService) SaveRecord(ctx context.Context, kind models.RecordKind, id, plaintext string) (string, error) {
	if !kind.Valid() {
		return "", fmt.Errorf("%w: unknown record kind %q", ErrInvalidDataProvided, kind)
	}

	key, accountID, err := v.keyWithAccount()
	if err != nil {
		return "", err
	}
	defer key.Zero()

	if id == "" {
		id = v.ids.Generate()
	}

	blob, err := v.cipher.Encrypt(plaintext, key)
	if err != nil {
		return "", fmt.Errorf("error encrypting record: %w", err)
	}

	rec := models.EncryptedRecord{
		ID:     id,
		Kind:   kind,
		Blob:   blob,
		Tokens: crypto.RecordTokens(v.indexer, kind, plaintext, key),
	}
	if err = v.store.PutRecords(ctx, accountID, []models.EncryptedRecord{rec}); err != nil {
		return "", err
	}

	v.logger.Debug().
		Str("func", "vaultService.SaveRecord").
		Str("record_id", id).
		Str("kind", string(kind)).
		Int("tokens", len(rec.Tokens)).
		Msg("record saved")
	return id, nil
}

func (v *vaultService) Records(ctx context.Context) ([]models.DecryptedRecord, error) {
	key, accountID, err := v.keyWithAccount()
	if err != nil {
		return nil, err
	}
	defer key.Zero()

	encrypted, err := v.store.FetchAllEncryptedRecords(ctx, accountID)
	if err != nil {
		return nil, err
	}

	out := make([]models.DecryptedRecord, 0, len(encrypted))
	for _, rec := range encrypted {
		dec := models.DecryptedRecord{ID: rec.ID, Kind: rec.Kind}
		text, decErr := v.cipher.Decrypt(rec.Blob, key)
		if decErr != nil {
			v.logger.Warn().
				Err(decErr).
				Str("func", "vaultService.Records").
				Str("record_id", rec.ID).
				Msg("record not readable")
			dec.Text = app.MsgDecryptionFailedPlaceholder
		} else {
			dec.Text = text
			dec.Readable = true
		}
		out = append(out, dec)
	}
	return out, nil
}

func (v *vaultService) Search(ctx context.Context, query string) ([]string, error) {
	key, accountID, err := v.keyWithAccount()
	if err != nil {
		return nil, err
	}
	tokens := v.indexer.Tokenize(query, key)
	key.Zero()

	if len(tokens) == 0 {
		return []string{}, nil
	}
	return v.store.FindRecordIDsByTokens(ctx, accountID, tokens)
}

func (v *vaultService) FindTopic(ctx context.Context, name string) ([]string, error) {
	key, accountID, err := v.keyWithAccount()
	if err != nil {
		return nil, err
	}
	token := v.indexer.NameToken(name, key)
	key.Zero()

	if token == "" {
		return []string{}, nil
	}
	return v.store.FindRecordIDsByTokens(ctx, accountID, []models.BlindToken{token})
}

func (v *vaultService) keyWithAccount() (crypto.AccountKey, string, error) {
	key, err := v.key()
	if err != nil {
		return crypto.AccountKey{}, "", err
	}
	accountID := v.session.AccountID()
	if accountID == "" {
		key.Zero()
		return crypto.AccountKey{}, "", session.ErrKeyUnavailable
	}
	return key, accountID, nil
}
