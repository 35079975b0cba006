package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-journal-keeper/internal/crypto"
	"github.com/MKhiriev/go-journal-keeper/internal/reencrypt"
	"github.com/MKhiriev/go-journal-keeper/internal/session"
	"github.com/MKhiriev/go-journal-keeper/models"
)

func (v *vaultService) Signup(ctx context.Context, accountID, password string) error {
	if accountID == "" {
		return ErrInvalidDataProvided
	}
	if password == "" {
		return ErrEmptyPassword
	}

	salt, err := v.deriver.GenerateSalt()
	if err != nil {
		return fmt.Errorf("error generating salt: %w", err)
	}

	params := v.deriver.DefaultParams()
	key, err := v.deriver.Derive(password, salt, params)
	if err != nil {
		return fmt.Errorf("error deriving key: %w", err)
	}
	defer key.Zero()

	cred := models.Credential{
		AccountID: accountID,
		Salt:      salt,
		Verifier:  v.deriver.NewVerifier(key),
		KDF:       params,
	}
	if err = v.store.ProvisionAccount(ctx, cred); err != nil {
		return err
	}

	v.session.SetKey(accountID, key)
	v.cacheKey()

	v.logger.Info().Str("func", "vaultService.Signup").Str("account_id", accountID).Msg("account created")
	return nil
}

func (v *vaultService) Unlock(ctx context.Context, accountID, password string) (crypto.AccountKey, error) {
	if password == "" {
		return crypto.AccountKey{}, ErrEmptyPassword
	}

	key, err := v.deriveAndVerify(ctx, accountID, password)
	if err != nil {
		return crypto.AccountKey{}, err
	}

	v.session.SetKey(accountID, key)
	v.cacheKey()

	v.logger.Info().Str("func", "vaultService.Unlock").Str("account_id", accountID).Msg("session unlocked")
	return key, nil
}

func (v *vaultService) Bootstrap(ctx context.Context) bool {
	restored := v.session.RestoreFromTransientCache()
	v.logger.Debug().Str("func", "vaultService.Bootstrap").Bool("restored", restored).Msg("bootstrap")
	return restored
}

func (v *vaultService) Lock(reason session.ClearReason) {
	v.session.ClearKey(reason)
}

func (v *vaultService) ChangePassword(ctx context.Context, currentPassword, newPassword string, onProgress func(reencrypt.Event)) (reencrypt.Result, error) {
	if currentPassword == "" || newPassword == "" {
		return reencrypt.Result{}, ErrEmptyPassword
	}

	accountID := v.session.AccountID()
	if accountID == "" {
		return reencrypt.Result{}, session.ErrKeyUnavailable
	}

	// Re-entering the current password guards an unattended unlocked session.
	key, err := v.deriveAndVerify(ctx, accountID, currentPassword)
	if err != nil {
		return reencrypt.Result{}, err
	}
	key.Zero()

	res, err := v.coordinator.Run(ctx, reencrypt.Request{
		AccountID:   accountID,
		NewPassword: newPassword,
		OnProgress:  onProgress,
	})
	if err != nil {
		return reencrypt.Result{}, err
	}

	// Every session signs in again under the new password.
	if res.RequiresReauth {
		v.session.ClearKey(session.ReasonPasswordChange)
	}

	v.logger.Info().
		Str("func", "vaultService.ChangePassword").
		Str("account_id", accountID).
		Int("records", res.Records).
		Msg("password changed")
	return res, nil
}

// deriveAndVerify re-derives the key of accountID from password and checks it
// against the stored verifier.
func (v *vaultService) deriveAndVerify(ctx context.Context, accountID, password string) (crypto.AccountKey, error) {
	cred, err := v.store.FetchCredential(ctx, accountID)
	if err != nil {
		return crypto.AccountKey{}, err
	}

	key, err := v.deriver.Derive(password, cred.Salt, cred.KDF)
	if err != nil {
		return crypto.AccountKey{}, fmt.Errorf("error deriving key: %w", err)
	}
	if !v.deriver.Verify(key, cred.Verifier) {
		key.Zero()
		v.logger.Warn().Str("func", "vaultService.deriveAndVerify").Str("account_id", accountID).Msg("wrong password")
		return crypto.AccountKey{}, ErrWrongPassword
	}
	return key, nil
}

// cacheKey keeps the key for a UI reload. A failure only costs a password
// prompt later.
func (v *vaultService) cacheKey() {
	if err := v.session.SaveToTransientCache(); err != nil && !errors.Is(err, session.ErrKeyUnavailable) {
		v.logger.Warn().Err(err).Str("func", "vaultService.cacheKey").Msg("transient cache unavailable")
	}
}
