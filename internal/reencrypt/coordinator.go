// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package reencrypt changes the password of an account by re-encrypting all
// of its records under a freshly derived key and committing them together
// with the new credential in one atomic write.
package reencrypt

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/go-journal-keeper/internal/crypto"
	"github.com/MKhiriev/go-journal-keeper/internal/logger"
	"github.com/MKhiriev/go-journal-keeper/internal/session"
	"github.com/MKhiriev/go-journal-keeper/internal/store"
	"github.com/MKhiriev/go-journal-keeper/internal/workers"
	"github.com/MKhiriev/go-journal-keeper/models"
)

type coordinator struct {
	store   store.AccountStore
	session session.KeySession
	deriver crypto.KeyDeriver
	cipher  crypto.Cipher
	indexer crypto.BlindIndexer
	pool    *workers.Pool
}

// NewCoordinator wires a Coordinator. workerCount bounds the number of
// records decrypted and re-encrypted at once.
func NewCoordinator(
	accountStore store.AccountStore,
	keySession session.KeySession,
	deriver crypto.KeyDeriver,
	cipher crypto.Cipher,
	indexer crypto.BlindIndexer,
	workerCount int,
) Coordinator {
	return &coordinator{
		store:   accountStore,
		session: keySession,
		deriver: deriver,
		cipher:  cipher,
		indexer: indexer,
		pool:    workers.NewPool(workerCount),
	}
}

// job is the in-memory plan of one run. It is never persisted; whatever
// happens, it is dropped when Run returns.
type job struct {
	req       Request
	stage     Stage
	total     int
	processed atomic.Int64

	progressMu sync.Mutex

	oldKey  crypto.AccountKey
	newKey  crypto.AccountKey
	cred    models.Credential
	newCred models.Credential
	records []models.EncryptedRecord
	rewrite []models.EncryptedRecord
}

func (j *job) enter(stage Stage) {
	j.stage = stage
	j.emit(Event{Stage: stage, Processed: int(j.processed.Load()), Total: j.total})
}

func (j *job) emit(e Event) {
	if j.req.OnProgress == nil {
		return
	}
	j.progressMu.Lock()
	defer j.progressMu.Unlock()
	j.req.OnProgress(e)
}

// advance counts one finished record. The counter moves under the same lock
// that serializes callbacks, so reported counts never go backwards.
func (j *job) advance() {
	j.progressMu.Lock()
	defer j.progressMu.Unlock()

	done := j.processed.Add(1)
	if j.req.OnProgress != nil {
		j.req.OnProgress(Event{Stage: StageReencryptingBatch, Processed: int(done), Total: j.total})
	}
}

// fail moves the job to Failed and builds the error describing it.
func (j *job) fail(err error) error {
	processed := int(j.processed.Load())
	j.emit(Event{Stage: StageFailed, FailedStage: j.stage, Processed: processed, Total: j.total})
	return &AbortedError{Stage: j.stage, Processed: processed, Total: j.total, Err: err}
}

func (j *job) wipe() {
	j.oldKey.Zero()
	j.newKey.Zero()
	j.records = nil
	j.rewrite = nil
}

// Run implements Coordinator.
//
// Cancelling ctx before Committing aborts the run and discards the job;
// nothing durable has changed at that point. Committing itself ignores
// cancellation so the store transaction always runs to commit or rollback.
func (c *coordinator) Run(ctx context.Context, req Request) (Result, error) {
	log := logger.FromContext(ctx)

	if req.AccountID == "" || req.NewPassword == "" {
		return Result{}, ErrInvalidRequest
	}

	oldKey, ok := c.session.GetKey()
	if !ok || c.session.AccountID() != req.AccountID {
		oldKey.Zero()
		return Result{}, session.ErrKeyUnavailable
	}

	j := &job{req: req, stage: StageIdle, oldKey: oldKey}
	defer j.wipe()

	steps := []struct {
		stage Stage
		run   func(context.Context, *job) error
	}{
		{StageFetching, c.fetch},
		{StageDeriving, c.derive},
		{StageReencryptingBatch, c.reencrypt},
		{StageCommitting, c.commit},
	}

	for _, step := range steps {
		j.enter(step.stage)

		stepCtx := ctx
		if step.stage == StageCommitting {
			stepCtx = context.WithoutCancel(ctx)
		} else if err := ctx.Err(); err != nil {
			return Result{}, c.abort(ctx, j, err)
		}

		if err := step.run(stepCtx, j); err != nil {
			return Result{}, c.abort(ctx, j, err)
		}
	}

	// Durable state is on the new key from here on.
	if err := c.session.ReplaceKey(j.newKey); err != nil {
		log.Warn().Err(err).
			Str("func", "coordinator.Run").
			Msg("session was cleared during password change")
	}
	c.session.DropTransientCache()

	j.enter(StageDone)

	log.Info().
		Str("func", "coordinator.Run").
		Int("records", j.total).
		Int64("credential_version", j.cred.Version+1).
		Msg("password changed")

	return Result{
		Records:           j.total,
		CredentialVersion: j.cred.Version + 1,
		RequiresReauth:    true,
	}, nil
}

func (c *coordinator) abort(ctx context.Context, j *job, err error) error {
	aborted := j.fail(err)
	logger.FromContext(ctx).Err(err).
		Str("func", "coordinator.Run").
		Str("stage", string(j.stage)).
		Int64("processed", j.processed.Load()).
		Int("total", j.total).
		Msg("password change aborted, account stays on previous key")
	return aborted
}

// fetch reads the credential and every record of the account.
func (c *coordinator) fetch(ctx context.Context, j *job) error {
	cred, err := c.store.FetchCredential(ctx, j.req.AccountID)
	if err != nil {
		return fmt.Errorf("fetch credential: %w", err)
	}
	if !c.deriver.Verify(j.oldKey, cred.Verifier) {
		return ErrStaleKey
	}

	records, err := c.store.FetchAllEncryptedRecords(ctx, j.req.AccountID)
	if err != nil {
		return fmt.Errorf("fetch records: %w", err)
	}

	j.cred = cred
	j.records = records
	j.total = len(records)
	return nil
}

// derive creates the new credential. The version of the credential that was
// read is carried over so the store can reject a concurrent change.
func (c *coordinator) derive(ctx context.Context, j *job) error {
	salt, err := c.deriver.GenerateSalt()
	if err != nil {
		return err
	}

	params := c.deriver.DefaultParams()
	newKey, err := c.deriver.Derive(j.req.NewPassword, salt, params)
	if err != nil {
		return err
	}

	j.newKey = newKey
	j.newCred = models.Credential{
		AccountID: j.req.AccountID,
		Namespace: j.cred.Namespace,
		Salt:      salt,
		Verifier:  c.deriver.NewVerifier(newKey),
		KDF:       params,
		Version:   j.cred.Version,
	}
	return nil
}

// reencrypt opens every record under the old key and seals it under the new
// one. Plaintext exists only inside a single worker call. The first record
// that fails to decrypt aborts the whole batch.
func (c *coordinator) reencrypt(ctx context.Context, j *job) error {
	j.rewrite = make([]models.EncryptedRecord, len(j.records))

	return c.pool.Run(ctx, len(j.records), func(ctx context.Context, i int) error {
		rec := j.records[i]

		plaintext, err := c.cipher.Decrypt(rec.Blob, j.oldKey)
		if err != nil {
			return fmt.Errorf("record %s: %w", rec.ID, err)
		}

		blob, err := c.cipher.Encrypt(plaintext, j.newKey)
		if err != nil {
			return fmt.Errorf("record %s: %w", rec.ID, err)
		}

		j.rewrite[i] = models.EncryptedRecord{
			ID:     rec.ID,
			Kind:   rec.Kind,
			Blob:   blob,
			Tokens: crypto.RecordTokens(c.indexer, rec.Kind, plaintext, j.newKey),
		}

		j.advance()
		return nil
	})
}

// commit hands the whole rewrite to the store in one atomic call.
func (c *coordinator) commit(ctx context.Context, j *job) error {
	err := c.store.WriteRecordsAndCredentialAtomically(ctx, j.req.AccountID, j.rewrite, j.newCred)
	if err != nil {
		if errors.Is(err, store.ErrCredentialConflict) || errors.Is(err, store.ErrRecordSetChanged) {
			return fmt.Errorf("account changed during password change: %w", err)
		}
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
