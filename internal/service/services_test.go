package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-journal-keeper/internal/app"
	"github.com/MKhiriev/go-journal-keeper/internal/config"
	"github.com/MKhiriev/go-journal-keeper/internal/logger"
	"github.com/MKhiriev/go-journal-keeper/internal/reencrypt"
	"github.com/MKhiriev/go-journal-keeper/internal/session"
	"github.com/MKhiriev/go-journal-keeper/internal/store"
	"github.com/MKhiriev/go-journal-keeper/models"
)

func newTestServices(t *testing.T) (*Services, store.AccountStore) {
	t.Helper()

	cfg := config.Defaults()
	cfg.Crypto.KDFTime = 1
	cfg.Crypto.KDFMemoryKiB = 64
	cfg.Crypto.KDFThreads = 1
	cfg.Session.IdleTimeout = time.Hour

	st := store.NewMemoryAccountStore()
	svcs, err := NewServices(st, cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { svcs.Session.ClearKey(session.ReasonShutdown) })

	return svcs, st
}

func TestServices_JournalLifecycle(t *testing.T) {
	svcs, _ := newTestServices(t)
	vault := svcs.Vault
	ctx := context.Background()

	require.NoError(t, vault.Signup(ctx, "alice", "correct horse battery staple"))

	topicID, err := vault.SaveRecord(ctx, models.KindTopicName, "", "Health")
	require.NoError(t, err)
	entryID, err := vault.SaveRecord(ctx, models.KindEntryBody, "", "<p>Feeling <strong>better</strong> today</p>")
	require.NoError(t, err)
	_, err = vault.SaveRecord(ctx, models.KindEntryBody, "", "Feeling tired")
	require.NoError(t, err)
	_, err = vault.SaveRecord(ctx, models.KindCustomField, "", `{"mood":5}`)
	require.NoError(t, err)

	ids, err := vault.Search(ctx, "feeling BETTER today!!")
	require.NoError(t, err)
	assert.Equal(t, []string{entryID}, ids)

	ids, err = vault.FindTopic(ctx, "  health ")
	require.NoError(t, err)
	assert.Equal(t, []string{topicID}, ids)

	// Markup is not searchable.
	ids, err = vault.Search(ctx, "strong")
	require.NoError(t, err)
	assert.Empty(t, ids)

	vault.Lock(session.ReasonLogout)
	_, err = vault.Search(ctx, "feeling")
	assert.ErrorIs(t, err, session.ErrKeyUnavailable)

	_, err = vault.Unlock(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, ErrWrongPassword)

	key, err := vault.Unlock(ctx, "alice", "correct horse battery staple")
	require.NoError(t, err)
	key.Zero()

	recs, err := vault.Records(ctx)
	require.NoError(t, err)
	require.Len(t, recs, 4)
	for _, rec := range recs {
		assert.True(t, rec.Readable, rec.ID)
	}
}

func TestServices_ChangePassword(t *testing.T) {
	svcs, _ := newTestServices(t)
	vault := svcs.Vault
	ctx := context.Background()

	require.NoError(t, vault.Signup(ctx, "alice", "old password"))
	entryID, err := vault.SaveRecord(ctx, models.KindEntryBody, "", "Long walk by the river")
	require.NoError(t, err)

	var stages []reencrypt.Stage
	res, err := vault.ChangePassword(ctx, "old password", "new password", func(e reencrypt.Event) {
		stages = append(stages, e.Stage)
	})
	require.NoError(t, err)
	assert.True(t, res.RequiresReauth)
	assert.Equal(t, 1, res.Records)
	assert.Contains(t, stages, reencrypt.StageDone)

	// The change signs the session out.
	_, ok := svcs.Session.GetKey()
	assert.False(t, ok)
	_, err = vault.Search(ctx, "river")
	assert.ErrorIs(t, err, session.ErrKeyUnavailable)

	_, err = vault.Unlock(ctx, "alice", "old password")
	assert.ErrorIs(t, err, ErrWrongPassword)

	key, err := vault.Unlock(ctx, "alice", "new password")
	require.NoError(t, err)
	key.Zero()

	// Search keeps working with the rotated key.
	ids, err := vault.Search(ctx, "river")
	require.NoError(t, err)
	assert.Equal(t, []string{entryID}, ids)

	recs, err := vault.Records(ctx)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "Long walk by the river", recs[0].Text)
}

func TestServices_DamagedRecordShowsPlaceholder(t *testing.T) {
	svcs, st := newTestServices(t)
	vault := svcs.Vault
	ctx := context.Background()

	require.NoError(t, vault.Signup(ctx, "alice", "pw"))
	_, err := vault.SaveRecord(ctx, models.KindEntryBody, "r1", "readable")
	require.NoError(t, err)

	blob, err := vault.EncryptField("damaged")
	require.NoError(t, err)
	blob.Ciphertext[len(blob.Ciphertext)-1] ^= 0x01
	require.NoError(t, st.PutRecords(ctx, "alice", []models.EncryptedRecord{
		{ID: "r2", Kind: models.KindEntryBody, Blob: blob},
	}))

	recs, err := vault.Records(ctx)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "readable", recs[0].Text)
	assert.False(t, recs[1].Readable)
	assert.Equal(t, app.MsgDecryptionFailedPlaceholder, recs[1].Text)
}

func TestServices_BootstrapRestoresOnce(t *testing.T) {
	svcs, _ := newTestServices(t)
	ctx := context.Background()

	require.NoError(t, svcs.Vault.Signup(ctx, "alice", "pw"))

	assert.True(t, svcs.Vault.Bootstrap(ctx))
	assert.Equal(t, "alice", svcs.Session.AccountID())
	assert.False(t, svcs.Vault.Bootstrap(ctx), "restore happens at most once per session")
}
