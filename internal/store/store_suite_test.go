package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-journal-keeper/models"
)

// runAccountStoreSuite checks the behaviour every AccountStore must share.
// newStore must return an empty store.
func runAccountStoreSuite(t *testing.T, newStore func(t *testing.T) AccountStore) {
	t.Run("provision and fetch credential", func(t *testing.T) {
		st := newStore(t)
		ctx := context.Background()

		require.NoError(t, st.ProvisionAccount(ctx, testCredential("alice")))

		cred, err := st.FetchCredential(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, "alice", cred.AccountID)
		assert.Equal(t, NamespaceFor("alice"), cred.Namespace)
		assert.Equal(t, []byte("salt-alice-16byte"), cred.Salt)
		assert.Equal(t, []byte("verifier-alice"), cred.Verifier)
		assert.Equal(t, testKDF, cred.KDF)
		assert.Equal(t, int64(1), cred.Version)
		assert.NotNil(t, cred.CreatedAt)
	})

	t.Run("provision twice", func(t *testing.T) {
		st := newStore(t)
		ctx := context.Background()

		require.NoError(t, st.ProvisionAccount(ctx, testCredential("alice")))
		assert.ErrorIs(t, st.ProvisionAccount(ctx, testCredential("alice")), ErrAccountAlreadyExists)
	})

	t.Run("provision without salt", func(t *testing.T) {
		st := newStore(t)
		cred := testCredential("alice")
		cred.Salt = nil

		assert.ErrorIs(t, st.ProvisionAccount(context.Background(), cred), ErrInvalidRecord)
	})

	t.Run("unknown account", func(t *testing.T) {
		st := newStore(t)
		ctx := context.Background()

		_, err := st.FetchCredential(ctx, "nobody")
		assert.ErrorIs(t, err, ErrAccountNotFound)

		_, err = st.FetchAllEncryptedRecords(ctx, "nobody")
		assert.ErrorIs(t, err, ErrAccountNotFound)

		err = st.PutRecords(ctx, "nobody", []models.EncryptedRecord{testRecord("r1", models.KindEntryBody, "x")})
		assert.ErrorIs(t, err, ErrAccountNotFound)
	})

	t.Run("put and fetch records", func(t *testing.T) {
		st := newStore(t)
		ctx := context.Background()
		require.NoError(t, st.ProvisionAccount(ctx, testCredential("alice")))

		require.NoError(t, st.PutRecords(ctx, "alice", []models.EncryptedRecord{
			testRecord("r2", models.KindTopicName, "name", "tok-name"),
			testRecord("r1", models.KindEntryBody, "body", "tok-b", "tok-a", "tok-a"),
			testRecord("r3", models.KindCustomField, "field"),
		}))

		got, err := st.FetchAllEncryptedRecords(ctx, "alice")
		require.NoError(t, err)
		require.Len(t, got, 3)

		assert.Equal(t, "r1", got[0].ID)
		assert.Equal(t, models.KindEntryBody, got[0].Kind)
		assert.Equal(t, []byte("ct-body"), got[0].Blob.Ciphertext)
		assert.Equal(t, []byte("iv-body"), got[0].Blob.IV)
		assert.Equal(t, []models.BlindToken{"tok-a", "tok-b"}, got[0].Tokens)

		assert.Equal(t, "r2", got[1].ID)
		assert.Equal(t, []models.BlindToken{"tok-name"}, got[1].Tokens)

		assert.Equal(t, "r3", got[2].ID)
		assert.Empty(t, got[2].Tokens)
	})

	t.Run("put replaces blob and tokens", func(t *testing.T) {
		st := newStore(t)
		ctx := context.Background()
		require.NoError(t, st.ProvisionAccount(ctx, testCredential("alice")))

		require.NoError(t, st.PutRecords(ctx, "alice", []models.EncryptedRecord{
			testRecord("r1", models.KindEntryBody, "v1", "tok-old"),
		}))
		require.NoError(t, st.PutRecords(ctx, "alice", []models.EncryptedRecord{
			testRecord("r1", models.KindEntryBody, "v2", "tok-new"),
		}))

		got, err := st.FetchAllEncryptedRecords(ctx, "alice")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, []byte("ct-v2"), got[0].Blob.Ciphertext)
		assert.Equal(t, []models.BlindToken{"tok-new"}, got[0].Tokens)

		ids, err := st.FindRecordIDsByTokens(ctx, "alice", []models.BlindToken{"tok-old"})
		require.NoError(t, err)
		assert.Empty(t, ids)
	})

	t.Run("put rejects invalid records", func(t *testing.T) {
		st := newStore(t)
		ctx := context.Background()
		require.NoError(t, st.ProvisionAccount(ctx, testCredential("alice")))

		tests := []struct {
			name string
			recs []models.EncryptedRecord
		}{
			{name: "empty id", recs: []models.EncryptedRecord{testRecord("", models.KindEntryBody, "x")}},
			{name: "unknown kind", recs: []models.EncryptedRecord{testRecord("r1", "photo", "x")}},
			{name: "no ciphertext", recs: []models.EncryptedRecord{{ID: "r1", Kind: models.KindEntryBody}}},
			{name: "duplicate id", recs: []models.EncryptedRecord{
				testRecord("r1", models.KindEntryBody, "x"),
				testRecord("r1", models.KindEntryBody, "y"),
			}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				assert.ErrorIs(t, st.PutRecords(ctx, "alice", tt.recs), ErrInvalidRecord)
			})
		}
	})

	t.Run("search requires every token", func(t *testing.T) {
		st := newStore(t)
		ctx := context.Background()
		require.NoError(t, st.ProvisionAccount(ctx, testCredential("alice")))
		require.NoError(t, st.PutRecords(ctx, "alice", []models.EncryptedRecord{
			testRecord("r1", models.KindEntryBody, "1", "feeling", "better", "today"),
			testRecord("r2", models.KindEntryBody, "2", "feeling", "worse"),
			testRecord("r3", models.KindEntryBody, "3", "today"),
		}))

		tests := []struct {
			name   string
			tokens []models.BlindToken
			want   []string
		}{
			{name: "single", tokens: []models.BlindToken{"feeling"}, want: []string{"r1", "r2"}},
			{name: "conjunction", tokens: []models.BlindToken{"feeling", "today"}, want: []string{"r1"}},
			{name: "repeated token", tokens: []models.BlindToken{"today", "today"}, want: []string{"r1", "r3"}},
			{name: "no match", tokens: []models.BlindToken{"feeling", "nothing"}, want: []string{}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				ids, err := st.FindRecordIDsByTokens(ctx, "alice", tt.tokens)
				require.NoError(t, err)
				assert.Equal(t, tt.want, ids)
			})
		}
	})

	t.Run("namespaces are isolated", func(t *testing.T) {
		st := newStore(t)
		ctx := context.Background()
		require.NoError(t, st.ProvisionAccount(ctx, testCredential("alice")))
		require.NoError(t, st.ProvisionAccount(ctx, testCredential("bob")))

		// Same record ID and token in both accounts.
		require.NoError(t, st.PutRecords(ctx, "alice", []models.EncryptedRecord{
			testRecord("shared", models.KindEntryBody, "alice", "tok"),
		}))
		require.NoError(t, st.PutRecords(ctx, "bob", []models.EncryptedRecord{
			testRecord("shared", models.KindEntryBody, "bob", "tok"),
			testRecord("only-bob", models.KindEntryBody, "bob2", "tok"),
		}))

		aliceRecs, err := st.FetchAllEncryptedRecords(ctx, "alice")
		require.NoError(t, err)
		require.Len(t, aliceRecs, 1)
		assert.Equal(t, []byte("ct-alice"), aliceRecs[0].Blob.Ciphertext)

		ids, err := st.FindRecordIDsByTokens(ctx, "alice", []models.BlindToken{"tok"})
		require.NoError(t, err)
		assert.Equal(t, []string{"shared"}, ids)

		ids, err = st.FindRecordIDsByTokens(ctx, "bob", []models.BlindToken{"tok"})
		require.NoError(t, err)
		assert.Equal(t, []string{"only-bob", "shared"}, ids)
	})

	t.Run("atomic rewrite", func(t *testing.T) {
		st := newStore(t)
		ctx := context.Background()
		require.NoError(t, st.ProvisionAccount(ctx, testCredential("alice")))
		require.NoError(t, st.PutRecords(ctx, "alice", []models.EncryptedRecord{
			testRecord("r1", models.KindEntryBody, "old1", "tok-old"),
			testRecord("r2", models.KindTopicName, "old2", "name-old"),
		}))

		newCred := testCredential("alice")
		newCred.Salt = []byte("salt-rotated-16b")
		newCred.Verifier = []byte("verifier-rotated")
		newCred.Version = 1

		require.NoError(t, st.WriteRecordsAndCredentialAtomically(ctx, "alice", []models.EncryptedRecord{
			testRecord("r1", models.KindEntryBody, "new1", "tok-new"),
			testRecord("r2", models.KindTopicName, "new2", "name-new"),
		}, newCred))

		cred, err := st.FetchCredential(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, int64(2), cred.Version)
		assert.Equal(t, []byte("salt-rotated-16b"), cred.Salt)
		assert.Equal(t, []byte("verifier-rotated"), cred.Verifier)
		assert.Equal(t, NamespaceFor("alice"), cred.Namespace)

		got, err := st.FetchAllEncryptedRecords(ctx, "alice")
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, []byte("ct-new1"), got[0].Blob.Ciphertext)
		assert.Equal(t, []models.BlindToken{"tok-new"}, got[0].Tokens)
		assert.Equal(t, []byte("ct-new2"), got[1].Blob.Ciphertext)

		ids, err := st.FindRecordIDsByTokens(ctx, "alice", []models.BlindToken{"tok-old"})
		require.NoError(t, err)
		assert.Empty(t, ids)

		// The version read before the rewrite is now stale.
		err = st.WriteRecordsAndCredentialAtomically(ctx, "alice", got, newCred)
		assert.ErrorIs(t, err, ErrCredentialConflict)
	})

	t.Run("atomic rewrite rolls back after partial progress", func(t *testing.T) {
		st := newStore(t)
		ctx := context.Background()
		require.NoError(t, st.ProvisionAccount(ctx, testCredential("alice")))
		original := []models.EncryptedRecord{
			testRecord("r1", models.KindEntryBody, "old1", "tok1"),
			testRecord("r2", models.KindEntryBody, "old2", "tok2"),
			testRecord("r3", models.KindEntryBody, "old3", "tok3"),
		}
		require.NoError(t, st.PutRecords(ctx, "alice", original))

		newCred := testCredential("alice")
		newCred.Salt = []byte("salt-rotated-16b")
		newCred.Version = 1

		// Counts match, but the last record is unknown: the first two
		// rewrites have already run when the third one fails.
		err := st.WriteRecordsAndCredentialAtomically(ctx, "alice", []models.EncryptedRecord{
			testRecord("r1", models.KindEntryBody, "new1", "new-tok1"),
			testRecord("r2", models.KindEntryBody, "new2", "new-tok2"),
			testRecord("r9", models.KindEntryBody, "new9", "new-tok9"),
		}, newCred)
		assert.ErrorIs(t, err, ErrRecordSetChanged)

		requireUnchanged(t, st, "alice", original)
	})

	t.Run("atomic rewrite rejects a changed record set", func(t *testing.T) {
		st := newStore(t)
		ctx := context.Background()
		require.NoError(t, st.ProvisionAccount(ctx, testCredential("alice")))
		original := []models.EncryptedRecord{
			testRecord("r1", models.KindEntryBody, "old1", "tok1"),
			testRecord("r2", models.KindTopicName, "old2", "tok2"),
		}
		require.NoError(t, st.PutRecords(ctx, "alice", original))

		newCred := testCredential("alice")
		newCred.Salt = []byte("salt-rotated-16b")
		newCred.Version = 1

		tests := []struct {
			name string
			recs []models.EncryptedRecord
		}{
			{name: "record missing", recs: []models.EncryptedRecord{
				testRecord("r1", models.KindEntryBody, "new1"),
			}},
			{name: "extra record", recs: []models.EncryptedRecord{
				testRecord("r1", models.KindEntryBody, "new1"),
				testRecord("r2", models.KindTopicName, "new2"),
				testRecord("r3", models.KindEntryBody, "new3"),
			}},
			{name: "kind changed", recs: []models.EncryptedRecord{
				testRecord("r1", models.KindEntryBody, "new1"),
				testRecord("r2", models.KindEntryBody, "new2"),
			}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				err := st.WriteRecordsAndCredentialAtomically(ctx, "alice", tt.recs, newCred)
				assert.ErrorIs(t, err, ErrRecordSetChanged)
				requireUnchanged(t, st, "alice", original)
			})
		}
	})

	t.Run("atomic rewrite with stale version", func(t *testing.T) {
		st := newStore(t)
		ctx := context.Background()
		require.NoError(t, st.ProvisionAccount(ctx, testCredential("alice")))

		newCred := testCredential("alice")
		newCred.Version = 7

		err := st.WriteRecordsAndCredentialAtomically(ctx, "alice", nil, newCred)
		assert.ErrorIs(t, err, ErrCredentialConflict)
	})

	t.Run("atomic rewrite with foreign credential", func(t *testing.T) {
		st := newStore(t)
		ctx := context.Background()
		require.NoError(t, st.ProvisionAccount(ctx, testCredential("alice")))

		newCred := testCredential("bob")
		newCred.Version = 1

		err := st.WriteRecordsAndCredentialAtomically(ctx, "alice", nil, newCred)
		assert.ErrorIs(t, err, ErrInvalidRecord)
	})
}

var testKDF = models.KDFParams{Time: 1, MemoryKiB: 65536, Threads: 4, KeyLen: 32}

func testCredential(accountID string) models.Credential {
	return models.Credential{
		AccountID: accountID,
		Salt:      []byte("salt-" + accountID + "-16byte"),
		Verifier:  []byte("verifier-" + accountID),
		KDF:       testKDF,
	}
}

func testRecord(id string, kind models.RecordKind, payload string, tokens ...models.BlindToken) models.EncryptedRecord {
	return models.EncryptedRecord{
		ID:   id,
		Kind: kind,
		Blob: models.EncryptedBlob{
			Ciphertext: []byte("ct-" + payload),
			IV:         []byte("iv-" + payload),
		},
		Tokens: tokens,
	}
}

// requireUnchanged checks that accountID still holds exactly want and the
// credential it was provisioned with.
func requireUnchanged(t *testing.T, st AccountStore, accountID string, want []models.EncryptedRecord) {
	t.Helper()
	ctx := context.Background()

	cred, err := st.FetchCredential(ctx, accountID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), cred.Version)
	assert.Equal(t, testCredential(accountID).Salt, cred.Salt)

	got, err := st.FetchAllEncryptedRecords(ctx, accountID)
	require.NoError(t, err)
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].ID, got[i].ID)
		assert.Equal(t, want[i].Blob.Ciphertext, got[i].Blob.Ciphertext)
		assert.Equal(t, want[i].Tokens, got[i].Tokens)
	}
}
