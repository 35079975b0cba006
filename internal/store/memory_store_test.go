package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-journal-keeper/models"
)

func TestMemoryAccountStore(t *testing.T) {
	runAccountStoreSuite(t, func(t *testing.T) AccountStore {
		return NewMemoryAccountStore()
	})
}

func TestMemoryAccountStore_ReturnsCopies(t *testing.T) {
	st := NewMemoryAccountStore()
	ctx := context.Background()
	require.NoError(t, st.ProvisionAccount(ctx, testCredential("alice")))
	require.NoError(t, st.PutRecords(ctx, "alice", []models.EncryptedRecord{
		testRecord("r1", models.KindEntryBody, "body", "tok"),
	}))

	got, err := st.FetchAllEncryptedRecords(ctx, "alice")
	require.NoError(t, err)
	got[0].Blob.Ciphertext[0] ^= 0xff
	got[0].Tokens[0] = "changed"

	again, err := st.FetchAllEncryptedRecords(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []byte("ct-body"), again[0].Blob.Ciphertext)
	assert.Equal(t, []models.BlindToken{"tok"}, again[0].Tokens)
}
