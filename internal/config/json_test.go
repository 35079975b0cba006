package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	p := filepath.Join(t.TempDir(), "config.json")
	jsonBody := `{
		"app": { "log_level": "debug" },
		"storage": {
			"db": { "driver": "postgres", "dsn": "postgres://u:p@localhost/journal", "max_open_conns": 20 }
		},
		"crypto": { "kdf_time": 2, "kdf_memory_kib": 32768, "kdf_threads": 2, "min_token_length": 4 },
		"session": { "idle_timeout": "5m" },
		"reencrypt": { "workers": 6 }
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, "postgres", cfg.Storage.DB.Driver)
	assert.Equal(t, "postgres://u:p@localhost/journal", cfg.Storage.DB.DSN)
	assert.Equal(t, 20, cfg.Storage.DB.MaxOpenConns)
	assert.Equal(t, uint32(2), cfg.Crypto.KDFTime)
	assert.Equal(t, uint32(32768), cfg.Crypto.KDFMemoryKiB)
	assert.Equal(t, uint8(2), cfg.Crypto.KDFThreads)
	assert.Equal(t, 4, cfg.Crypto.MinTokenLength)
	assert.Equal(t, 5*time.Minute, cfg.Session.IdleTimeout)
	assert.Equal(t, 6, cfg.Reencrypt.Workers)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_Malformed(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(p, []byte("{not valid json"), 0o600))

	_, err := parseJSON(p)
	assert.Error(t, err)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    time.Duration
		wantErr bool
	}{
		{name: "string", in: `"30s"`, want: 30 * time.Second},
		{name: "nanoseconds", in: `1000`, want: time.Microsecond},
		{name: "bad string", in: `"soon"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalJSON([]byte(tt.in))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}
