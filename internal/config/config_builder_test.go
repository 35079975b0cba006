package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_EarlierSourceWins verifies the precedence rule: mergo fills only
// zero fields, so the first config to set a field keeps it.
func TestBuild_EarlierSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Crypto: Crypto{KDFTime: 3}},
		&StructuredConfig{Crypto: Crypto{KDFTime: 9, MinTokenLength: 4}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, uint32(3), cfg.Crypto.KDFTime)
	assert.Equal(t, 4, cfg.Crypto.MinTokenLength)
}

func TestBuild_RejectsInvalidMergedConfig(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Storage: Storage{DB: DBConfig{Driver: "oracle"}}})

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

// ── sources ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("STORAGE_DB_DRIVER", "postgres")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://u:p@localhost/journal")
	t.Setenv("CRYPTO_KDF_MEMORY_KIB", "131072")
	t.Setenv("CRYPTO_KDF_THREADS", "2")
	t.Setenv("SESSION_IDLE_TIMEOUT", "10m")
	t.Setenv("REENCRYPT_WORKERS", "8")
	t.Setenv("APP_LOG_LEVEL", "warn")

	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	cfg := b.configs[0]
	assert.Equal(t, "postgres", cfg.Storage.DB.Driver)
	assert.Equal(t, "postgres://u:p@localhost/journal", cfg.Storage.DB.DSN)
	assert.Equal(t, uint32(131072), cfg.Crypto.KDFMemoryKiB)
	assert.Equal(t, uint8(2), cfg.Crypto.KDFThreads)
	assert.Equal(t, 10*time.Minute, cfg.Session.IdleTimeout)
	assert.Equal(t, 8, cfg.Reencrypt.Workers)
	assert.Equal(t, "warn", cfg.App.LogLevel)
}

func TestWithEnv_SetsErrorOnBadValue(t *testing.T) {
	t.Setenv("REENCRYPT_WORKERS", "many")

	b := newConfigBuilder().withEnv()
	assert.Error(t, b.err)
}

func TestWithArgs_ParsesFlags(t *testing.T) {
	b := newConfigBuilder().withArgs([]string{
		"-driver", "sqlite",
		"-d", "/tmp/journal.db",
		"-kdf-time", "2",
		"-min-token-length", "4",
		"-idle-timeout", "90s",
		"-workers", "2",
	})

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	cfg := b.configs[0]
	assert.Equal(t, "sqlite", cfg.Storage.DB.Driver)
	assert.Equal(t, "/tmp/journal.db", cfg.Storage.DB.DSN)
	assert.Equal(t, uint32(2), cfg.Crypto.KDFTime)
	assert.Equal(t, 4, cfg.Crypto.MinTokenLength)
	assert.Equal(t, 90*time.Second, cfg.Session.IdleTimeout)
	assert.Equal(t, 2, cfg.Reencrypt.Workers)
}

func TestWithArgs_UnknownFlag(t *testing.T) {
	b := newConfigBuilder().withArgs([]string{"-nope"})
	assert.Error(t, b.err)
}

func TestParseFlags_ConfigAlias(t *testing.T) {
	cfg, err := ParseFlags([]string{"-config", "/etc/journal.json"})
	require.NoError(t, err)
	assert.Equal(t, "/etc/journal.json", cfg.JSONFilePath)
}

func TestParseFlags_ThreadsOverflow(t *testing.T) {
	_, err := ParseFlags([]string{"-kdf-threads", "300"})
	assert.Error(t, err)
}

func TestWithJSON_NoOpWhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithJSON_UsesLastPath(t *testing.T) {
	first := StructuredJSONConfig{}
	first.App.LogLevel = "debug"
	last := StructuredJSONConfig{}
	last.App.LogLevel = "error"

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, first)},
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, last)},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "error", b.configs[2].App.LogLevel)
}

func TestWithJSON_SetsErrorWhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/nonexistent/config.json"})
	b.withJSON()

	assert.Error(t, b.err)
}

// TestFullChain_DefaultsFillGaps runs env, flags, JSON and defaults together.
func TestFullChain_DefaultsFillGaps(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.Crypto.MinTokenLength = 5
	payload.Reencrypt.Workers = 16
	path := writeTempJSONConfig(t, payload)

	t.Setenv("REENCRYPT_WORKERS", "2")

	cfg, err := newConfigBuilder().
		withEnv().
		withArgs([]string{"-c", path, "-driver", "memory"}).
		withJSON().
		withDefaults().
		build()

	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Reencrypt.Workers, "env beats JSON")
	assert.Equal(t, 5, cfg.Crypto.MinTokenLength, "JSON beats defaults")
	assert.Equal(t, "memory", cfg.Storage.DB.Driver, "flag beats defaults")
	assert.Equal(t, Defaults().Crypto.KDFMemoryKiB, cfg.Crypto.KDFMemoryKiB)
	assert.Equal(t, Defaults().Session.IdleTimeout, cfg.Session.IdleTimeout)
}
