package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the JSON config file.
type StructuredJSONConfig struct {
	App struct {
		LogLevel string `json:"log_level"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			Driver       string `json:"driver"`
			DSN          string `json:"dsn"`
			MaxOpenConns int    `json:"max_open_conns"`
			MaxIdleConns int    `json:"max_idle_conns"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Crypto struct {
		KDFTime        uint32 `json:"kdf_time"`
		KDFMemoryKiB   uint32 `json:"kdf_memory_kib"`
		KDFThreads     uint8  `json:"kdf_threads"`
		MinTokenLength int    `json:"min_token_length"`
	} `json:"crypto,omitempty"`

	Session struct {
		IdleTimeout Duration `json:"idle_timeout"`
	} `json:"session,omitempty"`

	Reencrypt struct {
		Workers int `json:"workers"`
	} `json:"reencrypt,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{LogLevel: jsonCfg.App.LogLevel},
		Storage: Storage{
			DB: DBConfig{
				Driver:       jsonCfg.Storage.DB.Driver,
				DSN:          jsonCfg.Storage.DB.DSN,
				MaxOpenConns: jsonCfg.Storage.DB.MaxOpenConns,
				MaxIdleConns: jsonCfg.Storage.DB.MaxIdleConns,
			},
		},
		Crypto: Crypto{
			KDFTime:        jsonCfg.Crypto.KDFTime,
			KDFMemoryKiB:   jsonCfg.Crypto.KDFMemoryKiB,
			KDFThreads:     jsonCfg.Crypto.KDFThreads,
			MinTokenLength: jsonCfg.Crypto.MinTokenLength,
		},
		Session:   Session{IdleTimeout: time.Duration(jsonCfg.Session.IdleTimeout)},
		Reencrypt: Reencrypt{Workers: jsonCfg.Reencrypt.Workers},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
