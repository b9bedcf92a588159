// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the JSON file layout.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		VaultTokenTTL Duration `json:"vault_token_ttl"`
		HashKey       string   `json:"hash_key"`
		ServerID      string   `json:"server_id"`
		TagQuota      int      `json:"tag_quota"`
		DefaultColor  string   `json:"default_color"`
		Version       string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
		TrustedProxies  []string `json:"trusted_proxies"`
	} `json:"server,omitempty"`

	Session struct {
		TTL Duration `json:"ttl"`
	} `json:"session,omitempty"`

	RateLimit struct {
		MaxAttempts int      `json:"max_attempts"`
		Window      Duration `json:"window"`
	} `json:"rate_limit,omitempty"`

	Opaque struct {
		ServerSetup string `json:"server_setup"`
	} `json:"opaque,omitempty"`

	Workers struct {
		SweepInterval  Duration `json:"sweep_interval"`
		SweepBatchSize int      `json:"sweep_batch_size"`
	} `json:"workers,omitempty"`
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
		App: App{
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			VaultTokenTTL: time.Duration(jsonCfg.App.VaultTokenTTL),
			HashKey:       jsonCfg.App.HashKey,
			ServerID:      jsonCfg.App.ServerID,
			TagQuota:      jsonCfg.App.TagQuota,
			DefaultColor:  jsonCfg.App.DefaultColor,
			Version:       jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
			TrustedProxies:  jsonCfg.Server.TrustedProxies,
		},
		Session: Session{
			TTL: time.Duration(jsonCfg.Session.TTL),
		},
		RateLimit: RateLimit{
			MaxAttempts: jsonCfg.RateLimit.MaxAttempts,
			Window:      time.Duration(jsonCfg.RateLimit.Window),
		},
		Opaque: Opaque{
			ServerSetup: jsonCfg.Opaque.ServerSetup,
		},
		Workers: Workers{
			SweepInterval:  time.Duration(jsonCfg.Workers.SweepInterval),
			SweepBatchSize: jsonCfg.Workers.SweepBatchSize,
		},
		JSONFilePath: "",
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
