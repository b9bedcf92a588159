// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type clientConfig struct {
	ServerAddress  string        `env:"SERVER_ADDRESS" envDefault:"localhost:8080"`
	ServerID       string        `env:"SERVER_ID" envDefault:"go-secret-vault"`
	UserID         int64         `env:"USER_ID"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"15s"`
	Retries        int           `env:"RETRIES" envDefault:"2"`
}

func getClientConfig() (clientConfig, error) {
	cfg, err := env.ParseAsWithOptions[clientConfig](env.Options{Prefix: "SECRET_VAULT_"})
	if err != nil {
		return clientConfig{}, fmt.Errorf("error parsing client env: %w", err)
	}
	if cfg.UserID <= 0 {
		return clientConfig{}, errors.New("SECRET_VAULT_USER_ID must be a positive integer")
	}
	return cfg, nil
}
