// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// ErrInvalidClientConfigs indicates an unusable client configuration.
var ErrInvalidClientConfigs = errors.New("invalid client configuration")

// ClientAdapter holds the settings of the catalog API client used by
// cmd/client.
type ClientAdapter struct {
	// HTTPAddress is the base address of the catalog server. A missing
	// scheme means http.
	// Env: CATALOG_ADDRESS
	HTTPAddress string `env:"CATALOG_ADDRESS" envDefault:"localhost:3000"`

	// RequestTimeout is the default timeout for outbound client requests.
	// Env: CATALOG_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"CATALOG_REQUEST_TIMEOUT" envDefault:"15s"`

	// Token is a bearer token obtained from an earlier login.
	// Env: CATALOG_TOKEN
	Token string `env:"CATALOG_TOKEN"`

	// LogLevel is a zerolog level name.
	// Env: CATALOG_LOG_LEVEL
	LogLevel string `env:"CATALOG_LOG_LEVEL" envDefault:"info"`
}

// GetClientConfig loads the client settings from an optional .env file and
// the environment.
func GetClientConfig() (*ClientAdapter, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env: %w", err)
	}

	cfg := new(ClientAdapter)
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}

func (cfg *ClientAdapter) validate() error {
	if strings.TrimSpace(cfg.HTTPAddress) == "" {
		return fmt.Errorf("%w: empty server address", ErrInvalidClientConfigs)
	}
	if cfg.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidClientConfigs)
	}

	return nil
}
