// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// server invariants before it is used at startup, applying defaults for
// optional fields.
//
// The token sign key deliberately falls back to
// [InsecureDefaultTokenSignKey] instead of failing so that a local setup
// works out of the box; the server warns loudly at startup when the default
// is in effect.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = "localhost:8080"
	}

	if cfg.Auth.TokenSignKey == "" {
		cfg.Auth.TokenSignKey = InsecureDefaultTokenSignKey
	}
	if cfg.Auth.TokenIssuer == "" {
		cfg.Auth.TokenIssuer = "go-diary"
	}
	if cfg.Auth.TokenDuration == 0 {
		cfg.Auth.TokenDuration = defaultTokenDuration
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.ServerURL == "" {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}
