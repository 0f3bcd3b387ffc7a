// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] can be used to
// start either the server or the client.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.SessionSignKey == "" || cfg.App.SessionIssuer == "" || cfg.App.SessionDuration <= 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}

// UsesDefaultSessionKey reports whether sessions are signed with the
// development key.
func (cfg *StructuredConfig) UsesDefaultSessionKey() bool {
	return cfg.App.SessionSignKey == DefaultSessionSignKey
}
