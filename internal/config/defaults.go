// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// DefaultSessionSignKey is used when no signing key is configured. It is
// only suitable for local development.
const DefaultSessionSignKey = "dev-secret-key"

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			SessionSignKey:  DefaultSessionSignKey,
			SessionIssuer:   "go-todo-keeper",
			SessionDuration: 24 * time.Hour,
			Version:         "dev",
			LogLevel:        "debug",
		},
		Storage: Storage{
			DB: DB{DSN: "file:todos.db?_foreign_keys=on"},
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
		Adapter: Adapter{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 10 * time.Second,
		},
	}
}
