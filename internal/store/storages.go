// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
)

// Storages groups every repository the service layer depends on.
type Storages struct {
	UserRepository UserRepository
	TodoRepository TodoRepository
	HealthChecker  HealthChecker

	db *DB
}

// NewStorages builds repositories on top of an already opened db.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, logger),
		TodoRepository: NewTodoRepository(db, logger),
		HealthChecker:  db,
		db:             db,
	}
}

// Open connects to the database configured in cfg, applies migrations and
// returns the ready-to-use repositories.
func Open(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	db, err := NewConnectDB(ctx, cfg.DB, logger)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}
	logger.Info().Str("dialect", string(db.Dialect())).Msg("database schema is up to date")

	return NewStorages(db, logger), nil
}

// Close releases the underlying connection pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
