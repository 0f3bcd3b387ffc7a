// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
)

func newMockDB(t *testing.T, dialect Dialect) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	var classificator ErrorClassificator = NewSQLiteErrorClassifier()
	if dialect == DialectPostgres {
		classificator = NewPostgresErrorClassifier()
	}

	return newDB(conn, dialect, classificator, logger.Nop()), mock
}

var todoRowColumns = []string{"id", "user_id", "title", "done"}
