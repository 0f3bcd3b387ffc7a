// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/models"
)

// todoRepository is the SQL implementation of [TodoRepository] over the
// "todos" table. Every statement filters by user_id.
type todoRepository struct {
	*DB
	logger *logger.Logger
}

// NewTodoRepository constructs a [TodoRepository] backed by db.
func NewTodoRepository(db *DB, logger *logger.Logger) TodoRepository {
	logger.Debug().Msg("creating todo repository")
	return &todoRepository{
		DB:     db,
		logger: logger,
	}
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanTodo(row rowScanner) (models.Todo, error) {
	var (
		todo models.Todo
		done int64
	)
	if err := row.Scan(&todo.ID, &todo.UserID, &todo.Title, &done); err != nil {
		return models.Todo{}, err
	}
	todo.Done = done == doneTrue
	return todo, nil
}

// CreateTodo inserts todo inside a transaction and returns the stored row.
// A user_id without a matching user yields [ErrUserNotFound].
func (t *todoRepository) CreateTodo(ctx context.Context, todo models.Todo) (models.Todo, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateTodoQuery(t.builder, todo)
	if err != nil {
		log.Err(err).Str("func", "todoRepository.CreateTodo").Msg("failed to build query")
		return models.Todo{}, err
	}

	var created models.Todo
	err = t.withTx(ctx, func(tx *sql.Tx) error {
		var scanErr error
		created, scanErr = scanTodo(tx.QueryRowContext(ctx, query, args...))
		if scanErr != nil {
			if t.classify(scanErr) == ForeignKeyViolation {
				return ErrUserNotFound
			}
			return fmt.Errorf("%w: %w", ErrExecutingQuery, scanErr)
		}
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "todoRepository.CreateTodo").
			Int64("user_id", todo.UserID).
			Msg("failed to create todo")
		return models.Todo{}, err
	}

	log.Debug().
		Str("func", "todoRepository.CreateTodo").
		Int64("user_id", created.UserID).
		Int64("todo_id", created.ID).
		Msg("todo created")
	return created, nil
}

// ListTodos returns the user's todos matching query.Filter, newest id first.
// It returns an empty, non-nil slice when nothing matches.
func (t *todoRepository) ListTodos(ctx context.Context, q models.TodoQuery) ([]models.Todo, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListTodosQuery(t.builder, q)
	if err != nil {
		log.Err(err).Str("func", "todoRepository.ListTodos").Msg("failed to build query")
		return nil, err
	}

	rows, err := t.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "todoRepository.ListTodos").
			Int64("user_id", q.UserID).
			Stringer("filter", q.Filter).
			Msg("failed to execute query for listing todos")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	todos := make([]models.Todo, 0)
	for rows.Next() {
		todo, scanErr := scanTodo(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "todoRepository.ListTodos").
				Int64("user_id", q.UserID).
				Msg("failed to scan todo row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		todos = append(todos, todo)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "todoRepository.ListTodos").
			Int64("user_id", q.UserID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return todos, nil
}

// GetTodo fetches a single todo of the user or returns [ErrTodoNotFound].
func (t *todoRepository) GetTodo(ctx context.Context, key models.TodoKey) (models.Todo, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetTodoQuery(t.builder, key)
	if err != nil {
		log.Err(err).Str("func", "todoRepository.GetTodo").Msg("failed to build query")
		return models.Todo{}, err
	}

	todo, err := scanTodo(t.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Todo{}, ErrTodoNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "todoRepository.GetTodo").
			Int64("user_id", key.UserID).
			Int64("todo_id", key.ID).
			Msg("failed to scan todo row")
		return models.Todo{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return todo, nil
}

// ToggleTodo flips the done flag of the user's todo inside a transaction and
// returns the updated row. A missing or foreign todo yields [ErrTodoNotFound].
func (t *todoRepository) ToggleTodo(ctx context.Context, key models.TodoKey) (models.Todo, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildToggleTodoQuery(t.builder, key)
	if err != nil {
		log.Err(err).Str("func", "todoRepository.ToggleTodo").Msg("failed to build query")
		return models.Todo{}, err
	}

	var toggled models.Todo
	err = t.withTx(ctx, func(tx *sql.Tx) error {
		var scanErr error
		toggled, scanErr = scanTodo(tx.QueryRowContext(ctx, query, args...))
		if errors.Is(scanErr, sql.ErrNoRows) {
			return ErrTodoNotFound
		}
		if scanErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, scanErr)
		}
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "todoRepository.ToggleTodo").
			Int64("user_id", key.UserID).
			Int64("todo_id", key.ID).
			Msg("failed to toggle todo")
		return models.Todo{}, err
	}

	return toggled, nil
}

// DeleteTodo removes the user's todo inside a transaction. Zero affected rows
// yields [ErrTodoNotFound].
func (t *todoRepository) DeleteTodo(ctx context.Context, key models.TodoKey) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteTodoQuery(t.builder, key)
	if err != nil {
		log.Err(err).Str("func", "todoRepository.DeleteTodo").Msg("failed to build query")
		return err
	}

	err = t.withTx(ctx, func(tx *sql.Tx) error {
		res, execErr := tx.ExecContext(ctx, query, args...)
		if execErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, execErr)
		}

		affected, rowsErr := res.RowsAffected()
		if rowsErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, rowsErr)
		}
		if affected == 0 {
			return ErrTodoNotFound
		}
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "todoRepository.DeleteTodo").
			Int64("user_id", key.UserID).
			Int64("todo_id", key.ID).
			Msg("failed to delete todo")
		return err
	}

	log.Debug().
		Str("func", "todoRepository.DeleteTodo").
		Int64("user_id", key.UserID).
		Int64("todo_id", key.ID).
		Msg("todo deleted")
	return nil
}
