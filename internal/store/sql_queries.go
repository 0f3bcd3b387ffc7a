// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-todo-keeper/models"
)

var (
	usersTable = models.User{}.TableName()
	todosTable = models.Todo{}.TableName()

	userColumns = []string{"id", "username", "password_hash"}
	todoColumns = []string{"id", "user_id", "title", "done"}
)

const (
	doneFalse = 0
	doneTrue  = 1
)

func doneToInt(done bool) int {
	if done {
		return doneTrue
	}
	return doneFalse
}

func buildCreateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	query, args, err := b.
		Insert(usersTable).
		Columns("username", "password_hash").
		Values(user.Username, user.PasswordHash).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildFindUserByUsernameQuery(b sq.StatementBuilderType, username string) (string, []any, error) {
	query, args, err := b.
		Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"username": username}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildCreateTodoQuery(b sq.StatementBuilderType, todo models.Todo) (string, []any, error) {
	query, args, err := b.
		Insert(todosTable).
		Columns("user_id", "title", "done").
		Values(todo.UserID, todo.Title, doneToInt(todo.Done)).
		Suffix("RETURNING id, user_id, title, done").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildListTodosQuery selects the user's todos newest first, narrowed by
// the done state for the active and done filters.
func buildListTodosQuery(b sq.StatementBuilderType, q models.TodoQuery) (string, []any, error) {
	where := sq.Eq{"user_id": q.UserID}
	switch q.Filter {
	case models.FilterActive:
		where["done"] = doneFalse
	case models.FilterDone:
		where["done"] = doneTrue
	}

	query, args, err := b.
		Select(todoColumns...).
		From(todosTable).
		Where(where).
		OrderBy("id DESC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildGetTodoQuery(b sq.StatementBuilderType, key models.TodoKey) (string, []any, error) {
	query, args, err := b.
		Select(todoColumns...).
		From(todosTable).
		Where(sq.Eq{"id": key.ID, "user_id": key.UserID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildToggleTodoQuery flips done in place and returns the updated row, so a
// missing or foreign todo yields no rows.
func buildToggleTodoQuery(b sq.StatementBuilderType, key models.TodoKey) (string, []any, error) {
	query, args, err := b.
		Update(todosTable).
		Set("done", sq.Expr(fmt.Sprintf("%d - done", doneTrue))).
		Where(sq.Eq{"id": key.ID, "user_id": key.UserID}).
		Suffix("RETURNING id, user_id, title, done").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteTodoQuery(b sq.StatementBuilderType, key models.TodoKey) (string, []any, error) {
	query, args, err := b.
		Delete(todosTable).
		Where(sq.Eq{"id": key.ID, "user_id": key.UserID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
