// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-todo-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts user and returns it with UserID populated.
	// A taken username yields [ErrUsernameAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername returns the user with the given username or
	// [ErrUserNotFound].
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
}

// TodoRepository persists todos. Every method is scoped to a single owner.
type TodoRepository interface {
	CreateTodo(ctx context.Context, todo models.Todo) (models.Todo, error)
	ListTodos(ctx context.Context, query models.TodoQuery) ([]models.Todo, error)
	GetTodo(ctx context.Context, key models.TodoKey) (models.Todo, error)
	ToggleTodo(ctx context.Context, key models.TodoKey) (models.Todo, error)
	DeleteTodo(ctx context.Context, key models.TodoKey) error
}

// HealthChecker reports whether the underlying database is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}
