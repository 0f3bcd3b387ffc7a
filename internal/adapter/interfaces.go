// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the todo server's HTTP
// interface.
//
// The primary abstraction is [TodoAdapter], which decouples the terminal UI
// from the protocol. The session cookie issued by the server is kept in a
// cookie jar, so callers log in once and then use the JSON API.
//
// HTTP status codes are mapped by mapHTTPError to the sentinel errors in
// errors.go, so callers can use [errors.Is] (e.g. [ErrNotFound] for 404,
// [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-todo-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/todo_adapter_mock.go -package=mock

// TodoAdapter defines communication with the todo server.
type TodoAdapter interface {
	// Signup registers a new account. It does not log in.
	Signup(ctx context.Context, credentials models.Credentials) error

	// Login authenticates and keeps the session for subsequent calls.
	Login(ctx context.Context, credentials models.Credentials) error

	// Logout ends the current session.
	Logout(ctx context.Context) error

	// List returns the user's todos matching filter, newest first.
	List(ctx context.Context, filter models.Filter) ([]models.TodoResponse, error)

	// Add creates a todo with the given title.
	Add(ctx context.Context, title string) (models.TodoResponse, error)

	// Toggle flips the done flag of the todo with the given id.
	Toggle(ctx context.Context, id int64) (models.TodoResponse, error)

	// Delete removes the todo with the given id.
	Delete(ctx context.Context, id int64) error

	// Version returns the server's application version.
	Version(ctx context.Context) (string, error)
}
