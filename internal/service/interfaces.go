// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-todo-keeper/models"
)

// AuthService registers users, verifies credentials and guards protected
// operations with signed sessions.
type AuthService interface {
	// Signup creates a user from trimmed credentials.
	Signup(ctx context.Context, credentials models.Credentials) (models.User, error)
	// Login verifies credentials and returns a signed session.
	Login(ctx context.Context, credentials models.Credentials) (models.Session, error)
	// Logout ends the session carried by token. It never fails.
	Logout(ctx context.Context, token string)
	// IssueSession signs session with the configured key, issuer and lifetime.
	IssueSession(ctx context.Context, session models.Session) (models.Session, error)
	// Authorize checks token and reports whether it carries a valid session.
	Authorize(ctx context.Context, token string) models.AuthOutcome
}

// TodoService manages the todos of a single user per call.
type TodoService interface {
	List(ctx context.Context, userID int64, filter models.Filter) ([]models.Todo, error)
	Add(ctx context.Context, userID int64, title string) (models.Todo, error)
	Toggle(ctx context.Context, userID, todoID int64) (models.Todo, error)
	Delete(ctx context.Context, userID, todoID int64) error
}

// TodoServiceWrapper defines middleware composition for TodoService.
// Implementations wrap an existing TodoService to add behavior such as
// logging or validating.
type TodoServiceWrapper interface {
	Wrap(TodoService) TodoService // returns a decorated TodoService applying additional behavior
}

// AppInfoService exposes static information about the running build.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// HealthService reports whether the service can reach its dependencies.
type HealthService interface {
	Check(ctx context.Context) error
}
