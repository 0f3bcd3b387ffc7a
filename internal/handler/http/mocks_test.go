// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/service"
	"github.com/MKhiriev/go-todo-keeper/models"
)

// ─────────────────────────────────────────────
// Function-field service mocks
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	signupFn       func(ctx context.Context, credentials models.Credentials) (models.User, error)
	loginFn        func(ctx context.Context, credentials models.Credentials) (models.Session, error)
	logoutFn       func(ctx context.Context, token string)
	issueSessionFn func(ctx context.Context, session models.Session) (models.Session, error)
	authorizeFn    func(ctx context.Context, token string) models.AuthOutcome
}

func (m *mockAuthService) Signup(ctx context.Context, credentials models.Credentials) (models.User, error) {
	return m.signupFn(ctx, credentials)
}

func (m *mockAuthService) Login(ctx context.Context, credentials models.Credentials) (models.Session, error) {
	return m.loginFn(ctx, credentials)
}

func (m *mockAuthService) Logout(ctx context.Context, token string) {
	if m.logoutFn != nil {
		m.logoutFn(ctx, token)
	}
}

func (m *mockAuthService) IssueSession(ctx context.Context, session models.Session) (models.Session, error) {
	return m.issueSessionFn(ctx, session)
}

func (m *mockAuthService) Authorize(ctx context.Context, token string) models.AuthOutcome {
	if m.authorizeFn == nil {
		return models.Unauthorized()
	}
	return m.authorizeFn(ctx, token)
}

// mockTodoService implements service.TodoService for unit tests.
type mockTodoService struct {
	listFn   func(ctx context.Context, userID int64, filter models.Filter) ([]models.Todo, error)
	addFn    func(ctx context.Context, userID int64, title string) (models.Todo, error)
	toggleFn func(ctx context.Context, userID, todoID int64) (models.Todo, error)
	deleteFn func(ctx context.Context, userID, todoID int64) error
}

func (m *mockTodoService) List(ctx context.Context, userID int64, filter models.Filter) ([]models.Todo, error) {
	return m.listFn(ctx, userID, filter)
}

func (m *mockTodoService) Add(ctx context.Context, userID int64, title string) (models.Todo, error) {
	return m.addFn(ctx, userID, title)
}

func (m *mockTodoService) Toggle(ctx context.Context, userID, todoID int64) (models.Todo, error) {
	return m.toggleFn(ctx, userID, todoID)
}

func (m *mockTodoService) Delete(ctx context.Context, userID, todoID int64) error {
	return m.deleteFn(ctx, userID, todoID)
}

// mockAppInfoService implements service.AppInfoService for testing.
type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

// mockHealthService implements service.HealthService for testing.
type mockHealthService struct {
	err error
}

func (m *mockHealthService) Check(_ context.Context) error {
	return m.err
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const (
	validToken  = "valid-token"
	testUserID  = int64(7)
	testUsername = "alice"
)

// authorizeValidToken accepts only validToken, as user testUserID.
func authorizeValidToken(_ context.Context, token string) models.AuthOutcome {
	if token != validToken {
		return models.Unauthorized()
	}
	return models.Authorized(models.Session{UserID: testUserID, Username: testUsername})
}

// newTestHandler builds a Handler around the given services. Nil services
// are replaced with mocks that fail the test when called.
func newTestHandler(t *testing.T, svcs *service.Services) *Handler {
	t.Helper()

	if svcs.AuthService == nil {
		svcs.AuthService = &mockAuthService{authorizeFn: authorizeValidToken}
	}
	if svcs.AppInfoService == nil {
		svcs.AppInfoService = &mockAppInfoService{version: "test-version"}
	}
	if svcs.HealthService == nil {
		svcs.HealthService = &mockHealthService{}
	}
	if svcs.TodoService == nil {
		svcs.TodoService = &mockTodoService{}
	}

	return NewHandler(svcs, config.Server{}, logger.Nop())
}

// withSessionCookie attaches the session cookie carrying token to r.
func withSessionCookie(r *http.Request, token string) *http.Request {
	r.AddCookie(&http.Cookie{Name: sessionCookieName, Value: token})
	return r
}
