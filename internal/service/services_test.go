// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
	"github.com/MKhiriev/go-todo-keeper/models"
)

// newMemoryServices wires the real services on top of a private in-memory
// SQLite database.
func newMemoryServices(t *testing.T) *Services {
	t.Helper()

	storages, err := store.Open(context.Background(), config.Storage{DB: config.DB{DSN: "file::memory:"}}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { storages.Close() })

	services, err := NewServices(storages, &config.StructuredConfig{App: testAppConfig}, logger.Nop())
	require.NoError(t, err)
	return services
}

func signupAndLogin(t *testing.T, s *Services, username, password string) models.Session {
	t.Helper()
	ctx := context.Background()

	_, err := s.AuthService.Signup(ctx, models.Credentials{Username: username, Password: password})
	require.NoError(t, err)

	session, err := s.AuthService.Login(ctx, models.Credentials{Username: username, Password: password})
	require.NoError(t, err)

	outcome := s.AuthService.Authorize(ctx, session.SignedString)
	require.True(t, outcome.Authorized)
	return outcome.Session
}

func TestNewServices_RequiresVersion(t *testing.T) {
	_, err := NewServices(&store.Storages{}, &config.StructuredConfig{}, logger.Nop())
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}

func TestScenario_Alice(t *testing.T) {
	s := newMemoryServices(t)
	ctx := context.Background()

	alice := signupAndLogin(t, s, "alice", "pass1")

	todo, err := s.TodoService.Add(ctx, alice.UserID, "buy milk")
	require.NoError(t, err)
	assert.Equal(t, int64(1), todo.ID)
	assert.Equal(t, "buy milk", todo.Title)
	assert.False(t, todo.Done)

	todos, err := s.TodoService.List(ctx, alice.UserID, models.FilterAll)
	require.NoError(t, err)
	assert.Equal(t, []models.Todo{{ID: 1, UserID: alice.UserID, Title: "buy milk"}}, todos)

	toggled, err := s.TodoService.Toggle(ctx, alice.UserID, 1)
	require.NoError(t, err)
	assert.True(t, toggled.Done)

	done, err := s.TodoService.List(ctx, alice.UserID, models.FilterDone)
	require.NoError(t, err)
	require.Len(t, done, 1)
	assert.Equal(t, int64(1), done[0].ID)

	require.NoError(t, s.TodoService.Delete(ctx, alice.UserID, 1))

	todos, err = s.TodoService.List(ctx, alice.UserID, models.FilterAll)
	require.NoError(t, err)
	assert.NotNil(t, todos)
	assert.Empty(t, todos)
}

func TestScenario_Bob(t *testing.T) {
	s := newMemoryServices(t)
	ctx := context.Background()

	_, err := s.AuthService.Signup(ctx, models.Credentials{Username: "bob", Password: "xy"})
	assert.ErrorIs(t, err, ErrInvalidCredentialsFormat)

	_, err = s.AuthService.Login(ctx, models.Credentials{Username: "bob", Password: "xy"})
	assert.ErrorIs(t, err, ErrWrongCredentials, "a rejected signup must not leave a user behind")

	bob := signupAndLogin(t, s, "bob", "validpass")
	assert.Equal(t, "bob", bob.Username)

	_, err = s.AuthService.Signup(ctx, models.Credentials{Username: " bob ", Password: "another"})
	assert.ErrorIs(t, err, store.ErrUsernameAlreadyExists)
}

func TestScenario_LongPassword(t *testing.T) {
	s := newMemoryServices(t)
	ctx := context.Background()

	password := strings.Repeat("p", 73)
	carol := signupAndLogin(t, s, "carol", password)
	assert.Equal(t, "carol", carol.Username)

	_, err := s.AuthService.Login(ctx, models.Credentials{Username: "carol", Password: strings.Repeat("p", 72)})
	assert.ErrorIs(t, err, ErrWrongCredentials)
}

func TestScenario_Isolation(t *testing.T) {
	s := newMemoryServices(t)
	ctx := context.Background()

	alice := signupAndLogin(t, s, "alice", "pass1")
	bob := signupAndLogin(t, s, "bob", "pass2")

	todo, err := s.TodoService.Add(ctx, alice.UserID, "secret")
	require.NoError(t, err)

	bobs, err := s.TodoService.List(ctx, bob.UserID, models.FilterAll)
	require.NoError(t, err)
	assert.Empty(t, bobs)

	_, err = s.TodoService.Toggle(ctx, bob.UserID, todo.ID)
	assert.ErrorIs(t, err, store.ErrTodoNotFound)
	assert.ErrorIs(t, s.TodoService.Delete(ctx, bob.UserID, todo.ID), store.ErrTodoNotFound)

	alices, err := s.TodoService.List(ctx, alice.UserID, models.FilterAll)
	require.NoError(t, err)
	require.Len(t, alices, 1)
	assert.False(t, alices[0].Done, "bob's toggle must not have touched alice's todo")
}

func TestScenario_ToggleAlternates(t *testing.T) {
	s := newMemoryServices(t)
	ctx := context.Background()

	alice := signupAndLogin(t, s, "alice", "pass1")
	todo, err := s.TodoService.Add(ctx, alice.UserID, "flip me")
	require.NoError(t, err)

	for i := 1; i <= 4; i++ {
		toggled, err := s.TodoService.Toggle(ctx, alice.UserID, todo.ID)
		require.NoError(t, err)
		assert.Equal(t, i%2 == 1, toggled.Done, "toggle #%d", i)
	}
}

func TestScenario_WhitespaceTitleLeavesNoRow(t *testing.T) {
	s := newMemoryServices(t)
	ctx := context.Background()

	alice := signupAndLogin(t, s, "alice", "pass1")

	_, err := s.TodoService.Add(ctx, alice.UserID, "   ")
	assert.ErrorIs(t, err, ErrEmptyTitle)

	todos, err := s.TodoService.List(ctx, alice.UserID, models.FilterAll)
	require.NoError(t, err)
	assert.Empty(t, todos)
}

func TestScenario_FilterPartition(t *testing.T) {
	s := newMemoryServices(t)
	ctx := context.Background()

	alice := signupAndLogin(t, s, "alice", "pass1")
	for _, title := range []string{"a", "b", "c", "d", "e"} {
		_, err := s.TodoService.Add(ctx, alice.UserID, title)
		require.NoError(t, err)
	}
	for _, id := range []int64{2, 4} {
		_, err := s.TodoService.Toggle(ctx, alice.UserID, id)
		require.NoError(t, err)
	}

	all, err := s.TodoService.List(ctx, alice.UserID, models.FilterAll)
	require.NoError(t, err)
	active, err := s.TodoService.List(ctx, alice.UserID, models.FilterActive)
	require.NoError(t, err)
	done, err := s.TodoService.List(ctx, alice.UserID, models.FilterDone)
	require.NoError(t, err)

	ids := func(todos []models.Todo) []int64 {
		out := make([]int64, 0, len(todos))
		for _, todo := range todos {
			out = append(out, todo.ID)
		}
		return out
	}

	assert.Equal(t, []int64{5, 4, 3, 2, 1}, ids(all), "newest first")
	assert.Equal(t, []int64{5, 3, 1}, ids(active))
	assert.Equal(t, []int64{4, 2}, ids(done))
	assert.Len(t, all, len(active)+len(done))
	for _, todo := range active {
		assert.False(t, todo.Done)
	}
	for _, todo := range done {
		assert.True(t, todo.Done)
	}
}
