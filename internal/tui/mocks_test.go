// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-todo-keeper/models"
)

type fakeAdapter struct {
	signupFn  func(ctx context.Context, credentials models.Credentials) error
	loginFn   func(ctx context.Context, credentials models.Credentials) error
	logoutFn  func(ctx context.Context) error
	listFn    func(ctx context.Context, filter models.Filter) ([]models.TodoResponse, error)
	addFn     func(ctx context.Context, title string) (models.TodoResponse, error)
	toggleFn  func(ctx context.Context, id int64) (models.TodoResponse, error)
	deleteFn  func(ctx context.Context, id int64) error
	versionFn func(ctx context.Context) (string, error)
}

func (f *fakeAdapter) Signup(ctx context.Context, credentials models.Credentials) error {
	if f.signupFn != nil {
		return f.signupFn(ctx, credentials)
	}
	return nil
}

func (f *fakeAdapter) Login(ctx context.Context, credentials models.Credentials) error {
	if f.loginFn != nil {
		return f.loginFn(ctx, credentials)
	}
	return nil
}

func (f *fakeAdapter) Logout(ctx context.Context) error {
	if f.logoutFn != nil {
		return f.logoutFn(ctx)
	}
	return nil
}

func (f *fakeAdapter) List(ctx context.Context, filter models.Filter) ([]models.TodoResponse, error) {
	if f.listFn != nil {
		return f.listFn(ctx, filter)
	}
	return []models.TodoResponse{}, nil
}

func (f *fakeAdapter) Add(ctx context.Context, title string) (models.TodoResponse, error) {
	if f.addFn != nil {
		return f.addFn(ctx, title)
	}
	return models.TodoResponse{ID: 1, Title: title}, nil
}

func (f *fakeAdapter) Toggle(ctx context.Context, id int64) (models.TodoResponse, error) {
	if f.toggleFn != nil {
		return f.toggleFn(ctx, id)
	}
	return models.TodoResponse{ID: id, Done: true}, nil
}

func (f *fakeAdapter) Delete(ctx context.Context, id int64) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func (f *fakeAdapter) Version(ctx context.Context) (string, error) {
	if f.versionFn != nil {
		return f.versionFn(ctx)
	}
	return "test", nil
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyType(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}
