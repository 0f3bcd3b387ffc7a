// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the terminal user interface of the todo client.
//
// The interface runs as two Bubble Tea programs: [TUI.LoginFlow] shows the
// menu with the login and signup forms until the user is authenticated, and
// [TUI.MainLoop] shows the todo list of that user. Both talk to the server
// only through [adapter.TodoAdapter].
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-todo-keeper/internal/adapter"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/models"
)

// ErrUserQuit is returned when the user leaves the program with ctrl+c
// before logging in.
var ErrUserQuit = errors.New("user quit")

// TUI runs the interactive screens of the client.
type TUI struct {
	adapter   adapter.TodoAdapter
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

// New creates a [TUI] that talks to the server through todoAdapter.
func New(todoAdapter adapter.TodoAdapter, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if todoAdapter == nil {
		return nil, errNoAdapter
	}

	return &TUI{
		adapter:   todoAdapter,
		buildInfo: buildInfo,
		logger:    logger,
	}, nil
}

// LoginFlow blocks until the user logs in and returns their username.
func (t *TUI) LoginFlow(ctx context.Context) (username string, err error) {
	pages := map[string]tea.Model{
		pageMenu:   NewMenuModel(),
		pageLogin:  NewAuthFormModel(ctx, t.adapter, authModeLogin),
		pageSignup: NewAuthFormModel(ctx, t.adapter, authModeSignup),
	}

	root := NewRootModel(pages, pageMenu, t.buildInfo)
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return "", runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return "", tea.ErrProgramKilled
	}
	if result.quitByUser {
		return "", ErrUserQuit
	}

	t.logger.Info().Str("username", result.username).Msg("user logged in")
	return result.username, nil
}

// MainLoop shows the todo list until the user quits or logs out.
// logout is true when the user logged out or the session expired.
func (t *TUI) MainLoop(ctx context.Context, username string) (logout bool, err error) {
	model := newMainLoopModel(ctx, t.adapter, username, t.buildInfo)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	if result.sessionExpired {
		t.logger.Warn().Str("username", username).Msg("session expired")
	}

	return result.logout, nil
}
