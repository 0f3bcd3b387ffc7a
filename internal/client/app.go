// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-todo-keeper/internal/adapter"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/tui"
)

var errNilDependency = errors.New("client dependency is nil")

// App runs the login flow and the main loop until the user quits.
type App struct {
	adapter adapter.TodoAdapter
	ui      UI
	logger  *logger.Logger
}

// NewApp creates an [App] from an adapter and a UI built on top of it.
func NewApp(todoAdapter adapter.TodoAdapter, ui UI, logger *logger.Logger) (*App, error) {
	if todoAdapter == nil || ui == nil {
		return nil, errNilDependency
	}

	return &App{
		adapter: todoAdapter,
		ui:      ui,
		logger:  logger,
	}, nil
}

// Run implements [Client]. A user who quits from the login screen ends the
// run without an error.
func (a *App) Run(ctx context.Context) error {
	a.logServerVersion(ctx)

	for {
		username, err := a.ui.LoginFlow(ctx)
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("login flow: %w", err)
		}

		logout, err := a.ui.MainLoop(ctx, username)
		if err != nil {
			return fmt.Errorf("main loop: %w", err)
		}
		if !logout {
			return nil
		}

		a.logger.Info().Str("username", username).Msg("logged out, back to login")
	}
}

func (a *App) logServerVersion(ctx context.Context) {
	version, err := a.adapter.Version(ctx)
	if err != nil {
		a.logger.Warn().Err(err).Msg("server version is not available")
		return
	}
	a.logger.Info().Str("server_version", version).Msg("connected to server")
}
