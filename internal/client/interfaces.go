// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// UI is the part of the terminal interface the client drives.
type UI interface {
	// LoginFlow blocks until the user logs in and returns their username.
	LoginFlow(ctx context.Context) (username string, err error)

	// MainLoop shows the todo list until the user quits or logs out.
	MainLoop(ctx context.Context, username string) (logout bool, err error)
}
