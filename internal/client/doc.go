// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It wires the terminal UI flows and the server adapter into a single
// process lifecycle: log in, work with the todo list, and start over after
// a logout or an expired session.
package client
