// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

// Validation errors.
var (
	// ErrInvalidCredentialsFormat is returned by signup when the username is
	// shorter than 3 characters or the password is shorter than 4 characters
	// (or longer than bcrypt accepts).
	ErrInvalidCredentialsFormat = errors.New("username must have at least 3 characters and password at least 4")

	// ErrInvalidDataProvided is returned when a required field is missing,
	// e.g. an empty username or password on login, or a non-positive user id.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrEmptyTitle is returned when a todo title is empty after trimming.
	ErrEmptyTitle = errors.New("title is required")

	// ErrInvalidTodoID is returned for non-positive todo ids.
	ErrInvalidTodoID = errors.New("invalid todo id")
)

// Authentication and authorization errors.
var (
	// ErrWrongCredentials is returned by login when the user does not exist
	// or the password does not match. Both cases look the same to callers.
	ErrWrongCredentials = errors.New("wrong username or password")

	// ErrUnauthorized is returned when an operation requires a session and
	// none is attached to the request.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrSessionCreationFailed is returned when a session token cannot be
	// signed.
	ErrSessionCreationFailed = errors.New("session creation failed")
)

// ErrVersionIsNotSpecified is returned by [NewAppInfoService] when the
// configuration carries no application version.
var ErrVersionIsNotSpecified = errors.New("app version is not specified")
