// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// Errors mapped from HTTP status codes by mapHTTPError.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrServiceUnavailable  = errors.New("service unavailable")
)

// Errors of the form-based auth endpoints, which answer failures with a
// re-rendered page instead of a status code.
var (
	ErrLoginRejected  = errors.New("login rejected")
	ErrSignupRejected = errors.New("signup rejected")
)

// ErrInvalidAddress is returned by [NewHTTPTodoAdapter] for an empty or
// unparsable server address.
var ErrInvalidAddress = errors.New("invalid adapter http address")
