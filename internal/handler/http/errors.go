// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors of the HTTP layer. Callers can match against them with
// [errors.Is].
var (
	// ErrNoSessionCookie is logged by the auth middleware when the request
	// carries no session cookie at all.
	ErrNoSessionCookie = errors.New("no session cookie")

	// ErrInvalidSession is logged when the session cookie is present but its
	// token does not verify or has expired.
	ErrInvalidSession = errors.New("invalid session")

	// ErrInvalidTodoIDParam is returned when the {id} path segment is not an
	// integer. It is reported to the client as 404.
	ErrInvalidTodoIDParam = errors.New("todo id is not an integer")

	// ErrRouteNotFound is reported for unknown paths and for methods a path
	// does not support.
	ErrRouteNotFound = errors.New("route not found")
)
