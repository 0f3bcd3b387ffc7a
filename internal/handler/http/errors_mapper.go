// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-todo-keeper/internal/service"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidCredentialsFormat: http.StatusBadRequest,
	service.ErrInvalidDataProvided:      http.StatusBadRequest,
	service.ErrEmptyTitle:               http.StatusBadRequest,
	service.ErrInvalidTodoID:            http.StatusNotFound,
	service.ErrWrongCredentials:         http.StatusUnauthorized,
	service.ErrUnauthorized:             http.StatusUnauthorized,
	service.ErrSessionCreationFailed:    http.StatusInternalServerError,

	ErrInvalidTodoIDParam: http.StatusNotFound,
	ErrRouteNotFound:      http.StatusNotFound,

	store.ErrUsernameAlreadyExists: http.StatusConflict,
	store.ErrUserNotFound:          http.StatusNotFound,
	store.ErrTodoNotFound:          http.StatusNotFound,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError returns the text of the {"error": ...} body for err.
// Not-found, unauthorized and server errors get a fixed message; client
// errors expose the message of the matched sentinel.
func messageFromError(err error) string {
	status := statusFromError(err)
	switch {
	case status == http.StatusNotFound:
		return "not found"
	case status == http.StatusUnauthorized:
		return "unauthorized"
	case status >= http.StatusInternalServerError:
		return strings.ToLower(http.StatusText(status))
	}

	for target, targetStatus := range errorStatusMap {
		if targetStatus == status && errors.Is(err, target) {
			return target.Error()
		}
	}
	return strings.ToLower(http.StatusText(status))
}
