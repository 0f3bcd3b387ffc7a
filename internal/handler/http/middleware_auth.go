// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/service"
	"github.com/MKhiriev/go-todo-keeper/internal/utils"
)

// auth is an HTTP middleware that admits only requests carrying a valid
// session cookie.
//
// The verdict comes from [service.AuthService.Authorize]; this middleware
// only shapes the rejection. API requests and requests that prefer JSON
// (see [utils.WantsJSON]) get 401 {"error":"unauthorized"}, everything else
// is redirected to /login.
//
// On success the session is stored in the request context under
// [utils.SessionCtxKey] before delegating to the next handler.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		token := sessionToken(r)
		if token == "" {
			log.Debug().Err(ErrNoSessionCookie).Str("path", r.URL.Path).Send()
			h.rejectUnauthorized(w, r)
			return
		}

		outcome := h.services.AuthService.Authorize(r.Context(), token)
		if !outcome.Authorized {
			log.Info().Err(ErrInvalidSession).Str("path", r.URL.Path).Send()
			clearSessionCookie(w, r)
			h.rejectUnauthorized(w, r)
			return
		}

		ctx := utils.WithSession(r.Context(), outcome.Session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) rejectUnauthorized(w http.ResponseWriter, r *http.Request) {
	if utils.WantsJSON(r) {
		writeAPIError(w, r, service.ErrUnauthorized)
		return
	}
	http.Redirect(w, r, loginPath, http.StatusFound)
}
