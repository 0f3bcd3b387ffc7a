// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-todo-keeper/models"
)

// sessionCookieName is the name of the cookie carrying the signed session.
const sessionCookieName = "session"

// setSessionCookie stores the signed session in an HttpOnly, SameSite=Lax
// cookie that expires together with the token.
func setSessionCookie(w http.ResponseWriter, r *http.Request, session models.Session) {
	cookie := &http.Cookie{
		Name:     sessionCookieName,
		Value:    session.SignedString,
		Path:     "/",
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	}
	if session.ExpiresAt != nil {
		cookie.Expires = session.ExpiresAt.Time
	}

	http.SetCookie(w, cookie)
}

// clearSessionCookie instructs the browser to drop the session cookie.
func clearSessionCookie(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
}

// sessionToken returns the raw token from the session cookie, or "" when
// the request has none.
func sessionToken(r *http.Request) string {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// currentSession authorizes the session cookie of r, if any.
func (h *Handler) currentSession(r *http.Request) models.AuthOutcome {
	return h.services.AuthService.Authorize(r.Context(), sessionToken(r))
}
