// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"net/http"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/service"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
	"github.com/MKhiriev/go-todo-keeper/internal/utils"
	"github.com/MKhiriev/go-todo-keeper/models"
)

const (
	homePath   = "/"
	loginPath  = "/login"
	signupPath = "/signup"
)

// Messages shown on re-rendered forms.
const (
	msgMissingCredentials = "Enter your username and password."
	msgLoginFailed        = "Login failed. Wrong username or password."
	msgSignupFormat       = "Username needs at least 3 characters, password at least 4."
	msgUsernameTaken      = "This username already exists."
	msgSomethingWentWrong = "Something went wrong. Please try again."
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

var pageTemplates = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

// pageData is the model of every page template.
type pageData struct {
	Username string
	Error    string
	Filters  []models.Filter
}

// renderPage executes the named template into a buffer first, so a
// template failure still produces a clean 500.
func (h *Handler) renderPage(w http.ResponseWriter, r *http.Request, name string, data pageData) {
	var buf bytes.Buffer
	if err := pageTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		logger.FromRequest(r).Err(err).Str("template", name).Msg("error rendering page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	session, _ := utils.GetSessionFromContext(r.Context())
	h.renderPage(w, r, "index.html", pageData{Username: session.Username, Filters: models.Filters()})
}

func (h *Handler) loginPage(w http.ResponseWriter, r *http.Request) {
	if h.currentSession(r).Authorized {
		http.Redirect(w, r, homePath, http.StatusFound)
		return
	}
	h.renderPage(w, r, "login.html", pageData{})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	credentials := credentialsFromForm(r)
	session, err := h.services.AuthService.Login(r.Context(), credentials)
	if err != nil {
		data := pageData{Username: credentials.Username}
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			data.Error = msgMissingCredentials
		case errors.Is(err, service.ErrWrongCredentials):
			log.Info().Str("username", credentials.Username).Msg("failed login attempt")
			data.Error = msgLoginFailed
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			data.Error = msgSomethingWentWrong
		}
		h.renderPage(w, r, "login.html", data)
		return
	}

	log.Info().Int64("user_id", session.UserID).Msg("user successfully logged in")
	setSessionCookie(w, r, session)
	http.Redirect(w, r, homePath, http.StatusSeeOther)
}

func (h *Handler) signupPage(w http.ResponseWriter, r *http.Request) {
	if h.currentSession(r).Authorized {
		http.Redirect(w, r, homePath, http.StatusFound)
		return
	}
	h.renderPage(w, r, "signup.html", pageData{})
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	credentials := credentialsFromForm(r)
	if _, err := h.services.AuthService.Signup(r.Context(), credentials); err != nil {
		data := pageData{Username: credentials.Username}
		switch {
		case errors.Is(err, service.ErrInvalidCredentialsFormat):
			data.Error = msgSignupFormat
		case errors.Is(err, store.ErrUsernameAlreadyExists):
			data.Error = msgUsernameTaken
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			data.Error = msgSomethingWentWrong
		}
		h.renderPage(w, r, "signup.html", data)
		return
	}

	http.Redirect(w, r, loginPath, http.StatusSeeOther)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.services.AuthService.Logout(r.Context(), sessionToken(r))
	clearSessionCookie(w, r)
	http.Redirect(w, r, loginPath, http.StatusSeeOther)
}

// credentialsFromForm reads the username and password form fields. A body
// that cannot be parsed yields empty credentials.
func credentialsFromForm(r *http.Request) models.Credentials {
	return models.Credentials{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	}
}
