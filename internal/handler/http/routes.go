// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/login", h.loginPage)
		r.Post("/login", h.login)
		r.Get("/signup", h.signupPage)
		r.Post("/signup", h.signup)
		r.Post("/logout", h.logout)

		r.Get("/api/version", h.getServerVersion)
		r.Get("/api/health", h.getHealth)

		static, _ := fs.Sub(staticFS, "static")
		r.Get("/static/*", http.StripPrefix("/static/", http.FileServerFS(static)).ServeHTTP)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/", h.index)

		r.Get("/api/todos", h.listTodos)
		r.Post("/api/todos", h.createTodo)
		r.Patch("/api/todos/{id}", h.toggleTodo)
		r.Delete("/api/todos/{id}", h.deleteTodo)
	})

	router.NotFound(writeNotFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
