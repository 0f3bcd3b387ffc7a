// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns an [http.HandlerFunc] that is intended to be
// registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed].
//
// Chi responds with 405 Method Not Allowed whenever a path matches a route
// but the method is not handled. This handler answers 404 Not Found instead,
// so an unsupported method looks exactly like an unknown path. API paths get
// the same {"error":"not found"} body as every other missing resource.
//
// The lookup compares each registered route pattern against the raw request
// path; parameterised segments are not expanded. If the method IS registered
// for an exactly matching route, the request is forwarded to the router.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var foundRoute chi.Route
		for _, route := range router.Routes() {
			if route.Pattern == r.URL.Path {
				foundRoute = route
				break
			}
		}

		if _, ok := foundRoute.Handlers[r.Method]; !ok {
			writeNotFound(w, r)
			return
		}

		router.ServeHTTP(w, r)
	}
}
