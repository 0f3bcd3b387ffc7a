// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, the HTML pages of the browser client, the JSON
// todo API and the middleware in front of them. Cross-cutting concerns such
// as session checks, request tracing, access logging and response
// compression are handled in this package before requests are delegated to
// the service layer.
package http
