// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/utils"
	"github.com/MKhiriev/go-todo-keeper/models"
)

type httpTodoAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPTodoAdapter constructs the HTTP implementation of [TodoAdapter].
// It normalises and validates the base URL from cfg.HTTPAddress and
// configures the underlying client with it and the request timeout.
func NewHTTPTodoAdapter(cfg config.Adapter, logger *logger.Logger) (TodoAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	return &httpTodoAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Signup implements [TodoAdapter]. It submits the signup form; the server
// answers success with a redirect to /login and failure with the signup page
// carrying an error message.
func (h *httpTodoAdapter) Signup(ctx context.Context, credentials models.Credentials) error {
	resp, err := h.submitForm(ctx, "/signup", credentials)
	if err != nil {
		return fmt.Errorf("signup request: %w", err)
	}

	if !isRedirectTo(resp, "/login") {
		return h.formRejection(resp, ErrSignupRejected)
	}

	h.logger.Info().Str("username", credentials.Username).Msg("signed up")
	return nil
}

// Login implements [TodoAdapter]. It submits the login form; on success the
// session cookie lands in the client's cookie jar.
func (h *httpTodoAdapter) Login(ctx context.Context, credentials models.Credentials) error {
	resp, err := h.submitForm(ctx, "/login", credentials)
	if err != nil {
		return fmt.Errorf("login request: %w", err)
	}

	if !isRedirectTo(resp, "/") {
		return h.formRejection(resp, ErrLoginRejected)
	}

	h.logger.Info().Str("username", credentials.Username).Msg("logged in")
	return nil
}

// Logout implements [TodoAdapter].
func (h *httpTodoAdapter) Logout(ctx context.Context) error {
	resp, err := h.client.R().SetContext(ctx).Post("/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	if !isRedirectTo(resp, "/login") {
		return mapHTTPError(resp)
	}
	return nil
}

// List implements [TodoAdapter]. It GETs /api/todos?filter=<filter>.
func (h *httpTodoAdapter) List(ctx context.Context, filter models.Filter) ([]models.TodoResponse, error) {
	var todos []models.TodoResponse

	resp, err := h.apiRequest(ctx).
		SetQueryParam("filter", filter.String()).
		SetResult(&todos).
		Get("/api/todos")
	if err != nil {
		return nil, fmt.Errorf("list request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	if todos == nil {
		todos = []models.TodoResponse{}
	}
	return todos, nil
}

// Add implements [TodoAdapter]. It POSTs {"title": title} to /api/todos.
func (h *httpTodoAdapter) Add(ctx context.Context, title string) (models.TodoResponse, error) {
	var todo models.TodoResponse

	resp, err := h.apiRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.CreateTodoRequest{Title: title}).
		SetResult(&todo).
		Post("/api/todos")
	if err != nil {
		return models.TodoResponse{}, fmt.Errorf("add request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TodoResponse{}, err
	}

	return todo, nil
}

// Toggle implements [TodoAdapter]. It PATCHes /api/todos/{id}.
func (h *httpTodoAdapter) Toggle(ctx context.Context, id int64) (models.TodoResponse, error) {
	var todo models.TodoResponse

	resp, err := h.apiRequest(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetResult(&todo).
		Patch("/api/todos/{id}")
	if err != nil {
		return models.TodoResponse{}, fmt.Errorf("toggle request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TodoResponse{}, err
	}

	return todo, nil
}

// Delete implements [TodoAdapter]. It sends DELETE /api/todos/{id}.
func (h *httpTodoAdapter) Delete(ctx context.Context, id int64) error {
	resp, err := h.apiRequest(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Delete("/api/todos/{id}")
	if err != nil {
		return fmt.Errorf("delete request: %w", err)
	}

	return mapHTTPError(resp)
}

// Version implements [TodoAdapter]. It GETs /api/version.
func (h *httpTodoAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpTodoAdapter) apiRequest(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json")
}

func (h *httpTodoAdapter) submitForm(ctx context.Context, path string, credentials models.Credentials) (*resty.Response, error) {
	return h.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"username": credentials.Username,
			"password": credentials.Password,
		}).
		Post(path)
}

// formRejection turns a non-redirect answer of a form endpoint into an
// error. A re-rendered page contributes its error message; any other status
// goes through mapHTTPError.
func (h *httpTodoAdapter) formRejection(resp *resty.Response, rejected error) error {
	if resp.StatusCode() != http.StatusOK {
		if err := mapHTTPError(resp); err != nil {
			return err
		}
	}

	if message := pageError(resp.Body()); message != "" {
		return fmt.Errorf("%w: %s", rejected, message)
	}
	return rejected
}

func isRedirectTo(resp *resty.Response, location string) bool {
	status := resp.StatusCode()
	return status >= http.StatusMultipleChoices && status < http.StatusBadRequest &&
		resp.Header().Get("Location") == location
}
