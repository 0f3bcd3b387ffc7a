// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CreateTodoRequest is the JSON body of POST /api/todos.
type CreateTodoRequest struct {
	Title string `json:"title"`
}

// TodoResponse is the JSON representation of a single todo.
type TodoResponse struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Done  bool   `json:"done"`
}

// NewTodoResponse converts a stored todo into its API form.
func NewTodoResponse(todo Todo) TodoResponse {
	return TodoResponse{ID: todo.ID, Title: todo.Title, Done: todo.Done}
}

// NewTodoListResponse converts todos into their API form. The result is
// never nil so that an empty list is encoded as [].
func NewTodoListResponse(todos []Todo) []TodoResponse {
	response := make([]TodoResponse, 0, len(todos))
	for _, todo := range todos {
		response = append(response, NewTodoResponse(todo))
	}
	return response
}

// DeleteTodoResponse acknowledges DELETE /api/todos/{id}.
type DeleteTodoResponse struct {
	OK bool `json:"ok"`
}

// ErrorResponse is the JSON body of every API failure.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is the JSON body of GET /api/health.
type HealthResponse struct {
	Status string `json:"status"`
}

// Credentials carries the username/password pair submitted by the login
// and signup forms.
type Credentials struct {
	Username string
	Password string
}

// ToUser converts submitted credentials into a [User] for the auth service.
func (c Credentials) ToUser() User {
	return User{Username: c.Username, Password: c.Password}
}
