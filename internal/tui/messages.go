// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/go-todo-keeper/models"

const (
	pageMenu   = "menu"
	pageLogin  = "login"
	pageSignup = "signup"
)

// NavigateTo asks [RootModel] to switch to another page. A non-nil Payload
// is delivered to the new page instead of calling its Init.
type NavigateTo struct {
	Page    string
	Payload any
}

// LoginResult is produced by the login form once the server answered.
type LoginResult struct {
	Username string
	Err      error
}

// SignupResult is produced by the signup form once the server answered.
type SignupResult struct {
	Username string
	Err      error
}

// SignupSuccessNotice is delivered to the login page after a successful
// signup so that it can greet the user and prefill the username.
type SignupSuccessNotice struct {
	Username string
}

type todosLoadedMsg struct {
	filter models.Filter
	items  []models.TodoResponse
	err    error
}

type todoAddedMsg struct {
	todo models.TodoResponse
	err  error
}

type todoToggledMsg struct {
	todo models.TodoResponse
	err  error
}

type todoDeletedMsg struct {
	id  int64
	err error
}

type copiedMsg struct {
	err error
}

type logoutDoneMsg struct {
	err error
}
