// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Todo is a single task owned by exactly one user.
//
// Done is persisted as INTEGER 0/1 and exposed as a boolean everywhere
// outside the store.
type Todo struct {
	// ID is the server-assigned unique identifier of the todo.
	ID int64 `json:"id"`

	// UserID is the owner of the todo. Every read and write is scoped by it.
	UserID int64 `json:"-"`

	// Title is the non-empty, whitespace-trimmed task text.
	Title string `json:"title"`

	// Done reports whether the task is completed.
	Done bool `json:"done"`
}

// TableName returns the name of the database table
// associated with the Todo model.
func (t Todo) TableName() string {
	return "todos"
}

// TodoQuery selects a user's todos for listing.
type TodoQuery struct {
	UserID int64
	Filter Filter
}

// TodoKey addresses a single todo of a single user.
type TodoKey struct {
	ID     int64
	UserID int64
}
