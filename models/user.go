// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User represents an account that owns a private list of todos.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the server-assigned unique identifier of the user.
	UserID int64 `json:"-"`

	// Username is the unique login name. It is stored trimmed.
	Username string `json:"username"`

	// Password carries the plaintext password on its way from the transport
	// layer to the auth service. It is never persisted nor serialised.
	Password string `json:"-"`

	// PasswordHash is the bcrypt hash of the password as stored in the
	// "users" table.
	PasswordHash string `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
