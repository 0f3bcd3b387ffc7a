// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Session associates a request with an authenticated user.
//
// It is serialised as the claim set of a signed JWT that travels in the
// session cookie: the user id goes into the "sub" claim and the username
// into a private "username" claim.
type Session struct {
	jwt.RegisteredClaims

	// Username is the authenticated user's login name.
	Username string `json:"username"`

	// UserID is a parsed copy of the "sub" claim. It is not serialised.
	UserID int64 `json:"-"`

	// SignedString is the compact JWS form of the session, ready to be put
	// into a cookie. It is not serialised.
	SignedString string `json:"-"`
}

// NewSession builds a session for the given user. Registered claims are
// filled in when the session is signed.
func NewSession(user User) Session {
	return Session{
		UserID:   user.UserID,
		Username: user.Username,
	}
}

// GetUserID parses the "sub" claim as a base-10 int64.
func (s *Session) GetUserID() (int64, error) {
	subject, err := s.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting user ID from session: %w", err)
	}

	userID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting user ID from session to int64: %w", err)
	}

	return userID, nil
}

// String returns the compact JWS form of the session.
func (s *Session) String() string {
	return s.SignedString
}

// AuthOutcome is the result of checking a request's session.
// Authorized is false whenever no valid session was presented; the caller
// decides how to respond to that.
type AuthOutcome struct {
	Session    Session
	Authorized bool
}

// Authorized wraps a valid session into an [AuthOutcome].
func Authorized(session Session) AuthOutcome {
	return AuthOutcome{Session: session, Authorized: true}
}

// Unauthorized is the outcome for a missing, expired or forged session.
func Unauthorized() AuthOutcome {
	return AuthOutcome{}
}
