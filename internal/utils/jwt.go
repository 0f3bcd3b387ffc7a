// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-todo-keeper/models"
)

// SignSession creates a signed HMAC-SHA256 JWT for the given session.
//
// The token includes the following claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): session.UserID encoded as a string
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus duration
//   - username:        session.Username
//
// All parameters are required. Returns an error if any of them are empty or
// zero, or if the session has no user id.
//
// Example usage:
//
//	signed, err := utils.SignSession(models.NewSession(user), "go-todo-keeper", 24*time.Hour, "secret")
func SignSession(session models.Session, issuer string, duration time.Duration, signKey string) (models.Session, error) {
	if issuer == "" || duration <= 0 || signKey == "" || session.UserID <= 0 {
		return models.Session{}, errors.New("invalid params for signing session")
	}

	now := time.Now()
	session.RegisteredClaims = jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   strconv.FormatInt(session.UserID, 10),
		ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}
	session.SignedString = ""

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &session)
	signed, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Session{}, fmt.Errorf("error occurred during signing session: %w", err)
	}

	session.SignedString = signed
	return session, nil
}

// ParseSession validates the given JWT string and extracts the session.
//
// Validation includes:
//   - HS256 signature verification using signKey
//   - Issuer (iss) claim check against issuer
//   - Expiration (exp) claim check
//   - Subject (sub) claim presence and conversion to int64 UserID
//
// Example usage:
//
//	session, err := utils.ParseSession(cookie.Value, "secret", "go-todo-keeper")
//	if err != nil {
//	    // handle invalid or expired session
//	}
func ParseSession(tokenString, signKey, issuer string) (models.Session, error) {
	var session models.Session
	_, err := jwt.ParseWithClaims(tokenString, &session, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return models.Session{}, fmt.Errorf("error occurred validating and parsing session: %w", err)
	}

	userID, err := session.GetUserID()
	if err != nil {
		return models.Session{}, err
	}
	if userID <= 0 {
		return models.Session{}, errors.New("session subject is not a valid user id")
	}

	session.UserID = userID
	session.SignedString = tokenString
	return session, nil
}
