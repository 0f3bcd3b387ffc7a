// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
	"github.com/MKhiriev/go-todo-keeper/internal/utils"
	"github.com/MKhiriev/go-todo-keeper/models"
)

const (
	minUsernameLength = 3
	minPasswordLength = 4
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification with bcrypt, and
// the lifecycle of JWT-backed sessions.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// sessionSignKey is the HMAC secret used to sign and verify sessions.
	sessionSignKey string

	// sessionIssuer is the "iss" claim embedded in every session.
	// Sessions whose issuer does not match this value are rejected.
	sessionIssuer string

	// sessionDuration controls how long a newly issued session remains valid.
	sessionDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with session parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:  userRepository,
		sessionSignKey:  cfg.SessionSignKey,
		sessionIssuer:   cfg.SessionIssuer,
		sessionDuration: cfg.SessionDuration,
		logger:          logger,
	}
}

// Signup creates a new user account.
//
// The username is trimmed. It must be at least 3 characters long and the
// password at least 4, otherwise ErrInvalidCredentialsFormat is returned.
// The password is stored as a bcrypt hash.
//
// A taken username surfaces as a wrapped store.ErrUsernameAlreadyExists.
func (a *authService) Signup(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	user := credentials.ToUser()
	user.Username = strings.TrimSpace(user.Username)

	if utf8.RuneCountInString(user.Username) < minUsernameLength ||
		utf8.RuneCountInString(user.Password) < minPasswordLength {
		log.Warn().Str("username", user.Username).Msg("invalid signup credentials format")
		return models.User{}, ErrInvalidCredentialsFormat
	}

	hash, err := utils.HashPassword(user.Password)
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}
	user.PasswordHash = hash
	user.Password = ""

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Int64("user_id", registeredUser.UserID).Str("username", registeredUser.Username).Msg("user signed up")
	return registeredUser, nil
}

// Login authenticates an existing user and issues a session.
//
// The username is trimmed; both fields are required (ErrInvalidDataProvided).
// An unknown username and a wrong password both yield ErrWrongCredentials.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.Session, error) {
	log := logger.FromContext(ctx)

	username := strings.TrimSpace(credentials.Username)
	if username == "" || credentials.Password == "" {
		log.Warn().Msg("login without username or password")
		return models.Session{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, username)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Warn().Str("username", username).Msg("login for unknown user")
		return models.Session{}, ErrWrongCredentials
	}
	if err != nil {
		log.Err(err).Str("username", username).Msg("user search by username failed")
		return models.Session{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if !utils.CheckPassword(foundUser.PasswordHash, credentials.Password) {
		log.Warn().Int64("user_id", foundUser.UserID).Msg("wrong password")
		return models.Session{}, ErrWrongCredentials
	}

	return a.IssueSession(ctx, models.NewSession(foundUser))
}

// Logout only records the event: sessions are self-contained tokens, and
// the transport layer drops the cookie that carries them.
func (a *authService) Logout(ctx context.Context, token string) {
	log := logger.FromContext(ctx)

	outcome := a.Authorize(ctx, token)
	if !outcome.Authorized {
		log.Debug().Msg("logout without a valid session")
		return
	}

	log.Info().
		Int64("user_id", outcome.Session.UserID).
		Str("username", outcome.Session.Username).
		Msg("user logged out")
}

// IssueSession signs session as an HS256 JWT.
func (a *authService) IssueSession(ctx context.Context, session models.Session) (models.Session, error) {
	signed, err := utils.SignSession(session, a.sessionIssuer, a.sessionDuration, a.sessionSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", session.UserID).Msg("session signing failed")
		return models.Session{}, fmt.Errorf("%w: %w", ErrSessionCreationFailed, err)
	}

	return signed, nil
}

// Authorize verifies signature, issuer and expiry of token. Any failure,
// including an empty token, is reported as an unauthorized outcome.
func (a *authService) Authorize(ctx context.Context, token string) models.AuthOutcome {
	if token == "" {
		return models.Unauthorized()
	}

	session, err := utils.ParseSession(token, a.sessionSignKey, a.sessionIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("session rejected")
		return models.Unauthorized()
	}

	return models.Authorized(session)
}
