// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-todo-keeper/models"
)

func TestSignSession_Success(t *testing.T) {
	session, err := SignSession(models.Session{UserID: 123, Username: "alice"}, "test-issuer", time.Hour, "secret-key")

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if session.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if session.Issuer != "test-issuer" {
		t.Errorf("expected issuer test-issuer, got %s", session.Issuer)
	}
	if session.Subject != "123" {
		t.Errorf("expected subject '123', got %s", session.Subject)
	}
	if session.ExpiresAt == nil || !session.ExpiresAt.After(time.Now()) {
		t.Error("expected expiry in the future")
	}
}

func TestSignSession_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		session  models.Session
		issuer   string
		duration time.Duration
		key      string
	}{
		{"empty issuer", models.Session{UserID: 1}, "", time.Hour, "key"},
		{"zero duration", models.Session{UserID: 1}, "iss", 0, "key"},
		{"empty key", models.Session{UserID: 1}, "iss", time.Hour, ""},
		{"no user", models.Session{}, "iss", time.Hour, "key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := SignSession(tt.session, tt.issuer, tt.duration, tt.key); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestParseSession_RoundTrip(t *testing.T) {
	signed, err := SignSession(models.Session{UserID: 7, Username: "bob"}, "iss", time.Hour, "key")
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	session, err := ParseSession(signed.SignedString, "key", "iss")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if session.UserID != 7 {
		t.Errorf("expected UserID=7, got %d", session.UserID)
	}
	if session.Username != "bob" {
		t.Errorf("expected username bob, got %s", session.Username)
	}
	if session.String() != signed.SignedString {
		t.Error("expected String() to return the signed token")
	}
}

func TestParseSession_Rejects(t *testing.T) {
	valid, err := SignSession(models.Session{UserID: 7, Username: "bob"}, "iss", time.Hour, "key")
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	expired, err := SignSession(models.Session{UserID: 7}, "iss", time.Nanosecond, "key")
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	time.Sleep(time.Second)

	noneToken := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Issuer:    "iss",
		Subject:   "7",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	unsigned, err := noneToken.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none: %v", err)
	}

	tests := []struct {
		name   string
		token  string
		key    string
		issuer string
	}{
		{"wrong key", valid.SignedString, "other", "iss"},
		{"wrong issuer", valid.SignedString, "key", "other"},
		{"expired", expired.SignedString, "key", "iss"},
		{"garbage", "not-a-jwt", "key", "iss"},
		{"empty", "", "key", "iss"},
		{"alg none", unsigned, "key", "iss"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseSession(tt.token, tt.key, tt.issuer); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}
