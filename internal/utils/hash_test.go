// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"strings"
	"testing"
)

func TestHashPassword_VerifiesWithCheckPassword(t *testing.T) {
	hash, err := HashPassword("pass1")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if hash == "pass1" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !strings.HasPrefix(hash, "$2") {
		t.Errorf("expected bcrypt hash, got %q", hash)
	}
	if !CheckPassword(hash, "pass1") {
		t.Error("expected password to verify")
	}
	if CheckPassword(hash, "pass2") {
		t.Error("expected wrong password to fail")
	}
}

func TestHashPassword_Salted(t *testing.T) {
	h1, _ := HashPassword("same")
	h2, _ := HashPassword("same")
	if h1 == h2 {
		t.Error("expected different hashes for the same password")
	}
}

func TestHashPassword_LongPassword(t *testing.T) {
	long := strings.Repeat("p", 73)
	hash, err := HashPassword(long)
	if err != nil {
		t.Fatalf("expected no error for a 73 byte password, got: %v", err)
	}
	if !CheckPassword(hash, long) {
		t.Error("expected long password to verify")
	}

	// the bytes past 72 must still matter
	if CheckPassword(hash, strings.Repeat("p", 72)+"q") {
		t.Error("expected password differing after byte 72 to fail")
	}
	if CheckPassword(hash, strings.Repeat("p", 72)) {
		t.Error("expected 72 byte prefix to fail")
	}
}

func TestHashPassword_VeryLongPassword(t *testing.T) {
	long := strings.Repeat("секрет", 1000)
	hash, err := HashPassword(long)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if !CheckPassword(hash, long) {
		t.Error("expected very long password to verify")
	}
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	if CheckPassword("not-a-hash", "pass") {
		t.Error("expected malformed hash to never match")
	}
}
