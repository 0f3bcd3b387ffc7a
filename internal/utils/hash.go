// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/sha256"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword returns the bcrypt hash of password at the default cost.
// The password is first reduced to a base64 SHA-256 digest so that bcrypt's
// 72 byte input limit never applies and every byte of it counts.
//
// Example usage:
//
//	hash, err := utils.HashPassword("pass1")
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(preHash(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches a hash made by
// HashPassword. Malformed hashes never match.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), preHash(password)) == nil
}

// preHash returns the 44 byte base64 form of the password's SHA-256 digest.
// Base64 keeps NUL bytes out of the bcrypt input.
func preHash(password string) []byte {
	sum := sha256.Sum256([]byte(password))
	out := make([]byte, base64.StdEncoding.EncodedLen(len(sum)))
	base64.StdEncoding.Encode(out, sum[:])
	return out
}
