// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexey Tereshkin

package crypto

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// passwordHasher is the private bcrypt-backed implementation of [PasswordHasher].
type passwordHasher struct {
	// cost is the bcrypt work factor. Stored in the struct so it can be
	// raised per deployment as hardware gets faster.
	cost int
}

// NewPasswordHasher constructs a [PasswordHasher] with the given bcrypt cost.
// A cost outside the valid bcrypt range selects bcrypt.DefaultCost.
func NewPasswordHasher(cost int) PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &passwordHasher{cost: cost}
}

// Hash implements [PasswordHasher]. bcrypt draws a fresh random salt from
// the OS CSPRNG on every call and embeds it, together with the cost
// parameter, in the returned hash string.
func (p *passwordHasher) Hash(plaintext string) (string, error) {
	if plaintext == "" {
		return "", errors.New("empty password")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), p.cost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}

// Verify implements [PasswordHasher]. bcrypt recomputes the hash using the
// salt and cost embedded in the stored value and compares in constant time.
func (p *passwordHasher) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
