// Package password is the credential utility: one-way hashing and
// verification of user passwords. Plaintext passwords never leave this
// package's callers; only the salted hash is stored.
package password

import (
	"golang.org/x/crypto/bcrypt"
)

// Hash returns a salted bcrypt hash of the plaintext password.
func Hash(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether the plaintext password matches the stored hash.
func Verify(plaintext, storedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(plaintext)) == nil
}
