package hasher

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Cost mirrors the 10 salt rounds the signup form always used.
const Cost = 10

// Hash derives a salted bcrypt hash of password. The returned string is
// self-contained (salt, cost and digest), so two calls for the same
// password produce different encodings that both verify.
func Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), Cost)
	if err != nil {
		return "", fmt.Errorf("hashing password error: %s", err)
	}
	return string(hashed), nil
}

// Verify reports whether password matches the encoded hash. It fails
// closed: a corrupt or truncated encoding is a mismatch, never a panic.
func Verify(password, encoded string) bool {
	return bcrypt.CompareHashAndPassword([]byte(encoded), []byte(password)) == nil
}
