package generator

import "crypto/rand"

// 64 cookie-safe characters, so one random byte maps to one character
// without modulo bias.
const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz-_"

// GenerateRandomID returns an opaque random identifier of the given length.
func GenerateRandomID(length int) (string, error) {
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i, b := range buf {
		buf[i] = alphabet[b&63]
	}
	return string(buf), nil
}
