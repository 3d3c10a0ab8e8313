package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateSessionKey returns a 64-character hex token used as the cart
// session cookie value.
func GenerateSessionKey() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
