// internal/utils/crypto.go
package utils

import (
	"crypto/rand"
	"math/big"
)

const sessionTokenLength = 32

func GenerateRandomString(length int) (string, error) {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	b := make([]byte, length)

	for i := range b {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", err
		}
		b[i] = charset[n.Int64()]
	}

	return string(b), nil
}

// GenerateSessionToken returns an opaque token suitable for a session
// cookie value.
func GenerateSessionToken() (string, error) {
	return GenerateRandomString(sessionTokenLength)
}
