package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// NewOpaqueToken gera um token aleatório em hex (refresh, reset de senha).
func NewOpaqueToken(nBytes int) (string, error) {
	if nBytes <= 0 {
		nBytes = 32 // 256 bits por padrão
	}
	b := make([]byte, nBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
