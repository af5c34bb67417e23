package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"weddinginvite/internal/domain"
)

type bcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a SecretHasher that pre-hashes salt+secret with
// SHA-256 and feeds the hex digest to bcrypt. The pre-hash keeps the bcrypt
// input fixed-length regardless of secret length.
func NewBcryptHasher(cost int) domain.SecretHasher {
	return &bcryptHasher{cost: cost}
}

func (h *bcryptHasher) GenerateSalt() (string, error) {
	saltBytes := make([]byte, 32)
	if _, err := rand.Read(saltBytes); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}
	return hex.EncodeToString(saltBytes), nil
}

func (h *bcryptHasher) Hash(salt, secret string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(preHash(salt, secret), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash secret: %w", err)
	}
	return string(hash), nil
}

func (h *bcryptHasher) Compare(hash, salt, secret string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), preHash(salt, secret))
}

func preHash(salt, secret string) []byte {
	sum := sha256.Sum256([]byte(salt + secret))
	return []byte(hex.EncodeToString(sum[:]))
}
