package services

import (
	"crypto/subtle"
	"fmt"
	"time"

	"weddinginvite/internal/domain"
)

const adminTokenTTL = 12 * time.Hour

// AdminService exchanges the operator secret for an admin-scoped token that
// gates the retention surface.
type AdminService struct {
	secret string
	issuer domain.TokenIssuer
}

func NewAdminService(secret string, issuer domain.TokenIssuer) *AdminService {
	return &AdminService{secret: secret, issuer: issuer}
}

func (s *AdminService) Login(secret string) (string, error) {
	if s.secret == "" {
		return "", domain.ErrAuthenticationFailed
	}
	if subtle.ConstantTimeCompare([]byte(secret), []byte(s.secret)) != 1 {
		return "", domain.ErrAuthenticationFailed
	}
	token, err := s.issuer.Issue("admin", domain.TokenScopeAdmin, adminTokenTTL)
	if err != nil {
		return "", fmt.Errorf("failed to issue admin token: %w", err)
	}
	return token, nil
}
