package domain

import "time"

// SecretHasher handles salt generation, hashing, and verification of the
// short ownership secrets. Implementations may use bcrypt, argon2, etc.
// The digest, never the plaintext secret, is persisted.
type SecretHasher interface {
	GenerateSalt() (string, error)
	Hash(salt, secret string) (hash string, err error)
	Compare(hash, salt, secret string) error
}

// Token scopes issued by the service.
const (
	TokenScopeEdit  = "edit"  // subject is an invitation slug
	TokenScopeAdmin = "admin" // subject is the operator
)

// TokenIssuer issues signed tokens (e.g. JWT) for a verified subject.
type TokenIssuer interface {
	Issue(subject, scope string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns its subject and scope.
type TokenVerifier interface {
	Verify(token string) (subject, scope string, err error)
}
