package ports

import "github.com/taskmate/taskmate-api/internal/core/domain"

// PasswordHasher produces salted one-way digests and verifies candidates
// against them in constant time.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
}

// TokenService issues and verifies signed, time-limited session tokens.
// Verify returns domain.ErrTokenMalformed, domain.ErrTokenSignatureInvalid
// or domain.ErrTokenExpired, each as a distinct failure.
type TokenService interface {
	Issue(userID int64, email string) (string, error)
	Verify(token string) (*domain.Principal, error)
}
