// Package auth holds the credential primitives: bcrypt password hashing and
// signed session tokens. Both are pure over their inputs; neither touches
// the store.
package auth

import "golang.org/x/crypto/bcrypt"

// BcryptHasher hashes passwords with bcrypt. The salt is generated per call,
// so two hashes of the same plaintext differ; verification is constant-time
// inside bcrypt itself.
type BcryptHasher struct {
	cost int
}

func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether plaintext reproduces hash. A malformed hash simply
// fails verification; it never panics or surfaces an error to the caller.
func (h *BcryptHasher) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
