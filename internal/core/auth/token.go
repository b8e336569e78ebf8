package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/taskmate/taskmate-api/internal/core/domain"
)

// DefaultTokenTTL is the validity window applied when none is configured.
const DefaultTokenTTL = time.Hour

// Claims is the signed bundle carried by every session token.
type Claims struct {
	UserID int64  `json:"id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// JWTService issues and verifies HS256 session tokens. The secret is
// process-wide configuration, loaded once at startup.
type JWTService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewJWTService(secret string, ttl time.Duration) *JWTService {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &JWTService{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue returns a signed token for the given identity, valid for the
// configured TTL from now.
func (s *JWTService) Issue(userID int64, email string) (string, error) {
	now := s.now()
	claims := Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify decodes the token, checks signature and expiry, and returns the
// embedded principal. Each failure mode maps to its own domain error.
func (s *JWTService) Verify(token string) (*domain.Principal, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return s.now() }))

	switch {
	case err == nil && tkn.Valid:
		return &domain.Principal{UserID: claims.UserID, Email: claims.Email}, nil
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, domain.ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return nil, domain.ErrTokenSignatureInvalid
	default:
		return nil, domain.ErrTokenMalformed
	}
}
