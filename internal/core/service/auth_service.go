package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/taskmate/taskmate-api/internal/core/domain"
	"github.com/taskmate/taskmate-api/internal/core/ports"
)

// LoginLimiter throttles repeated login attempts. Implementations are
// advisory: an unavailable limiter must not lock users out.
type LoginLimiter interface {
	Allow(ctx context.Context, email string) (bool, error)
	Reset(ctx context.Context, email string) error
}

// AuthService implements registration and login over the user repository.
type AuthService struct {
	users      ports.UserRepository
	categories ports.CategoryRepository
	hasher     ports.PasswordHasher
	tokens     ports.TokenService
	limiter    LoginLimiter
	logger     zerolog.Logger
}

func NewAuthService(
	users ports.UserRepository,
	categories ports.CategoryRepository,
	hasher ports.PasswordHasher,
	tokens ports.TokenService,
	limiter LoginLimiter,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		users:      users,
		categories: categories,
		hasher:     hasher,
		tokens:     tokens,
		limiter:    limiter,
		logger:     logger,
	}
}

// Register creates a new account and seeds its default categories. Seeding
// failures are logged, not rolled back: the account stays usable without
// the presets.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUserExists
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	patch := new(ports.Patch).
		Set("name", name).
		Set("email", email).
		Set("password", hash).
		Set("theme", domain.DefaultTheme).
		Set("notifications", true).
		Set("language", domain.DefaultLanguage)

	user, err := s.users.Create(ctx, patch)
	if err != nil {
		return nil, err
	}

	s.seedDefaultCategories(ctx, user.ID)

	s.logger.Info().Int64("user_id", user.ID).Msg("user registered")

	user.Scrub()
	return user, nil
}

func (s *AuthService) seedDefaultCategories(ctx context.Context, ownerID int64) {
	for _, preset := range domain.DefaultCategories {
		patch := new(ports.Patch).
			Set("name", preset.Name).
			Set("color", preset.Color).
			Set("userID", ownerID)
		if _, err := s.categories.Create(ctx, patch); err != nil {
			s.logger.Warn().Err(err).
				Int64("user_id", ownerID).
				Str("category", preset.Name).
				Msg("failed to seed default category")
		}
	}
}

// Login verifies the credentials and issues a session token. Unknown email
// and wrong password fail identically so the response does not reveal which
// half of the credential was wrong.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if s.limiter != nil {
		allowed, err := s.limiter.Allow(ctx, email)
		if err != nil {
			// A broken limiter must not lock everyone out.
			s.logger.Warn().Err(err).Msg("login limiter unavailable")
		} else if !allowed {
			return "", nil, domain.ErrTooManyAttempts
		}
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if user == nil || !s.hasher.Verify(password, user.Password) {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return "", nil, err
	}

	if s.limiter != nil {
		if err := s.limiter.Reset(ctx, email); err != nil {
			s.logger.Warn().Err(err).Msg("login limiter reset failed")
		}
	}

	user.Scrub()
	return token, user, nil
}
