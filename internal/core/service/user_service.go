package service

import (
	"context"
	"regexp"

	"github.com/taskmate/taskmate-api/internal/core/domain"
	"github.com/taskmate/taskmate-api/internal/core/ports"
)

// maxPictureBytes bounds the decoded avatar size at 5MB.
const maxPictureBytes = 5 * 1024 * 1024

var dataURLPattern = regexp.MustCompile(`^data:image/(jpeg|jpg|png|gif|webp);base64,`)

// UserService covers profile reads and mutations for an authenticated user.
type UserService struct {
	users  ports.UserRepository
	hasher ports.PasswordHasher
}

func NewUserService(users ports.UserRepository, hasher ports.PasswordHasher) *UserService {
	return &UserService{users: users, hasher: hasher}
}

func (s *UserService) GetProfile(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	user.Scrub()
	return user, nil
}

// UpdateProfile mutates only the supplied fields. Password and picture are
// deliberately outside this operation; they have their own endpoints with
// stricter checks.
func (s *UserService) UpdateProfile(ctx context.Context, userID int64, in ports.UpdateProfileInput) (*domain.User, error) {
	patch := new(ports.Patch)
	if in.Name != nil {
		patch.Set("name", *in.Name)
	}
	if in.Email != nil {
		patch.Set("email", *in.Email)
	}
	if in.Theme != nil {
		patch.Set("theme", *in.Theme)
	}
	if in.Notifications != nil {
		patch.Set("notifications", *in.Notifications)
	}
	if in.Language != nil {
		patch.Set("language", *in.Language)
	}

	user, err := s.users.Update(ctx, userID, patch)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	user.Scrub()
	return user, nil
}

// ChangePassword verifies the current password before storing the new hash.
func (s *UserService) ChangePassword(ctx context.Context, userID int64, current, next string) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}

	if !s.hasher.Verify(current, user.Password) {
		return domain.ErrInvalidPassword
	}

	hash, err := s.hasher.Hash(next)
	if err != nil {
		return err
	}

	_, err = s.users.Update(ctx, userID, new(ports.Patch).Set("password", hash))
	return err
}

// UpdateProfilePicture stores a data-URL encoded avatar after validating
// format and size.
func (s *UserService) UpdateProfilePicture(ctx context.Context, userID int64, dataURL string) (*domain.User, error) {
	if !dataURLPattern.MatchString(dataURL) {
		return nil, domain.ErrInvalidPicture
	}
	// Base64 inflates the payload by roughly a third.
	if len(dataURL)*3/4 > maxPictureBytes {
		return nil, domain.ErrPictureTooLarge
	}

	user, err := s.users.Update(ctx, userID, new(ports.Patch).Set("profilePicture", dataURL))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	user.Scrub()
	return user, nil
}

// DeleteProfilePicture clears the avatar. This goes through the dedicated
// repository method because the generic update cannot set a column to NULL.
func (s *UserService) DeleteProfilePicture(ctx context.Context, userID int64) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	return s.users.ClearProfilePicture(ctx, userID)
}
