package domain

import "errors"

// Classified failures. Each is attached as close as possible to where it is
// detected; the HTTP error handler maps them to status codes.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidPassword    = errors.New("invalid current password")
	ErrUserExists         = errors.New("user with this email already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrTaskNotFound       = errors.New("task not found")
	ErrCategoryNotFound   = errors.New("category not found")
	ErrTagNotFound        = errors.New("tag not found")

	// ErrConflict surfaces a store uniqueness or foreign-key violation.
	ErrConflict = errors.New("constraint violation")

	// Token verification outcomes, each a distinct signal.
	ErrTokenMalformed        = errors.New("malformed token")
	ErrTokenSignatureInvalid = errors.New("invalid token signature")
	ErrTokenExpired          = errors.New("token expired")

	ErrTooManyAttempts = errors.New("too many login attempts")

	ErrInvalidPicture  = errors.New("invalid image format, supported formats: JPEG, PNG, GIF, WebP")
	ErrPictureTooLarge = errors.New("image size exceeds 5MB limit")
)
