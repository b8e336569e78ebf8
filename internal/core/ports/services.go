package ports

import (
	"context"
	"time"

	"github.com/taskmate/taskmate-api/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}

// UpdateProfileInput carries the optional profile fields; nil means "leave
// untouched". Password and picture changes go through their own operations.
type UpdateProfileInput struct {
	Name          *string
	Email         *string
	Theme         *string
	Notifications *bool
	Language      *string
}

type UserService interface {
	GetProfile(ctx context.Context, userID int64) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID int64, in UpdateProfileInput) (*domain.User, error)
	ChangePassword(ctx context.Context, userID int64, current, next string) error
	UpdateProfilePicture(ctx context.Context, userID int64, dataURL string) (*domain.User, error)
	DeleteProfilePicture(ctx context.Context, userID int64) error
}

type CreateTaskInput struct {
	Title       string
	Description string
	DueDate     time.Time
	Priority    string
	Status      string
	CategoryID  *int64
}

// UpdateTaskInput mirrors CreateTaskInput with every field optional.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	DueDate     *time.Time
	Priority    *string
	Status      *string
	CategoryID  *int64
}

type TaskService interface {
	Create(ctx context.Context, ownerID int64, in CreateTaskInput) (*domain.Task, error)
	ListForUser(ctx context.Context, ownerID int64) ([]domain.Task, error)
	Update(ctx context.Context, taskID int64, in UpdateTaskInput) (*domain.Task, error)
	Delete(ctx context.Context, taskID int64) (bool, error)
	SetDueDate(ctx context.Context, taskID int64, due time.Time) (*domain.Task, error)
	MarkComplete(ctx context.Context, taskID int64) (*domain.Task, error)
}

type UpdateCategoryInput struct {
	Name  *string
	Color *string
}

type CategoryService interface {
	Create(ctx context.Context, ownerID int64, name, color string) (*domain.Category, error)
	ListForUser(ctx context.Context, ownerID int64) ([]domain.Category, error)
	Update(ctx context.Context, categoryID int64, in UpdateCategoryInput) (*domain.Category, error)
	Delete(ctx context.Context, categoryID int64) (bool, error)
}

type TagService interface {
	Create(ctx context.Context, ownerID int64, name string) (*domain.Tag, error)
	ListForUser(ctx context.Context, ownerID int64) ([]domain.Tag, error)
	Delete(ctx context.Context, tagID int64) (bool, error)
}
