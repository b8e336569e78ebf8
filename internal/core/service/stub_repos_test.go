package service

import (
	"context"
	"strings"
	"time"

	"github.com/taskmate/taskmate-api/internal/core/domain"
	"github.com/taskmate/taskmate-api/internal/core/ports"
)

// In-memory repositories mirroring the generic contract: patches apply only
// the fields they carry, ids are assigned by the store, absent rows come
// back as nil.

type stubUserRepo struct {
	users  map[int64]*domain.User
	nextID int64
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[int64]*domain.User), nextID: 1}
}

func applyUserPatch(u *domain.User, patch *ports.Patch) {
	for _, f := range patch.Fields() {
		switch strings.ToLower(f.Name) {
		case "name":
			u.Name = f.Value.(string)
		case "email":
			u.Email = f.Value.(string)
		case "password":
			u.Password = f.Value.(string)
		case "profilepicture":
			pic := f.Value.(string)
			u.ProfilePicture = &pic
		case "theme":
			u.Theme = f.Value.(string)
		case "notifications":
			u.Notifications = f.Value.(bool)
		case "language":
			u.Language = f.Value.(string)
		}
	}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) FindAll(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	return cloneUser(r.users[id]), nil
}

func (r *stubUserRepo) FindByOwner(_ context.Context, _ int64) ([]domain.User, error) {
	return []domain.User{}, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, nil
}

func (r *stubUserRepo) Create(_ context.Context, patch *ports.Patch) (*domain.User, error) {
	u := &domain.User{ID: r.nextID}
	r.nextID++
	applyUserPatch(u, patch)
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return nil, domain.ErrConflict
		}
	}
	r.users[u.ID] = u
	return cloneUser(u), nil
}

func (r *stubUserRepo) Update(_ context.Context, id int64, patch *ports.Patch) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	applyUserPatch(u, patch)
	return cloneUser(u), nil
}

func (r *stubUserRepo) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := r.users[id]; !ok {
		return false, nil
	}
	delete(r.users, id)
	return true, nil
}

func (r *stubUserRepo) ClearProfilePicture(_ context.Context, id int64) error {
	if u, ok := r.users[id]; ok {
		u.ProfilePicture = nil
	}
	return nil
}

type stubCategoryRepo struct {
	categories []domain.Category
	nextID     int64
	failCreate error
}

func newStubCategoryRepo() *stubCategoryRepo {
	return &stubCategoryRepo{nextID: 1}
}

func (r *stubCategoryRepo) FindAll(_ context.Context) ([]domain.Category, error) {
	return r.categories, nil
}

func (r *stubCategoryRepo) FindByID(_ context.Context, id int64) (*domain.Category, error) {
	for _, c := range r.categories {
		if c.ID == id {
			clone := c
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *stubCategoryRepo) FindByOwner(_ context.Context, ownerID int64) ([]domain.Category, error) {
	out := []domain.Category{}
	for _, c := range r.categories {
		if c.UserID == ownerID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *stubCategoryRepo) Create(_ context.Context, patch *ports.Patch) (*domain.Category, error) {
	if r.failCreate != nil {
		return nil, r.failCreate
	}
	c := domain.Category{ID: r.nextID}
	r.nextID++
	for _, f := range patch.Fields() {
		switch strings.ToLower(f.Name) {
		case "name":
			c.Name = f.Value.(string)
		case "color":
			c.Color = f.Value.(string)
		case "userid":
			c.UserID = f.Value.(int64)
		}
	}
	r.categories = append(r.categories, c)
	return &c, nil
}

func (r *stubCategoryRepo) Update(_ context.Context, id int64, patch *ports.Patch) (*domain.Category, error) {
	for i := range r.categories {
		if r.categories[i].ID == id {
			for _, f := range patch.Fields() {
				switch strings.ToLower(f.Name) {
				case "name":
					r.categories[i].Name = f.Value.(string)
				case "color":
					r.categories[i].Color = f.Value.(string)
				}
			}
			clone := r.categories[i]
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *stubCategoryRepo) Delete(_ context.Context, id int64) (bool, error) {
	for i := range r.categories {
		if r.categories[i].ID == id {
			r.categories = append(r.categories[:i], r.categories[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// stubTaskRepo records the patches it receives so tests can assert exactly
// which fields a service call touched.
type stubTaskRepo struct {
	tasks       map[int64]*domain.Task
	nextID      int64
	lastPatch   *ports.Patch
	lastUpdated int64
}

func newStubTaskRepo() *stubTaskRepo {
	return &stubTaskRepo{tasks: make(map[int64]*domain.Task), nextID: 1}
}

func applyTaskPatch(task *domain.Task, patch *ports.Patch) {
	for _, f := range patch.Fields() {
		switch strings.ToLower(f.Name) {
		case "title":
			task.Title = f.Value.(string)
		case "description":
			task.Description = f.Value.(string)
		case "duedate":
			task.DueDate = f.Value.(time.Time)
		case "priority":
			task.Priority = f.Value.(string)
		case "status":
			task.Status = f.Value.(string)
		case "createdat":
			task.CreatedAt = f.Value.(time.Time)
		case "updatedat":
			task.UpdatedAt = f.Value.(time.Time)
		case "userid":
			task.UserID = f.Value.(int64)
		case "categoryid":
			id := f.Value.(int64)
			task.CategoryID = &id
		}
	}
}

func (r *stubTaskRepo) FindAll(_ context.Context) ([]domain.Task, error) {
	out := make([]domain.Task, 0, len(r.tasks))
	for _, task := range r.tasks {
		out = append(out, *task)
	}
	return out, nil
}

func (r *stubTaskRepo) FindByID(_ context.Context, id int64) (*domain.Task, error) {
	task, ok := r.tasks[id]
	if !ok {
		return nil, nil
	}
	clone := *task
	return &clone, nil
}

func (r *stubTaskRepo) FindByOwner(_ context.Context, ownerID int64) ([]domain.Task, error) {
	out := []domain.Task{}
	for _, task := range r.tasks {
		if task.UserID == ownerID {
			out = append(out, *task)
		}
	}
	return out, nil
}

func (r *stubTaskRepo) FindDueBefore(_ context.Context, deadline time.Time) ([]domain.Task, error) {
	out := []domain.Task{}
	for _, task := range r.tasks {
		if task.Status != domain.StatusCompleted && !task.DueDate.After(deadline) {
			out = append(out, *task)
		}
	}
	return out, nil
}

func (r *stubTaskRepo) Create(_ context.Context, patch *ports.Patch) (*domain.Task, error) {
	r.lastPatch = patch
	task := &domain.Task{ID: r.nextID}
	r.nextID++
	applyTaskPatch(task, patch)
	r.tasks[task.ID] = task
	clone := *task
	return &clone, nil
}

func (r *stubTaskRepo) Update(_ context.Context, id int64, patch *ports.Patch) (*domain.Task, error) {
	r.lastPatch = patch
	r.lastUpdated = id
	task, ok := r.tasks[id]
	if !ok {
		return nil, nil
	}
	applyTaskPatch(task, patch)
	clone := *task
	return &clone, nil
}

func (r *stubTaskRepo) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := r.tasks[id]; !ok {
		return false, nil
	}
	delete(r.tasks, id)
	return true, nil
}
