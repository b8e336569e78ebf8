package service

import (
	"context"
	"time"

	"github.com/taskmate/taskmate-api/internal/core/domain"
	"github.com/taskmate/taskmate-api/internal/core/ports"
)

// TaskService is a thin orchestration layer over the task repository. The
// owner id is attached here, before anything reaches the generic repository.
type TaskService struct {
	tasks ports.TaskRepository
}

func NewTaskService(tasks ports.TaskRepository) *TaskService {
	return &TaskService{tasks: tasks}
}

func (s *TaskService) Create(ctx context.Context, ownerID int64, in ports.CreateTaskInput) (*domain.Task, error) {
	now := time.Now().UTC()
	priority := in.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}
	status := in.Status
	if status == "" {
		status = domain.StatusPending
	}

	patch := new(ports.Patch).
		Set("title", in.Title).
		Set("description", in.Description).
		Set("dueDate", in.DueDate).
		Set("priority", priority).
		Set("status", status).
		Set("createdAt", now).
		Set("updatedAt", now).
		Set("userID", ownerID)
	if in.CategoryID != nil {
		patch.Set("categoryID", *in.CategoryID)
	}

	return s.tasks.Create(ctx, patch)
}

func (s *TaskService) ListForUser(ctx context.Context, ownerID int64) ([]domain.Task, error) {
	return s.tasks.FindByOwner(ctx, ownerID)
}

func (s *TaskService) Update(ctx context.Context, taskID int64, in ports.UpdateTaskInput) (*domain.Task, error) {
	patch := new(ports.Patch)
	if in.Title != nil {
		patch.Set("title", *in.Title)
	}
	if in.Description != nil {
		patch.Set("description", *in.Description)
	}
	if in.DueDate != nil {
		patch.Set("dueDate", *in.DueDate)
	}
	if in.Priority != nil {
		patch.Set("priority", *in.Priority)
	}
	if in.Status != nil {
		patch.Set("status", *in.Status)
	}
	if in.CategoryID != nil {
		patch.Set("categoryID", *in.CategoryID)
	}
	if !patch.Empty() {
		patch.Set("updatedAt", time.Now().UTC())
	}

	task, err := s.tasks.Update(ctx, taskID, patch)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, domain.ErrTaskNotFound
	}
	return task, nil
}

func (s *TaskService) Delete(ctx context.Context, taskID int64) (bool, error) {
	return s.tasks.Delete(ctx, taskID)
}

func (s *TaskService) SetDueDate(ctx context.Context, taskID int64, due time.Time) (*domain.Task, error) {
	return s.Update(ctx, taskID, ports.UpdateTaskInput{DueDate: &due})
}

func (s *TaskService) MarkComplete(ctx context.Context, taskID int64) (*domain.Task, error) {
	completed := domain.StatusCompleted
	return s.Update(ctx, taskID, ports.UpdateTaskInput{Status: &completed})
}
