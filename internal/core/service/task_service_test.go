package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/taskmate/taskmate-api/internal/core/domain"
	"github.com/taskmate/taskmate-api/internal/core/ports"
)

func patchFieldNames(p *ports.Patch) []string {
	names := make([]string, 0, len(p.Fields()))
	for _, f := range p.Fields() {
		names = append(names, strings.ToLower(f.Name))
	}
	return names
}

func hasField(p *ports.Patch, name string) bool {
	for _, n := range patchFieldNames(p) {
		if n == name {
			return true
		}
	}
	return false
}

func TestTaskService_CreateDefaults(t *testing.T) {
	tasks := newStubTaskRepo()
	svc := NewTaskService(tasks)

	due := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	task, err := svc.Create(context.Background(), 7, ports.CreateTaskInput{
		Title:   "Write report",
		DueDate: due,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if task.Priority != domain.PriorityMedium {
		t.Errorf("priority = %q, want %q", task.Priority, domain.PriorityMedium)
	}
	if task.Status != domain.StatusPending {
		t.Errorf("status = %q, want %q", task.Status, domain.StatusPending)
	}
	if task.UserID != 7 {
		t.Errorf("userID = %d, want 7", task.UserID)
	}
	if task.CreatedAt.IsZero() || task.UpdatedAt.IsZero() {
		t.Error("timestamps not set")
	}
	if hasField(tasks.lastPatch, "categoryid") {
		t.Error("categoryID must be absent when not supplied")
	}
}

func TestTaskService_CreateExplicit(t *testing.T) {
	tasks := newStubTaskRepo()
	svc := NewTaskService(tasks)

	categoryID := int64(3)
	task, err := svc.Create(context.Background(), 7, ports.CreateTaskInput{
		Title:      "Urgent thing",
		DueDate:    time.Now().Add(time.Hour),
		Priority:   domain.PriorityHigh,
		Status:     domain.StatusInProgress,
		CategoryID: &categoryID,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if task.Priority != domain.PriorityHigh || task.Status != domain.StatusInProgress {
		t.Errorf("got priority=%q status=%q", task.Priority, task.Status)
	}
	if task.CategoryID == nil || *task.CategoryID != 3 {
		t.Errorf("categoryID = %v, want 3", task.CategoryID)
	}
}

func TestTaskService_UpdatePartial(t *testing.T) {
	tasks := newStubTaskRepo()
	svc := NewTaskService(tasks)
	created, err := svc.Create(context.Background(), 7, ports.CreateTaskInput{
		Title:   "Original",
		DueDate: time.Now().Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	title := "Renamed"
	updated, err := svc.Update(context.Background(), created.ID, ports.UpdateTaskInput{Title: &title})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Title != "Renamed" {
		t.Errorf("title = %q", updated.Title)
	}
	if updated.Status != domain.StatusPending {
		t.Errorf("status changed to %q", updated.Status)
	}
	if !hasField(tasks.lastPatch, "updatedat") {
		t.Error("non-empty update must refresh updatedAt")
	}
	if hasField(tasks.lastPatch, "status") || hasField(tasks.lastPatch, "priority") {
		t.Errorf("patch carries untouched fields: %v", patchFieldNames(tasks.lastPatch))
	}
}

func TestTaskService_UpdateEmptyPatch(t *testing.T) {
	tasks := newStubTaskRepo()
	svc := NewTaskService(tasks)
	created, err := svc.Create(context.Background(), 7, ports.CreateTaskInput{
		Title:   "Untouched",
		DueDate: time.Now().Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := svc.Update(context.Background(), created.ID, ports.UpdateTaskInput{})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	// No supplied fields means no updatedAt refresh either.
	if !tasks.lastPatch.Empty() {
		t.Errorf("patch should be empty, got %v", patchFieldNames(tasks.lastPatch))
	}
	if updated.Title != "Untouched" {
		t.Errorf("title = %q", updated.Title)
	}
}

func TestTaskService_UpdateMissing(t *testing.T) {
	svc := NewTaskService(newStubTaskRepo())
	title := "nope"
	_, err := svc.Update(context.Background(), 42, ports.UpdateTaskInput{Title: &title})
	if !errors.Is(err, domain.ErrTaskNotFound) {
		t.Fatalf("err = %v, want ErrTaskNotFound", err)
	}
}

func TestTaskService_MarkComplete(t *testing.T) {
	tasks := newStubTaskRepo()
	svc := NewTaskService(tasks)
	created, err := svc.Create(context.Background(), 7, ports.CreateTaskInput{
		Title:   "Finish me",
		DueDate: time.Now().Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	done, err := svc.MarkComplete(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("MarkComplete: %v", err)
	}
	if done.Status != domain.StatusCompleted {
		t.Errorf("status = %q, want %q", done.Status, domain.StatusCompleted)
	}
}

func TestTaskService_SetDueDate(t *testing.T) {
	tasks := newStubTaskRepo()
	svc := NewTaskService(tasks)
	created, err := svc.Create(context.Background(), 7, ports.CreateTaskInput{
		Title:   "Reschedule me",
		DueDate: time.Now().Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	due := time.Date(2026, 12, 24, 18, 0, 0, 0, time.UTC)
	moved, err := svc.SetDueDate(context.Background(), created.ID, due)
	if err != nil {
		t.Fatalf("SetDueDate: %v", err)
	}
	if !moved.DueDate.Equal(due) {
		t.Errorf("dueDate = %v, want %v", moved.DueDate, due)
	}
}

func TestTaskService_ListForUser(t *testing.T) {
	tasks := newStubTaskRepo()
	svc := NewTaskService(tasks)
	for i, owner := range []int64{7, 7, 9} {
		_, err := svc.Create(context.Background(), owner, ports.CreateTaskInput{
			Title:   "Task",
			DueDate: time.Now().Add(time.Duration(i) * time.Hour),
		})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	mine, err := svc.ListForUser(context.Background(), 7)
	if err != nil {
		t.Fatalf("ListForUser: %v", err)
	}
	if len(mine) != 2 {
		t.Errorf("got %d tasks, want 2", len(mine))
	}
}
