package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskmate/taskmate-api/internal/core/domain"
	"github.com/taskmate/taskmate-api/internal/core/ports"
)

type fakeTaskRepo struct {
	due         []domain.Task
	err         error
	gotDeadline time.Time
}

func (r *fakeTaskRepo) FindDueBefore(_ context.Context, deadline time.Time) ([]domain.Task, error) {
	r.gotDeadline = deadline
	return r.due, r.err
}

func (r *fakeTaskRepo) FindAll(context.Context) ([]domain.Task, error)          { return nil, nil }
func (r *fakeTaskRepo) FindByID(context.Context, int64) (*domain.Task, error)   { return nil, nil }
func (r *fakeTaskRepo) FindByOwner(context.Context, int64) ([]domain.Task, error) {
	return nil, nil
}
func (r *fakeTaskRepo) Create(context.Context, *ports.Patch) (*domain.Task, error) {
	return nil, nil
}
func (r *fakeTaskRepo) Update(context.Context, int64, *ports.Patch) (*domain.Task, error) {
	return nil, nil
}
func (r *fakeTaskRepo) Delete(context.Context, int64) (bool, error) { return false, nil }

func TestReminderScheduler_SweepDeadline(t *testing.T) {
	repo := &fakeTaskRepo{due: []domain.Task{{ID: 1, UserID: 7}}}
	s := NewReminderScheduler(repo, time.Minute, 24*time.Hour, zerolog.Nop())

	before := time.Now().UTC()
	s.sweep(context.Background())
	after := time.Now().UTC()

	if repo.gotDeadline.Before(before.Add(24*time.Hour)) || repo.gotDeadline.After(after.Add(24*time.Hour)) {
		t.Errorf("deadline = %v, want now+24h", repo.gotDeadline)
	}
}

func TestReminderScheduler_SweepSurvivesRepoError(t *testing.T) {
	repo := &fakeTaskRepo{err: errors.New("pool exhausted")}
	s := NewReminderScheduler(repo, time.Minute, time.Hour, zerolog.Nop())

	// Must not panic; the failure is logged and the next tick retries.
	s.sweep(context.Background())
}

func TestNewReminderScheduler_Defaults(t *testing.T) {
	s := NewReminderScheduler(&fakeTaskRepo{}, 0, 0, zerolog.Nop())
	if s.interval != defaultInterval {
		t.Errorf("interval = %v, want %v", s.interval, defaultInterval)
	}
	if s.lookahead != defaultLookahead {
		t.Errorf("lookahead = %v, want %v", s.lookahead, defaultLookahead)
	}
}
