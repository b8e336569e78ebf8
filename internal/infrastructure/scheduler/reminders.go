// Package scheduler runs the periodic due-task sweep. It is read-only:
// reminders surface through logs and metrics, not through any notification
// transport.
package scheduler

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskmate/taskmate-api/internal/api/metrics"
	"github.com/taskmate/taskmate-api/internal/core/ports"
)

const (
	defaultInterval  = 15 * time.Minute
	defaultLookahead = 24 * time.Hour
)

// ReminderScheduler periodically scans for open tasks whose due date falls
// within the lookahead window.
type ReminderScheduler struct {
	tasks     ports.TaskRepository
	interval  time.Duration
	lookahead time.Duration
	log       zerolog.Logger
}

// NewReminderScheduler creates a scheduler over the task repository.
// Non-positive durations fall back to the defaults.
func NewReminderScheduler(tasks ports.TaskRepository, interval, lookahead time.Duration, log zerolog.Logger) *ReminderScheduler {
	if interval <= 0 {
		interval = defaultInterval
	}
	if lookahead <= 0 {
		lookahead = defaultLookahead
	}
	return &ReminderScheduler{tasks: tasks, interval: interval, lookahead: lookahead, log: log}
}

// Start launches the sweep loop. It stops when ctx is cancelled.
func (s *ReminderScheduler) Start(ctx context.Context) {
	go s.run(ctx)
}

func (s *ReminderScheduler) run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *ReminderScheduler) sweep(ctx context.Context) {
	deadline := time.Now().UTC().Add(s.lookahead)

	due, err := s.tasks.FindDueBefore(ctx, deadline)
	if err != nil {
		s.log.Error().Err(err).Msg("due-task sweep failed")
		return
	}

	metrics.TasksDueSoon.Set(float64(len(due)))

	for _, task := range due {
		s.log.Info().
			Int64("task_id", task.ID).
			Int64("user_id", task.UserID).
			Time("due", task.DueDate).
			Msg("task due soon")
	}
}
