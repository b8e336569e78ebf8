package domain

import "time"

// Task priorities as stored and rendered.
const (
	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"
)

// Task statuses as stored and rendered.
const (
	StatusPending    = "Pending"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
)

// Task is a single to-do item owned by exactly one user. CategoryID is
// optional; a task may live outside any category.
type Task struct {
	ID          int64     `json:"taskID" db:"taskid"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	DueDate     time.Time `json:"dueDate" db:"duedate"`
	Priority    string    `json:"priority" db:"priority"`
	Status      string    `json:"status" db:"status"`
	CreatedAt   time.Time `json:"createdAt" db:"createdat"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updatedat"`
	UserID      int64     `json:"userID" db:"userid"`
	CategoryID  *int64    `json:"categoryID" db:"categoryid"`
}
