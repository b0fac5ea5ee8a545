// Package service defines the backend-agnostic interface for task operations.
package service

// Priority levels. Lower is more urgent by convention.
const (
	PriorityHigh   = 1
	PriorityNormal = 2
	PriorityLow    = 3

	// DefaultPriority is applied when a task is created without one.
	DefaultPriority = PriorityNormal
)

// Task represents a single task item.
// ID is canonical regardless of whether the backend reported "id" or "_id".
// ProjectID is empty for inbox tasks; the backend's all-zero object-id
// sentinel is normalized away before a Task reaches callers.
type Task struct {
	ID          string
	Title       string
	Description string
	Priority    int
	DueDate     string // ISO-8601, empty if none
	Completed   bool
	ProjectID   string
}

// Project represents a task project.
type Project struct {
	ID       string
	Name     string
	IsSystem bool // marks the built-in Inbox project
	UserID   string
}

// TaskFilter selects tasks for a list operation.
// InboxOnly takes precedence over ProjectID when both are set.
// Completed nil means "any".
type TaskFilter struct {
	ProjectID string
	Completed *bool
	InboxOnly bool
}

// TaskPayload is the input for task creation.
// Title is required. Priority defaults to DefaultPriority when zero.
// An empty ProjectID files the task in the inbox.
type TaskPayload struct {
	Title       string
	Description string
	DueDate     string
	ProjectID   string
	Priority    int
}

// TaskPatch is a partial update. Nil fields are left untouched.
type TaskPatch struct {
	Title       *string
	Description *string
	Completed   *bool
	ProjectID   *string
	Priority    *int
	DueDate     *string
}

// ProjectPayload is the input for project creation.
type ProjectPayload struct {
	Name        string
	Description string
	IsSystem    bool
}

// Bool returns a pointer to b, for optional filter and patch fields.
func Bool(b bool) *bool { return &b }

// String returns a pointer to s, for optional patch fields.
func String(s string) *string { return &s }

// Int returns a pointer to n, for optional patch fields.
func Int(n int) *int { return &n }
