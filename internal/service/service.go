// Package service defines the backend-agnostic interface for task operations.
package service

import "context"

// Service defines the interface for task backend operations.
// All HTTP API calls go through this interface.
// Commands never build requests directly.
type Service interface {
	// ListTasks returns tasks matching the filter.
	// InboxOnly overrides ProjectID when both are set.
	ListTasks(ctx context.Context, filter TaskFilter) ([]Task, error)

	// CreateTask creates a task. The server assigns the ID.
	// Fails with a ValidationError if the title is empty, before any
	// network call.
	CreateTask(ctx context.Context, payload TaskPayload) (Task, error)

	// UpdateTask applies a partial patch and returns the updated task.
	UpdateTask(ctx context.Context, id string, patch TaskPatch) (Task, error)

	// DeleteTask deletes a task by ID.
	DeleteTask(ctx context.Context, id string) error

	// ListProjects returns all of the user's projects.
	ListProjects(ctx context.Context) ([]Project, error)

	// CreateProject creates a project.
	CreateProject(ctx context.Context, payload ProjectPayload) (Project, error)

	// DeleteProject deletes a project by ID. Whether its tasks cascade
	// is the server's concern.
	DeleteProject(ctx context.Context, id string) error
}
