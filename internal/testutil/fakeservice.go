// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"tdo/internal/service"
)

// FakeService is an in-memory implementation of service.Service for
// testing. It mirrors the backend's filter semantics: the inbox filter
// overrides the project filter, and inbox tasks are those with no
// project (or the designated inbox project, when one is set).
type FakeService struct {
	mu       sync.RWMutex
	projects []service.Project
	tasks    []service.Task
	inboxID  string
	nextID   int

	// Calls counts invocations per operation name, for cache tests.
	Calls map[string]int

	// Error injection for testing
	ListTasksErr     error
	CreateTaskErr    error
	UpdateTaskErr    error
	DeleteTaskErr    error
	ListProjectsErr  error
	CreateProjectErr error
	DeleteProjectErr error
}

// NewFakeService creates an empty FakeService.
func NewFakeService() *FakeService {
	return &FakeService{Calls: make(map[string]int)}
}

// AddProject seeds a project.
func (f *FakeService) AddProject(id, name string, isSystem bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.projects = append(f.projects, service.Project{ID: id, Name: name, IsSystem: isSystem})
}

// SetInbox designates the project the backend's inbox filter targets.
func (f *FakeService) SetInbox(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inboxID = id
}

// AddTask seeds a task. An empty projectID means an unfiled inbox task.
func (f *FakeService) AddTask(id, title, projectID string, completed bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks = append(f.tasks, service.Task{
		ID:        id,
		Title:     title,
		Priority:  service.DefaultPriority,
		ProjectID: projectID,
		Completed: completed,
	})
}

func (f *FakeService) count(op string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls[op]++
}

// ListTasks implements service.Service.
func (f *FakeService) ListTasks(ctx context.Context, filter service.TaskFilter) ([]service.Task, error) {
	f.count("ListTasks")
	if f.ListTasksErr != nil {
		return nil, f.ListTasksErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()

	var result []service.Task
	for _, t := range f.tasks {
		if filter.InboxOnly {
			if !f.isInboxTask(t) {
				continue
			}
		} else if filter.ProjectID != "" && t.ProjectID != filter.ProjectID {
			continue
		}
		if filter.Completed != nil && t.Completed != *filter.Completed {
			continue
		}
		result = append(result, t)
	}
	return result, nil
}

func (f *FakeService) isInboxTask(t service.Task) bool {
	if t.ProjectID == "" {
		return true
	}
	return f.inboxID != "" && t.ProjectID == f.inboxID
}

// CreateTask implements service.Service.
func (f *FakeService) CreateTask(ctx context.Context, payload service.TaskPayload) (service.Task, error) {
	f.count("CreateTask")
	if f.CreateTaskErr != nil {
		return service.Task{}, f.CreateTaskErr
	}
	if strings.TrimSpace(payload.Title) == "" {
		return service.Task{}, &service.ValidationError{Field: "title", Reason: "required"}
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	priority := payload.Priority
	if priority == 0 {
		priority = service.DefaultPriority
	}

	f.nextID++
	task := service.Task{
		ID:          fmt.Sprintf("task-%d", f.nextID),
		Title:       payload.Title,
		Description: payload.Description,
		DueDate:     payload.DueDate,
		Priority:    priority,
		ProjectID:   payload.ProjectID,
	}
	f.tasks = append(f.tasks, task)
	return task, nil
}

// UpdateTask implements service.Service.
func (f *FakeService) UpdateTask(ctx context.Context, id string, patch service.TaskPatch) (service.Task, error) {
	f.count("UpdateTask")
	if f.UpdateTaskErr != nil {
		return service.Task{}, f.UpdateTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, t := range f.tasks {
		if t.ID != id {
			continue
		}
		if patch.Title != nil {
			t.Title = *patch.Title
		}
		if patch.Description != nil {
			t.Description = *patch.Description
		}
		if patch.Completed != nil {
			t.Completed = *patch.Completed
		}
		if patch.ProjectID != nil {
			t.ProjectID = *patch.ProjectID
		}
		if patch.Priority != nil {
			t.Priority = *patch.Priority
		}
		if patch.DueDate != nil {
			t.DueDate = *patch.DueDate
		}
		f.tasks[i] = t
		return t, nil
	}
	return service.Task{}, &service.APIError{StatusCode: 404, Message: "task not found"}
}

// DeleteTask implements service.Service.
func (f *FakeService) DeleteTask(ctx context.Context, id string) error {
	f.count("DeleteTask")
	if f.DeleteTaskErr != nil {
		return f.DeleteTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, t := range f.tasks {
		if t.ID == id {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return nil
		}
	}
	return &service.APIError{StatusCode: 404, Message: "task not found"}
}

// ListProjects implements service.Service.
func (f *FakeService) ListProjects(ctx context.Context) ([]service.Project, error) {
	f.count("ListProjects")
	if f.ListProjectsErr != nil {
		return nil, f.ListProjectsErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()

	result := make([]service.Project, len(f.projects))
	copy(result, f.projects)
	return result, nil
}

// CreateProject implements service.Service.
func (f *FakeService) CreateProject(ctx context.Context, payload service.ProjectPayload) (service.Project, error) {
	f.count("CreateProject")
	if f.CreateProjectErr != nil {
		return service.Project{}, f.CreateProjectErr
	}
	if strings.TrimSpace(payload.Name) == "" {
		return service.Project{}, &service.ValidationError{Field: "name", Reason: "required"}
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	id := strings.ToLower(strings.ReplaceAll(payload.Name, " ", "-"))
	project := service.Project{ID: id, Name: payload.Name, IsSystem: payload.IsSystem}
	f.projects = append(f.projects, project)
	return project, nil
}

// DeleteProject implements service.Service. Tasks of the deleted project
// are left dangling, like a backend without cascade.
func (f *FakeService) DeleteProject(ctx context.Context, id string) error {
	f.count("DeleteProject")
	if f.DeleteProjectErr != nil {
		return f.DeleteProjectErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, p := range f.projects {
		if p.ID == id {
			f.projects = append(f.projects[:i], f.projects[i+1:]...)
			return nil
		}
	}
	return &service.APIError{StatusCode: 404, Message: "project not found"}
}
