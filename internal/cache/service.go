package cache

import (
	"context"
	"time"

	"tdo/internal/service"
)

// CachingService wraps a service.Service with the query cache. Reads go
// through the stores; mutations pass straight to the backend and then
// invalidate every query shape they could affect. Commands stay
// cache-oblivious.
type CachingService struct {
	svc      service.Service
	tasks    *Store[[]service.Task]
	projects *Store[[]service.Project]
}

var _ service.Service = (*CachingService)(nil)

// Wrap decorates svc with caching at the default TTL.
func Wrap(svc service.Service) *CachingService {
	return WrapTTL(svc, DefaultTTL)
}

// WrapTTL decorates svc with caching at an explicit TTL.
func WrapTTL(svc service.Service, ttl time.Duration) *CachingService {
	return &CachingService{
		svc:      svc,
		tasks:    NewStore[[]service.Task](ttl),
		projects: NewStore[[]service.Project](ttl),
	}
}

// ListTasks implements service.Service.
func (c *CachingService) ListTasks(ctx context.Context, filter service.TaskFilter) ([]service.Task, error) {
	return c.tasks.Query(ctx, TasksKey(filter), func(ctx context.Context) ([]service.Task, error) {
		return c.svc.ListTasks(ctx, filter)
	})
}

// ListProjects implements service.Service.
func (c *CachingService) ListProjects(ctx context.Context) ([]service.Project, error) {
	return c.projects.Query(ctx, ProjectsKey(), func(ctx context.Context) ([]service.Project, error) {
		return c.svc.ListProjects(ctx)
	})
}

// CreateTask implements service.Service.
// The fan-out deliberately over-invalidates: a task created without a
// project must go stale under both the inbox-only key and any
// no-project-filter key, since a view may be subscribed under either
// shape. Under-invalidating produces stale UI; over-invalidating only
// costs an extra fetch.
func (c *CachingService) CreateTask(ctx context.Context, payload service.TaskPayload) (service.Task, error) {
	task, err := c.svc.CreateTask(ctx, payload)
	if err != nil {
		return service.Task{}, err
	}
	c.invalidateTasksFor(payload.ProjectID)
	return task, nil
}

// UpdateTask implements service.Service.
// A patch can change completion or move the task between projects, so
// every task query shape goes stale.
func (c *CachingService) UpdateTask(ctx context.Context, id string, patch service.TaskPatch) (service.Task, error) {
	task, err := c.svc.UpdateTask(ctx, id, patch)
	if err != nil {
		return service.Task{}, err
	}
	c.tasks.Invalidate(Pattern{Resource: ResourceTasks})
	return task, nil
}

// DeleteTask implements service.Service.
func (c *CachingService) DeleteTask(ctx context.Context, id string) error {
	if err := c.svc.DeleteTask(ctx, id); err != nil {
		return err
	}
	c.tasks.Invalidate(Pattern{Resource: ResourceTasks})
	return nil
}

// CreateProject implements service.Service.
func (c *CachingService) CreateProject(ctx context.Context, payload service.ProjectPayload) (service.Project, error) {
	project, err := c.svc.CreateProject(ctx, payload)
	if err != nil {
		return service.Project{}, err
	}
	c.projects.Invalidate(Pattern{Resource: ResourceProjects})
	return project, nil
}

// DeleteProject implements service.Service.
// Task entries go stale too: the server may cascade-delete the project's
// tasks, and surviving tasks with a dangling projectId normalize to the
// inbox.
func (c *CachingService) DeleteProject(ctx context.Context, id string) error {
	if err := c.svc.DeleteProject(ctx, id); err != nil {
		return err
	}
	c.projects.Invalidate(Pattern{Resource: ResourceProjects})
	c.tasks.Invalidate(Pattern{Resource: ResourceTasks})
	return nil
}

// invalidateTasksFor marks the task query shapes affected by a create in
// the given project. An empty projectID is an inbox task: both the
// inbox-scoped and the no-project-filter shapes are affected. A filed
// task also affects unfiltered views, which include every project.
func (c *CachingService) invalidateTasksFor(projectID string) {
	if projectID == "" {
		inbox := true
		c.tasks.Invalidate(Pattern{Resource: ResourceTasks, Inbox: &inbox})
		c.tasks.Invalidate(Pattern{Resource: ResourceTasks, ProjectID: &projectID})
		return
	}
	none := ""
	c.tasks.Invalidate(Pattern{Resource: ResourceTasks, ProjectID: &projectID})
	c.tasks.Invalidate(Pattern{Resource: ResourceTasks, ProjectID: &none})
}
