package taskapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"tdo/internal/service"
)

// taskDTO is the wire shape of a task. The backend reported "id" in some
// iterations and "_id" in others; both are accepted.
type taskDTO struct {
	ID          string `json:"id"`
	AltID       string `json:"_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    int    `json:"priority"`
	DueDate     string `json:"dueDate"`
	Completed   bool   `json:"completed"`
	ProjectID   string `json:"projectId"`
}

// normalize unifies the identifier field and strips the zero-ObjectID
// project sentinel.
func (d taskDTO) normalize() service.Task {
	id := d.ID
	if id == "" {
		id = d.AltID
	}
	projectID := d.ProjectID
	if projectID == zeroProjectID {
		projectID = ""
	}
	return service.Task{
		ID:          id,
		Title:       d.Title,
		Description: d.Description,
		Priority:    d.Priority,
		DueDate:     d.DueDate,
		Completed:   d.Completed,
		ProjectID:   projectID,
	}
}

// ListTasks implements service.Service.
// InboxOnly overrides ProjectID: when both are set, only the inbox
// parameter is sent.
func (c *Client) ListTasks(ctx context.Context, filter service.TaskFilter) ([]service.Task, error) {
	q := url.Values{}
	if filter.InboxOnly {
		q.Set("inbox", "true")
	} else if filter.ProjectID != "" {
		q.Set("projectId", filter.ProjectID)
	}
	if filter.Completed != nil {
		q.Set("completed", strconv.FormatBool(*filter.Completed))
	}

	status, body, err := c.do(ctx, http.MethodGet, "/tasks", q, nil)
	if err != nil {
		return nil, err
	}
	if !isSuccess(status) {
		return nil, apiError(status, body, "failed to fetch tasks")
	}

	items, err := decodeCollection(body, "tasks")
	if err != nil {
		return nil, err
	}

	var dtos []taskDTO
	if err := json.Unmarshal(items, &dtos); err != nil {
		return nil, &service.ValidationError{Reason: "malformed task in response"}
	}

	tasks := make([]service.Task, len(dtos))
	for i, d := range dtos {
		tasks[i] = d.normalize()
	}
	return tasks, nil
}

// CreateTask implements service.Service.
func (c *Client) CreateTask(ctx context.Context, payload service.TaskPayload) (service.Task, error) {
	if strings.TrimSpace(payload.Title) == "" {
		return service.Task{}, &service.ValidationError{Field: "title", Reason: "required"}
	}

	priority := payload.Priority
	if priority == 0 {
		priority = service.DefaultPriority
	}

	body := map[string]any{
		"title":    payload.Title,
		"priority": priority,
	}
	if payload.Description != "" {
		body["description"] = payload.Description
	}
	if payload.DueDate != "" {
		body["dueDate"] = payload.DueDate
	}
	if payload.ProjectID != "" {
		body["projectId"] = payload.ProjectID
	}

	status, data, err := c.do(ctx, http.MethodPost, "/tasks", nil, body)
	if err != nil {
		return service.Task{}, err
	}
	if !isSuccess(status) {
		return service.Task{}, apiError(status, data, "failed to create task")
	}

	return decodeTask(data)
}

// UpdateTask implements service.Service. Only non-nil patch fields are
// sent.
func (c *Client) UpdateTask(ctx context.Context, id string, patch service.TaskPatch) (service.Task, error) {
	body := map[string]any{}
	if patch.Title != nil {
		body["title"] = *patch.Title
	}
	if patch.Description != nil {
		body["description"] = *patch.Description
	}
	if patch.Completed != nil {
		body["completed"] = *patch.Completed
	}
	if patch.ProjectID != nil {
		body["projectId"] = *patch.ProjectID
	}
	if patch.Priority != nil {
		body["priority"] = *patch.Priority
	}
	if patch.DueDate != nil {
		body["dueDate"] = *patch.DueDate
	}

	status, data, err := c.do(ctx, http.MethodPut, "/tasks/"+url.PathEscape(id), nil, body)
	if err != nil {
		return service.Task{}, err
	}
	if !isSuccess(status) {
		return service.Task{}, apiError(status, data, "failed to update task")
	}

	return decodeTask(data)
}

// DeleteTask implements service.Service.
func (c *Client) DeleteTask(ctx context.Context, id string) error {
	status, data, err := c.do(ctx, http.MethodDelete, "/tasks/"+url.PathEscape(id), nil, nil)
	if err != nil {
		return err
	}
	if !isSuccess(status) {
		return apiError(status, data, "failed to delete task")
	}
	return nil
}

func decodeTask(body []byte) (service.Task, error) {
	obj, err := decodeObject(body, "task")
	if err != nil {
		return service.Task{}, err
	}
	var dto taskDTO
	if err := json.Unmarshal(obj, &dto); err != nil {
		return service.Task{}, &service.ValidationError{Reason: "malformed task in response"}
	}
	return dto.normalize(), nil
}
