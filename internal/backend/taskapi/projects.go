package taskapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"tdo/internal/service"
)

// projectDTO is the wire shape of a project.
type projectDTO struct {
	ID       string `json:"id"`
	AltID    string `json:"_id"`
	Name     string `json:"name"`
	IsSystem bool   `json:"isSystem"`
	UserID   string `json:"userId"`
}

func (d projectDTO) normalize() service.Project {
	id := d.ID
	if id == "" {
		id = d.AltID
	}
	return service.Project{
		ID:       id,
		Name:     d.Name,
		IsSystem: d.IsSystem,
		UserID:   d.UserID,
	}
}

// ListProjects implements service.Service.
func (c *Client) ListProjects(ctx context.Context) ([]service.Project, error) {
	status, body, err := c.do(ctx, http.MethodGet, "/projects", nil, nil)
	if err != nil {
		return nil, err
	}
	if !isSuccess(status) {
		return nil, apiError(status, body, "failed to fetch projects")
	}

	items, err := decodeCollection(body, "projects")
	if err != nil {
		return nil, err
	}

	var dtos []projectDTO
	if err := json.Unmarshal(items, &dtos); err != nil {
		return nil, &service.ValidationError{Reason: "malformed project in response"}
	}

	projects := make([]service.Project, len(dtos))
	for i, d := range dtos {
		projects[i] = d.normalize()
	}
	return projects, nil
}

// CreateProject implements service.Service.
func (c *Client) CreateProject(ctx context.Context, payload service.ProjectPayload) (service.Project, error) {
	if strings.TrimSpace(payload.Name) == "" {
		return service.Project{}, &service.ValidationError{Field: "name", Reason: "required"}
	}

	body := map[string]any{"name": payload.Name}
	if payload.Description != "" {
		body["description"] = payload.Description
	}
	if payload.IsSystem {
		body["isSystem"] = true
	}

	status, data, err := c.do(ctx, http.MethodPost, "/projects", nil, body)
	if err != nil {
		return service.Project{}, err
	}
	if !isSuccess(status) {
		return service.Project{}, apiError(status, data, "failed to create project")
	}

	obj, err := decodeObject(data, "project")
	if err != nil {
		return service.Project{}, err
	}
	var dto projectDTO
	if err := json.Unmarshal(obj, &dto); err != nil {
		return service.Project{}, &service.ValidationError{Reason: "malformed project in response"}
	}
	return dto.normalize(), nil
}

// DeleteProject implements service.Service. Cascading deletion of the
// project's tasks is the server's concern.
func (c *Client) DeleteProject(ctx context.Context, id string) error {
	status, data, err := c.do(ctx, http.MethodDelete, "/projects/"+url.PathEscape(id), nil, nil)
	if err != nil {
		return err
	}
	if !isSuccess(status) {
		return apiError(status, data, "failed to delete project")
	}
	return nil
}
