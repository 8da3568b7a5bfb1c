package client

import (
	"context"
	"net/http"

	"github.com/atelierhq/atelier/internal/domain/project"
	"github.com/atelierhq/atelier/internal/domain/user"
)

// ProjectClient implements project.API over the shared transport.
type ProjectClient struct {
	c *Client
}

// NewProjectClient creates a project API client.
func NewProjectClient(c *Client) *ProjectClient {
	return &ProjectClient{c: c}
}

// List fetches the current user's owned, non-archived projects.
func (p *ProjectClient) List(ctx context.Context) ([]project.Project, error) {
	var out []project.Project
	if err := p.c.do(ctx, http.MethodGet, "/projects", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListArchived fetches the current user's owned, archived projects.
func (p *ProjectClient) ListArchived(ctx context.Context) ([]project.Project, error) {
	var out []project.Project
	if err := p.c.do(ctx, http.MethodGet, "/projects?archived=true", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListShared fetches projects shared with the current user.
func (p *ProjectClient) ListShared(ctx context.Context) ([]project.Project, error) {
	var out []project.Project
	if err := p.c.do(ctx, http.MethodGet, "/projects/shared-with-me", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create creates a project owned by the current user.
func (p *ProjectClient) Create(ctx context.Context, req project.CreateRequest) (*project.Project, error) {
	var out project.Project
	if err := p.c.do(ctx, http.MethodPost, "/projects", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update applies a partial update and returns the full updated project.
func (p *ProjectClient) Update(ctx context.Context, id string, req project.UpdateRequest) (*project.Project, error) {
	var out project.Project
	if err := p.c.do(ctx, http.MethodPatch, "/projects/"+id, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete destroys the project and cascades to its assets.
func (p *ProjectClient) Delete(ctx context.Context, id string) error {
	return p.c.do(ctx, http.MethodDelete, "/projects/"+id, nil, nil)
}

// Leave removes the current user from the project's collaborators.
func (p *ProjectClient) Leave(ctx context.Context, id string) error {
	return p.c.do(ctx, http.MethodPost, "/projects/"+id+"/leave", nil, nil)
}

// Participants lists the project's collaborators. Owner-only.
func (p *ProjectClient) Participants(ctx context.Context, id string) ([]user.User, error) {
	var out []user.User
	if err := p.c.do(ctx, http.MethodGet, "/projects/"+id+"/participants", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// RemoveParticipant revokes a collaborator's membership. Owner-only.
func (p *ProjectClient) RemoveParticipant(ctx context.Context, projectID, userID string) error {
	return p.c.do(ctx, http.MethodDelete, "/projects/"+projectID+"/participants/"+userID, nil, nil)
}
