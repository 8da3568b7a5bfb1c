package client

import (
	"context"
	"net/http"

	"github.com/atelierhq/atelier/internal/domain/activity"
	"github.com/atelierhq/atelier/internal/domain/invite"
)

// InviteClient implements invite.API over the shared transport.
type InviteClient struct {
	c *Client
}

// NewInviteClient creates an invite API client.
func NewInviteClient(c *Client) *InviteClient {
	return &InviteClient{c: c}
}

// ListPending fetches the current user's pending invites, newest first.
func (ic *InviteClient) ListPending(ctx context.Context) ([]invite.Invite, error) {
	var out []invite.Invite
	if err := ic.c.do(ctx, http.MethodGet, "/invites/pending", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create invites a user to the project by email. Owner-only.
func (ic *InviteClient) Create(ctx context.Context, projectID string, req invite.CreateRequest) (*invite.Invite, error) {
	var out invite.Invite
	if err := ic.c.do(ctx, http.MethodPost, "/projects/"+projectID+"/invites", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Accept resolves the invite as accepted.
func (ic *InviteClient) Accept(ctx context.Context, id string) (*invite.Invite, error) {
	var out invite.Invite
	if err := ic.c.do(ctx, http.MethodPost, "/invites/"+id+"/accept", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Decline resolves the invite as declined.
func (ic *InviteClient) Decline(ctx context.Context, id string) (*invite.Invite, error) {
	var out invite.Invite
	if err := ic.c.do(ctx, http.MethodPost, "/invites/"+id+"/decline", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ActivityClient implements activity.API over the shared transport.
type ActivityClient struct {
	c *Client
}

// NewActivityClient creates an activity API client.
func NewActivityClient(c *Client) *ActivityClient {
	return &ActivityClient{c: c}
}

// List fetches the project's activity feed, newest first.
func (ac *ActivityClient) List(ctx context.Context, projectID string) ([]activity.Entry, error) {
	var out []activity.Entry
	if err := ac.c.do(ctx, http.MethodGet, "/projects/"+projectID+"/activity", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
