package workspace

import (
	"context"
	"errors"

	"github.com/atelierhq/atelier/internal/api"
	"github.com/atelierhq/atelier/internal/domain/activity"
	"github.com/atelierhq/atelier/internal/domain/invite"
)

// RefreshInvites refetches the pending-invite set for the current user.
func (w *Workspace) RefreshInvites(ctx context.Context) error {
	invites, err := w.svc.Invites.Pending(ctx)
	if err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.invites = invites
	return nil
}

// PendingInvites returns the cached pending invites.
func (w *Workspace) PendingInvites() []invite.Invite {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]invite.Invite, len(w.invites))
	copy(out, w.invites)
	return out
}

// InviteCollaborator sends a project invite by email.
func (w *Workspace) InviteCollaborator(ctx context.Context, projectID, email string) (*invite.Invite, error) {
	return w.svc.Invites.Send(ctx, projectID, email)
}

// AcceptInvite accepts a pending invite. The invite leaves the pending set
// and the project lists are refetched: accepting introduces a shared
// project whose attributes the invite record doesn't carry, so local state
// is invalidated rather than spliced. An invite the server no longer knows
// converges the same way deleted projects do: drop it locally and refetch.
func (w *Workspace) AcceptInvite(ctx context.Context, id string) error {
	_, err := w.svc.Invites.Accept(ctx, id)
	if err != nil && !errors.Is(err, api.ErrNotFound) {
		return err
	}

	w.removePendingInvite(id)
	return w.RefreshProjects(ctx)
}

// DeclineInvite declines a pending invite and removes it from the pending
// set. Declining changes nothing else locally, but upstream data may have
// moved while the bell was open, so the project lists refetch here too.
func (w *Workspace) DeclineInvite(ctx context.Context, id string) error {
	_, err := w.svc.Invites.Decline(ctx, id)
	if err != nil && !errors.Is(err, api.ErrNotFound) {
		return err
	}

	w.removePendingInvite(id)
	return w.RefreshProjects(ctx)
}

func (w *Workspace) removePendingInvite(id string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for i := range w.invites {
		if w.invites[i].ID == id {
			w.invites = append(w.invites[:i], w.invites[i+1:]...)
			return
		}
	}
}

// ProjectActivity fetches the read-only activity feed for a project.
func (w *Workspace) ProjectActivity(ctx context.Context, projectID string) ([]activity.Entry, error) {
	return w.svc.Activity.List(ctx, projectID)
}
