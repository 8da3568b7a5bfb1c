// Package workspace holds the client-side collaboration state: the three
// partitioned project collections, per-project asset caches, the open asset
// viewer and the pending-invite set. Every mutation goes through the
// collaborator API first; the response is applied to local state atomically,
// so a failed request leaves everything at its last-known-good value.
package workspace

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/atelierhq/atelier/internal/api"
	"github.com/atelierhq/atelier/internal/domain/activity"
	"github.com/atelierhq/atelier/internal/domain/asset"
	"github.com/atelierhq/atelier/internal/domain/comment"
	"github.com/atelierhq/atelier/internal/domain/invite"
	"github.com/atelierhq/atelier/internal/domain/project"
	"github.com/atelierhq/atelier/internal/domain/user"
)

// SuggestionAPI is the opaque AI-suggestion collaborator: a list of strings
// per asset, nothing more.
type SuggestionAPI interface {
	Suggestions(ctx context.Context, assetID string) ([]string, error)
}

// Services bundles the domain services the workspace drives.
type Services struct {
	Projects    *project.Service
	Assets      *asset.Service
	Comments    *comment.Service
	Invites     *invite.Service
	Activity    *activity.Service
	Suggestions SuggestionAPI
}

// Workspace is the single owner of all client-side collaboration state.
// Safe for concurrent use; network calls run outside the lock and their
// results are applied under it.
type Workspace struct {
	mu sync.Mutex

	current user.User
	svc     Services
	logger  *slog.Logger

	projects *project.Reconciler
	assets   map[string][]asset.Asset
	invites  []invite.Invite
	viewer   viewerState
}

// viewerState is the state of the open asset viewer. Cleared as one unit
// whenever the viewer closes.
type viewerState struct {
	active          *asset.Asset
	comments        []comment.Comment
	replyTo         *string
	suggestions     []string
	showSuggestions bool
}

// New creates a workspace for the given identity.
func New(current user.User, svc Services, logger *slog.Logger) *Workspace {
	if logger == nil {
		logger = slog.Default()
	}
	return &Workspace{
		current:  current,
		svc:      svc,
		logger:   logger,
		projects: project.NewReconciler(),
		assets:   make(map[string][]asset.Asset),
	}
}

// CurrentUser returns the identity the workspace acts as.
func (w *Workspace) CurrentUser() user.User {
	return w.current
}

// RefreshProjects refetches the three project lists and resets the
// reconciler to the server snapshots.
func (w *Workspace) RefreshProjects(ctx context.Context) error {
	lists, err := w.svc.Projects.LoadAll(ctx)
	if err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.projects.Reset(lists.OwnedActive, lists.OwnedArchived, lists.Shared)
	return nil
}

// Projects returns copies of the three partitioned collections.
func (w *Workspace) Projects() (ownedActive, ownedArchived, shared []project.Project) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.projects.OwnedActive(), w.projects.OwnedArchived(), w.projects.Shared()
}

// CreateProject creates a project and front-inserts it into owned-active.
func (w *Workspace) CreateProject(ctx context.Context, name, description string, deadline *time.Time) (*project.Project, error) {
	proj, err := w.svc.Projects.Create(ctx, name, description, deadline)
	if err != nil {
		return nil, err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.projects.Create(*proj)
	return proj, nil
}

// RenameProject renames a project and applies the updated snapshot.
func (w *Workspace) RenameProject(ctx context.Context, id, name string) (*project.Project, error) {
	proj, err := w.svc.Projects.Rename(ctx, id, name)
	if err != nil {
		w.reconcileNotFound(id, err)
		return nil, err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.projects.ApplyUpdate(*proj)
	return proj, nil
}

// SetProjectArchived toggles a project's archive flag; the reconciler moves
// it between the owned partitions based on the response snapshot.
func (w *Workspace) SetProjectArchived(ctx context.Context, id string, archived bool) (*project.Project, error) {
	proj, err := w.svc.Projects.SetArchived(ctx, id, archived)
	if err != nil {
		w.reconcileNotFound(id, err)
		return nil, err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.projects.ApplyUpdate(*proj)
	return proj, nil
}

// SetProjectDeadline updates a project's deadline.
func (w *Workspace) SetProjectDeadline(ctx context.Context, id string, deadline *time.Time) (*project.Project, error) {
	proj, err := w.svc.Projects.SetDeadline(ctx, id, deadline)
	if err != nil {
		w.reconcileNotFound(id, err)
		return nil, err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.projects.ApplyUpdate(*proj)
	return proj, nil
}

// DeleteProject deletes a project and drops all dependent local state: its
// partition entry, its asset cache, and the viewer if it shows one of its
// assets.
func (w *Workspace) DeleteProject(ctx context.Context, id string) error {
	// Deleting a project another actor already deleted still converges on
	// the right local state, so NotFound is treated as success.
	err := w.svc.Projects.Delete(ctx, id)
	if err != nil && !errors.Is(err, api.ErrNotFound) {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.dropProjectLocked(id)
	return nil
}

// LeaveProject relinquishes collaborator access to a shared project. Local
// cleanup matches DeleteProject but only the shared collection is touched.
func (w *Workspace) LeaveProject(ctx context.Context, id string) error {
	err := w.svc.Projects.Leave(ctx, id)
	if err != nil && !errors.Is(err, api.ErrNotFound) {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.projects.Leave(id)
	delete(w.assets, id)
	if w.viewer.active != nil && w.viewer.active.ProjectID == id {
		w.viewer = viewerState{}
	}
	return nil
}

// ProjectParticipants lists an owned project's collaborators. No local
// state is kept for the roster; the server list is authoritative.
func (w *Workspace) ProjectParticipants(ctx context.Context, id string) ([]user.User, error) {
	return w.svc.Projects.Participants(ctx, id)
}

// RemoveCollaborator revokes a collaborator's access to an owned project.
// A participant already gone server-side counts as removed.
func (w *Workspace) RemoveCollaborator(ctx context.Context, projectID, userID string) error {
	err := w.svc.Projects.RemoveParticipant(ctx, projectID, userID)
	if err != nil && !errors.Is(err, api.ErrNotFound) {
		return err
	}
	return nil
}

// reconcileNotFound drops a project that another actor deleted while we
// were mutating it.
func (w *Workspace) reconcileNotFound(id string, err error) {
	if !errors.Is(err, api.ErrNotFound) {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.dropProjectLocked(id)
}

func (w *Workspace) dropProjectLocked(id string) {
	w.projects.Remove(id)
	delete(w.assets, id)
	if w.viewer.active != nil && w.viewer.active.ProjectID == id {
		w.viewer = viewerState{}
	}
}
