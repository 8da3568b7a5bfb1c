// Package store defines the persistence interfaces behind the reference
// collaborator service, implemented by the sqlite package.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/atelierhq/atelier/internal/domain/activity"
	"github.com/atelierhq/atelier/internal/domain/asset"
	"github.com/atelierhq/atelier/internal/domain/comment"
	"github.com/atelierhq/atelier/internal/domain/invite"
	"github.com/atelierhq/atelier/internal/domain/project"
	"github.com/atelierhq/atelier/internal/domain/user"
)

var (
	// ErrNotFound is returned when a requested entity doesn't exist
	ErrNotFound = errors.New("not found")

	// ErrDuplicate is returned when a uniqueness constraint fails
	ErrDuplicate = errors.New("already exists")
)

// UserStore manages accounts and their bearer tokens.
type UserStore interface {
	Create(ctx context.Context, u *user.User) error
	GetByID(ctx context.Context, id string) (*user.User, error)
	GetByEmail(ctx context.Context, email string) (*user.User, error)
	AddToken(ctx context.Context, tokenHash, userID string) error
	ResolveToken(ctx context.Context, tokenHash string) (*user.User, error)
}

// ProjectStore manages projects and their collaborator memberships.
// Delete cascades to assets, comments, reactions, invites and activity.
type ProjectStore interface {
	Create(ctx context.Context, p *project.Project) error
	Get(ctx context.Context, id string) (*project.Project, error)
	Update(ctx context.Context, p *project.Project) error
	Delete(ctx context.Context, id string) error
	ListOwned(ctx context.Context, ownerID string, archived bool) ([]project.Project, error)
	ListShared(ctx context.Context, userID string) ([]project.Project, error)
	AddParticipant(ctx context.Context, projectID, userID string) error
	RemoveParticipant(ctx context.Context, projectID, userID string) (bool, error)
	IsParticipant(ctx context.Context, projectID, userID string) (bool, error)
	ListParticipants(ctx context.Context, projectID string) ([]user.User, error)
}

// AssetStore manages uploaded assets. Create assigns the next per-project
// version number; Delete cascades to comments and reactions.
type AssetStore interface {
	Create(ctx context.Context, a *asset.Asset) error
	Get(ctx context.Context, id string) (*asset.Asset, error)
	ListByProject(ctx context.Context, projectID string) ([]asset.Asset, error)
	UpdateStatus(ctx context.Context, id string, status asset.Status) error
	Delete(ctx context.Context, id string) error
}

// CommentStore manages comments and their reactions. Reads hydrate the
// author and the full reaction set.
type CommentStore interface {
	Create(ctx context.Context, c *comment.Comment) error
	Get(ctx context.Context, id string) (*comment.Comment, error)
	ListByAsset(ctx context.Context, assetID string) ([]comment.Comment, error)
	Delete(ctx context.Context, id string) error
	ToggleReaction(ctx context.Context, commentID, userID, emoji string) error
}

// InviteStore manages project invites.
type InviteStore interface {
	Create(ctx context.Context, inv *invite.Invite) error
	Get(ctx context.Context, id string) (*invite.Invite, error)
	ListPendingByEmail(ctx context.Context, email string) ([]invite.Invite, error)
	HasPending(ctx context.Context, projectID, email string) (bool, error)
	SetStatus(ctx context.Context, id string, status invite.Status, respondedAt time.Time) error
}

// ActivityStore manages the per-project activity feed.
type ActivityStore interface {
	Log(ctx context.Context, e *activity.Entry) error
	ListByProject(ctx context.Context, projectID string) ([]activity.Entry, error)
}
