// Package mocks provides testify mocks for the collaborator API interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/atelierhq/atelier/internal/domain/activity"
	"github.com/atelierhq/atelier/internal/domain/asset"
	"github.com/atelierhq/atelier/internal/domain/comment"
	"github.com/atelierhq/atelier/internal/domain/invite"
	"github.com/atelierhq/atelier/internal/domain/project"
	"github.com/atelierhq/atelier/internal/domain/user"
)

// ProjectAPI is a mock for project.API.
type ProjectAPI struct {
	mock.Mock
}

func (m *ProjectAPI) List(ctx context.Context) ([]project.Project, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]project.Project); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectAPI) ListArchived(ctx context.Context) ([]project.Project, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]project.Project); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectAPI) ListShared(ctx context.Context) ([]project.Project, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]project.Project); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectAPI) Create(ctx context.Context, req project.CreateRequest) (*project.Project, error) {
	args := m.Called(ctx, req)
	if proj, ok := args.Get(0).(*project.Project); ok {
		return proj, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectAPI) Update(ctx context.Context, id string, req project.UpdateRequest) (*project.Project, error) {
	args := m.Called(ctx, id, req)
	if proj, ok := args.Get(0).(*project.Project); ok {
		return proj, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectAPI) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *ProjectAPI) Leave(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *ProjectAPI) Participants(ctx context.Context, id string) ([]user.User, error) {
	args := m.Called(ctx, id)
	if list, ok := args.Get(0).([]user.User); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectAPI) RemoveParticipant(ctx context.Context, projectID, userID string) error {
	args := m.Called(ctx, projectID, userID)
	return args.Error(0)
}

// AssetAPI is a mock for asset.API.
type AssetAPI struct {
	mock.Mock
}

func (m *AssetAPI) List(ctx context.Context, projectID string) ([]asset.Asset, error) {
	args := m.Called(ctx, projectID)
	if list, ok := args.Get(0).([]asset.Asset); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *AssetAPI) Upload(ctx context.Context, projectID string, req asset.UploadRequest) (*asset.Asset, error) {
	args := m.Called(ctx, projectID, req)
	if a, ok := args.Get(0).(*asset.Asset); ok {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *AssetAPI) Delete(ctx context.Context, projectID, assetID string) error {
	args := m.Called(ctx, projectID, assetID)
	return args.Error(0)
}

func (m *AssetAPI) UpdateStatus(ctx context.Context, projectID, assetID string, status asset.Status) (*asset.Asset, error) {
	args := m.Called(ctx, projectID, assetID, status)
	if a, ok := args.Get(0).(*asset.Asset); ok {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}

// CommentAPI is a mock for comment.API.
type CommentAPI struct {
	mock.Mock
}

func (m *CommentAPI) List(ctx context.Context, assetID string) ([]comment.Comment, error) {
	args := m.Called(ctx, assetID)
	if list, ok := args.Get(0).([]comment.Comment); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CommentAPI) Create(ctx context.Context, assetID string, req comment.CreateRequest) (*comment.Comment, error) {
	args := m.Called(ctx, assetID, req)
	if c, ok := args.Get(0).(*comment.Comment); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CommentAPI) Delete(ctx context.Context, assetID, commentID string) error {
	args := m.Called(ctx, assetID, commentID)
	return args.Error(0)
}

func (m *CommentAPI) ToggleReaction(ctx context.Context, assetID, commentID, emoji string) (*comment.Comment, error) {
	args := m.Called(ctx, assetID, commentID, emoji)
	if c, ok := args.Get(0).(*comment.Comment); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

// InviteAPI is a mock for invite.API.
type InviteAPI struct {
	mock.Mock
}

func (m *InviteAPI) ListPending(ctx context.Context) ([]invite.Invite, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]invite.Invite); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *InviteAPI) Create(ctx context.Context, projectID string, req invite.CreateRequest) (*invite.Invite, error) {
	args := m.Called(ctx, projectID, req)
	if inv, ok := args.Get(0).(*invite.Invite); ok {
		return inv, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *InviteAPI) Accept(ctx context.Context, id string) (*invite.Invite, error) {
	args := m.Called(ctx, id)
	if inv, ok := args.Get(0).(*invite.Invite); ok {
		return inv, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *InviteAPI) Decline(ctx context.Context, id string) (*invite.Invite, error) {
	args := m.Called(ctx, id)
	if inv, ok := args.Get(0).(*invite.Invite); ok {
		return inv, args.Error(1)
	}
	return nil, args.Error(1)
}

// ActivityAPI is a mock for activity.API.
type ActivityAPI struct {
	mock.Mock
}

func (m *ActivityAPI) List(ctx context.Context, projectID string) ([]activity.Entry, error) {
	args := m.Called(ctx, projectID)
	if list, ok := args.Get(0).([]activity.Entry); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// SuggestionAPI is a mock for the AI-suggestion collaborator.
type SuggestionAPI struct {
	mock.Mock
}

func (m *SuggestionAPI) Suggestions(ctx context.Context, assetID string) ([]string, error) {
	args := m.Called(ctx, assetID)
	if list, ok := args.Get(0).([]string); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}
