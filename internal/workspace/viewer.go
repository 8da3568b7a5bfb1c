package workspace

import (
	"context"
	"errors"

	"github.com/atelierhq/atelier/internal/api"
	"github.com/atelierhq/atelier/internal/domain/asset"
	"github.com/atelierhq/atelier/internal/domain/comment"
)

// LoadAssets fetches and caches the project's asset list.
func (w *Workspace) LoadAssets(ctx context.Context, projectID string) ([]asset.Asset, error) {
	assets, err := w.svc.Assets.List(ctx, projectID)
	if err != nil {
		return nil, err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.assets[projectID] = assets
	return cloneAssets(assets), nil
}

// Assets returns the cached asset list for the project.
func (w *Workspace) Assets(projectID string) []asset.Asset {
	w.mu.Lock()
	defer w.mu.Unlock()
	return cloneAssets(w.assets[projectID])
}

// UploadAsset registers a new asset and front-inserts it into the project's
// cached list.
func (w *Workspace) UploadAsset(ctx context.Context, projectID, originalFilename string) (*asset.Asset, error) {
	a, err := w.svc.Assets.Upload(ctx, projectID, originalFilename)
	if err != nil {
		return nil, err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.assets[projectID] = append([]asset.Asset{*a}, w.assets[projectID]...)
	return a, nil
}

// DeleteAsset deletes an asset. If the viewer shows it, the viewer and all
// its dependent state (comments, reply target, suggestion panel) are
// cleared as one unit.
func (w *Workspace) DeleteAsset(ctx context.Context, projectID, assetID string) error {
	err := w.svc.Assets.Delete(ctx, projectID, assetID)
	if err != nil && !errors.Is(err, api.ErrNotFound) {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.removeAssetLocked(projectID, assetID)
	return nil
}

// SetAssetStatus transitions an asset's status and replaces the cached
// entry (and the open viewer's copy) with the authoritative snapshot.
func (w *Workspace) SetAssetStatus(ctx context.Context, projectID, assetID string, status asset.Status) (*asset.Asset, error) {
	a, err := w.svc.Assets.SetStatus(ctx, projectID, assetID, status)
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			w.mu.Lock()
			w.removeAssetLocked(projectID, assetID)
			w.mu.Unlock()
		}
		return nil, err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	list := w.assets[projectID]
	for i := range list {
		if list[i].ID == a.ID {
			list[i] = *a
		}
	}
	if w.viewer.active != nil && w.viewer.active.ID == a.ID {
		snapshot := *a
		w.viewer.active = &snapshot
	}
	return a, nil
}

func (w *Workspace) removeAssetLocked(projectID, assetID string) {
	list := w.assets[projectID]
	for i := range list {
		if list[i].ID == assetID {
			w.assets[projectID] = append(list[:i], list[i+1:]...)
			break
		}
	}
	if w.viewer.active != nil && w.viewer.active.ID == assetID {
		w.viewer = viewerState{}
	}
}

// OpenAsset makes the asset the active viewer target and loads its
// comments. Opening a different asset while the fetch is in flight
// supersedes it: a stale response is discarded by comparing the requested
// asset ID against the active one before applying.
func (w *Workspace) OpenAsset(ctx context.Context, a asset.Asset) error {
	w.mu.Lock()
	snapshot := a
	w.viewer = viewerState{active: &snapshot}
	w.mu.Unlock()

	comments, err := w.svc.Comments.List(ctx, a.ID)

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.viewer.active == nil || w.viewer.active.ID != a.ID {
		// Superseded while the fetch was in flight.
		return nil
	}
	if err != nil {
		return err
	}
	w.viewer.comments = comments
	return nil
}

// CloseAsset clears the viewer and its dependent state.
func (w *Workspace) CloseAsset() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.viewer = viewerState{}
}

// ActiveAsset returns the asset open in the viewer, if any.
func (w *Workspace) ActiveAsset() (asset.Asset, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.viewer.active == nil {
		return asset.Asset{}, false
	}
	return *w.viewer.active, true
}

// Comments returns the viewer's flat comment list.
func (w *Workspace) Comments() []comment.Comment {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]comment.Comment, len(w.viewer.comments))
	copy(out, w.viewer.comments)
	return out
}

// CommentTree rebuilds the reply forest from the flat comment list. The
// tree is a projection; the flat list stays the source of truth.
func (w *Workspace) CommentTree() []*comment.Node {
	return comment.BuildTree(w.Comments())
}

// Reactions aggregates a comment's reactions for display.
func (w *Workspace) Reactions(commentID string) map[string]comment.ReactionSummary {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, c := range w.viewer.comments {
		if c.ID == commentID {
			return comment.AggregateReactions(c.Reactions, w.current.ID)
		}
	}
	return nil
}

// SetReplyTarget marks the comment the next AddComment replies to. Nil
// targets the asset itself (a root comment).
func (w *Workspace) SetReplyTarget(commentID *string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.viewer.replyTo = commentID
}

// ReplyTarget returns the pending reply target, if any.
func (w *Workspace) ReplyTarget() *string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.viewer.replyTo
}

// AddComment posts a comment on the open asset, as a reply when a reply
// target is set, and appends the server snapshot to the flat list.
func (w *Workspace) AddComment(ctx context.Context, content string) (*comment.Comment, error) {
	w.mu.Lock()
	if w.viewer.active == nil {
		w.mu.Unlock()
		return nil, ErrNoActiveAsset
	}
	assetID := w.viewer.active.ID
	parentID := w.viewer.replyTo
	w.mu.Unlock()

	c, err := w.svc.Comments.Add(ctx, assetID, content, parentID)
	if err != nil {
		return nil, err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.viewer.active != nil && w.viewer.active.ID == assetID {
		w.viewer.comments = append(w.viewer.comments, *c)
		w.viewer.replyTo = nil
	}
	return c, nil
}

// DeleteComment removes a comment from the open asset. The reply target is
// cleared if it pointed at the removed comment.
func (w *Workspace) DeleteComment(ctx context.Context, commentID string) error {
	w.mu.Lock()
	if w.viewer.active == nil {
		w.mu.Unlock()
		return ErrNoActiveAsset
	}
	assetID := w.viewer.active.ID
	w.mu.Unlock()

	err := w.svc.Comments.Delete(ctx, assetID, commentID)
	if err != nil && !errors.Is(err, api.ErrNotFound) {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.viewer.active == nil || w.viewer.active.ID != assetID {
		return nil
	}
	for i := range w.viewer.comments {
		if w.viewer.comments[i].ID == commentID {
			w.viewer.comments = append(w.viewer.comments[:i], w.viewer.comments[i+1:]...)
			break
		}
	}
	if w.viewer.replyTo != nil && *w.viewer.replyTo == commentID {
		w.viewer.replyTo = nil
	}
	return nil
}

// ToggleReaction toggles the current user's emoji reaction and replaces the
// matching comment with the authoritative snapshot from the response.
func (w *Workspace) ToggleReaction(ctx context.Context, commentID, emoji string) error {
	w.mu.Lock()
	if w.viewer.active == nil {
		w.mu.Unlock()
		return ErrNoActiveAsset
	}
	assetID := w.viewer.active.ID
	w.mu.Unlock()

	updated, err := w.svc.Comments.ToggleReaction(ctx, assetID, commentID, emoji)
	if err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.viewer.active == nil || w.viewer.active.ID != assetID {
		return nil
	}
	for i := range w.viewer.comments {
		if w.viewer.comments[i].ID == updated.ID {
			w.viewer.comments[i] = *updated
			break
		}
	}
	return nil
}

// LoadSuggestions fetches AI suggestions for the open asset and shows the
// panel. Subsequent calls toggle visibility without refetching.
func (w *Workspace) LoadSuggestions(ctx context.Context) ([]string, error) {
	w.mu.Lock()
	if w.viewer.active == nil {
		w.mu.Unlock()
		return nil, ErrNoActiveAsset
	}
	if w.viewer.suggestions != nil {
		w.viewer.showSuggestions = !w.viewer.showSuggestions
		out := w.viewer.suggestions
		w.mu.Unlock()
		return out, nil
	}
	assetID := w.viewer.active.ID
	w.mu.Unlock()

	suggestions, err := w.svc.Suggestions.Suggestions(ctx, assetID)
	if err != nil {
		return nil, err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.viewer.active != nil && w.viewer.active.ID == assetID {
		w.viewer.suggestions = suggestions
		w.viewer.showSuggestions = true
	}
	return suggestions, nil
}

// SuggestionsVisible reports whether the suggestion panel is shown.
func (w *Workspace) SuggestionsVisible() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.viewer.showSuggestions
}

func cloneAssets(list []asset.Asset) []asset.Asset {
	out := make([]asset.Asset, len(list))
	copy(out, list)
	return out
}
