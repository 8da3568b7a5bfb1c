package client

import (
	"context"
	"net/http"

	"github.com/atelierhq/atelier/internal/domain/comment"
)

// CommentClient implements comment.API over the shared transport.
type CommentClient struct {
	c *Client
}

// NewCommentClient creates a comment API client.
func NewCommentClient(c *Client) *CommentClient {
	return &CommentClient{c: c}
}

// List fetches the asset's flat comment list, oldest first.
func (cc *CommentClient) List(ctx context.Context, assetID string) ([]comment.Comment, error) {
	var out []comment.Comment
	if err := cc.c.do(ctx, http.MethodGet, "/assets/"+assetID+"/comments", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create posts a comment, optionally as a reply.
func (cc *CommentClient) Create(ctx context.Context, assetID string, req comment.CreateRequest) (*comment.Comment, error) {
	var out comment.Comment
	if err := cc.c.do(ctx, http.MethodPost, "/assets/"+assetID+"/comments", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a comment. Author or project owner only.
func (cc *CommentClient) Delete(ctx context.Context, assetID, commentID string) error {
	return cc.c.do(ctx, http.MethodDelete, "/assets/"+assetID+"/comments/"+commentID, nil, nil)
}

type reactionToggle struct {
	Emoji string `json:"emoji"`
}

// ToggleReaction toggles the current user's reaction and returns the full
// updated comment.
func (cc *CommentClient) ToggleReaction(ctx context.Context, assetID, commentID, emoji string) (*comment.Comment, error) {
	var out comment.Comment
	path := "/assets/" + assetID + "/comments/" + commentID + "/reactions"
	if err := cc.c.do(ctx, http.MethodPost, path, reactionToggle{Emoji: emoji}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SuggestionClient fetches AI feedback suggestions for an asset.
type SuggestionClient struct {
	c *Client
}

// NewSuggestionClient creates a suggestion API client.
func NewSuggestionClient(c *Client) *SuggestionClient {
	return &SuggestionClient{c: c}
}

// Suggestions returns the opaque suggestion strings for the asset.
func (sc *SuggestionClient) Suggestions(ctx context.Context, assetID string) ([]string, error) {
	var out []string
	if err := sc.c.do(ctx, http.MethodGet, "/assets/"+assetID+"/ai-suggestions", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
