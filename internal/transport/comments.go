package transport

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/atelierhq/atelier/internal/domain/activity"
	"github.com/atelierhq/atelier/internal/domain/comment"
	"github.com/atelierhq/atelier/internal/store"
)

// suggestionPool backs the ai-suggestions endpoint. The reference service
// doesn't call a model; it hands out canned review prompts.
var suggestionPool = []string{
	"Consider increasing the contrast between the heading and the background.",
	"The composition feels heavy on the left; try rebalancing the focal point.",
	"Typography hierarchy is unclear; a larger size step between levels would help.",
	"The color palette works, but the accent tone competes with the call to action.",
	"Whitespace around the central element could be tightened for a stronger focus.",
}

func (s *Server) handleListComments(w http.ResponseWriter, r *http.Request) {
	current, _ := UserFromContext(r.Context())
	assetID := chi.URLParam(r, "assetID")

	_, _, code, msg := s.assetWithAccess(r.Context(), assetID, current.ID)
	if code != 0 {
		writeError(w, code, msg)
		return
	}

	comments, err := s.st.Comments.ListByAsset(r.Context(), assetID)
	if err != nil {
		s.logger.Error("listing comments", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if comments == nil {
		comments = []comment.Comment{}
	}
	writeJSON(w, http.StatusOK, comments)
}

func (s *Server) handleCreateComment(w http.ResponseWriter, r *http.Request) {
	current, _ := UserFromContext(r.Context())
	assetID := chi.URLParam(r, "assetID")

	a, _, code, msg := s.assetWithAccess(r.Context(), assetID, current.ID)
	if code != 0 {
		writeError(w, code, msg)
		return
	}

	var req comment.CreateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.Content = strings.TrimSpace(req.Content)
	if req.Content == "" {
		writeError(w, http.StatusBadRequest, "comment content is required")
		return
	}
	if req.ParentID != nil {
		parent, err := s.st.Comments.Get(r.Context(), *req.ParentID)
		if err != nil || parent.AssetID != assetID {
			writeError(w, http.StatusBadRequest, "parent comment not found on this asset")
			return
		}
	}

	c := &comment.Comment{
		ID:        uuid.NewString(),
		AssetID:   assetID,
		UserID:    current.ID,
		Content:   req.Content,
		ParentID:  req.ParentID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.st.Comments.Create(r.Context(), c); err != nil {
		s.logger.Error("creating comment", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	s.logActivity(r.Context(), &activity.Entry{
		ProjectID: a.ProjectID,
		UserID:    current.ID,
		Type:      activity.TypeCommentAdded,
		Message:   fmt.Sprintf("%s commented on %s", current.Label(), a.OriginalFilename),
	})

	created, err := s.st.Comments.Get(r.Context(), c.ID)
	if err != nil {
		s.logger.Error("reloading comment", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleDeleteComment(w http.ResponseWriter, r *http.Request) {
	current, _ := UserFromContext(r.Context())
	assetID := chi.URLParam(r, "assetID")
	commentID := chi.URLParam(r, "commentID")

	_, proj, code, msg := s.assetWithAccess(r.Context(), assetID, current.ID)
	if code != 0 {
		writeError(w, code, msg)
		return
	}

	c, err := s.st.Comments.Get(r.Context(), commentID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "comment not found")
			return
		}
		s.logger.Error("loading comment", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if c.AssetID != assetID {
		writeError(w, http.StatusNotFound, "comment not found")
		return
	}
	if c.UserID != current.ID && proj.OwnerID != current.ID {
		writeError(w, http.StatusForbidden, "only the author or the project owner can delete a comment")
		return
	}

	if err := s.st.Comments.Delete(r.Context(), commentID); err != nil {
		s.logger.Error("deleting comment", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleToggleReaction(w http.ResponseWriter, r *http.Request) {
	current, _ := UserFromContext(r.Context())
	assetID := chi.URLParam(r, "assetID")
	commentID := chi.URLParam(r, "commentID")

	a, _, code, msg := s.assetWithAccess(r.Context(), assetID, current.ID)
	if code != 0 {
		writeError(w, code, msg)
		return
	}

	var req struct {
		Emoji string `json:"emoji"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.Emoji = strings.TrimSpace(req.Emoji)
	if req.Emoji == "" {
		writeError(w, http.StatusBadRequest, "emoji is required")
		return
	}

	c, err := s.st.Comments.Get(r.Context(), commentID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "comment not found")
			return
		}
		s.logger.Error("loading comment", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if c.AssetID != assetID {
		writeError(w, http.StatusNotFound, "comment not found")
		return
	}

	if err := s.st.Comments.ToggleReaction(r.Context(), commentID, current.ID, req.Emoji); err != nil {
		s.logger.Error("toggling reaction", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	s.logActivity(r.Context(), &activity.Entry{
		ProjectID: a.ProjectID,
		UserID:    current.ID,
		Type:      activity.TypeCommentReacted,
		Message:   fmt.Sprintf("%s reacted %s to a comment", current.Label(), req.Emoji),
	})

	updated, err := s.st.Comments.Get(r.Context(), commentID)
	if err != nil {
		s.logger.Error("reloading comment", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	current, _ := UserFromContext(r.Context())
	assetID := chi.URLParam(r, "assetID")

	_, _, code, msg := s.assetWithAccess(r.Context(), assetID, current.ID)
	if code != 0 {
		writeError(w, code, msg)
		return
	}

	// Stable per asset so repeated fetches agree.
	n := 3
	start := 0
	for _, b := range assetID {
		start += int(b)
	}
	start %= len(suggestionPool)

	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, suggestionPool[(start+i)%len(suggestionPool)])
	}
	writeJSON(w, http.StatusOK, out)
}
