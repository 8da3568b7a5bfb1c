package transport

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/atelierhq/atelier/internal/domain/activity"
	"github.com/atelierhq/atelier/internal/domain/asset"
	"github.com/atelierhq/atelier/internal/store"
)

func (s *Server) handleListAssets(w http.ResponseWriter, r *http.Request) {
	current, _ := UserFromContext(r.Context())
	projectID := chi.URLParam(r, "projectID")

	_, code, msg := s.projectWithAccess(r.Context(), projectID, current.ID)
	if code != 0 {
		writeError(w, code, msg)
		return
	}

	assets, err := s.st.Assets.ListByProject(r.Context(), projectID)
	if err != nil {
		s.logger.Error("listing assets", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if assets == nil {
		assets = []asset.Asset{}
	}
	writeJSON(w, http.StatusOK, assets)
}

func (s *Server) handleUploadAsset(w http.ResponseWriter, r *http.Request) {
	current, _ := UserFromContext(r.Context())
	projectID := chi.URLParam(r, "projectID")

	_, code, msg := s.projectWithAccess(r.Context(), projectID, current.ID)
	if code != 0 {
		writeError(w, code, msg)
		return
	}

	var req asset.UploadRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.OriginalFilename = strings.TrimSpace(req.OriginalFilename)
	if req.OriginalFilename == "" {
		writeError(w, http.StatusBadRequest, "original_filename is required")
		return
	}

	a := &asset.Asset{
		ID:               uuid.NewString(),
		ProjectID:        projectID,
		UploaderID:       current.ID,
		FilePath:         path.Join("uploads", projectID, uuid.NewString()+path.Ext(req.OriginalFilename)),
		OriginalFilename: req.OriginalFilename,
		Status:           asset.StatusNeedsFeedback,
		CreatedAt:        time.Now().UTC(),
	}
	if err := s.st.Assets.Create(r.Context(), a); err != nil {
		s.logger.Error("creating asset", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	s.logActivity(r.Context(), &activity.Entry{
		ProjectID: projectID,
		UserID:    current.ID,
		Type:      activity.TypeAssetUploaded,
		Message:   fmt.Sprintf("%s uploaded %s", current.Label(), a.OriginalFilename),
	})

	writeJSON(w, http.StatusCreated, a)
}

func (s *Server) handleDeleteAsset(w http.ResponseWriter, r *http.Request) {
	current, _ := UserFromContext(r.Context())
	projectID := chi.URLParam(r, "projectID")
	assetID := chi.URLParam(r, "assetID")

	_, code, msg := s.projectForOwner(r.Context(), projectID, current.ID)
	if code != 0 {
		writeError(w, code, msg)
		return
	}

	a, err := s.st.Assets.Get(r.Context(), assetID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "asset not found")
			return
		}
		s.logger.Error("loading asset", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if a.ProjectID != projectID {
		writeError(w, http.StatusNotFound, "asset not found")
		return
	}

	if err := s.st.Assets.Delete(r.Context(), assetID); err != nil {
		s.logger.Error("deleting asset", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleUpdateAssetStatus(w http.ResponseWriter, r *http.Request) {
	current, _ := UserFromContext(r.Context())
	projectID := chi.URLParam(r, "projectID")
	assetID := chi.URLParam(r, "assetID")

	_, code, msg := s.projectForOwner(r.Context(), projectID, current.ID)
	if code != 0 {
		writeError(w, code, msg)
		return
	}

	var req struct {
		Status asset.Status `json:"status"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !req.Status.Valid() {
		writeError(w, http.StatusBadRequest, "invalid asset status")
		return
	}

	a, err := s.st.Assets.Get(r.Context(), assetID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "asset not found")
			return
		}
		s.logger.Error("loading asset", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if a.ProjectID != projectID {
		writeError(w, http.StatusNotFound, "asset not found")
		return
	}

	if err := s.st.Assets.UpdateStatus(r.Context(), assetID, req.Status); err != nil {
		s.logger.Error("updating asset status", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	a.Status = req.Status
	writeJSON(w, http.StatusOK, a)
}

// logActivity records a feed entry, logging but not surfacing failures; the
// feed is advisory and must not fail the triggering request.
func (s *Server) logActivity(ctx context.Context, e *activity.Entry) {
	e.CreatedAt = time.Now().UTC()
	if err := s.st.Activity.Log(ctx, e); err != nil {
		s.logger.Warn("recording activity", "error", err)
	}
}
