package transport

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/atelierhq/atelier/internal/domain/activity"
	"github.com/atelierhq/atelier/internal/domain/project"
	"github.com/atelierhq/atelier/internal/domain/user"
	"github.com/atelierhq/atelier/internal/store"
)

func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	current, _ := UserFromContext(r.Context())
	archived := r.URL.Query().Get("archived") == "true"

	projects, err := s.st.Projects.ListOwned(r.Context(), current.ID, archived)
	if err != nil {
		s.logger.Error("listing projects", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if projects == nil {
		projects = []project.Project{}
	}
	writeJSON(w, http.StatusOK, projects)
}

func (s *Server) handleListShared(w http.ResponseWriter, r *http.Request) {
	current, _ := UserFromContext(r.Context())

	projects, err := s.st.Projects.ListShared(r.Context(), current.ID)
	if err != nil {
		s.logger.Error("listing shared projects", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if projects == nil {
		projects = []project.Project{}
	}
	writeJSON(w, http.StatusOK, projects)
}

func (s *Server) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	current, _ := UserFromContext(r.Context())

	var req project.CreateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "project name is required")
		return
	}

	proj := &project.Project{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: strings.TrimSpace(req.Description),
		OwnerID:     current.ID,
		Deadline:    req.Deadline,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.st.Projects.Create(r.Context(), proj); err != nil {
		s.logger.Error("creating project", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusCreated, proj)
}

func (s *Server) handleUpdateProject(w http.ResponseWriter, r *http.Request) {
	current, _ := UserFromContext(r.Context())
	projectID := chi.URLParam(r, "projectID")

	proj, code, msg := s.projectForOwner(r.Context(), projectID, current.ID)
	if code != 0 {
		writeError(w, code, msg)
		return
	}

	var req project.UpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			writeError(w, http.StatusBadRequest, "project name is required")
			return
		}
		proj.Name = name
	}
	if req.Description != nil {
		proj.Description = strings.TrimSpace(*req.Description)
	}
	if req.IsArchived != nil {
		proj.IsArchived = *req.IsArchived
	}
	if req.ClearDeadline {
		proj.Deadline = nil
	} else if req.Deadline != nil {
		proj.Deadline = req.Deadline
	}

	if err := s.st.Projects.Update(r.Context(), proj); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "project not found")
			return
		}
		s.logger.Error("updating project", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, proj)
}

func (s *Server) handleDeleteProject(w http.ResponseWriter, r *http.Request) {
	current, _ := UserFromContext(r.Context())
	projectID := chi.URLParam(r, "projectID")

	_, code, msg := s.projectForOwner(r.Context(), projectID, current.ID)
	if code != 0 {
		writeError(w, code, msg)
		return
	}

	if err := s.st.Projects.Delete(r.Context(), projectID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "project not found")
			return
		}
		s.logger.Error("deleting project", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleLeaveProject(w http.ResponseWriter, r *http.Request) {
	current, _ := UserFromContext(r.Context())
	projectID := chi.URLParam(r, "projectID")

	removed, err := s.st.Projects.RemoveParticipant(r.Context(), projectID, current.ID)
	if err != nil {
		s.logger.Error("leaving project", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if !removed {
		writeError(w, http.StatusNotFound, "you are not a collaborator on this project")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListParticipants(w http.ResponseWriter, r *http.Request) {
	current, _ := UserFromContext(r.Context())
	projectID := chi.URLParam(r, "projectID")

	_, code, msg := s.projectForOwner(r.Context(), projectID, current.ID)
	if code != 0 {
		writeError(w, code, msg)
		return
	}

	participants, err := s.st.Projects.ListParticipants(r.Context(), projectID)
	if err != nil {
		s.logger.Error("listing participants", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if participants == nil {
		participants = []user.User{}
	}
	writeJSON(w, http.StatusOK, participants)
}

func (s *Server) handleRemoveParticipant(w http.ResponseWriter, r *http.Request) {
	current, _ := UserFromContext(r.Context())
	projectID := chi.URLParam(r, "projectID")
	userID := chi.URLParam(r, "userID")

	proj, code, msg := s.projectForOwner(r.Context(), projectID, current.ID)
	if code != 0 {
		writeError(w, code, msg)
		return
	}
	if userID == proj.OwnerID {
		writeError(w, http.StatusBadRequest, "the project owner cannot be removed")
		return
	}

	removed, err := s.st.Projects.RemoveParticipant(r.Context(), projectID, userID)
	if err != nil {
		s.logger.Error("removing participant", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if !removed {
		writeError(w, http.StatusNotFound, "participant not found on this project")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListActivity(w http.ResponseWriter, r *http.Request) {
	current, _ := UserFromContext(r.Context())
	projectID := chi.URLParam(r, "projectID")

	_, code, msg := s.projectWithAccess(r.Context(), projectID, current.ID)
	if code != 0 {
		writeError(w, code, msg)
		return
	}

	entries, err := s.st.Activity.ListByProject(r.Context(), projectID)
	if err != nil {
		s.logger.Error("listing activity", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if entries == nil {
		entries = []activity.Entry{}
	}
	writeJSON(w, http.StatusOK, entries)
}
