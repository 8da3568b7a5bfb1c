package transport

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/atelierhq/atelier/internal/domain/invite"
	"github.com/atelierhq/atelier/internal/store"
)

func (s *Server) handleCreateInvite(w http.ResponseWriter, r *http.Request) {
	current, _ := UserFromContext(r.Context())
	projectID := chi.URLParam(r, "projectID")

	proj, code, msg := s.projectForOwner(r.Context(), projectID, current.ID)
	if code != 0 {
		writeError(w, code, msg)
		return
	}

	var req invite.CreateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	email := strings.ToLower(strings.TrimSpace(req.InvitedEmail))
	if email == "" {
		writeError(w, http.StatusBadRequest, "invited_email is required")
		return
	}
	if email == strings.ToLower(current.Email) {
		writeError(w, http.StatusBadRequest, "you cannot invite yourself")
		return
	}

	if invitee, err := s.st.Users.GetByEmail(r.Context(), email); err == nil {
		member, err := s.st.Projects.IsParticipant(r.Context(), projectID, invitee.ID)
		if err != nil {
			s.logger.Error("checking membership", "error", err)
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		if member {
			writeError(w, http.StatusBadRequest, "that user is already a collaborator")
			return
		}
	}

	pending, err := s.st.Invites.HasPending(r.Context(), projectID, email)
	if err != nil {
		s.logger.Error("checking pending invites", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if pending {
		writeError(w, http.StatusBadRequest, "an invite for that email is already pending")
		return
	}

	inv := &invite.Invite{
		ID:           uuid.NewString(),
		ProjectID:    projectID,
		InvitedEmail: email,
		Status:       invite.StatusPending,
		CreatedAt:    time.Now().UTC(),
		Project:      *proj,
		InvitedBy:    current,
	}
	if err := s.st.Invites.Create(r.Context(), inv); err != nil {
		s.logger.Error("creating invite", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusCreated, inv)
}

func (s *Server) handleListPendingInvites(w http.ResponseWriter, r *http.Request) {
	current, _ := UserFromContext(r.Context())

	invites, err := s.st.Invites.ListPendingByEmail(r.Context(), strings.ToLower(current.Email))
	if err != nil {
		s.logger.Error("listing invites", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if invites == nil {
		invites = []invite.Invite{}
	}
	writeJSON(w, http.StatusOK, invites)
}

func (s *Server) handleAcceptInvite(w http.ResponseWriter, r *http.Request) {
	s.resolveInvite(w, r, invite.StatusAccepted)
}

func (s *Server) handleDeclineInvite(w http.ResponseWriter, r *http.Request) {
	s.resolveInvite(w, r, invite.StatusDeclined)
}

// resolveInvite moves a pending invite to a terminal status; accepting also
// grants project membership.
func (s *Server) resolveInvite(w http.ResponseWriter, r *http.Request, status invite.Status) {
	current, _ := UserFromContext(r.Context())
	inviteID := chi.URLParam(r, "inviteID")

	inv, err := s.st.Invites.Get(r.Context(), inviteID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "invite not found")
			return
		}
		s.logger.Error("loading invite", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if !strings.EqualFold(inv.InvitedEmail, current.Email) {
		writeError(w, http.StatusForbidden, "this invite was sent to a different account")
		return
	}
	if inv.Status != invite.StatusPending {
		writeError(w, http.StatusBadRequest, "invite has already been resolved")
		return
	}

	now := time.Now().UTC()
	if err := s.st.Invites.SetStatus(r.Context(), inviteID, status, now); err != nil {
		s.logger.Error("resolving invite", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if status == invite.StatusAccepted {
		if err := s.st.Projects.AddParticipant(r.Context(), inv.ProjectID, current.ID); err != nil && !errors.Is(err, store.ErrDuplicate) {
			s.logger.Error("adding participant", "error", err)
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
	}

	inv.Status = status
	writeJSON(w, http.StatusOK, inv)
}
