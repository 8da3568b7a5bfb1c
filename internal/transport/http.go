// Package transport exposes the collaborator API over HTTP. It is the
// reference implementation of the surface the workspace client consumes.
package transport

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/atelierhq/atelier/internal/domain/asset"
	"github.com/atelierhq/atelier/internal/domain/project"
	"github.com/atelierhq/atelier/internal/store"
)

// Stores bundles the persistence the server needs.
type Stores struct {
	Users    store.UserStore
	Projects store.ProjectStore
	Assets   store.AssetStore
	Comments store.CommentStore
	Invites  store.InviteStore
	Activity store.ActivityStore
}

// Server handles the collaborator REST API.
type Server struct {
	st     Stores
	logger *slog.Logger
}

// NewServer creates a request handler over the given stores.
func NewServer(st Stores, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{st: st, logger: logger}
}

// NewRouter wires the API routes with bearer authentication.
func NewRouter(s *Server, resolver UserResolver) *chi.Mux {
	r := chi.NewRouter()

	r.Get("/health", s.handleHealth)

	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(resolver))

		r.Route("/projects", func(r chi.Router) {
			r.Get("/", s.handleListProjects)
			r.Post("/", s.handleCreateProject)
			r.Get("/shared-with-me", s.handleListShared)
			r.Patch("/{projectID}", s.handleUpdateProject)
			r.Delete("/{projectID}", s.handleDeleteProject)
			r.Post("/{projectID}/leave", s.handleLeaveProject)
			r.Get("/{projectID}/participants", s.handleListParticipants)
			r.Delete("/{projectID}/participants/{userID}", s.handleRemoveParticipant)
			r.Get("/{projectID}/assets", s.handleListAssets)
			r.Post("/{projectID}/assets", s.handleUploadAsset)
			r.Delete("/{projectID}/assets/{assetID}", s.handleDeleteAsset)
			r.Patch("/{projectID}/assets/{assetID}/status", s.handleUpdateAssetStatus)
			r.Post("/{projectID}/invites", s.handleCreateInvite)
			r.Get("/{projectID}/activity", s.handleListActivity)
		})

		r.Route("/assets/{assetID}", func(r chi.Router) {
			r.Get("/comments", s.handleListComments)
			r.Post("/comments", s.handleCreateComment)
			r.Delete("/comments/{commentID}", s.handleDeleteComment)
			r.Post("/comments/{commentID}/reactions", s.handleToggleReaction)
			r.Get("/ai-suggestions", s.handleSuggestions)
		})

		r.Route("/invites", func(r chi.Router) {
			r.Get("/pending", s.handleListPendingInvites)
			r.Post("/{inviteID}/accept", s.handleAcceptInvite)
			r.Post("/{inviteID}/decline", s.handleDeclineInvite)
		})
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// projectForOwner loads a project and requires the caller to own it.
func (s *Server) projectForOwner(ctx context.Context, projectID, userID string) (*project.Project, int, string) {
	proj, err := s.st.Projects.Get(ctx, projectID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, http.StatusNotFound, "project not found"
	}
	if err != nil {
		return nil, http.StatusInternalServerError, "internal error"
	}
	if proj.OwnerID != userID {
		return nil, http.StatusForbidden, "only the project owner may do this"
	}
	return proj, 0, ""
}

// projectWithAccess loads a project the caller owns or participates in.
func (s *Server) projectWithAccess(ctx context.Context, projectID, userID string) (*project.Project, int, string) {
	proj, err := s.st.Projects.Get(ctx, projectID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, http.StatusNotFound, "project not found"
	}
	if err != nil {
		return nil, http.StatusInternalServerError, "internal error"
	}
	if proj.OwnerID == userID {
		return proj, 0, ""
	}
	member, err := s.st.Projects.IsParticipant(ctx, projectID, userID)
	if err != nil {
		return nil, http.StatusInternalServerError, "internal error"
	}
	if !member {
		return nil, http.StatusForbidden, "you don't have access to this project"
	}
	return proj, 0, ""
}

// assetWithAccess loads an asset and its project, requiring access to the
// project.
func (s *Server) assetWithAccess(ctx context.Context, assetID, userID string) (*asset.Asset, *project.Project, int, string) {
	a, err := s.st.Assets.Get(ctx, assetID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil, http.StatusNotFound, "asset not found"
	}
	if err != nil {
		return nil, nil, http.StatusInternalServerError, "internal error"
	}
	proj, code, msg := s.projectWithAccess(ctx, a.ProjectID, userID)
	if code != 0 {
		return nil, nil, code, msg
	}
	return a, proj, 0, ""
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func decodeJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}
