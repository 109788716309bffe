package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"retrolens-backend/application/services"
	"retrolens-backend/domain/model"
	"retrolens-backend/pkg/auth"
	"retrolens-backend/pkg/common"
)

// UserHandler covers profile reads and updates.
type UserHandler struct {
	users   *services.UserService
	follows *services.FollowService
	logger  *zap.Logger
}

// NewUserHandler creates the profile handler.
func NewUserHandler(users *services.UserService, follows *services.FollowService, logger *zap.Logger) *UserHandler {
	return &UserHandler{users: users, follows: follows, logger: logger}
}

// List returns a page of profiles.
//
// GET /api/v1/users
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := common.LimitOffset(r, 20, 100)
	users, err := h.users.List(r.Context(), offset, limit)
	if err != nil {
		common.RespondError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, users)
}

// Get returns one profile with its computed counts.
//
// GET /api/v1/users/{userID}
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	profile, err := h.users.Get(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		common.RespondError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, profile)
}

// GetByUsername resolves a profile by username.
//
// GET /api/v1/users/username/{username}
func (h *UserHandler) GetByUsername(w http.ResponseWriter, r *http.Request) {
	profile, err := h.users.GetByUsername(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		common.RespondError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, profile)
}

// Update patches the principal's own profile.
//
// PATCH /api/v1/users/{userID}
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	principal, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		common.RespondDetail(w, http.StatusUnauthorized, "authentication required")
		return
	}
	var patch model.UserUpdate
	if err := common.ParseJSONBody(r, &patch, 1<<20); err != nil {
		common.RespondDetail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	user, err := h.users.Update(r.Context(), *principal, chi.URLParam(r, "userID"), patch)
	if err != nil {
		common.RespondError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, user)
}

// Followers lists the profiles following a user.
//
// GET /api/v1/users/{userID}/followers
func (h *UserHandler) Followers(w http.ResponseWriter, r *http.Request) {
	users, err := h.follows.Followers(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		common.RespondError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, users)
}

// Following lists the profiles a user follows.
//
// GET /api/v1/users/{userID}/following
func (h *UserHandler) Following(w http.ResponseWriter, r *http.Request) {
	users, err := h.follows.Following(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		common.RespondError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, users)
}
