// Package handlers maps HTTP requests onto the application services.
// Each handler owns one resource; all of them speak the same error
// convention: failures are {"detail": reason} bodies.
package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"retrolens-backend/application/services"
	"retrolens-backend/pkg/auth"
	"retrolens-backend/pkg/common"
)

// AuthHandler covers the identity endpoints.
type AuthHandler struct {
	users  *services.UserService
	logger *zap.Logger
}

// NewAuthHandler creates the identity handler.
func NewAuthHandler(users *services.UserService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{users: users, logger: logger}
}

// Sync mirrors the authenticated principal into the users table,
// creating the row on first login.
//
// POST /api/v1/auth/sync
func (h *AuthHandler) Sync(w http.ResponseWriter, r *http.Request) {
	principal, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		common.RespondDetail(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req services.SyncRequest
	// The body is optional; an empty one syncs from token claims alone.
	if r.ContentLength > 0 {
		if err := common.ParseJSONBody(r, &req, 1<<20); err != nil {
			common.RespondDetail(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	user, err := h.users.Sync(r.Context(), *principal, req)
	if err != nil {
		common.RespondError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, user)
}

// Verify confirms the bearer token resolved to a principal. The
// middleware has already rejected invalid tokens by the time this runs.
//
// GET /api/v1/auth/verify-token
func (h *AuthHandler) Verify(w http.ResponseWriter, r *http.Request) {
	principal, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		common.RespondDetail(w, http.StatusUnauthorized, "authentication required")
		return
	}
	common.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"valid":   true,
		"user_id": principal.UserID,
		"email":   principal.Email,
	})
}

// Me returns the authenticated principal's profile with counts.
//
// GET /api/v1/auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	principal, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		common.RespondDetail(w, http.StatusUnauthorized, "authentication required")
		return
	}
	profile, err := h.users.Get(r.Context(), principal.UserID)
	if err != nil {
		common.RespondError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, profile)
}
