package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"retrolens-backend/application/services"
	"retrolens-backend/pkg/common"
	"retrolens-backend/pkg/utils"
)

// FollowHandler covers the follow-edge endpoints. These take explicit
// endpoint ids rather than a principal, mirroring the client contract.
type FollowHandler struct {
	follows *services.FollowService
	logger  *zap.Logger
}

// NewFollowHandler creates the follow handler.
func NewFollowHandler(follows *services.FollowService, logger *zap.Logger) *FollowHandler {
	return &FollowHandler{follows: follows, logger: logger}
}

// FollowRequest names both endpoints of a follow edge.
type FollowRequest struct {
	FollowerID  string `json:"follower_id" validate:"required"`
	FollowingID string `json:"following_id" validate:"required"`
}

// Create adds the follower -> following edge.
//
// POST /api/v1/follows
func (h *FollowHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req FollowRequest
	if err := common.ParseJSONBody(r, &req, 1<<20); err != nil {
		common.RespondDetail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondDetail(w, http.StatusBadRequest, err.Error())
		return
	}
	edge, err := h.follows.Follow(r.Context(), req.FollowerID, req.FollowingID)
	if err != nil {
		common.RespondError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusCreated, edge)
}

// Delete removes the edge named by the query parameters.
//
// DELETE /api/v1/follows
func (h *FollowHandler) Delete(w http.ResponseWriter, r *http.Request) {
	followerID := r.URL.Query().Get("follower_id")
	followingID := r.URL.Query().Get("following_id")
	if followerID == "" || followingID == "" {
		common.RespondDetail(w, http.StatusBadRequest, "follower_id and following_id are required")
		return
	}
	if err := h.follows.Unfollow(r.Context(), followerID, followingID); err != nil {
		common.RespondError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, map[string]string{"detail": "unfollowed"})
}

// List returns follow edges filtered by either endpoint.
//
// GET /api/v1/follows
func (h *FollowHandler) List(w http.ResponseWriter, r *http.Request) {
	edges, err := h.follows.List(r.Context(), r.URL.Query().Get("follower_id"), r.URL.Query().Get("following_id"))
	if err != nil {
		common.RespondError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, edges)
}

// Check reports whether the directed edge exists.
//
// GET /api/v1/follows/check
func (h *FollowHandler) Check(w http.ResponseWriter, r *http.Request) {
	followerID := r.URL.Query().Get("follower_id")
	followingID := r.URL.Query().Get("following_id")
	if followerID == "" || followingID == "" {
		common.RespondDetail(w, http.StatusBadRequest, "follower_id and following_id are required")
		return
	}
	following, err := h.follows.IsFollowing(r.Context(), followerID, followingID)
	if err != nil {
		common.RespondError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, map[string]bool{"is_following": following})
}
