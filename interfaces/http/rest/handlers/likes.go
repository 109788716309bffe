package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"retrolens-backend/application/services"
	"retrolens-backend/domain/model"
	"retrolens-backend/pkg/auth"
	"retrolens-backend/pkg/common"
)

// LikeHandler covers the like endpoints.
type LikeHandler struct {
	likes  *services.LikeService
	logger *zap.Logger
}

// NewLikeHandler creates the like handler.
func NewLikeHandler(likes *services.LikeService, logger *zap.Logger) *LikeHandler {
	return &LikeHandler{likes: likes, logger: logger}
}

// Create records the principal's like; the mutual-follow gate applies.
//
// POST /api/v1/likes
func (h *LikeHandler) Create(w http.ResponseWriter, r *http.Request) {
	principal, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		common.RespondDetail(w, http.StatusUnauthorized, "authentication required")
		return
	}
	var ref model.TargetRef
	if err := common.ParseJSONBody(r, &ref, 1<<20); err != nil {
		common.RespondDetail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	like, err := h.likes.Like(r.Context(), *principal, ref)
	if err != nil {
		common.RespondError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusCreated, like)
}

// Delete removes the principal's like. The target comes from the JSON
// body; clients that send no body may use the target id query
// parameters instead.
//
// DELETE /api/v1/likes
func (h *LikeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	principal, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		common.RespondDetail(w, http.StatusUnauthorized, "authentication required")
		return
	}
	var ref model.TargetRef
	if r.ContentLength > 0 {
		if err := common.ParseJSONBody(r, &ref, 1<<20); err != nil {
			common.RespondDetail(w, http.StatusBadRequest, "invalid request body")
			return
		}
	} else {
		ref = targetRefFromQuery(r)
	}
	if err := h.likes.Unlike(r.Context(), *principal, ref); err != nil {
		common.RespondError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, map[string]string{"detail": "like removed"})
}

// Status returns the like count of one target and whether the viewer
// has liked it.
//
// GET /api/v1/likes/status
func (h *LikeHandler) Status(w http.ResponseWriter, r *http.Request) {
	status, err := h.likes.Status(r.Context(), viewerID(r), targetRefFromQuery(r))
	if err != nil {
		common.RespondError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, status)
}

// Check reports whether the principal has liked the target.
//
// GET /api/v1/likes/check
func (h *LikeHandler) Check(w http.ResponseWriter, r *http.Request) {
	principal, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		common.RespondDetail(w, http.StatusUnauthorized, "authentication required")
		return
	}
	status, err := h.likes.Status(r.Context(), principal.UserID, targetRefFromQuery(r))
	if err != nil {
		common.RespondError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, map[string]bool{"is_liked": status.Liked})
}

// Count returns the like count of one target.
//
// GET /api/v1/likes/count
func (h *LikeHandler) Count(w http.ResponseWriter, r *http.Request) {
	status, err := h.likes.Status(r.Context(), "", targetRefFromQuery(r))
	if err != nil {
		common.RespondError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, map[string]int{"count": status.Count})
}
