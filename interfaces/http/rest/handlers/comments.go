package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"retrolens-backend/application/services"
	"retrolens-backend/domain/model"
	"retrolens-backend/pkg/auth"
	"retrolens-backend/pkg/common"
	"retrolens-backend/pkg/utils"
)

// CommentHandler covers the comment endpoints.
type CommentHandler struct {
	comments *services.CommentService
	logger   *zap.Logger
}

// NewCommentHandler creates the comment handler.
func NewCommentHandler(comments *services.CommentService, logger *zap.Logger) *CommentHandler {
	return &CommentHandler{comments: comments, logger: logger}
}

// Create inserts a comment by the principal; the mutual-follow gate
// applies.
//
// POST /api/v1/comments
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	principal, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		common.RespondDetail(w, http.StatusUnauthorized, "authentication required")
		return
	}
	var req services.CommentCreate
	if err := common.ParseJSONBody(r, &req, 1<<20); err != nil {
		common.RespondDetail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondDetail(w, http.StatusBadRequest, err.Error())
		return
	}
	comment, err := h.comments.Create(r.Context(), *principal, req)
	if err != nil {
		common.RespondError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusCreated, comment)
}

// List returns the comments under one piece of content, resolved from
// the discussion_id or camera_id query parameter.
//
// GET /api/v1/comments
func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	ref := targetRefFromQuery(r)
	comments, err := h.comments.ListByTarget(r.Context(), ref)
	if err != nil {
		common.RespondError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, comments)
}

// targetRefFromQuery builds a target reference from the id query
// parameters, leaving absent ones nil.
func targetRefFromQuery(r *http.Request) model.TargetRef {
	var ref model.TargetRef
	if v := r.URL.Query().Get("discussion_id"); v != "" {
		ref.DiscussionID = &v
	}
	if v := r.URL.Query().Get("camera_id"); v != "" {
		ref.CameraID = &v
	}
	if v := r.URL.Query().Get("comment_id"); v != "" {
		ref.CommentID = &v
	}
	return ref
}
