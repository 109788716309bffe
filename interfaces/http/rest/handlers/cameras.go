package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"retrolens-backend/application/services"
	"retrolens-backend/pkg/auth"
	"retrolens-backend/pkg/common"
	"retrolens-backend/pkg/utils"
)

// CameraHandler covers the collection endpoints.
type CameraHandler struct {
	cameras *services.CameraService
	logger  *zap.Logger
}

// NewCameraHandler creates the collection handler.
func NewCameraHandler(cameras *services.CameraService, logger *zap.Logger) *CameraHandler {
	return &CameraHandler{cameras: cameras, logger: logger}
}

// List returns a page of public cameras with galleries and owners.
//
// GET /api/v1/cameras
func (h *CameraHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := common.LimitOffset(r, 20, 100)
	cameras, err := h.cameras.List(r.Context(), offset, limit)
	if err != nil {
		common.RespondError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, cameras)
}

// Get returns one camera, counting the view.
//
// GET /api/v1/cameras/{cameraID}
func (h *CameraHandler) Get(w http.ResponseWriter, r *http.Request) {
	viewerID := ""
	if principal, err := auth.GetUserFromContext(r.Context()); err == nil {
		viewerID = principal.UserID
	}
	camera, err := h.cameras.Get(r.Context(), viewerID, chi.URLParam(r, "cameraID"))
	if err != nil {
		common.RespondError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, camera)
}

// Create inserts a camera owned by the principal.
//
// POST /api/v1/cameras
func (h *CameraHandler) Create(w http.ResponseWriter, r *http.Request) {
	principal, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		common.RespondDetail(w, http.StatusUnauthorized, "authentication required")
		return
	}
	var req services.CameraCreate
	if err := common.ParseJSONBody(r, &req, 1<<20); err != nil {
		common.RespondDetail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondDetail(w, http.StatusBadRequest, err.Error())
		return
	}
	camera, err := h.cameras.Create(r.Context(), *principal, req)
	if err != nil {
		common.RespondError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusCreated, camera)
}
