package handlers

import (
	"context"
	"io"
	"net/http"

	"go.uber.org/zap"

	"retrolens-backend/application/services"
	"retrolens-backend/pkg/auth"
	"retrolens-backend/pkg/common"
)

// maxUploadBytes caps a single multipart image upload.
const maxUploadBytes = 10 << 20

type storeFunc func(ctx context.Context, principal auth.UserContext, filename, contentType string, data []byte) (string, error)

// UploadHandler covers the image upload endpoints.
type UploadHandler struct {
	uploads *services.UploadService
	logger  *zap.Logger
}

// NewUploadHandler creates the upload handler.
func NewUploadHandler(uploads *services.UploadService, logger *zap.Logger) *UploadHandler {
	return &UploadHandler{uploads: uploads, logger: logger}
}

// CameraImage stores a gallery image and returns its public URL.
//
// POST /api/v1/upload/camera-image
func (h *UploadHandler) CameraImage(w http.ResponseWriter, r *http.Request) {
	h.upload(w, r, h.uploads.UploadCameraImage)
}

// Avatar replaces the principal's avatar and returns its public URL.
//
// POST /api/v1/upload/avatar
func (h *UploadHandler) Avatar(w http.ResponseWriter, r *http.Request) {
	h.upload(w, r, h.uploads.UploadAvatar)
}

func (h *UploadHandler) upload(w http.ResponseWriter, r *http.Request, store storeFunc) {
	principal, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		common.RespondDetail(w, http.StatusUnauthorized, "authentication required")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		common.RespondDetail(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		common.RespondDetail(w, http.StatusBadRequest, "file field is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		common.RespondDetail(w, http.StatusBadRequest, "failed to read uploaded file")
		return
	}

	url, err := store(r.Context(), *principal, header.Filename, header.Header.Get("Content-Type"), data)
	if err != nil {
		common.RespondError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusCreated, map[string]string{"url": url})
}
