package services

import (
	"context"
	"path"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"retrolens-backend/application/ports"
	"retrolens-backend/domain/model"
	"retrolens-backend/pkg/auth"
	"retrolens-backend/pkg/errors"
)

// UploadService writes images to object storage on behalf of users.
type UploadService struct {
	files             ports.FileStore
	users             ports.UserRepository
	cameraImageBucket string
	avatarBucket      string
	logger            *zap.Logger
}

// NewUploadService creates the upload service.
func NewUploadService(files ports.FileStore, users ports.UserRepository, cameraImageBucket, avatarBucket string, logger *zap.Logger) *UploadService {
	return &UploadService{
		files:             files,
		users:             users,
		cameraImageBucket: cameraImageBucket,
		avatarBucket:      avatarBucket,
		logger:            logger,
	}
}

// UploadCameraImage stores a gallery image under the principal's prefix
// and returns its public URL. Object names are random, so uploads never
// overwrite each other.
func (s *UploadService) UploadCameraImage(ctx context.Context, principal auth.UserContext, filename, contentType string, data []byte) (string, error) {
	if err := validateImage(contentType, data); err != nil {
		return "", err
	}
	objectPath := principal.UserID + "/" + uuid.NewString() + extensionOf(filename, contentType)
	url, err := s.files.Upload(ctx, s.cameraImageBucket, objectPath, data, contentType, false)
	if err != nil {
		return "", err
	}
	s.logger.Info("camera image uploaded",
		zap.String("user_id", principal.UserID),
		zap.String("path", objectPath),
	)
	return url, nil
}

// UploadAvatar stores the principal's avatar at a fixed path, replacing
// any previous one, and points their profile at it.
func (s *UploadService) UploadAvatar(ctx context.Context, principal auth.UserContext, filename, contentType string, data []byte) (string, error) {
	if err := validateImage(contentType, data); err != nil {
		return "", err
	}
	objectPath := principal.UserID + "/avatar" + extensionOf(filename, contentType)
	url, err := s.files.Upload(ctx, s.avatarBucket, objectPath, data, contentType, true)
	if err != nil {
		return "", err
	}
	if _, err := s.users.Update(ctx, principal.UserID, model.UserUpdate{AvatarURL: &url}); err != nil {
		return "", err
	}
	return url, nil
}

func validateImage(contentType string, data []byte) error {
	if !strings.HasPrefix(contentType, "image/") {
		return errors.NewValidationError("only image uploads are allowed")
	}
	if len(data) == 0 {
		return errors.NewValidationError("uploaded file is empty")
	}
	return nil
}

// extensionOf picks a file extension from the original name, falling
// back to the content type subtype.
func extensionOf(filename, contentType string) string {
	if ext := path.Ext(filename); ext != "" {
		return strings.ToLower(ext)
	}
	if _, subtype, found := strings.Cut(contentType, "/"); found && subtype != "" {
		return "." + subtype
	}
	return ""
}
