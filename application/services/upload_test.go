package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"retrolens-backend/application/services"
	"retrolens-backend/domain/model"
	"retrolens-backend/pkg/auth"
	"retrolens-backend/pkg/errors"
	"retrolens-backend/tests/mocks"
)

func newUploadFixture() (*mocks.FileStore, *mocks.UserRepository, *services.UploadService) {
	files := new(mocks.FileStore)
	users := new(mocks.UserRepository)
	svc := services.NewUploadService(files, users, "camera-images", "avatars", zap.NewNop())
	return files, users, svc
}

func TestUploadRejectsNonImage(t *testing.T) {
	files, _, svc := newUploadFixture()

	_, err := svc.UploadCameraImage(context.Background(), auth.UserContext{UserID: "u-1"}, "doc.pdf", "application/pdf", []byte("%PDF"))
	require.Error(t, err)
	assert.Equal(t, 400, errors.Status(err))
	files.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUploadRejectsEmptyFile(t *testing.T) {
	_, _, svc := newUploadFixture()

	_, err := svc.UploadCameraImage(context.Background(), auth.UserContext{UserID: "u-1"}, "shot.jpg", "image/jpeg", nil)
	require.Error(t, err)
	assert.Equal(t, 400, errors.Status(err))
}

func TestUploadCameraImageUsesRandomPath(t *testing.T) {
	files, _, svc := newUploadFixture()
	files.On("Upload", mock.Anything, "camera-images", mock.MatchedBy(func(p string) bool {
		return strings.HasPrefix(p, "u-1/") && strings.HasSuffix(p, ".jpg")
	}), mock.Anything, "image/jpeg", false).Return("https://cdn/shot.jpg", nil)

	url, err := svc.UploadCameraImage(context.Background(), auth.UserContext{UserID: "u-1"}, "shot.JPG", "image/jpeg", []byte{0xff, 0xd8})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn/shot.jpg", url)
	files.AssertExpectations(t)
}

func TestUploadAvatarOverwritesAndUpdatesProfile(t *testing.T) {
	files, users, svc := newUploadFixture()
	files.On("Upload", mock.Anything, "avatars", "u-1/avatar.png", mock.Anything, "image/png", true).
		Return("https://cdn/u-1/avatar.png", nil)
	users.On("Update", mock.Anything, "u-1", mock.MatchedBy(func(patch model.UserUpdate) bool {
		return patch.AvatarURL != nil && *patch.AvatarURL == "https://cdn/u-1/avatar.png"
	})).Return(&model.User{ID: "u-1"}, nil)

	url, err := svc.UploadAvatar(context.Background(), auth.UserContext{UserID: "u-1"}, "me.png", "image/png", []byte{0x89})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn/u-1/avatar.png", url)
	users.AssertExpectations(t)
}
