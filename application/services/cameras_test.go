package services_test

import (
	"context"
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

func newCameraFixture() (*mocks.CameraRepository, *mocks.UserRepository, *services.CameraService) {
	cameras := new(mocks.CameraRepository)
	users := new(mocks.UserRepository)
	svc := services.NewCameraService(cameras, users, zap.NewNop())
	return cameras, users, svc
}

func TestCameraListBatchesImagesAndOwners(t *testing.T) {
	cameras, users, svc := newCameraFixture()
	cameras.On("ListPublic", mock.Anything, 0, 20).Return([]model.Camera{
		{ID: "c-1", UserID: "alice", BrandName: "Leica", Model: "M3"},
		{ID: "c-2", UserID: "bob", BrandName: "Nikon", Model: "F2"},
	}, nil)
	cameras.On("ImagesByCameraIDs", mock.Anything, []string{"c-1", "c-2"}).Return(map[string][]model.CameraImage{
		"c-1": {{ID: "i-1", CameraID: "c-1", ImageURL: "https://cdn/i-1.jpg"}},
	}, nil).Once()
	users.On("GetByIDs", mock.Anything, mock.MatchedBy(func(ids []string) bool {
		return len(ids) == 2
	})).Return([]model.User{{ID: "alice", Username: "alice"}, {ID: "bob", Username: "bob"}}, nil).Once()

	out, err := svc.List(context.Background(), 0, 20)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Len(t, out[0].Images, 1)
	assert.Empty(t, out[1].Images)
	assert.NotNil(t, out[1].Images)
	assert.Equal(t, "alice", out[0].OwnerUsername)
	cameras.AssertExpectations(t)
	users.AssertExpectations(t)
}

func TestCameraGetBumpsViewCount(t *testing.T) {
	cameras, users, svc := newCameraFixture()
	cameras.On("GetByID", mock.Anything, "c-1").
		Return(&model.Camera{ID: "c-1", UserID: "alice", IsPublic: true, ViewCount: 41}, nil)
	cameras.On("Images", mock.Anything, "c-1").Return([]model.CameraImage{}, nil)
	users.On("GetByID", mock.Anything, "alice").Return(&model.User{ID: "alice", Username: "alice"}, nil)
	cameras.On("SetViewCount", mock.Anything, "c-1", 42).Return(nil)

	out, err := svc.Get(context.Background(), "", "c-1")
	require.NoError(t, err)
	assert.Equal(t, 42, out.ViewCount)
	cameras.AssertExpectations(t)
}

func TestCameraGetViewCountFailureIsNotFatal(t *testing.T) {
	cameras, users, svc := newCameraFixture()
	cameras.On("GetByID", mock.Anything, "c-1").
		Return(&model.Camera{ID: "c-1", UserID: "alice", IsPublic: true, ViewCount: 41}, nil)
	cameras.On("Images", mock.Anything, "c-1").Return([]model.CameraImage{}, nil)
	users.On("GetByID", mock.Anything, "alice").Return(&model.User{ID: "alice"}, nil)
	cameras.On("SetViewCount", mock.Anything, "c-1", 42).
		Return(errors.NewDatabaseError("write failed", nil))

	out, err := svc.Get(context.Background(), "", "c-1")
	require.NoError(t, err)
	assert.Equal(t, 41, out.ViewCount)
}

func TestCameraGetPrivateHiddenFromOthers(t *testing.T) {
	cameras, _, svc := newCameraFixture()
	cameras.On("GetByID", mock.Anything, "c-1").
		Return(&model.Camera{ID: "c-1", UserID: "alice", IsPublic: false}, nil)

	_, err := svc.Get(context.Background(), "bob", "c-1")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestCameraGetPrivateVisibleToOwner(t *testing.T) {
	cameras, users, svc := newCameraFixture()
	cameras.On("GetByID", mock.Anything, "c-1").
		Return(&model.Camera{ID: "c-1", UserID: "alice", IsPublic: false, ViewCount: 0}, nil)
	cameras.On("Images", mock.Anything, "c-1").Return([]model.CameraImage{}, nil)
	users.On("GetByID", mock.Anything, "alice").Return(&model.User{ID: "alice"}, nil)
	cameras.On("SetViewCount", mock.Anything, "c-1", 1).Return(nil)

	out, err := svc.Get(context.Background(), "alice", "c-1")
	require.NoError(t, err)
	assert.Equal(t, "c-1", out.ID)
}

func TestCameraCreateDefaultsToPublic(t *testing.T) {
	cameras, _, svc := newCameraFixture()
	cameras.On("Create", mock.Anything, mock.MatchedBy(func(ins model.CameraInsert) bool {
		return ins.IsPublic && ins.UserID == "u-1"
	})).Return(&model.Camera{ID: "c-1"}, nil)

	_, err := svc.Create(context.Background(), auth.UserContext{UserID: "u-1"}, services.CameraCreate{
		BrandName: "Leica",
		Model:     "M3",
	})
	require.NoError(t, err)
	cameras.AssertExpectations(t)
}

func TestCameraCreateHonorsExplicitPrivacy(t *testing.T) {
	cameras, _, svc := newCameraFixture()
	private := false
	cameras.On("Create", mock.Anything, mock.MatchedBy(func(ins model.CameraInsert) bool {
		return !ins.IsPublic
	})).Return(&model.Camera{ID: "c-1"}, nil)

	_, err := svc.Create(context.Background(), auth.UserContext{UserID: "u-1"}, services.CameraCreate{
		BrandName: "Leica",
		Model:     "M3",
		IsPublic:  &private,
	})
	require.NoError(t, err)
}
