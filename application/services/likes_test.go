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

type likeFixture struct {
	likes       *mocks.LikeRepository
	follows     *mocks.FollowRepository
	discussions *mocks.DiscussionRepository
	svc         *services.LikeService
}

func newLikeFixture() *likeFixture {
	f := &likeFixture{
		likes:       new(mocks.LikeRepository),
		follows:     new(mocks.FollowRepository),
		discussions: new(mocks.DiscussionRepository),
	}
	relations := services.NewRelationService(f.follows, f.discussions, new(mocks.CameraRepository), new(mocks.CommentRepository), zap.NewNop())
	f.svc = services.NewLikeService(f.likes, relations, zap.NewNop())
	return f
}

func actor() auth.UserContext {
	return auth.UserContext{UserID: "actor", Email: "actor@example.com"}
}

func TestLikeRequiresMutualFollow(t *testing.T) {
	f := newLikeFixture()
	discussionID := "d-1"
	f.discussions.On("OwnerID", mock.Anything, discussionID).Return("owner", nil)
	f.follows.On("Exists", mock.Anything, "actor", "owner").Return(true, nil)
	f.follows.On("Exists", mock.Anything, "owner", "actor").Return(false, nil)

	_, err := f.svc.Like(context.Background(), actor(), model.TargetRef{DiscussionID: &discussionID})
	require.Error(t, err)
	assert.Equal(t, 403, errors.Status(err))
	f.likes.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLikeSucceedsAfterFollowBack(t *testing.T) {
	f := newLikeFixture()
	discussionID := "d-1"
	f.discussions.On("OwnerID", mock.Anything, discussionID).Return("owner", nil)

	// First attempt: the owner does not follow back yet.
	f.follows.On("Exists", mock.Anything, "actor", "owner").Return(true, nil).Once()
	f.follows.On("Exists", mock.Anything, "owner", "actor").Return(false, nil).Once()

	ref := model.TargetRef{DiscussionID: &discussionID}
	_, err := f.svc.Like(context.Background(), actor(), ref)
	require.Error(t, err)
	assert.Equal(t, 403, errors.Status(err))

	// After the follow-back the same request goes through.
	f.follows.On("Exists", mock.Anything, "actor", "owner").Return(true, nil).Once()
	f.follows.On("Exists", mock.Anything, "owner", "actor").Return(true, nil).Once()
	f.likes.On("Exists", mock.Anything, "actor", model.TargetDiscussion, discussionID).Return(false, nil)
	f.likes.On("Create", mock.Anything, mock.Anything).Return(&model.Like{ID: "l-1", UserID: "actor", DiscussionID: &discussionID}, nil)

	like, err := f.svc.Like(context.Background(), actor(), ref)
	require.NoError(t, err)
	assert.Equal(t, "l-1", like.ID)
}

func TestLikeOwnContentSkipsGate(t *testing.T) {
	f := newLikeFixture()
	discussionID := "d-1"
	f.discussions.On("OwnerID", mock.Anything, discussionID).Return("actor", nil)
	f.likes.On("Exists", mock.Anything, "actor", model.TargetDiscussion, discussionID).Return(false, nil)
	f.likes.On("Create", mock.Anything, mock.Anything).Return(&model.Like{ID: "l-1"}, nil)

	_, err := f.svc.Like(context.Background(), actor(), model.TargetRef{DiscussionID: &discussionID})
	require.NoError(t, err)
	f.follows.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything, mock.Anything)
}

func TestLikeTwiceRejected(t *testing.T) {
	f := newLikeFixture()
	discussionID := "d-1"
	f.discussions.On("OwnerID", mock.Anything, discussionID).Return("actor", nil)
	f.likes.On("Exists", mock.Anything, "actor", model.TargetDiscussion, discussionID).Return(true, nil)

	_, err := f.svc.Like(context.Background(), actor(), model.TargetRef{DiscussionID: &discussionID})
	require.Error(t, err)
	assert.Equal(t, 400, errors.Status(err))
	f.likes.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLikeRejectsAmbiguousTarget(t *testing.T) {
	f := newLikeFixture()
	discussionID := "d-1"
	cameraID := "c-1"

	_, err := f.svc.Like(context.Background(), actor(), model.TargetRef{DiscussionID: &discussionID, CameraID: &cameraID})
	require.Error(t, err)
	assert.Equal(t, 400, errors.Status(err))

	_, err = f.svc.Like(context.Background(), actor(), model.TargetRef{})
	require.Error(t, err)
	assert.Equal(t, 400, errors.Status(err))
}

func TestLikeGateFailureDenies(t *testing.T) {
	f := newLikeFixture()
	discussionID := "d-1"
	f.discussions.On("OwnerID", mock.Anything, discussionID).Return("owner", nil)
	f.follows.On("Exists", mock.Anything, "actor", "owner").
		Return(false, errors.NewDatabaseError("store unavailable", nil))

	_, err := f.svc.Like(context.Background(), actor(), model.TargetRef{DiscussionID: &discussionID})
	require.Error(t, err)
	assert.Equal(t, 403, errors.Status(err))
	f.likes.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUnlikeMissingLike(t *testing.T) {
	f := newLikeFixture()
	discussionID := "d-1"
	f.likes.On("Delete", mock.Anything, "actor", model.TargetDiscussion, discussionID).
		Return(errors.NewNotFoundError("like"))

	err := f.svc.Unlike(context.Background(), actor(), model.TargetRef{DiscussionID: &discussionID})
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestUnlikeSkipsGate(t *testing.T) {
	f := newLikeFixture()
	discussionID := "d-1"
	f.likes.On("Delete", mock.Anything, "actor", model.TargetDiscussion, discussionID).Return(nil)

	err := f.svc.Unlike(context.Background(), actor(), model.TargetRef{DiscussionID: &discussionID})
	require.NoError(t, err)
	f.follows.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything, mock.Anything)
	f.discussions.AssertNotCalled(t, "OwnerID", mock.Anything, mock.Anything)
}

func TestStatusForAnonymousViewer(t *testing.T) {
	f := newLikeFixture()
	cameraID := "c-1"
	f.likes.On("Count", mock.Anything, model.TargetCamera, cameraID).Return(4, nil)

	status, err := f.svc.Status(context.Background(), "", model.TargetRef{CameraID: &cameraID})
	require.NoError(t, err)
	assert.Equal(t, 4, status.Count)
	assert.False(t, status.Liked)
	f.likes.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestStatusForViewer(t *testing.T) {
	f := newLikeFixture()
	cameraID := "c-1"
	f.likes.On("Count", mock.Anything, model.TargetCamera, cameraID).Return(4, nil)
	f.likes.On("Exists", mock.Anything, "viewer", model.TargetCamera, cameraID).Return(true, nil)

	status, err := f.svc.Status(context.Background(), "viewer", model.TargetRef{CameraID: &cameraID})
	require.NoError(t, err)
	assert.Equal(t, 4, status.Count)
	assert.True(t, status.Liked)
}
