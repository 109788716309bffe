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
	"retrolens-backend/pkg/cache"
	"retrolens-backend/pkg/errors"
	"retrolens-backend/tests/mocks"
)

type followFixture struct {
	follows *mocks.FollowRepository
	users   *mocks.UserRepository
	svc     *services.FollowService
}

func newFollowFixture() *followFixture {
	f := &followFixture{
		follows: new(mocks.FollowRepository),
		users:   new(mocks.UserRepository),
	}
	feed := services.NewFeedService(
		new(mocks.DiscussionRepository),
		f.users,
		new(mocks.CategoryRepository),
		new(mocks.StatsRepository),
		new(mocks.LikeRepository),
		f.follows,
		cache.New(),
		zap.NewNop(),
	)
	f.svc = services.NewFollowService(f.follows, f.users, feed, zap.NewNop())
	return f
}

func TestFollowSelfRejected(t *testing.T) {
	f := newFollowFixture()

	_, err := f.svc.Follow(context.Background(), "u-1", "u-1")
	require.Error(t, err)
	assert.Equal(t, 400, errors.Status(err))
	f.follows.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestFollowUnknownUserRejected(t *testing.T) {
	f := newFollowFixture()
	f.users.On("GetByID", mock.Anything, "ghost").Return(nil, errors.NewNotFoundError("user"))

	_, err := f.svc.Follow(context.Background(), "u-1", "ghost")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestFollowDuplicateRejected(t *testing.T) {
	f := newFollowFixture()
	f.users.On("GetByID", mock.Anything, "u-2").Return(&model.User{ID: "u-2"}, nil)
	f.follows.On("Exists", mock.Anything, "u-1", "u-2").Return(true, nil)

	_, err := f.svc.Follow(context.Background(), "u-1", "u-2")
	require.Error(t, err)
	assert.Equal(t, 400, errors.Status(err))
	f.follows.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestFollowCreatesEdge(t *testing.T) {
	f := newFollowFixture()
	f.users.On("GetByID", mock.Anything, "u-2").Return(&model.User{ID: "u-2"}, nil)
	f.follows.On("Exists", mock.Anything, "u-1", "u-2").Return(false, nil)
	f.follows.On("Create", mock.Anything, "u-1", "u-2").
		Return(&model.Follow{ID: "f-1", FollowerID: "u-1", FollowingID: "u-2"}, nil)

	edge, err := f.svc.Follow(context.Background(), "u-1", "u-2")
	require.NoError(t, err)
	assert.Equal(t, "f-1", edge.ID)
	f.follows.AssertExpectations(t)
}

func TestUnfollowMissingEdge(t *testing.T) {
	f := newFollowFixture()
	f.follows.On("Delete", mock.Anything, "u-1", "u-2").Return(errors.NewNotFoundError("follow"))

	err := f.svc.Unfollow(context.Background(), "u-1", "u-2")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestListRequiresAFilter(t *testing.T) {
	f := newFollowFixture()

	_, err := f.svc.List(context.Background(), "", "")
	require.Error(t, err)
	assert.Equal(t, 400, errors.Status(err))
	f.follows.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything)
}

func TestFollowersResolvesProfiles(t *testing.T) {
	f := newFollowFixture()
	f.follows.On("FollowerIDs", mock.Anything, "u-1").Return([]string{"a", "b"}, nil)
	f.users.On("GetByIDs", mock.Anything, []string{"a", "b"}).
		Return([]model.User{{ID: "a"}, {ID: "b"}}, nil)

	out, err := f.svc.Followers(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Len(t, out, 2)
}

func TestFollowersEmpty(t *testing.T) {
	f := newFollowFixture()
	f.follows.On("FollowerIDs", mock.Anything, "u-1").Return([]string{}, nil)

	out, err := f.svc.Followers(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Empty(t, out)
	f.users.AssertNotCalled(t, "GetByIDs", mock.Anything, mock.Anything)
}
