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
	"retrolens-backend/pkg/errors"
	"retrolens-backend/tests/mocks"
)

func newRelationService(follows *mocks.FollowRepository, discussions *mocks.DiscussionRepository, cameras *mocks.CameraRepository, comments *mocks.CommentRepository) *services.RelationService {
	return services.NewRelationService(follows, discussions, cameras, comments, zap.NewNop())
}

func TestCanInteractSelf(t *testing.T) {
	follows := new(mocks.FollowRepository)
	svc := newRelationService(follows, new(mocks.DiscussionRepository), new(mocks.CameraRepository), new(mocks.CommentRepository))

	ok, err := svc.CanInteract(context.Background(), "user-1", "user-1")
	require.NoError(t, err)
	assert.True(t, ok)
	follows.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything, mock.Anything)
}

func TestCanInteractRequiresBothDirections(t *testing.T) {
	tests := []struct {
		name          string
		actorFollows  bool
		ownerFollows  bool
		wantInteract  bool
		wantOwnerCall bool
	}{
		{"mutual", true, true, true, true},
		{"only actor follows", true, false, false, true},
		{"only owner follows", false, true, false, false},
		{"no edges", false, false, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			follows := new(mocks.FollowRepository)
			follows.On("Exists", mock.Anything, "actor", "owner").Return(tt.actorFollows, nil)
			if tt.wantOwnerCall {
				follows.On("Exists", mock.Anything, "owner", "actor").Return(tt.ownerFollows, nil)
			}
			svc := newRelationService(follows, new(mocks.DiscussionRepository), new(mocks.CameraRepository), new(mocks.CommentRepository))

			ok, err := svc.CanInteract(context.Background(), "actor", "owner")
			require.NoError(t, err)
			assert.Equal(t, tt.wantInteract, ok)
			follows.AssertExpectations(t)
		})
	}
}

func TestCanInteractFailsClosed(t *testing.T) {
	follows := new(mocks.FollowRepository)
	follows.On("Exists", mock.Anything, "actor", "owner").
		Return(false, errors.NewDatabaseError("store unavailable", nil))
	svc := newRelationService(follows, new(mocks.DiscussionRepository), new(mocks.CameraRepository), new(mocks.CommentRepository))

	ok, err := svc.CanInteract(context.Background(), "actor", "owner")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRequireMutualDeniesWhenStoreFails(t *testing.T) {
	follows := new(mocks.FollowRepository)
	follows.On("Exists", mock.Anything, "actor", "owner").
		Return(false, errors.NewDatabaseError("store unavailable", nil))
	svc := newRelationService(follows, new(mocks.DiscussionRepository), new(mocks.CameraRepository), new(mocks.CommentRepository))

	err := svc.RequireMutual(context.Background(), "actor", "owner")
	require.Error(t, err)
	assert.Equal(t, 403, errors.Status(err))
}

func TestRequireMutualDenied(t *testing.T) {
	follows := new(mocks.FollowRepository)
	follows.On("Exists", mock.Anything, "actor", "owner").Return(false, nil)
	svc := newRelationService(follows, new(mocks.DiscussionRepository), new(mocks.CameraRepository), new(mocks.CommentRepository))

	err := svc.RequireMutual(context.Background(), "actor", "owner")
	require.Error(t, err)
	assert.Equal(t, 403, errors.Status(err))
}

func TestResolveOwnerDispatchesByKind(t *testing.T) {
	discussionID := "d-1"
	cameraID := "c-1"
	commentID := "cm-1"

	discussions := new(mocks.DiscussionRepository)
	discussions.On("OwnerID", mock.Anything, discussionID).Return("owner-d", nil)
	cameras := new(mocks.CameraRepository)
	cameras.On("OwnerID", mock.Anything, cameraID).Return("owner-c", nil)
	comments := new(mocks.CommentRepository)
	comments.On("OwnerID", mock.Anything, commentID).Return("owner-cm", nil)

	svc := newRelationService(new(mocks.FollowRepository), discussions, cameras, comments)

	kind, id, owner, err := svc.ResolveOwner(context.Background(), model.TargetRef{DiscussionID: &discussionID})
	require.NoError(t, err)
	assert.Equal(t, model.TargetDiscussion, kind)
	assert.Equal(t, discussionID, id)
	assert.Equal(t, "owner-d", owner)

	kind, _, owner, err = svc.ResolveOwner(context.Background(), model.TargetRef{CameraID: &cameraID})
	require.NoError(t, err)
	assert.Equal(t, model.TargetCamera, kind)
	assert.Equal(t, "owner-c", owner)

	kind, _, owner, err = svc.ResolveOwner(context.Background(), model.TargetRef{CommentID: &commentID})
	require.NoError(t, err)
	assert.Equal(t, model.TargetComment, kind)
	assert.Equal(t, "owner-cm", owner)
}

func TestResolveOwnerRejectsAmbiguousTargets(t *testing.T) {
	discussionID := "d-1"
	cameraID := "c-1"
	svc := newRelationService(new(mocks.FollowRepository), new(mocks.DiscussionRepository), new(mocks.CameraRepository), new(mocks.CommentRepository))

	_, _, _, err := svc.ResolveOwner(context.Background(), model.TargetRef{})
	require.Error(t, err)
	assert.Equal(t, 400, errors.Status(err))

	_, _, _, err = svc.ResolveOwner(context.Background(), model.TargetRef{DiscussionID: &discussionID, CameraID: &cameraID})
	require.Error(t, err)
	assert.Equal(t, 400, errors.Status(err))
}

func TestResolveOwnerMissingTarget(t *testing.T) {
	discussionID := "gone"
	discussions := new(mocks.DiscussionRepository)
	discussions.On("OwnerID", mock.Anything, discussionID).Return("", errors.NewNotFoundError("discussion"))
	svc := newRelationService(new(mocks.FollowRepository), discussions, new(mocks.CameraRepository), new(mocks.CommentRepository))

	_, _, _, err := svc.ResolveOwner(context.Background(), model.TargetRef{DiscussionID: &discussionID})
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}
