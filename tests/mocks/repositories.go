// Package mocks provides testify mocks for the application ports.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"retrolens-backend/application/ports"
	"retrolens-backend/domain/model"
)

// UserRepository mocks ports.UserRepository.
type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *UserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *UserRepository) GetByIDs(ctx context.Context, ids []string) ([]model.User, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *UserRepository) List(ctx context.Context, offset, limit int) ([]model.User, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *UserRepository) Create(ctx context.Context, user model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *UserRepository) Update(ctx context.Context, id string, patch model.UserUpdate) (*model.User, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

// DiscussionRepository mocks ports.DiscussionRepository.
type DiscussionRepository struct {
	mock.Mock
}

func (m *DiscussionRepository) List(ctx context.Context, offset, limit int) ([]model.Discussion, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Discussion), args.Error(1)
}

func (m *DiscussionRepository) GetByID(ctx context.Context, id string) (*model.Discussion, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Discussion), args.Error(1)
}

func (m *DiscussionRepository) GetByIDs(ctx context.Context, ids []string) ([]model.Discussion, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Discussion), args.Error(1)
}

func (m *DiscussionRepository) Create(ctx context.Context, ins model.DiscussionInsert) (*model.Discussion, error) {
	args := m.Called(ctx, ins)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Discussion), args.Error(1)
}

func (m *DiscussionRepository) Page(ctx context.Context, page ports.DiscussionPage) ([]model.Discussion, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Discussion), args.Error(1)
}

func (m *DiscussionRepository) OwnerID(ctx context.Context, id string) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

func (m *DiscussionRepository) CountByOwner(ctx context.Context, ownerID string) (int, error) {
	args := m.Called(ctx, ownerID)
	return args.Int(0), args.Error(1)
}

// CameraRepository mocks ports.CameraRepository.
type CameraRepository struct {
	mock.Mock
}

func (m *CameraRepository) ListPublic(ctx context.Context, offset, limit int) ([]model.Camera, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Camera), args.Error(1)
}

func (m *CameraRepository) GetByID(ctx context.Context, id string) (*model.Camera, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Camera), args.Error(1)
}

func (m *CameraRepository) Create(ctx context.Context, ins model.CameraInsert) (*model.Camera, error) {
	args := m.Called(ctx, ins)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Camera), args.Error(1)
}

func (m *CameraRepository) Images(ctx context.Context, cameraID string) ([]model.CameraImage, error) {
	args := m.Called(ctx, cameraID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CameraImage), args.Error(1)
}

func (m *CameraRepository) ImagesByCameraIDs(ctx context.Context, cameraIDs []string) (map[string][]model.CameraImage, error) {
	args := m.Called(ctx, cameraIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string][]model.CameraImage), args.Error(1)
}

func (m *CameraRepository) SetViewCount(ctx context.Context, id string, count int) error {
	args := m.Called(ctx, id, count)
	return args.Error(0)
}

func (m *CameraRepository) OwnerID(ctx context.Context, id string) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

func (m *CameraRepository) CountByOwner(ctx context.Context, ownerID string) (int, error) {
	args := m.Called(ctx, ownerID)
	return args.Int(0), args.Error(1)
}

// CommentRepository mocks ports.CommentRepository.
type CommentRepository struct {
	mock.Mock
}

func (m *CommentRepository) Create(ctx context.Context, ins model.CommentInsert) (*model.Comment, error) {
	args := m.Called(ctx, ins)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Comment), args.Error(1)
}

func (m *CommentRepository) ListByTarget(ctx context.Context, kind model.TargetKind, id string) ([]model.Comment, error) {
	args := m.Called(ctx, kind, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Comment), args.Error(1)
}

func (m *CommentRepository) OwnerID(ctx context.Context, id string) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

// LikeRepository mocks ports.LikeRepository.
type LikeRepository struct {
	mock.Mock
}

func (m *LikeRepository) Create(ctx context.Context, ins model.Like) (*model.Like, error) {
	args := m.Called(ctx, ins)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Like), args.Error(1)
}

func (m *LikeRepository) Delete(ctx context.Context, userID string, kind model.TargetKind, targetID string) error {
	args := m.Called(ctx, userID, kind, targetID)
	return args.Error(0)
}

func (m *LikeRepository) Exists(ctx context.Context, userID string, kind model.TargetKind, targetID string) (bool, error) {
	args := m.Called(ctx, userID, kind, targetID)
	return args.Bool(0), args.Error(1)
}

func (m *LikeRepository) Count(ctx context.Context, kind model.TargetKind, targetID string) (int, error) {
	args := m.Called(ctx, kind, targetID)
	return args.Int(0), args.Error(1)
}

func (m *LikeRepository) LikedDiscussionIDs(ctx context.Context, userID string, discussionIDs []string) (map[string]bool, error) {
	args := m.Called(ctx, userID, discussionIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]bool), args.Error(1)
}

// FollowRepository mocks ports.FollowRepository.
type FollowRepository struct {
	mock.Mock
}

func (m *FollowRepository) Exists(ctx context.Context, followerID, followingID string) (bool, error) {
	args := m.Called(ctx, followerID, followingID)
	return args.Bool(0), args.Error(1)
}

func (m *FollowRepository) Create(ctx context.Context, followerID, followingID string) (*model.Follow, error) {
	args := m.Called(ctx, followerID, followingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Follow), args.Error(1)
}

func (m *FollowRepository) Delete(ctx context.Context, followerID, followingID string) error {
	args := m.Called(ctx, followerID, followingID)
	return args.Error(0)
}

func (m *FollowRepository) List(ctx context.Context, followerID, followingID string) ([]model.Follow, error) {
	args := m.Called(ctx, followerID, followingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Follow), args.Error(1)
}

func (m *FollowRepository) FollowingIDs(ctx context.Context, followerID string) ([]string, error) {
	args := m.Called(ctx, followerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *FollowRepository) FollowerIDs(ctx context.Context, followingID string) ([]string, error) {
	args := m.Called(ctx, followingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *FollowRepository) CountFollowers(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *FollowRepository) CountFollowing(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

// CategoryRepository mocks ports.CategoryRepository.
type CategoryRepository struct {
	mock.Mock
}

func (m *CategoryRepository) List(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Category), args.Error(1)
}

func (m *CategoryRepository) NamesByIDs(ctx context.Context, ids []int) (map[int]string, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int]string), args.Error(1)
}

// StatsRepository mocks ports.StatsRepository.
type StatsRepository struct {
	mock.Mock
}

func (m *StatsRepository) DiscussionCommentCounts(ctx context.Context, discussionIDs []string) (map[string]int, error) {
	args := m.Called(ctx, discussionIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int), args.Error(1)
}

func (m *StatsRepository) DiscussionLikeCounts(ctx context.Context, discussionIDs []string) (map[string]int, error) {
	args := m.Called(ctx, discussionIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int), args.Error(1)
}

// FileStore mocks ports.FileStore.
type FileStore struct {
	mock.Mock
}

func (m *FileStore) Upload(ctx context.Context, bucket, path string, data []byte, contentType string, upsert bool) (string, error) {
	args := m.Called(ctx, bucket, path, data, contentType, upsert)
	return args.String(0), args.Error(1)
}
