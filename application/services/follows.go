package services

import (
	"context"

	"go.uber.org/zap"

	"retrolens-backend/application/ports"
	"retrolens-backend/domain/model"
	"retrolens-backend/pkg/errors"
)

// FollowService manages directed follow edges.
type FollowService struct {
	follows ports.FollowRepository
	users   ports.UserRepository
	feed    *FeedService
	logger  *zap.Logger
}

// NewFollowService creates the follow service.
func NewFollowService(follows ports.FollowRepository, users ports.UserRepository, feed *FeedService, logger *zap.Logger) *FollowService {
	return &FollowService{follows: follows, users: users, feed: feed, logger: logger}
}

// Follow creates the follower -> following edge. Following yourself or
// a user you already follow is rejected; following a user who does not
// exist is a not-found error.
func (s *FollowService) Follow(ctx context.Context, followerID, followingID string) (*model.Follow, error) {
	if followerID == followingID {
		return nil, errors.NewValidationError("you cannot follow yourself")
	}
	if _, err := s.users.GetByID(ctx, followingID); err != nil {
		return nil, err
	}
	exists, err := s.follows.Exists(ctx, followerID, followingID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errors.NewValidationError("you are already following this user")
	}
	edge, err := s.follows.Create(ctx, followerID, followingID)
	if err != nil {
		return nil, err
	}
	s.feed.InvalidateFollowing(followerID)
	return edge, nil
}

// Unfollow removes the edge; a missing edge is a not-found error.
func (s *FollowService) Unfollow(ctx context.Context, followerID, followingID string) error {
	if err := s.follows.Delete(ctx, followerID, followingID); err != nil {
		return err
	}
	s.feed.InvalidateFollowing(followerID)
	return nil
}

// List returns follow edges filtered by either endpoint; both filters
// empty returns nothing rather than the whole table.
func (s *FollowService) List(ctx context.Context, followerID, followingID string) ([]model.Follow, error) {
	if followerID == "" && followingID == "" {
		return nil, errors.NewValidationError("follower_id or following_id is required")
	}
	return s.follows.List(ctx, followerID, followingID)
}

// Followers returns the profiles following the given user.
func (s *FollowService) Followers(ctx context.Context, userID string) ([]model.User, error) {
	ids, err := s.follows.FollowerIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []model.User{}, nil
	}
	return s.users.GetByIDs(ctx, ids)
}

// Following returns the profiles the given user follows.
func (s *FollowService) Following(ctx context.Context, userID string) ([]model.User, error) {
	ids, err := s.follows.FollowingIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []model.User{}, nil
	}
	return s.users.GetByIDs(ctx, ids)
}

// IsFollowing reports whether the directed edge exists.
func (s *FollowService) IsFollowing(ctx context.Context, followerID, followingID string) (bool, error) {
	return s.follows.Exists(ctx, followerID, followingID)
}
