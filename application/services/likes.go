package services

import (
	"context"

	"go.uber.org/zap"

	"retrolens-backend/application/ports"
	"retrolens-backend/domain/model"
	"retrolens-backend/pkg/auth"
	"retrolens-backend/pkg/errors"
)

// LikeService manages like edges on discussions, cameras and comments.
// Creating a like is gated on a mutual follow with the content owner;
// removing one is not, so a broken follow never strands a like.
type LikeService struct {
	likes     ports.LikeRepository
	relations *RelationService
	logger    *zap.Logger
}

// NewLikeService creates the like service.
func NewLikeService(likes ports.LikeRepository, relations *RelationService, logger *zap.Logger) *LikeService {
	return &LikeService{likes: likes, relations: relations, logger: logger}
}

// Like records the principal's like on the referenced content. Liking
// twice is rejected rather than absorbed.
func (s *LikeService) Like(ctx context.Context, principal auth.UserContext, ref model.TargetRef) (*model.Like, error) {
	kind, id, ownerID, err := s.relations.ResolveOwner(ctx, ref)
	if err != nil {
		return nil, err
	}
	if err := s.relations.RequireMutual(ctx, principal.UserID, ownerID); err != nil {
		return nil, err
	}
	exists, err := s.likes.Exists(ctx, principal.UserID, kind, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errors.NewValidationError("you have already liked this content")
	}
	return s.likes.Create(ctx, model.Like{
		UserID:       principal.UserID,
		DiscussionID: ref.DiscussionID,
		CameraID:     ref.CameraID,
		CommentID:    ref.CommentID,
	})
}

// Unlike removes the principal's like; a like that was never there is a
// not-found error.
func (s *LikeService) Unlike(ctx context.Context, principal auth.UserContext, ref model.TargetRef) error {
	kind, id, err := ref.Resolve()
	if err != nil {
		return err
	}
	return s.likes.Delete(ctx, principal.UserID, kind, id)
}

// LikeStatus is the like state of one piece of content for one viewer.
type LikeStatus struct {
	Liked bool `json:"liked"`
	Count int  `json:"count"`
}

// Status returns whether the viewer has liked the content and its total
// like count. An empty viewer id reports liked as false.
func (s *LikeService) Status(ctx context.Context, viewerID string, ref model.TargetRef) (*LikeStatus, error) {
	kind, id, err := ref.Resolve()
	if err != nil {
		return nil, err
	}
	count, err := s.likes.Count(ctx, kind, id)
	if err != nil {
		return nil, err
	}
	status := &LikeStatus{Count: count}
	if viewerID != "" {
		status.Liked, err = s.likes.Exists(ctx, viewerID, kind, id)
		if err != nil {
			return nil, err
		}
	}
	return status, nil
}
