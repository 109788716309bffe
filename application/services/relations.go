// Package services holds the application layer: each service owns one
// slice of the API surface and talks to the row store only through the
// ports package.
package services

import (
	"context"

	"go.uber.org/zap"

	"retrolens-backend/application/ports"
	"retrolens-backend/domain/model"
	"retrolens-backend/pkg/errors"
)

// RelationService answers the mutual-follow question that gates
// interactions between users. The check is symmetric: both directed
// follow edges must exist. Store failures deny access rather than
// granting it.
type RelationService struct {
	follows     ports.FollowRepository
	discussions ports.DiscussionRepository
	cameras     ports.CameraRepository
	comments    ports.CommentRepository
	logger      *zap.Logger
}

// NewRelationService creates the interaction gate.
func NewRelationService(
	follows ports.FollowRepository,
	discussions ports.DiscussionRepository,
	cameras ports.CameraRepository,
	comments ports.CommentRepository,
	logger *zap.Logger,
) *RelationService {
	return &RelationService{
		follows:     follows,
		discussions: discussions,
		cameras:     cameras,
		comments:    comments,
		logger:      logger,
	}
}

// CanInteract reports whether actor may interact with content owned by
// owner. A user can always interact with their own content; everyone
// else needs a mutual follow.
func (s *RelationService) CanInteract(ctx context.Context, actorID, ownerID string) (bool, error) {
	if actorID == ownerID {
		return true, nil
	}
	actorFollowsOwner, err := s.follows.Exists(ctx, actorID, ownerID)
	if err != nil {
		s.logger.Warn("follow lookup failed, denying interaction",
			zap.String("actor_id", actorID),
			zap.String("owner_id", ownerID),
			zap.Error(err),
		)
		return false, nil
	}
	if !actorFollowsOwner {
		return false, nil
	}
	ownerFollowsActor, err := s.follows.Exists(ctx, ownerID, actorID)
	if err != nil {
		s.logger.Warn("follow lookup failed, denying interaction",
			zap.String("actor_id", actorID),
			zap.String("owner_id", ownerID),
			zap.Error(err),
		)
		return false, nil
	}
	return ownerFollowsActor, nil
}

// RequireMutual is CanInteract expressed as an authorization error.
func (s *RelationService) RequireMutual(ctx context.Context, actorID, ownerID string) error {
	ok, err := s.CanInteract(ctx, actorID, ownerID)
	if err != nil {
		return err
	}
	if !ok {
		s.logger.Debug("interaction denied",
			zap.String("actor_id", actorID),
			zap.String("owner_id", ownerID),
		)
		return errors.NewForbiddenError("you can only interact with users you mutually follow")
	}
	return nil
}

// ResolveOwner resolves a target reference to the content's kind, id and
// owning user. A target that does not exist is a not-found error.
func (s *RelationService) ResolveOwner(ctx context.Context, ref model.TargetRef) (model.TargetKind, string, string, error) {
	kind, id, err := ref.Resolve()
	if err != nil {
		return "", "", "", err
	}
	var ownerID string
	switch kind {
	case model.TargetDiscussion:
		ownerID, err = s.discussions.OwnerID(ctx, id)
	case model.TargetCamera:
		ownerID, err = s.cameras.OwnerID(ctx, id)
	case model.TargetComment:
		ownerID, err = s.comments.OwnerID(ctx, id)
	}
	if err != nil {
		return "", "", "", err
	}
	return kind, id, ownerID, nil
}
