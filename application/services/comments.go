package services

import (
	"context"

	"go.uber.org/zap"

	"retrolens-backend/application/ports"
	"retrolens-backend/domain/model"
	"retrolens-backend/pkg/auth"
	"retrolens-backend/pkg/errors"
)

// CommentService manages comments on discussions and cameras. Creating
// a comment is gated on a mutual follow with the content owner.
type CommentService struct {
	comments  ports.CommentRepository
	users     ports.UserRepository
	relations *RelationService
	logger    *zap.Logger
}

// NewCommentService creates the comment service.
func NewCommentService(
	comments ports.CommentRepository,
	users ports.UserRepository,
	relations *RelationService,
	logger *zap.Logger,
) *CommentService {
	return &CommentService{comments: comments, users: users, relations: relations, logger: logger}
}

// CommentCreate carries the client-supplied fields for a new comment.
// Exactly one of discussion_id and camera_id must be set.
type CommentCreate struct {
	DiscussionID *string `json:"discussion_id,omitempty"`
	CameraID     *string `json:"camera_id,omitempty"`
	ParentID     *string `json:"parent_id,omitempty"`
	Body         string  `json:"body" validate:"required"`
}

// Create inserts a comment by the principal, after the mutual-follow
// gate admits them.
func (s *CommentService) Create(ctx context.Context, principal auth.UserContext, req CommentCreate) (*model.Comment, error) {
	ref := model.TargetRef{DiscussionID: req.DiscussionID, CameraID: req.CameraID}
	kind, _, ownerID, err := s.relations.ResolveOwner(ctx, ref)
	if err != nil {
		return nil, err
	}
	if kind == model.TargetComment {
		return nil, errors.NewValidationError("comments can only target a discussion or a camera")
	}
	if err := s.relations.RequireMutual(ctx, principal.UserID, ownerID); err != nil {
		return nil, err
	}
	return s.comments.Create(ctx, model.CommentInsert{
		UserID:       principal.UserID,
		DiscussionID: req.DiscussionID,
		CameraID:     req.CameraID,
		ParentID:     req.ParentID,
		Body:         req.Body,
	})
}

// ListByTarget returns the comments under one piece of content, oldest
// first, with authors attached via a single batched lookup.
func (s *CommentService) ListByTarget(ctx context.Context, ref model.TargetRef) ([]model.CommentPublic, error) {
	kind, id, err := ref.Resolve()
	if err != nil {
		return nil, err
	}
	if kind == model.TargetComment {
		return nil, errors.NewValidationError("comments can only target a discussion or a camera")
	}
	rows, err := s.comments.ListByTarget(ctx, kind, id)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []model.CommentPublic{}, nil
	}

	authorSet := make(map[string]bool)
	for _, row := range rows {
		authorSet[row.UserID] = true
	}
	authorIDs := make([]string, 0, len(authorSet))
	for id := range authorSet {
		authorIDs = append(authorIDs, id)
	}
	authors, err := s.users.GetByIDs(ctx, authorIDs)
	if err != nil {
		return nil, err
	}
	authorByID := make(map[string]model.User, len(authors))
	for _, u := range authors {
		authorByID[u.ID] = u
	}

	out := make([]model.CommentPublic, 0, len(rows))
	for _, row := range rows {
		c := model.CommentPublic{Comment: row}
		if author, ok := authorByID[row.UserID]; ok {
			c.AuthorUsername = author.Username
			c.AuthorAvatar = author.AvatarURL
		}
		out = append(out, c)
	}
	return out, nil
}
