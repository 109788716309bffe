package supabase

import (
	"context"

	"github.com/supabase-community/supabase-go"
	"go.uber.org/zap"

	"retrolens-backend/application/ports"
	"retrolens-backend/domain/model"
	"retrolens-backend/pkg/errors"
	"retrolens-backend/pkg/observability"
)

// targetColumn maps a target kind to its foreign-key column in the
// likes and comments tables.
func targetColumn(kind model.TargetKind) string {
	switch kind {
	case model.TargetDiscussion:
		return "discussion_id"
	case model.TargetCamera:
		return "camera_id"
	default:
		return "comment_id"
	}
}

// FollowRepository is the follows table adapter.
type FollowRepository struct {
	store
}

// NewFollowRepository creates a follows adapter.
func NewFollowRepository(client *supabase.Client, logger *zap.Logger, metrics *observability.Collector) ports.FollowRepository {
	return &FollowRepository{store{client: client, logger: logger, metrics: metrics}}
}

func (r *FollowRepository) Exists(ctx context.Context, followerID, followingID string) (bool, error) {
	var rows []struct {
		ID string `json:"id"`
	}
	_, err := r.client.From("follows").Select("id", "", false).
		Eq("follower_id", followerID).
		Eq("following_id", followingID).
		ExecuteTo(&rows)
	r.observe("select", "follows", err)
	if err != nil {
		return false, errors.NewDatabaseError("failed to check follow edge", err)
	}
	return len(rows) > 0, nil
}

func (r *FollowRepository) Create(ctx context.Context, followerID, followingID string) (*model.Follow, error) {
	ins := map[string]string{
		"follower_id":  followerID,
		"following_id": followingID,
	}
	var rows []model.Follow
	_, err := r.client.From("follows").Insert(ins, false, "", "representation", "").ExecuteTo(&rows)
	r.observe("insert", "follows", err)
	if err != nil {
		return nil, errors.NewDatabaseError("failed to create follow", err)
	}
	if len(rows) == 0 {
		return nil, errors.NewDatabaseError("failed to create follow", nil)
	}
	return &rows[0], nil
}

func (r *FollowRepository) Delete(ctx context.Context, followerID, followingID string) error {
	var rows []model.Follow
	_, err := r.client.From("follows").Delete("representation", "").
		Eq("follower_id", followerID).
		Eq("following_id", followingID).
		ExecuteTo(&rows)
	r.observe("delete", "follows", err)
	if err != nil {
		return errors.NewDatabaseError("failed to delete follow", err)
	}
	if len(rows) == 0 {
		return errors.NewNotFoundError("follow relationship")
	}
	return nil
}

func (r *FollowRepository) List(ctx context.Context, followerID, followingID string) ([]model.Follow, error) {
	q := r.client.From("follows").Select("*", "", false)
	if followerID != "" {
		q = q.Eq("follower_id", followerID)
	}
	if followingID != "" {
		q = q.Eq("following_id", followingID)
	}
	var rows []model.Follow
	_, err := q.ExecuteTo(&rows)
	r.observe("select", "follows", err)
	if err != nil {
		return nil, errors.NewDatabaseError("failed to list follows", err)
	}
	return rows, nil
}

func (r *FollowRepository) FollowingIDs(ctx context.Context, followerID string) ([]string, error) {
	var rows []struct {
		FollowingID string `json:"following_id"`
	}
	_, err := r.client.From("follows").Select("following_id", "", false).
		Eq("follower_id", followerID).
		ExecuteTo(&rows)
	r.observe("select", "follows", err)
	if err != nil {
		return nil, errors.NewDatabaseError("failed to fetch following set", err)
	}
	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.FollowingID)
	}
	return ids, nil
}

func (r *FollowRepository) FollowerIDs(ctx context.Context, followingID string) ([]string, error) {
	var rows []struct {
		FollowerID string `json:"follower_id"`
	}
	_, err := r.client.From("follows").Select("follower_id", "", false).
		Eq("following_id", followingID).
		ExecuteTo(&rows)
	r.observe("select", "follows", err)
	if err != nil {
		return nil, errors.NewDatabaseError("failed to fetch follower set", err)
	}
	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.FollowerID)
	}
	return ids, nil
}

func (r *FollowRepository) CountFollowers(ctx context.Context, userID string) (int, error) {
	_, count, err := r.client.From("follows").Select("id", "exact", true).Eq("following_id", userID).Execute()
	r.observe("count", "follows", err)
	if err != nil {
		return 0, errors.NewDatabaseError("failed to count followers", err)
	}
	return int(count), nil
}

func (r *FollowRepository) CountFollowing(ctx context.Context, userID string) (int, error) {
	_, count, err := r.client.From("follows").Select("id", "exact", true).Eq("follower_id", userID).Execute()
	r.observe("count", "follows", err)
	if err != nil {
		return 0, errors.NewDatabaseError("failed to count following", err)
	}
	return int(count), nil
}

// LikeRepository is the likes table adapter.
type LikeRepository struct {
	store
}

// NewLikeRepository creates a likes adapter.
func NewLikeRepository(client *supabase.Client, logger *zap.Logger, metrics *observability.Collector) ports.LikeRepository {
	return &LikeRepository{store{client: client, logger: logger, metrics: metrics}}
}

func (r *LikeRepository) Create(ctx context.Context, ins model.Like) (*model.Like, error) {
	var rows []model.Like
	_, err := r.client.From("likes").Insert(ins, false, "", "representation", "").ExecuteTo(&rows)
	r.observe("insert", "likes", err)
	if err != nil {
		return nil, errors.NewDatabaseError("failed to create like", err)
	}
	if len(rows) == 0 {
		return nil, errors.NewDatabaseError("failed to create like", nil)
	}
	return &rows[0], nil
}

func (r *LikeRepository) Delete(ctx context.Context, userID string, kind model.TargetKind, targetID string) error {
	var rows []model.Like
	_, err := r.client.From("likes").Delete("representation", "").
		Eq("user_id", userID).
		Eq(targetColumn(kind), targetID).
		ExecuteTo(&rows)
	r.observe("delete", "likes", err)
	if err != nil {
		return errors.NewDatabaseError("failed to delete like", err)
	}
	if len(rows) == 0 {
		return errors.NewNotFoundError("like")
	}
	return nil
}

func (r *LikeRepository) Exists(ctx context.Context, userID string, kind model.TargetKind, targetID string) (bool, error) {
	var rows []struct {
		ID string `json:"id"`
	}
	_, err := r.client.From("likes").Select("id", "", false).
		Eq("user_id", userID).
		Eq(targetColumn(kind), targetID).
		ExecuteTo(&rows)
	r.observe("select", "likes", err)
	if err != nil {
		return false, errors.NewDatabaseError("failed to check like", err)
	}
	return len(rows) > 0, nil
}

func (r *LikeRepository) Count(ctx context.Context, kind model.TargetKind, targetID string) (int, error) {
	_, count, err := r.client.From("likes").Select("id", "exact", true).
		Eq(targetColumn(kind), targetID).
		Execute()
	r.observe("count", "likes", err)
	if err != nil {
		return 0, errors.NewDatabaseError("failed to count likes", err)
	}
	return int(count), nil
}

func (r *LikeRepository) LikedDiscussionIDs(ctx context.Context, userID string, discussionIDs []string) (map[string]bool, error) {
	if len(discussionIDs) == 0 {
		return map[string]bool{}, nil
	}
	var rows []struct {
		DiscussionID string `json:"discussion_id"`
	}
	_, err := r.client.From("likes").Select("discussion_id", "", false).
		Eq("user_id", userID).
		In("discussion_id", discussionIDs).
		ExecuteTo(&rows)
	r.observe("select", "likes", err)
	if err != nil {
		return nil, errors.NewDatabaseError("failed to fetch liked discussions", err)
	}
	liked := make(map[string]bool, len(rows))
	for _, row := range rows {
		liked[row.DiscussionID] = true
	}
	return liked, nil
}

// CommentRepository is the comments table adapter.
type CommentRepository struct {
	store
}

// NewCommentRepository creates a comments adapter.
func NewCommentRepository(client *supabase.Client, logger *zap.Logger, metrics *observability.Collector) ports.CommentRepository {
	return &CommentRepository{store{client: client, logger: logger, metrics: metrics}}
}

func (r *CommentRepository) Create(ctx context.Context, ins model.CommentInsert) (*model.Comment, error) {
	var rows []model.Comment
	_, err := r.client.From("comments").Insert(ins, false, "", "representation", "").ExecuteTo(&rows)
	r.observe("insert", "comments", err)
	if err != nil {
		return nil, errors.NewDatabaseError("failed to create comment", err)
	}
	if len(rows) == 0 {
		return nil, errors.NewDatabaseError("failed to create comment", nil)
	}
	return &rows[0], nil
}

func (r *CommentRepository) ListByTarget(ctx context.Context, kind model.TargetKind, id string) ([]model.Comment, error) {
	var rows []model.Comment
	_, err := r.client.From("comments").Select("*", "", false).
		Eq(targetColumn(kind), id).
		ExecuteTo(&rows)
	r.observe("select", "comments", err)
	if err != nil {
		return nil, errors.NewDatabaseError("failed to list comments", err)
	}
	return rows, nil
}

func (r *CommentRepository) OwnerID(ctx context.Context, id string) (string, error) {
	var rows []struct {
		UserID string `json:"user_id"`
	}
	_, err := r.client.From("comments").Select("user_id", "", false).Eq("id", id).ExecuteTo(&rows)
	r.observe("select", "comments", err)
	if err != nil {
		return "", errors.NewDatabaseError("failed to fetch comment owner", err)
	}
	if len(rows) == 0 {
		return "", errors.NewNotFoundError("comment")
	}
	return rows[0].UserID, nil
}
