// Package ports defines the interfaces between the application services
// and the row-store adapters. The store itself is an external
// collaborator; these are the only operations the core needs from it.
package ports

import (
	"context"

	"retrolens-backend/domain/model"
)

// UserRepository reads and writes rows in the users table.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	// GetByIDs batch-fetches users for the given ids in one query.
	GetByIDs(ctx context.Context, ids []string) ([]model.User, error)
	List(ctx context.Context, offset, limit int) ([]model.User, error)
	Create(ctx context.Context, user model.User) (*model.User, error)
	Update(ctx context.Context, id string, patch model.UserUpdate) (*model.User, error)
}

// DiscussionPage describes one page of the discussions table.
type DiscussionPage struct {
	// OwnerIDs restricts the page to these authors when non-empty.
	OwnerIDs  []string
	SortBy    string
	Ascending bool
	Offset    int
	Limit     int
}

// DiscussionRepository reads and writes rows in the discussions table.
type DiscussionRepository interface {
	List(ctx context.Context, offset, limit int) ([]model.Discussion, error)
	GetByID(ctx context.Context, id string) (*model.Discussion, error)
	GetByIDs(ctx context.Context, ids []string) ([]model.Discussion, error)
	Create(ctx context.Context, ins model.DiscussionInsert) (*model.Discussion, error)
	Page(ctx context.Context, page DiscussionPage) ([]model.Discussion, error)
	OwnerID(ctx context.Context, id string) (string, error)
	CountByOwner(ctx context.Context, ownerID string) (int, error)
}

// CameraRepository reads and writes rows in the cameras and
// camera_images tables.
type CameraRepository interface {
	ListPublic(ctx context.Context, offset, limit int) ([]model.Camera, error)
	GetByID(ctx context.Context, id string) (*model.Camera, error)
	Create(ctx context.Context, ins model.CameraInsert) (*model.Camera, error)
	Images(ctx context.Context, cameraID string) ([]model.CameraImage, error)
	// ImagesByCameraIDs batch-fetches images for the given cameras in one query.
	ImagesByCameraIDs(ctx context.Context, cameraIDs []string) (map[string][]model.CameraImage, error)
	SetViewCount(ctx context.Context, id string, count int) error
	OwnerID(ctx context.Context, id string) (string, error)
	CountByOwner(ctx context.Context, ownerID string) (int, error)
}

// CommentRepository reads and writes rows in the comments table.
type CommentRepository interface {
	Create(ctx context.Context, ins model.CommentInsert) (*model.Comment, error)
	ListByTarget(ctx context.Context, kind model.TargetKind, id string) ([]model.Comment, error)
	OwnerID(ctx context.Context, id string) (string, error)
}

// LikeRepository reads and writes rows in the likes table.
type LikeRepository interface {
	Create(ctx context.Context, ins model.Like) (*model.Like, error)
	// Delete removes the actor's like on the target; a missing edge is a
	// not-found error.
	Delete(ctx context.Context, userID string, kind model.TargetKind, targetID string) error
	Exists(ctx context.Context, userID string, kind model.TargetKind, targetID string) (bool, error)
	Count(ctx context.Context, kind model.TargetKind, targetID string) (int, error)
	// LikedDiscussionIDs returns, in a single membership query, the subset
	// of discussionIDs the user has liked.
	LikedDiscussionIDs(ctx context.Context, userID string, discussionIDs []string) (map[string]bool, error)
}

// FollowRepository reads and writes rows in the follows table.
type FollowRepository interface {
	// Exists reports whether the directed follower -> followee edge exists.
	Exists(ctx context.Context, followerID, followingID string) (bool, error)
	Create(ctx context.Context, followerID, followingID string) (*model.Follow, error)
	// Delete removes the edge; a missing edge is a not-found error.
	Delete(ctx context.Context, followerID, followingID string) error
	List(ctx context.Context, followerID, followingID string) ([]model.Follow, error)
	FollowingIDs(ctx context.Context, followerID string) ([]string, error)
	FollowerIDs(ctx context.Context, followingID string) ([]string, error)
	CountFollowers(ctx context.Context, userID string) (int, error)
	CountFollowing(ctx context.Context, userID string) (int, error)
}

// CategoryRepository reads rows in the discussion_categories table.
type CategoryRepository interface {
	List(ctx context.Context) ([]model.Category, error)
	// NamesByIDs batch-fetches category labels for the given ids.
	NamesByIDs(ctx context.Context, ids []int) (map[int]string, error)
}

// StatsRepository exposes the bulk counting capability of the row store:
// one query resolves counts for many content ids at once.
type StatsRepository interface {
	DiscussionCommentCounts(ctx context.Context, discussionIDs []string) (map[string]int, error)
	DiscussionLikeCounts(ctx context.Context, discussionIDs []string) (map[string]int, error)
}

// FileStore uploads blobs to the object storage collaborator and returns
// their public URL.
type FileStore interface {
	Upload(ctx context.Context, bucket, path string, data []byte, contentType string, upsert bool) (string, error)
}
