package model

import "retrolens-backend/pkg/errors"

// Follow is a row in the follows table: an ordered follower -> followee edge.
type Follow struct {
	ID          string `json:"id"`
	FollowerID  string `json:"follower_id"`
	FollowingID string `json:"following_id"`
	CreatedAt   string `json:"created_at"`
}

// Comment is a row in the comments table. A comment targets either a
// discussion or a camera, never both.
type Comment struct {
	ID           string  `json:"id"`
	UserID       string  `json:"user_id"`
	DiscussionID *string `json:"discussion_id,omitempty"`
	CameraID     *string `json:"camera_id,omitempty"`
	ParentID     *string `json:"parent_id,omitempty"`
	Body         string  `json:"body"`
	IsEdited     bool    `json:"is_edited"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

// CommentPublic is the API shape of a comment with its author attached.
type CommentPublic struct {
	Comment
	AuthorUsername string `json:"author_username,omitempty"`
	AuthorAvatar   string `json:"author_avatar,omitempty"`
}

// CommentInsert is the insert payload for a new comment.
type CommentInsert struct {
	UserID       string  `json:"user_id"`
	DiscussionID *string `json:"discussion_id,omitempty"`
	CameraID     *string `json:"camera_id,omitempty"`
	ParentID     *string `json:"parent_id,omitempty"`
	Body         string  `json:"body"`
}

// Like is a row in the likes table.
type Like struct {
	ID           string  `json:"id"`
	UserID       string  `json:"user_id"`
	DiscussionID *string `json:"discussion_id,omitempty"`
	CameraID     *string `json:"camera_id,omitempty"`
	CommentID    *string `json:"comment_id,omitempty"`
	CreatedAt    string  `json:"created_at"`
}

// TargetKind names the content tables an interaction may point at.
type TargetKind string

const (
	TargetDiscussion TargetKind = "discussion"
	TargetCamera     TargetKind = "camera"
	TargetComment    TargetKind = "comment"
)

// TargetRef identifies a single piece of content by exactly one id.
type TargetRef struct {
	DiscussionID *string `json:"discussion_id,omitempty"`
	CameraID     *string `json:"camera_id,omitempty"`
	CommentID    *string `json:"comment_id,omitempty"`
}

// Resolve returns the kind and id of the one target that is set.
// Zero or more than one set id is a validation error, never guessed at.
func (r TargetRef) Resolve() (TargetKind, string, error) {
	var (
		kind TargetKind
		id   string
		n    int
	)
	if r.DiscussionID != nil {
		kind, id, n = TargetDiscussion, *r.DiscussionID, n+1
	}
	if r.CameraID != nil {
		kind, id, n = TargetCamera, *r.CameraID, n+1
	}
	if r.CommentID != nil {
		kind, id, n = TargetComment, *r.CommentID, n+1
	}
	if n != 1 {
		return "", "", errors.NewValidationError("exactly one of discussion_id, camera_id, or comment_id must be provided")
	}
	return kind, id, nil
}
