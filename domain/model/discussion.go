package model

// Discussion is a row in the discussions table. The stored column is
// named body; the API exposes it as content. The rename happens in
// exactly one place, Public().
type Discussion struct {
	ID         string   `json:"id"`
	UserID     string   `json:"user_id"`
	CategoryID *int     `json:"category_id,omitempty"`
	Title      string   `json:"title"`
	Body       string   `json:"body"`
	Tags       []string `json:"tags,omitempty"`
	IsPinned   bool     `json:"is_pinned"`
	IsLocked   bool     `json:"is_locked"`
	ViewCount  int      `json:"view_count"`
	CreatedAt  string   `json:"created_at"`
	UpdatedAt  string   `json:"updated_at"`
}

// DiscussionInsert is the insert payload for a new discussion.
type DiscussionInsert struct {
	UserID     string   `json:"user_id"`
	CategoryID *int     `json:"category_id,omitempty"`
	Title      string   `json:"title"`
	Body       string   `json:"body"`
	Tags       []string `json:"tags,omitempty"`
}

// DiscussionPublic is the API shape of a discussion. Enrichment fields
// are populated by the feed aggregator from batched lookups.
type DiscussionPublic struct {
	ID         string   `json:"id"`
	UserID     string   `json:"user_id"`
	CategoryID *int     `json:"category_id,omitempty"`
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	Tags       []string `json:"tags,omitempty"`
	IsPinned   bool     `json:"is_pinned"`
	IsLocked   bool     `json:"is_locked"`
	ViewCount  int      `json:"view_count"`
	CreatedAt  string   `json:"created_at"`
	UpdatedAt  string   `json:"updated_at"`

	AuthorUsername    string `json:"author_username,omitempty"`
	AuthorAvatar      string `json:"author_avatar,omitempty"`
	AuthorDisplayName string `json:"author_display_name,omitempty"`
	CategoryName      string `json:"category_name,omitempty"`
	CommentCount      int    `json:"comment_count"`
	LikeCount         int    `json:"like_count"`
	IsLiked           bool   `json:"is_liked"`
}

// Public maps the stored row to its API shape, aliasing body to content.
func (d Discussion) Public() DiscussionPublic {
	return DiscussionPublic{
		ID:         d.ID,
		UserID:     d.UserID,
		CategoryID: d.CategoryID,
		Title:      d.Title,
		Content:    d.Body,
		Tags:       d.Tags,
		IsPinned:   d.IsPinned,
		IsLocked:   d.IsLocked,
		ViewCount:  d.ViewCount,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

// Category is a row in the discussion_categories table.
type Category struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	Icon         string `json:"icon,omitempty"`
	DisplayOrder int    `json:"display_order"`
	CreatedAt    string `json:"created_at,omitempty"`
}
