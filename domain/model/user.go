package model

// User is a row in the users table. The id column stores the external
// identity provider's subject, so it is a string rather than a UUID.
type User struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	Email          string `json:"email"`
	DisplayName    string `json:"display_name,omitempty"`
	Bio            string `json:"bio,omitempty"`
	AvatarURL      string `json:"avatar_url,omitempty"`
	Location       string `json:"location,omitempty"`
	ExpertiseLevel string `json:"expertise_level,omitempty"`
	WebsiteURL     string `json:"website_url,omitempty"`
	InstagramURL   string `json:"instagram_url,omitempty"`
	CreatedAt      string `json:"created_at,omitempty"`
	UpdatedAt      string `json:"updated_at,omitempty"`
}

// UserPublic is the API shape of a user profile, augmented with counts
// that are computed per request.
type UserPublic struct {
	User
	CameraCount     int `json:"camera_count"`
	DiscussionCount int `json:"discussion_count"`
	FollowerCount   int `json:"follower_count"`
	FollowingCount  int `json:"following_count"`
}

// UserUpdate carries the patchable profile fields. Nil pointers are
// omitted from the update payload.
type UserUpdate struct {
	Username       *string `json:"username,omitempty"`
	Email          *string `json:"email,omitempty"`
	DisplayName    *string `json:"display_name,omitempty"`
	Bio            *string `json:"bio,omitempty"`
	AvatarURL      *string `json:"avatar_url,omitempty"`
	Location       *string `json:"location,omitempty"`
	ExpertiseLevel *string `json:"expertise_level,omitempty"`
	WebsiteURL     *string `json:"website_url,omitempty"`
	InstagramURL   *string `json:"instagram_url,omitempty"`
}
