package model

import "encoding/json"

// Camera is a row in the cameras table.
type Camera struct {
	ID               string          `json:"id"`
	UserID           string          `json:"user_id"`
	BrandName        string          `json:"brand_name"`
	Model            string          `json:"model"`
	Year             string          `json:"year,omitempty"`
	CameraType       string          `json:"camera_type,omitempty"`
	FilmFormat       string          `json:"film_format,omitempty"`
	Condition        string          `json:"condition,omitempty"`
	AcquisitionStory string          `json:"acquisition_story,omitempty"`
	TechnicalSpecs   json.RawMessage `json:"technical_specs,omitempty"`
	MarketValueMin   *float64        `json:"market_value_min,omitempty"`
	MarketValueMax   *float64        `json:"market_value_max,omitempty"`
	IsForSale        bool            `json:"is_for_sale"`
	IsForTrade       bool            `json:"is_for_trade"`
	IsPublic         bool            `json:"is_public"`
	ViewCount        int             `json:"view_count"`
	CreatedAt        string          `json:"created_at"`
	UpdatedAt        string          `json:"updated_at"`
}

// CameraInsert is the insert payload for a new camera.
type CameraInsert struct {
	UserID           string          `json:"user_id"`
	BrandName        string          `json:"brand_name"`
	Model            string          `json:"model"`
	Year             string          `json:"year,omitempty"`
	CameraType       string          `json:"camera_type,omitempty"`
	FilmFormat       string          `json:"film_format,omitempty"`
	Condition        string          `json:"condition,omitempty"`
	AcquisitionStory string          `json:"acquisition_story,omitempty"`
	TechnicalSpecs   json.RawMessage `json:"technical_specs,omitempty"`
	MarketValueMin   *float64        `json:"market_value_min,omitempty"`
	MarketValueMax   *float64        `json:"market_value_max,omitempty"`
	IsForSale        bool            `json:"is_for_sale"`
	IsForTrade       bool            `json:"is_for_trade"`
	IsPublic         bool            `json:"is_public"`
}

// CameraImage is a row in the camera_images table.
type CameraImage struct {
	ID           string `json:"id"`
	CameraID     string `json:"camera_id"`
	ImageURL     string `json:"image_url"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
	IsPrimary    bool   `json:"is_primary"`
	DisplayOrder int    `json:"display_order"`
	CreatedAt    string `json:"created_at,omitempty"`
}

// CameraPublic is the API shape of a camera with its related data.
type CameraPublic struct {
	Camera
	Images        []CameraImage `json:"images"`
	OwnerUsername string        `json:"owner_username,omitempty"`
	OwnerAvatar   string        `json:"owner_avatar,omitempty"`
}
