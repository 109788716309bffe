package services

import (
	"context"

	"go.uber.org/zap"

	"retrolens-backend/application/ports"
	"retrolens-backend/domain/model"
	"retrolens-backend/pkg/auth"
	"retrolens-backend/pkg/errors"
)

// CameraService manages collection entries and their image galleries.
type CameraService struct {
	cameras ports.CameraRepository
	users   ports.UserRepository
	logger  *zap.Logger
}

// NewCameraService creates the collection service.
func NewCameraService(cameras ports.CameraRepository, users ports.UserRepository, logger *zap.Logger) *CameraService {
	return &CameraService{cameras: cameras, users: users, logger: logger}
}

// List returns a page of public cameras with their galleries and owner
// attribution attached. Images and owners are each fetched in one
// batched query for the whole page.
func (s *CameraService) List(ctx context.Context, offset, limit int) ([]model.CameraPublic, error) {
	rows, err := s.cameras.ListPublic(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []model.CameraPublic{}, nil
	}

	ids := make([]string, 0, len(rows))
	ownerSet := make(map[string]bool)
	for _, row := range rows {
		ids = append(ids, row.ID)
		ownerSet[row.UserID] = true
	}
	ownerIDs := make([]string, 0, len(ownerSet))
	for id := range ownerSet {
		ownerIDs = append(ownerIDs, id)
	}

	images, err := s.cameras.ImagesByCameraIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	owners, err := s.users.GetByIDs(ctx, ownerIDs)
	if err != nil {
		return nil, err
	}
	ownerByID := make(map[string]model.User, len(owners))
	for _, u := range owners {
		ownerByID[u.ID] = u
	}

	out := make([]model.CameraPublic, 0, len(rows))
	for _, row := range rows {
		entry := model.CameraPublic{Camera: row, Images: images[row.ID]}
		if entry.Images == nil {
			entry.Images = []model.CameraImage{}
		}
		if owner, ok := ownerByID[row.UserID]; ok {
			entry.OwnerUsername = owner.Username
			entry.OwnerAvatar = owner.AvatarURL
		}
		out = append(out, entry)
	}
	return out, nil
}

// Get returns one camera with its gallery and owner, bumping the view
// count. Private cameras are only visible to their owner.
func (s *CameraService) Get(ctx context.Context, viewerID, id string) (*model.CameraPublic, error) {
	row, err := s.cameras.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !row.IsPublic && row.UserID != viewerID {
		return nil, errors.NewNotFoundError("camera")
	}

	images, err := s.cameras.Images(ctx, id)
	if err != nil {
		return nil, err
	}
	entry := model.CameraPublic{Camera: *row, Images: images}
	if entry.Images == nil {
		entry.Images = []model.CameraImage{}
	}
	if owner, err := s.users.GetByID(ctx, row.UserID); err == nil {
		entry.OwnerUsername = owner.Username
		entry.OwnerAvatar = owner.AvatarURL
	}

	// View counting is best effort; a failed bump never fails the read.
	if err := s.cameras.SetViewCount(ctx, id, row.ViewCount+1); err != nil {
		s.logger.Warn("view count update failed", zap.String("camera_id", id), zap.Error(err))
	} else {
		entry.ViewCount = row.ViewCount + 1
	}
	return &entry, nil
}

// CameraCreate carries the client-supplied fields for a new camera.
type CameraCreate struct {
	BrandName        string   `json:"brand_name" validate:"required"`
	Model            string   `json:"model" validate:"required"`
	Year             string   `json:"year"`
	CameraType       string   `json:"camera_type"`
	FilmFormat       string   `json:"film_format"`
	Condition        string   `json:"condition"`
	AcquisitionStory string   `json:"acquisition_story"`
	MarketValueMin   *float64 `json:"market_value_min"`
	MarketValueMax   *float64 `json:"market_value_max"`
	IsForSale        bool     `json:"is_for_sale"`
	IsForTrade       bool     `json:"is_for_trade"`
	IsPublic         *bool    `json:"is_public"`
}

// Create inserts a camera owned by the principal. Cameras default to
// public unless the client says otherwise.
func (s *CameraService) Create(ctx context.Context, principal auth.UserContext, req CameraCreate) (*model.Camera, error) {
	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}
	return s.cameras.Create(ctx, model.CameraInsert{
		UserID:           principal.UserID,
		BrandName:        req.BrandName,
		Model:            req.Model,
		Year:             req.Year,
		CameraType:       req.CameraType,
		FilmFormat:       req.FilmFormat,
		Condition:        req.Condition,
		AcquisitionStory: req.AcquisitionStory,
		MarketValueMin:   req.MarketValueMin,
		MarketValueMax:   req.MarketValueMax,
		IsForSale:        req.IsForSale,
		IsForTrade:       req.IsForTrade,
		IsPublic:         isPublic,
	})
}
