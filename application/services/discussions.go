package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"retrolens-backend/application/ports"
	"retrolens-backend/domain/model"
	"retrolens-backend/pkg/auth"
	"retrolens-backend/pkg/cache"
)

const categoriesTTL = 300 * time.Second

// DiscussionService manages discussion rows and their categories.
// Enriched reads live in FeedService; this service owns writes and the
// plain row reads.
type DiscussionService struct {
	discussions ports.DiscussionRepository
	categories  ports.CategoryRepository
	cache       *cache.Cache
	logger      *zap.Logger
}

// NewDiscussionService creates the discussion service.
func NewDiscussionService(
	discussions ports.DiscussionRepository,
	categories ports.CategoryRepository,
	c *cache.Cache,
	logger *zap.Logger,
) *DiscussionService {
	return &DiscussionService{discussions: discussions, categories: categories, cache: c, logger: logger}
}

// DiscussionCreate carries the client-supplied fields for a new
// discussion. The API field is content; the stored column is body.
type DiscussionCreate struct {
	Title      string   `json:"title" validate:"required"`
	Content    string   `json:"content" validate:"required"`
	CategoryID int      `json:"category_id"`
	Tags       []string `json:"tags"`
}

// Create inserts a discussion authored by the principal. A zero
// category id means uncategorized and is stored as null.
func (s *DiscussionService) Create(ctx context.Context, principal auth.UserContext, req DiscussionCreate) (*model.DiscussionPublic, error) {
	ins := model.DiscussionInsert{
		UserID: principal.UserID,
		Title:  req.Title,
		Body:   req.Content,
		Tags:   req.Tags,
	}
	if req.CategoryID != 0 {
		categoryID := req.CategoryID
		ins.CategoryID = &categoryID
	}
	row, err := s.discussions.Create(ctx, ins)
	if err != nil {
		return nil, err
	}
	created := row.Public()
	return &created, nil
}

// List returns a page of discussions without enrichment.
func (s *DiscussionService) List(ctx context.Context, offset, limit int) ([]model.DiscussionPublic, error) {
	rows, err := s.discussions.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	out := make([]model.DiscussionPublic, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.Public())
	}
	return out, nil
}

// Get returns one discussion without enrichment.
func (s *DiscussionService) Get(ctx context.Context, id string) (*model.DiscussionPublic, error) {
	row, err := s.discussions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	d := row.Public()
	return &d, nil
}

// Categories returns every discussion category in display order,
// memoized since the set changes rarely.
func (s *DiscussionService) Categories(ctx context.Context) ([]model.Category, error) {
	const key = "categories:all"
	if payload, ok := s.cache.Get(key, categoriesTTL); ok {
		return payload.([]model.Category), nil
	}
	rows, err := s.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Set(key, rows)
	return rows, nil
}
