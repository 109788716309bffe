package supabase

import (
	"context"
	"strconv"

	"github.com/supabase-community/postgrest-go"
	"github.com/supabase-community/supabase-go"
	"go.uber.org/zap"

	"retrolens-backend/application/ports"
	"retrolens-backend/domain/model"
	"retrolens-backend/pkg/errors"
	"retrolens-backend/pkg/observability"
)

// CategoryRepository is the discussion_categories table adapter.
type CategoryRepository struct {
	store
}

// NewCategoryRepository creates a categories adapter.
func NewCategoryRepository(client *supabase.Client, logger *zap.Logger, metrics *observability.Collector) ports.CategoryRepository {
	return &CategoryRepository{store{client: client, logger: logger, metrics: metrics}}
}

func (r *CategoryRepository) List(ctx context.Context) ([]model.Category, error) {
	var rows []model.Category
	_, err := r.client.From("discussion_categories").Select("*", "", false).
		Order("display_order", &postgrest.OrderOpts{Ascending: true}).
		ExecuteTo(&rows)
	r.observe("select", "discussion_categories", err)
	if err != nil {
		return nil, errors.NewDatabaseError("failed to list categories", err)
	}
	return rows, nil
}

func (r *CategoryRepository) NamesByIDs(ctx context.Context, ids []int) (map[int]string, error) {
	if len(ids) == 0 {
		return map[int]string{}, nil
	}
	values := make([]string, 0, len(ids))
	for _, id := range ids {
		values = append(values, strconv.Itoa(id))
	}
	var rows []struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}
	_, err := r.client.From("discussion_categories").Select("id, name", "", false).
		In("id", values).
		ExecuteTo(&rows)
	r.observe("select", "discussion_categories", err)
	if err != nil {
		return nil, errors.NewDatabaseError("failed to fetch categories", err)
	}
	names := make(map[int]string, len(rows))
	for _, row := range rows {
		names[row.ID] = row.Name
	}
	return names, nil
}
