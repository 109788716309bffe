package supabase

import (
	"context"

	"github.com/supabase-community/postgrest-go"
	"github.com/supabase-community/supabase-go"
	"go.uber.org/zap"

	"retrolens-backend/application/ports"
	"retrolens-backend/domain/model"
	"retrolens-backend/pkg/errors"
	"retrolens-backend/pkg/observability"
)

// DiscussionRepository is the discussions table adapter.
type DiscussionRepository struct {
	store
}

// NewDiscussionRepository creates a discussions adapter.
func NewDiscussionRepository(client *supabase.Client, logger *zap.Logger, metrics *observability.Collector) ports.DiscussionRepository {
	return &DiscussionRepository{store{client: client, logger: logger, metrics: metrics}}
}

func (r *DiscussionRepository) List(ctx context.Context, offset, limit int) ([]model.Discussion, error) {
	var rows []model.Discussion
	_, err := r.client.From("discussions").Select("*", "", false).
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		Range(offset, offset+limit-1, "").
		ExecuteTo(&rows)
	r.observe("select", "discussions", err)
	if err != nil {
		return nil, errors.NewDatabaseError("failed to list discussions", err)
	}
	return rows, nil
}

func (r *DiscussionRepository) GetByID(ctx context.Context, id string) (*model.Discussion, error) {
	var rows []model.Discussion
	_, err := r.client.From("discussions").Select("*", "", false).Eq("id", id).ExecuteTo(&rows)
	r.observe("select", "discussions", err)
	if err != nil {
		return nil, errors.NewDatabaseError("failed to fetch discussion", err)
	}
	if len(rows) == 0 {
		return nil, errors.NewNotFoundError("discussion")
	}
	return &rows[0], nil
}

func (r *DiscussionRepository) GetByIDs(ctx context.Context, ids []string) ([]model.Discussion, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var rows []model.Discussion
	_, err := r.client.From("discussions").Select("*", "", false).In("id", ids).ExecuteTo(&rows)
	r.observe("select", "discussions", err)
	if err != nil {
		return nil, errors.NewDatabaseError("failed to fetch discussions", err)
	}
	return rows, nil
}

func (r *DiscussionRepository) Create(ctx context.Context, ins model.DiscussionInsert) (*model.Discussion, error) {
	var rows []model.Discussion
	_, err := r.client.From("discussions").Insert(ins, false, "", "representation", "").ExecuteTo(&rows)
	r.observe("insert", "discussions", err)
	if err != nil {
		return nil, errors.NewDatabaseError("failed to create discussion", err)
	}
	if len(rows) == 0 {
		return nil, errors.NewDatabaseError("failed to create discussion", nil)
	}
	return &rows[0], nil
}

// Page fetches one page of discussions. Sorting by aggregate fields is
// not pushed down; callers sort those client-side after enrichment.
func (r *DiscussionRepository) Page(ctx context.Context, page ports.DiscussionPage) ([]model.Discussion, error) {
	q := r.client.From("discussions").Select("*", "", false)
	if len(page.OwnerIDs) > 0 {
		q = q.In("user_id", page.OwnerIDs)
	}
	if page.SortBy != "" {
		q = q.Order(page.SortBy, &postgrest.OrderOpts{Ascending: page.Ascending})
	}
	var rows []model.Discussion
	_, err := q.Range(page.Offset, page.Offset+page.Limit-1, "").ExecuteTo(&rows)
	r.observe("select", "discussions", err)
	if err != nil {
		return nil, errors.NewDatabaseError("failed to page discussions", err)
	}
	return rows, nil
}

func (r *DiscussionRepository) OwnerID(ctx context.Context, id string) (string, error) {
	var rows []struct {
		UserID string `json:"user_id"`
	}
	_, err := r.client.From("discussions").Select("user_id", "", false).Eq("id", id).ExecuteTo(&rows)
	r.observe("select", "discussions", err)
	if err != nil {
		return "", errors.NewDatabaseError("failed to fetch discussion owner", err)
	}
	if len(rows) == 0 {
		return "", errors.NewNotFoundError("discussion")
	}
	return rows[0].UserID, nil
}

func (r *DiscussionRepository) CountByOwner(ctx context.Context, ownerID string) (int, error) {
	_, count, err := r.client.From("discussions").Select("id", "exact", true).Eq("user_id", ownerID).Execute()
	r.observe("count", "discussions", err)
	if err != nil {
		return 0, errors.NewDatabaseError("failed to count discussions", err)
	}
	return int(count), nil
}
