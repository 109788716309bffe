package supabase

import (
	"context"
	"encoding/json"

	"github.com/supabase-community/supabase-go"
	"go.uber.org/zap"

	"retrolens-backend/application/ports"
	"retrolens-backend/pkg/errors"
	"retrolens-backend/pkg/observability"
)

// StatsRepository fans batched count lookups out to Postgres functions so
// list endpoints never issue one count query per row.
type StatsRepository struct {
	store
}

// NewStatsRepository creates a stats adapter backed by database RPCs.
func NewStatsRepository(client *supabase.Client, logger *zap.Logger, metrics *observability.Collector) ports.StatsRepository {
	return &StatsRepository{store{client: client, logger: logger, metrics: metrics}}
}

func (r *StatsRepository) DiscussionCommentCounts(ctx context.Context, ids []string) (map[string]int, error) {
	return r.countsByRPC(ctx, "get_discussion_comment_counts", ids)
}

func (r *StatsRepository) DiscussionLikeCounts(ctx context.Context, ids []string) (map[string]int, error) {
	return r.countsByRPC(ctx, "get_discussion_like_counts", ids)
}

func (r *StatsRepository) countsByRPC(ctx context.Context, fn string, ids []string) (map[string]int, error) {
	if len(ids) == 0 {
		return map[string]int{}, nil
	}
	raw := r.client.Rpc(fn, "", map[string]interface{}{"discussion_ids": ids})
	var rows []struct {
		DiscussionID string `json:"discussion_id"`
		Count        int    `json:"count"`
	}
	// The client returns the raw response body; anything that does not
	// decode as a count list is an upstream failure.
	err := json.Unmarshal([]byte(raw), &rows)
	r.observe("rpc", fn, err)
	if err != nil {
		r.logger.Warn("count rpc returned unexpected payload",
			zap.String("function", fn),
			zap.String("body", raw),
		)
		return nil, errors.NewDatabaseError("failed to fetch discussion counts", err)
	}
	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.DiscussionID] = row.Count
	}
	return counts, nil
}
