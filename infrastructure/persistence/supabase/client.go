// Package supabase implements the application ports against the
// Supabase PostgREST row store. Every adapter is pass-through: filters,
// ordering and ranges are pushed down to the store, rows come back as
// typed records.
package supabase

import (
	"fmt"

	"github.com/supabase-community/supabase-go"
	"go.uber.org/zap"

	"retrolens-backend/infrastructure/config"
	"retrolens-backend/pkg/observability"
)

// NewClient creates the shared Supabase client. The service role key is
// used so row-level security does not apply; authorization is enforced
// in the application layer.
func NewClient(cfg *config.Config) (*supabase.Client, error) {
	client, err := supabase.NewClient(cfg.SupabaseURL, cfg.ServiceKey(), nil)
	if err != nil {
		return nil, fmt.Errorf("create supabase client: %w", err)
	}
	return client, nil
}

// store carries the dependencies shared by all adapters in this package.
type store struct {
	client  *supabase.Client
	logger  *zap.Logger
	metrics *observability.Collector
}

func (s store) observe(operation, table string, err error) {
	if s.metrics != nil {
		s.metrics.ObserveStoreOp(operation, table, err)
	}
	if err != nil {
		s.logger.Warn("row-store operation failed",
			zap.String("operation", operation),
			zap.String("table", table),
			zap.Error(err),
		)
	}
}
