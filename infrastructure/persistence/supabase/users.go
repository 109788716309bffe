package supabase

import (
	"context"

	"github.com/supabase-community/supabase-go"
	"go.uber.org/zap"

	"retrolens-backend/application/ports"
	"retrolens-backend/domain/model"
	"retrolens-backend/pkg/errors"
	"retrolens-backend/pkg/observability"
)

// UserRepository is the users table adapter.
type UserRepository struct {
	store
}

// NewUserRepository creates a users adapter.
func NewUserRepository(client *supabase.Client, logger *zap.Logger, metrics *observability.Collector) ports.UserRepository {
	return &UserRepository{store{client: client, logger: logger, metrics: metrics}}
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	var rows []model.User
	_, err := r.client.From("users").Select("*", "", false).Eq("id", id).ExecuteTo(&rows)
	r.observe("select", "users", err)
	if err != nil {
		return nil, errors.NewDatabaseError("failed to fetch user", err)
	}
	if len(rows) == 0 {
		return nil, errors.NewNotFoundError("user")
	}
	return &rows[0], nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	var rows []model.User
	_, err := r.client.From("users").Select("*", "", false).Eq("username", username).ExecuteTo(&rows)
	r.observe("select", "users", err)
	if err != nil {
		return nil, errors.NewDatabaseError("failed to fetch user", err)
	}
	if len(rows) == 0 {
		return nil, errors.NewNotFoundError("user")
	}
	return &rows[0], nil
}

func (r *UserRepository) GetByIDs(ctx context.Context, ids []string) ([]model.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var rows []model.User
	_, err := r.client.From("users").Select("*", "", false).In("id", ids).ExecuteTo(&rows)
	r.observe("select", "users", err)
	if err != nil {
		return nil, errors.NewDatabaseError("failed to fetch users", err)
	}
	return rows, nil
}

func (r *UserRepository) List(ctx context.Context, offset, limit int) ([]model.User, error) {
	var rows []model.User
	_, err := r.client.From("users").Select("*", "", false).
		Range(offset, offset+limit-1, "").
		ExecuteTo(&rows)
	r.observe("select", "users", err)
	if err != nil {
		return nil, errors.NewDatabaseError("failed to list users", err)
	}
	return rows, nil
}

func (r *UserRepository) Create(ctx context.Context, user model.User) (*model.User, error) {
	var rows []model.User
	_, err := r.client.From("users").Insert(user, false, "", "representation", "").ExecuteTo(&rows)
	r.observe("insert", "users", err)
	if err != nil {
		return nil, errors.NewDatabaseError("failed to create user", err)
	}
	if len(rows) == 0 {
		return nil, errors.NewDatabaseError("failed to create user", nil)
	}
	return &rows[0], nil
}

func (r *UserRepository) Update(ctx context.Context, id string, patch model.UserUpdate) (*model.User, error) {
	var rows []model.User
	_, err := r.client.From("users").Update(patch, "representation", "").Eq("id", id).ExecuteTo(&rows)
	r.observe("update", "users", err)
	if err != nil {
		return nil, errors.NewDatabaseError("failed to update user", err)
	}
	if len(rows) == 0 {
		return nil, errors.NewNotFoundError("user")
	}
	return &rows[0], nil
}
