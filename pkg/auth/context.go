package auth

import (
	"context"
	"errors"
)

// UserContext is the authenticated principal attached to a request.
type UserContext struct {
	UserID string
	Email  string
	Name   string
}

type contextKey struct{}

var userContextKey contextKey

// ErrNoUserInContext is returned when a request has no verified principal.
var ErrNoUserInContext = errors.New("no user in context")

// SetUserInContext attaches the principal to ctx.
func SetUserInContext(ctx context.Context, user *UserContext) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// GetUserFromContext returns the principal attached to ctx, if any.
func GetUserFromContext(ctx context.Context) (*UserContext, error) {
	user, ok := ctx.Value(userContextKey).(*UserContext)
	if !ok || user == nil {
		return nil, ErrNoUserInContext
	}
	return user, nil
}
