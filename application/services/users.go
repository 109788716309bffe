package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"retrolens-backend/application/ports"
	"retrolens-backend/domain/model"
	"retrolens-backend/pkg/auth"
	"retrolens-backend/pkg/errors"
	"retrolens-backend/pkg/utils"
)

// UserService manages profiles and the sync step that mirrors identity
// provider accounts into the users table on first login.
type UserService struct {
	users       ports.UserRepository
	cameras     ports.CameraRepository
	discussions ports.DiscussionRepository
	follows     ports.FollowRepository
	logger      *zap.Logger
}

// NewUserService creates the profile service.
func NewUserService(
	users ports.UserRepository,
	cameras ports.CameraRepository,
	discussions ports.DiscussionRepository,
	follows ports.FollowRepository,
	logger *zap.Logger,
) *UserService {
	return &UserService{
		users:       users,
		cameras:     cameras,
		discussions: discussions,
		follows:     follows,
		logger:      logger,
	}
}

// SyncRequest carries the optional profile fields supplied at login.
type SyncRequest struct {
	Username  string `json:"username,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

// Sync ensures a row exists for the authenticated principal, creating
// one from the token claims on first login. Username collisions get a
// random suffix rather than failing the login.
func (s *UserService) Sync(ctx context.Context, principal auth.UserContext, req SyncRequest) (*model.User, error) {
	existing, err := s.users.GetByID(ctx, principal.UserID)
	if err == nil {
		return existing, nil
	}
	if !errors.IsNotFound(err) {
		return nil, err
	}

	username := req.Username
	if username == "" {
		username = usernameFromEmail(principal.Email)
	}
	if username == "" {
		username = "user_" + shortID()
	}
	if taken, err := s.usernameTaken(ctx, username); err != nil {
		return nil, err
	} else if taken {
		username = username + "_" + shortID()
	}

	created, err := s.users.Create(ctx, model.User{
		ID:          principal.UserID,
		Username:    username,
		Email:       principal.Email,
		DisplayName: principal.Name,
		AvatarURL:   req.AvatarURL,
		CreatedAt:   utils.NowRFC3339(),
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("user synced",
		zap.String("user_id", created.ID),
		zap.String("username", created.Username),
	)
	return created, nil
}

// Get returns one profile with its computed counts.
func (s *UserService) Get(ctx context.Context, id string) (*model.UserPublic, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.withCounts(ctx, *user)
}

// GetByUsername returns one profile, resolved by username, with counts.
func (s *UserService) GetByUsername(ctx context.Context, username string) (*model.UserPublic, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.withCounts(ctx, *user)
}

// List returns a page of bare profiles.
func (s *UserService) List(ctx context.Context, offset, limit int) ([]model.User, error) {
	return s.users.List(ctx, offset, limit)
}

// Update applies a profile patch on behalf of the principal. Users may
// only patch their own row.
func (s *UserService) Update(ctx context.Context, principal auth.UserContext, id string, patch model.UserUpdate) (*model.User, error) {
	if principal.UserID != id {
		return nil, errors.NewForbiddenError("you can only update your own profile")
	}
	if patch.Username != nil {
		existing, err := s.users.GetByUsername(ctx, *patch.Username)
		if err != nil && !errors.IsNotFound(err) {
			return nil, err
		}
		if err == nil && existing.ID != id {
			return nil, errors.NewValidationError("username is already taken")
		}
	}
	return s.users.Update(ctx, id, patch)
}

func (s *UserService) withCounts(ctx context.Context, user model.User) (*model.UserPublic, error) {
	profile := model.UserPublic{User: user}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		profile.CameraCount, err = s.cameras.CountByOwner(gctx, user.ID)
		return err
	})
	g.Go(func() error {
		var err error
		profile.DiscussionCount, err = s.discussions.CountByOwner(gctx, user.ID)
		return err
	})
	g.Go(func() error {
		var err error
		profile.FollowerCount, err = s.follows.CountFollowers(gctx, user.ID)
		return err
	})
	g.Go(func() error {
		var err error
		profile.FollowingCount, err = s.follows.CountFollowing(gctx, user.ID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (s *UserService) usernameTaken(ctx context.Context, username string) (bool, error) {
	_, err := s.users.GetByUsername(ctx, username)
	if err == nil {
		return true, nil
	}
	if errors.IsNotFound(err) {
		return false, nil
	}
	return false, err
}

func usernameFromEmail(email string) string {
	local, _, found := strings.Cut(email, "@")
	if !found {
		return ""
	}
	return strings.ToLower(local)
}

func shortID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}
