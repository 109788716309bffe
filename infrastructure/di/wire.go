//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"retrolens-backend/infrastructure/config"
)

// SuperSet is the main provider set containing all providers.
var SuperSet = wire.NewSet(
	ProvideLogger,
	ProvideSupabaseClient,
	ProvideMetrics,
	ProvideCache,
	ProvideVerifier,
	ProvideUserRepository,
	ProvideDiscussionRepository,
	ProvideCameraRepository,
	ProvideCommentRepository,
	ProvideLikeRepository,
	ProvideFollowRepository,
	ProvideCategoryRepository,
	ProvideStatsRepository,
	ProvideFileStore,
	ProvideRelationService,
	ProvideFeedService,
	ProvideUserService,
	ProvideCameraService,
	ProvideDiscussionService,
	ProvideCommentService,
	ProvideLikeService,
	ProvideFollowService,
	ProvideUploadService,
	ProvideAuthHandler,
	ProvideUserHandler,
	ProvideCameraHandler,
	ProvideDiscussionHandler,
	ProvideCommentHandler,
	ProvideLikeHandler,
	ProvideFollowHandler,
	ProvideUploadHandler,
	wire.Struct(new(Container), "*"),
)

// InitializeContainer creates a fully wired container.
func InitializeContainer(cfg *config.Config) (*Container, error) {
	wire.Build(SuperSet)
	return nil, nil // Wire will replace this
}
