package di

import (
	"time"

	supabasesdk "github.com/supabase-community/supabase-go"
	"go.uber.org/zap"

	"retrolens-backend/application/ports"
	"retrolens-backend/application/services"
	"retrolens-backend/infrastructure/config"
	"retrolens-backend/infrastructure/persistence/supabase"
	"retrolens-backend/infrastructure/storage"
	"retrolens-backend/interfaces/http/rest/handlers"
	"retrolens-backend/pkg/auth"
	"retrolens-backend/pkg/cache"
	"retrolens-backend/pkg/observability"
)

// ProvideLogger creates the process logger.
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// ProvideSupabaseClient creates the shared row-store client.
func ProvideSupabaseClient(cfg *config.Config) (*supabasesdk.Client, error) {
	return supabase.NewClient(cfg)
}

// ProvideMetrics creates the Prometheus collector.
func ProvideMetrics() *observability.Collector {
	return observability.NewCollector("retrolens")
}

// ProvideCache creates the process cache, instrumented with hit/miss
// counters.
func ProvideCache(metrics *observability.Collector) *cache.Cache {
	c := cache.New()
	c.Instrument(metrics.CacheHits.Inc, metrics.CacheMisses.Inc)
	return c
}

// ProvideVerifier creates the token verifier.
func ProvideVerifier(cfg *config.Config) (auth.Verifier, error) {
	return auth.NewJWTValidator(auth.JWTConfig{
		SecretKey: cfg.JWTSecret,
		Issuer:    cfg.JWTIssuer,
		Audience:  cfg.JWTAudience,
		Leeway:    60 * time.Second,
	})
}

// ProvideUserRepository creates the users adapter.
func ProvideUserRepository(client *supabasesdk.Client, logger *zap.Logger, metrics *observability.Collector) ports.UserRepository {
	return supabase.NewUserRepository(client, logger, metrics)
}

// ProvideDiscussionRepository creates the discussions adapter.
func ProvideDiscussionRepository(client *supabasesdk.Client, logger *zap.Logger, metrics *observability.Collector) ports.DiscussionRepository {
	return supabase.NewDiscussionRepository(client, logger, metrics)
}

// ProvideCameraRepository creates the cameras adapter.
func ProvideCameraRepository(client *supabasesdk.Client, logger *zap.Logger, metrics *observability.Collector) ports.CameraRepository {
	return supabase.NewCameraRepository(client, logger, metrics)
}

// ProvideCommentRepository creates the comments adapter.
func ProvideCommentRepository(client *supabasesdk.Client, logger *zap.Logger, metrics *observability.Collector) ports.CommentRepository {
	return supabase.NewCommentRepository(client, logger, metrics)
}

// ProvideLikeRepository creates the likes adapter.
func ProvideLikeRepository(client *supabasesdk.Client, logger *zap.Logger, metrics *observability.Collector) ports.LikeRepository {
	return supabase.NewLikeRepository(client, logger, metrics)
}

// ProvideFollowRepository creates the follows adapter.
func ProvideFollowRepository(client *supabasesdk.Client, logger *zap.Logger, metrics *observability.Collector) ports.FollowRepository {
	return supabase.NewFollowRepository(client, logger, metrics)
}

// ProvideCategoryRepository creates the categories adapter.
func ProvideCategoryRepository(client *supabasesdk.Client, logger *zap.Logger, metrics *observability.Collector) ports.CategoryRepository {
	return supabase.NewCategoryRepository(client, logger, metrics)
}

// ProvideStatsRepository creates the batched counts adapter.
func ProvideStatsRepository(client *supabasesdk.Client, logger *zap.Logger, metrics *observability.Collector) ports.StatsRepository {
	return supabase.NewStatsRepository(client, logger, metrics)
}

// ProvideFileStore creates the object storage adapter.
func ProvideFileStore(client *supabasesdk.Client, logger *zap.Logger) ports.FileStore {
	return storage.NewSupabaseFileStore(client, logger)
}

// ProvideRelationService creates the mutual-follow gate.
func ProvideRelationService(
	follows ports.FollowRepository,
	discussions ports.DiscussionRepository,
	cameras ports.CameraRepository,
	comments ports.CommentRepository,
	logger *zap.Logger,
) *services.RelationService {
	return services.NewRelationService(follows, discussions, cameras, comments, logger)
}

// ProvideFeedService creates the discussion aggregator.
func ProvideFeedService(
	discussions ports.DiscussionRepository,
	users ports.UserRepository,
	categories ports.CategoryRepository,
	stats ports.StatsRepository,
	likes ports.LikeRepository,
	follows ports.FollowRepository,
	c *cache.Cache,
	logger *zap.Logger,
) *services.FeedService {
	return services.NewFeedService(discussions, users, categories, stats, likes, follows, c, logger)
}

// ProvideUserService creates the profile service.
func ProvideUserService(
	users ports.UserRepository,
	cameras ports.CameraRepository,
	discussions ports.DiscussionRepository,
	follows ports.FollowRepository,
	logger *zap.Logger,
) *services.UserService {
	return services.NewUserService(users, cameras, discussions, follows, logger)
}

// ProvideCameraService creates the collection service.
func ProvideCameraService(cameras ports.CameraRepository, users ports.UserRepository, logger *zap.Logger) *services.CameraService {
	return services.NewCameraService(cameras, users, logger)
}

// ProvideDiscussionService creates the discussion service.
func ProvideDiscussionService(
	discussions ports.DiscussionRepository,
	categories ports.CategoryRepository,
	c *cache.Cache,
	logger *zap.Logger,
) *services.DiscussionService {
	return services.NewDiscussionService(discussions, categories, c, logger)
}

// ProvideCommentService creates the comment service.
func ProvideCommentService(
	comments ports.CommentRepository,
	users ports.UserRepository,
	relations *services.RelationService,
	logger *zap.Logger,
) *services.CommentService {
	return services.NewCommentService(comments, users, relations, logger)
}

// ProvideLikeService creates the like service.
func ProvideLikeService(likes ports.LikeRepository, relations *services.RelationService, logger *zap.Logger) *services.LikeService {
	return services.NewLikeService(likes, relations, logger)
}

// ProvideFollowService creates the follow service.
func ProvideFollowService(follows ports.FollowRepository, users ports.UserRepository, feed *services.FeedService, logger *zap.Logger) *services.FollowService {
	return services.NewFollowService(follows, users, feed, logger)
}

// ProvideUploadService creates the upload service.
func ProvideUploadService(files ports.FileStore, users ports.UserRepository, cfg *config.Config, logger *zap.Logger) *services.UploadService {
	return services.NewUploadService(files, users, cfg.CameraImageBucket, cfg.AvatarBucket, logger)
}

// ProvideAuthHandler creates the identity handler.
func ProvideAuthHandler(users *services.UserService, logger *zap.Logger) *handlers.AuthHandler {
	return handlers.NewAuthHandler(users, logger)
}

// ProvideUserHandler creates the profile handler.
func ProvideUserHandler(users *services.UserService, follows *services.FollowService, logger *zap.Logger) *handlers.UserHandler {
	return handlers.NewUserHandler(users, follows, logger)
}

// ProvideCameraHandler creates the collection handler.
func ProvideCameraHandler(cameras *services.CameraService, logger *zap.Logger) *handlers.CameraHandler {
	return handlers.NewCameraHandler(cameras, logger)
}

// ProvideDiscussionHandler creates the discussion handler.
func ProvideDiscussionHandler(discussions *services.DiscussionService, feed *services.FeedService, logger *zap.Logger) *handlers.DiscussionHandler {
	return handlers.NewDiscussionHandler(discussions, feed, logger)
}

// ProvideCommentHandler creates the comment handler.
func ProvideCommentHandler(comments *services.CommentService, logger *zap.Logger) *handlers.CommentHandler {
	return handlers.NewCommentHandler(comments, logger)
}

// ProvideLikeHandler creates the like handler.
func ProvideLikeHandler(likes *services.LikeService, logger *zap.Logger) *handlers.LikeHandler {
	return handlers.NewLikeHandler(likes, logger)
}

// ProvideFollowHandler creates the follow handler.
func ProvideFollowHandler(follows *services.FollowService, logger *zap.Logger) *handlers.FollowHandler {
	return handlers.NewFollowHandler(follows, logger)
}

// ProvideUploadHandler creates the upload handler.
func ProvideUploadHandler(uploads *services.UploadService, logger *zap.Logger) *handlers.UploadHandler {
	return handlers.NewUploadHandler(uploads, logger)
}
