// Package di wires the object graph with google/wire. Providers live in
// providers.go; the generated injector lives in wire_gen.go.
package di

import (
	"go.uber.org/zap"

	"retrolens-backend/application/services"
	"retrolens-backend/infrastructure/config"
	"retrolens-backend/interfaces/http/rest/handlers"
	"retrolens-backend/pkg/auth"
	"retrolens-backend/pkg/cache"
	"retrolens-backend/pkg/observability"
)

// Container holds all application dependencies.
type Container struct {
	Config   *config.Config
	Logger   *zap.Logger
	Cache    *cache.Cache
	Metrics  *observability.Collector
	Verifier auth.Verifier

	Relations   *services.RelationService
	Feed        *services.FeedService
	Users       *services.UserService
	Cameras     *services.CameraService
	Discussions *services.DiscussionService
	Comments    *services.CommentService
	Likes       *services.LikeService
	Follows     *services.FollowService
	Uploads     *services.UploadService

	AuthHandler       *handlers.AuthHandler
	UserHandler       *handlers.UserHandler
	CameraHandler     *handlers.CameraHandler
	DiscussionHandler *handlers.DiscussionHandler
	CommentHandler    *handlers.CommentHandler
	LikeHandler       *handlers.LikeHandler
	FollowHandler     *handlers.FollowHandler
	UploadHandler     *handlers.UploadHandler
}
