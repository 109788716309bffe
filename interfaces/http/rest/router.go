// Package rest wires the HTTP surface: middleware chain, route table
// and the health and metrics endpoints.
package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"retrolens-backend/infrastructure/config"
	"retrolens-backend/interfaces/http/rest/handlers"
	"retrolens-backend/interfaces/http/rest/middleware"
	"retrolens-backend/pkg/auth"
	"retrolens-backend/pkg/common"
	"retrolens-backend/pkg/observability"
)

// Router assembles the HTTP handler tree from its dependencies.
type Router struct {
	cfg      *config.Config
	verifier auth.Verifier
	metrics  *observability.Collector
	logger   *zap.Logger

	auth        *handlers.AuthHandler
	users       *handlers.UserHandler
	cameras     *handlers.CameraHandler
	discussions *handlers.DiscussionHandler
	comments    *handlers.CommentHandler
	likes       *handlers.LikeHandler
	follows     *handlers.FollowHandler
	uploads     *handlers.UploadHandler
}

// NewRouter creates a router over the given handlers.
func NewRouter(
	cfg *config.Config,
	verifier auth.Verifier,
	metrics *observability.Collector,
	logger *zap.Logger,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	cameraHandler *handlers.CameraHandler,
	discussionHandler *handlers.DiscussionHandler,
	commentHandler *handlers.CommentHandler,
	likeHandler *handlers.LikeHandler,
	followHandler *handlers.FollowHandler,
	uploadHandler *handlers.UploadHandler,
) *Router {
	return &Router{
		cfg:         cfg,
		verifier:    verifier,
		metrics:     metrics,
		logger:      logger,
		auth:        authHandler,
		users:       userHandler,
		cameras:     cameraHandler,
		discussions: discussionHandler,
		comments:    commentHandler,
		likes:       likeHandler,
		follows:     followHandler,
		uploads:     uploadHandler,
	}
}

// Setup configures all routes and middleware.
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))
	if rt.cfg.EnableMetrics {
		router.Use(middleware.Metrics(rt.metrics))
	}
	router.Use(middleware.RateLimit(auth.NewIPRateLimiter(rt.cfg.RateLimitPerMinute)))
	router.Use(middleware.CircuitBreaker(rt.logger))

	if rt.cfg.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   rt.cfg.AllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	router.Get("/", rt.root)
	router.Get("/health", rt.healthCheck)
	if rt.cfg.EnableMetrics {
		router.Method(http.MethodGet, "/metrics", rt.metrics.Handler())
	}

	requireAuth := middleware.Authenticate(rt.verifier, rt.logger)
	optionalAuth := middleware.AuthenticateOptional(rt.verifier, rt.logger)

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Use(requireAuth)
			r.Post("/sync", rt.auth.Sync)
			r.Get("/verify-token", rt.auth.Verify)
			r.Get("/me", rt.auth.Me)
		})

		r.Get("/categories", rt.discussions.Categories)

		r.Route("/users", func(r chi.Router) {
			r.Get("/", rt.users.List)
			r.With(requireAuth).Post("/", rt.auth.Sync)
			r.With(requireAuth).Post("/sync", rt.auth.Sync)
			r.Get("/username/{username}", rt.users.GetByUsername)
			r.Get("/{userID}", rt.users.Get)
			r.Get("/{userID}/followers", rt.users.Followers)
			r.Get("/{userID}/following", rt.users.Following)
			r.With(requireAuth).Patch("/{userID}", rt.users.Update)
		})

		r.Route("/cameras", func(r chi.Router) {
			r.Get("/", rt.cameras.List)
			r.With(optionalAuth).Get("/{cameraID}", rt.cameras.Get)
			r.With(requireAuth).Post("/", rt.cameras.Create)
		})

		r.Route("/discussions", func(r chi.Router) {
			r.Get("/", rt.discussions.List)
			r.With(optionalAuth).Get("/optimized", rt.discussions.ListEnriched)
			r.With(optionalAuth).Get("/feed/optimized", rt.discussions.Feed)
			r.With(optionalAuth).Post("/batch", rt.discussions.Batch)
			r.With(optionalAuth).Get("/{discussionID}", rt.discussions.Get)
			r.With(requireAuth).Post("/", rt.discussions.Create)
		})

		r.Route("/comments", func(r chi.Router) {
			r.Get("/", rt.comments.List)
			r.With(requireAuth).Post("/", rt.comments.Create)
		})

		r.Route("/likes", func(r chi.Router) {
			r.With(optionalAuth).Get("/status", rt.likes.Status)
			r.Get("/count", rt.likes.Count)
			r.With(requireAuth).Get("/check", rt.likes.Check)
			r.With(requireAuth).Post("/", rt.likes.Create)
			r.With(requireAuth).Delete("/", rt.likes.Delete)
		})

		r.Route("/follows", func(r chi.Router) {
			r.Get("/", rt.follows.List)
			r.Get("/check", rt.follows.Check)
			r.Post("/", rt.follows.Create)
			r.Delete("/", rt.follows.Delete)
		})

		r.Route("/upload", func(r chi.Router) {
			r.Use(requireAuth)
			r.Post("/camera-image", rt.uploads.CameraImage)
			r.Post("/avatar", rt.uploads.Avatar)
		})
	})

	return router
}

func (rt *Router) root(w http.ResponseWriter, r *http.Request) {
	common.RespondJSON(w, http.StatusOK, map[string]string{
		"service": "retrolens-backend",
		"status":  "running",
	})
}

func (rt *Router) healthCheck(w http.ResponseWriter, r *http.Request) {
	common.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
