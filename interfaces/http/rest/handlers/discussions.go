package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"retrolens-backend/application/services"
	"retrolens-backend/pkg/auth"
	"retrolens-backend/pkg/common"
	"retrolens-backend/pkg/utils"
)

// DiscussionHandler covers the discussion endpoints, including the
// enriched list, the personal feed and the batch lookup.
type DiscussionHandler struct {
	discussions *services.DiscussionService
	feed        *services.FeedService
	logger      *zap.Logger
}

// NewDiscussionHandler creates the discussion handler.
func NewDiscussionHandler(discussions *services.DiscussionService, feed *services.FeedService, logger *zap.Logger) *DiscussionHandler {
	return &DiscussionHandler{discussions: discussions, feed: feed, logger: logger}
}

// List returns a page of discussions without enrichment.
//
// GET /api/v1/discussions
func (h *DiscussionHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := common.LimitOffset(r, 20, 100)
	discussions, err := h.discussions.List(r.Context(), offset, limit)
	if err != nil {
		common.RespondError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, discussions)
}

// ListEnriched returns a page of discussions with authors, categories,
// counts and the viewer's like state attached. Repeated user_ids
// parameters restrict the page to those authors.
//
// GET /api/v1/discussions/optimized?user_ids&sortBy&sortOrder&limit&offset
func (h *DiscussionHandler) ListEnriched(w http.ResponseWriter, r *http.Request) {
	limit, offset := common.LimitOffset(r, 20, 100)
	query := r.URL.Query()
	discussions, err := h.feed.ListEnriched(r.Context(), viewerID(r), services.FeedQuery{
		OwnerIDs:  query["user_ids"],
		SortBy:    query.Get("sortBy"),
		Ascending: strings.EqualFold(query.Get("sortOrder"), "asc"),
		Offset:    offset,
		Limit:     limit,
	})
	if err != nil {
		common.RespondError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, discussions)
}

// Feed returns the enriched discussions from the viewer's follow graph.
// Anonymous requests get an empty feed rather than an error. Paging is
// zero-based: offset is page times limit.
//
// GET /api/v1/discussions/feed/optimized?limit&page
func (h *DiscussionHandler) Feed(w http.ResponseWriter, r *http.Request) {
	viewer := viewerID(r)
	if viewer == "" {
		common.RespondJSON(w, http.StatusOK, []struct{}{})
		return
	}
	limit := common.QueryInt(r, "limit", 20)
	if limit < 1 || limit > 100 {
		limit = 20
	}
	page := common.QueryInt(r, "page", 0)
	if page < 0 {
		page = 0
	}
	discussions, err := h.feed.Feed(r.Context(), viewer, page*limit, limit)
	if err != nil {
		common.RespondError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, discussions)
}

// Batch returns the requested discussions, enriched, in request order.
//
// POST /api/v1/discussions/batch
func (h *DiscussionHandler) Batch(w http.ResponseWriter, r *http.Request) {
	var req struct {
		IDs []string `json:"ids" validate:"required,min=1,max=50"`
	}
	if err := common.ParseJSONBody(r, &req, 1<<20); err != nil {
		common.RespondDetail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondDetail(w, http.StatusBadRequest, err.Error())
		return
	}
	discussions, err := h.feed.EnrichByIDs(r.Context(), viewerID(r), req.IDs)
	if err != nil {
		common.RespondError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, discussions)
}

// Get returns one enriched discussion.
//
// GET /api/v1/discussions/{discussionID}
func (h *DiscussionHandler) Get(w http.ResponseWriter, r *http.Request) {
	discussion, err := h.feed.GetEnriched(r.Context(), viewerID(r), chi.URLParam(r, "discussionID"))
	if err != nil {
		common.RespondError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, discussion)
}

// Create inserts a discussion authored by the principal.
//
// POST /api/v1/discussions
func (h *DiscussionHandler) Create(w http.ResponseWriter, r *http.Request) {
	principal, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		common.RespondDetail(w, http.StatusUnauthorized, "authentication required")
		return
	}
	var req services.DiscussionCreate
	if err := common.ParseJSONBody(r, &req, 1<<20); err != nil {
		common.RespondDetail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondDetail(w, http.StatusBadRequest, err.Error())
		return
	}
	discussion, err := h.discussions.Create(r.Context(), *principal, req)
	if err != nil {
		common.RespondError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusCreated, discussion)
}

// Categories returns every discussion category.
//
// GET /api/v1/categories
func (h *DiscussionHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.discussions.Categories(r.Context())
	if err != nil {
		common.RespondError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, categories)
}

// viewerID returns the authenticated principal's id, or empty for
// anonymous requests.
func viewerID(r *http.Request) string {
	principal, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		return ""
	}
	return principal.UserID
}
