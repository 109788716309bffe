package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"retrolens-backend/application/ports"
	"retrolens-backend/application/services"
	"retrolens-backend/domain/model"
	"retrolens-backend/interfaces/http/rest/handlers"
	"retrolens-backend/pkg/auth"
	"retrolens-backend/pkg/cache"
	"retrolens-backend/tests/mocks"
)

func detailOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Detail string `json:"detail"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Detail
}

func TestFeedAnonymousReturnsEmptyList(t *testing.T) {
	h := handlers.NewDiscussionHandler(nil, nil, zap.NewNop())
	req := httptest.NewRequest(http.MethodGet, "/api/v1/discussions/feed/optimized", nil)
	rec := httptest.NewRecorder()

	h.Feed(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestLikeCreateRequiresAuth(t *testing.T) {
	h := handlers.NewLikeHandler(nil, zap.NewNop())
	req := httptest.NewRequest(http.MethodPost, "/api/v1/likes", strings.NewReader(`{"discussion_id":"d-1"}`))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "authentication required", detailOf(t, rec))
}

func TestLikeCreateRejectsMalformedBody(t *testing.T) {
	h := handlers.NewLikeHandler(nil, zap.NewNop())
	req := httptest.NewRequest(http.MethodPost, "/api/v1/likes", strings.NewReader("{not json"))
	req = req.WithContext(auth.SetUserInContext(req.Context(), &auth.UserContext{UserID: "u-1"}))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFollowCreateValidatesBody(t *testing.T) {
	h := handlers.NewFollowHandler(nil, zap.NewNop())
	req := httptest.NewRequest(http.MethodPost, "/api/v1/follows", strings.NewReader(`{"follower_id":"u-1"}`))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, detailOf(t, rec), "followingid is required")
}

func TestFollowDeleteRequiresBothIDs(t *testing.T) {
	h := handlers.NewFollowHandler(nil, zap.NewNop())
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/follows?follower_id=u-1", nil)
	rec := httptest.NewRecorder()

	h.Delete(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "follower_id and following_id are required", detailOf(t, rec))
}

func TestDiscussionCreateRequiresAuth(t *testing.T) {
	h := handlers.NewDiscussionHandler(nil, nil, zap.NewNop())
	req := httptest.NewRequest(http.MethodPost, "/api/v1/discussions", strings.NewReader(`{"title":"t","content":"c"}`))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestDiscussionCreateValidatesFields(t *testing.T) {
	h := handlers.NewDiscussionHandler(nil, nil, zap.NewNop())
	req := httptest.NewRequest(http.MethodPost, "/api/v1/discussions", strings.NewReader(`{"title":"only a title"}`))
	req = req.WithContext(auth.SetUserInContext(req.Context(), &auth.UserContext{UserID: "u-1"}))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, detailOf(t, rec), "content is required")
}

func TestBatchValidatesIDs(t *testing.T) {
	h := handlers.NewDiscussionHandler(nil, nil, zap.NewNop())
	req := httptest.NewRequest(http.MethodPost, "/api/v1/discussions/batch", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()

	h.Batch(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func newFeedHandler(discussions *mocks.DiscussionRepository, follows *mocks.FollowRepository) *handlers.DiscussionHandler {
	feed := services.NewFeedService(
		discussions,
		new(mocks.UserRepository),
		new(mocks.CategoryRepository),
		new(mocks.StatsRepository),
		new(mocks.LikeRepository),
		follows,
		cache.New(),
		zap.NewNop(),
	)
	return handlers.NewDiscussionHandler(nil, feed, zap.NewNop())
}

func TestListEnrichedPassesQueryParameters(t *testing.T) {
	discussions := new(mocks.DiscussionRepository)
	discussions.On("Page", mock.Anything, mock.MatchedBy(func(p ports.DiscussionPage) bool {
		return assert.ObjectsAreEqual([]string{"alice", "bob"}, p.OwnerIDs) &&
			p.SortBy == "view_count" && p.Ascending
	})).Return([]model.Discussion{}, nil).Once()
	h := newFeedHandler(discussions, new(mocks.FollowRepository))

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/discussions/optimized?user_ids=alice&user_ids=bob&sortBy=view_count&sortOrder=ASC", nil)
	rec := httptest.NewRecorder()

	h.ListEnriched(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	discussions.AssertExpectations(t)
}

func TestFeedPagesByPageParameter(t *testing.T) {
	follows := new(mocks.FollowRepository)
	follows.On("FollowingIDs", mock.Anything, "viewer").Return([]string{"alice"}, nil)
	discussions := new(mocks.DiscussionRepository)
	discussions.On("Page", mock.Anything, mock.MatchedBy(func(p ports.DiscussionPage) bool {
		return p.Offset == 10 && p.Limit == 5
	})).Return([]model.Discussion{}, nil).Once()
	h := newFeedHandler(discussions, follows)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/discussions/feed/optimized?limit=5&page=2", nil)
	req = req.WithContext(auth.SetUserInContext(req.Context(), &auth.UserContext{UserID: "viewer"}))
	rec := httptest.NewRecorder()

	h.Feed(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	discussions.AssertExpectations(t)
}

func TestLikeDeleteReadsTargetFromBody(t *testing.T) {
	likes := new(mocks.LikeRepository)
	likes.On("Delete", mock.Anything, "u-1", model.TargetDiscussion, "d-1").Return(nil).Once()
	relations := services.NewRelationService(
		new(mocks.FollowRepository),
		new(mocks.DiscussionRepository),
		new(mocks.CameraRepository),
		new(mocks.CommentRepository),
		zap.NewNop(),
	)
	h := handlers.NewLikeHandler(services.NewLikeService(likes, relations, zap.NewNop()), zap.NewNop())

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/likes", strings.NewReader(`{"discussion_id":"d-1"}`))
	req = req.WithContext(auth.SetUserInContext(req.Context(), &auth.UserContext{UserID: "u-1"}))
	rec := httptest.NewRecorder()

	h.Delete(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	likes.AssertExpectations(t)
}

func TestCommentCreateRequiresBodyField(t *testing.T) {
	h := handlers.NewCommentHandler(nil, zap.NewNop())
	req := httptest.NewRequest(http.MethodPost, "/api/v1/comments", strings.NewReader(`{"discussion_id":"d-1"}`))
	req = req.WithContext(auth.SetUserInContext(req.Context(), &auth.UserContext{UserID: "u-1"}))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, detailOf(t, rec), "body is required")
}
