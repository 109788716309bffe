package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"retrolens-backend/application/services"
	"retrolens-backend/domain/model"
	"retrolens-backend/pkg/auth"
	"retrolens-backend/pkg/cache"
	"retrolens-backend/tests/mocks"
)

func newDiscussionFixture() (*mocks.DiscussionRepository, *mocks.CategoryRepository, *services.DiscussionService) {
	discussions := new(mocks.DiscussionRepository)
	categories := new(mocks.CategoryRepository)
	svc := services.NewDiscussionService(discussions, categories, cache.New(), zap.NewNop())
	return discussions, categories, svc
}

func TestDiscussionCreateMapsContentToBody(t *testing.T) {
	discussions, _, svc := newDiscussionFixture()
	discussions.On("Create", mock.Anything, mock.MatchedBy(func(ins model.DiscussionInsert) bool {
		return ins.Body == "long text" && ins.CategoryID != nil && *ins.CategoryID == 3
	})).Return(&model.Discussion{ID: "d-1", Body: "long text"}, nil)

	out, err := svc.Create(context.Background(), auth.UserContext{UserID: "u-1"}, services.DiscussionCreate{
		Title:      "title",
		Content:    "long text",
		CategoryID: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, "long text", out.Content)
}

func TestDiscussionCreateZeroCategoryStoredAsNull(t *testing.T) {
	discussions, _, svc := newDiscussionFixture()
	discussions.On("Create", mock.Anything, mock.MatchedBy(func(ins model.DiscussionInsert) bool {
		return ins.CategoryID == nil
	})).Return(&model.Discussion{ID: "d-1"}, nil)

	_, err := svc.Create(context.Background(), auth.UserContext{UserID: "u-1"}, services.DiscussionCreate{
		Title:   "title",
		Content: "text",
	})
	require.NoError(t, err)
	discussions.AssertExpectations(t)
}

func TestCategoriesMemoized(t *testing.T) {
	_, categories, svc := newDiscussionFixture()
	categories.On("List", mock.Anything).Return([]model.Category{{ID: 1, Name: "Technique"}}, nil).Once()

	first, err := svc.Categories(context.Background())
	require.NoError(t, err)
	second, err := svc.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
	categories.AssertExpectations(t)
}
