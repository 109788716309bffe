package services

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"retrolens-backend/application/ports"
	"retrolens-backend/domain/model"
	"retrolens-backend/pkg/cache"
	"retrolens-backend/pkg/errors"
)

const (
	// listTTL bounds staleness of enriched discussion pages.
	listTTL = 30 * time.Second
	// followingTTL bounds staleness of a user's following set in feeds.
	followingTTL = 300 * time.Second
)

// dbSortColumns are the sort keys pushed down to the row store.
var dbSortColumns = map[string]bool{
	"created_at": true,
	"updated_at": true,
	"title":      true,
	"view_count": true,
}

// aggregateSortColumns are computed per page and sorted in memory,
// since the row store never sees them.
var aggregateSortColumns = map[string]bool{
	"comment_count": true,
	"like_count":    true,
}

// FeedQuery describes one requested page of enriched discussions.
// OwnerIDs, when set, restricts the page to those authors.
type FeedQuery struct {
	OwnerIDs  []string
	SortBy    string
	Ascending bool
	Offset    int
	Limit     int
}

// FeedService assembles enriched discussion pages. For a page of N
// discussions it issues a fixed number of batched lookups regardless of
// N: authors, categories, comment counts, like counts and the viewer's
// likes each resolve in one query. Pages are memoized per parameter set.
type FeedService struct {
	discussions ports.DiscussionRepository
	users       ports.UserRepository
	categories  ports.CategoryRepository
	stats       ports.StatsRepository
	likes       ports.LikeRepository
	follows     ports.FollowRepository
	cache       *cache.Cache
	logger      *zap.Logger
}

// NewFeedService creates the discussion aggregator.
func NewFeedService(
	discussions ports.DiscussionRepository,
	users ports.UserRepository,
	categories ports.CategoryRepository,
	stats ports.StatsRepository,
	likes ports.LikeRepository,
	follows ports.FollowRepository,
	c *cache.Cache,
	logger *zap.Logger,
) *FeedService {
	return &FeedService{
		discussions: discussions,
		users:       users,
		categories:  categories,
		stats:       stats,
		likes:       likes,
		follows:     follows,
		cache:       c,
		logger:      logger,
	}
}

// ListEnriched returns one enriched page of discussions. Unknown sort
// keys fall back to created_at; aggregate keys are applied to the
// fetched page after enrichment.
func (s *FeedService) ListEnriched(ctx context.Context, viewerID string, q FeedQuery) ([]model.DiscussionPublic, error) {
	return s.page(ctx, viewerID, q.OwnerIDs, q)
}

// Feed returns the enriched discussions authored by the viewer and the
// users they follow, newest first. The following set includes the viewer
// and is memoized for longer than page payloads, since follow edges
// change far less often than content.
func (s *FeedService) Feed(ctx context.Context, viewerID string, offset, limit int) ([]model.DiscussionPublic, error) {
	owners, err := s.followingSet(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	return s.page(ctx, viewerID, owners, FeedQuery{SortBy: "created_at", Offset: offset, Limit: limit})
}

// GetEnriched returns a single discussion with its enrichment fields.
func (s *FeedService) GetEnriched(ctx context.Context, viewerID, id string) (*model.DiscussionPublic, error) {
	row, err := s.discussions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	enriched, err := s.enrich(ctx, viewerID, []model.Discussion{*row})
	if err != nil {
		return nil, err
	}
	return &enriched[0], nil
}

// EnrichByIDs returns the requested discussions, enriched, in the order
// the ids were given. Ids that resolve to nothing are skipped.
func (s *FeedService) EnrichByIDs(ctx context.Context, viewerID string, ids []string) ([]model.DiscussionPublic, error) {
	if len(ids) == 0 {
		return []model.DiscussionPublic{}, nil
	}
	rows, err := s.discussions.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	enriched, err := s.enrich(ctx, viewerID, rows)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]model.DiscussionPublic, len(enriched))
	for _, d := range enriched {
		byID[d.ID] = d
	}
	ordered := make([]model.DiscussionPublic, 0, len(ids))
	for _, id := range ids {
		if d, ok := byID[id]; ok {
			ordered = append(ordered, d)
		}
	}
	return ordered, nil
}

func (s *FeedService) page(ctx context.Context, viewerID string, owners []string, q FeedQuery) ([]model.DiscussionPublic, error) {
	sortBy := q.SortBy
	if sortBy == "" {
		sortBy = "created_at"
	}
	if !dbSortColumns[sortBy] && !aggregateSortColumns[sortBy] {
		sortBy = "created_at"
	}

	key := cache.MakeKey("discussions:list", map[string]interface{}{
		"owners":    owners,
		"sort_by":   sortBy,
		"ascending": q.Ascending,
		"offset":    q.Offset,
		"limit":     q.Limit,
		"viewer":    viewerID,
	})
	if payload, ok := s.cache.Get(key, listTTL); ok {
		return payload.([]model.DiscussionPublic), nil
	}

	dbPage := ports.DiscussionPage{
		OwnerIDs:  owners,
		SortBy:    sortBy,
		Ascending: q.Ascending,
		Offset:    q.Offset,
		Limit:     q.Limit,
	}
	aggregate := aggregateSortColumns[sortBy]
	if aggregate {
		// The store cannot order by a computed count; fetch the page in
		// recency order and reorder it once the counts are in.
		dbPage.SortBy = "created_at"
		dbPage.Ascending = false
	}

	rows, err := s.discussions.Page(ctx, dbPage)
	if err != nil {
		return nil, err
	}
	enriched, err := s.enrich(ctx, viewerID, rows)
	if err != nil {
		return nil, err
	}

	if aggregate {
		sort.SliceStable(enriched, func(i, j int) bool {
			var a, b int
			if sortBy == "comment_count" {
				a, b = enriched[i].CommentCount, enriched[j].CommentCount
			} else {
				a, b = enriched[i].LikeCount, enriched[j].LikeCount
			}
			if q.Ascending {
				return a < b
			}
			return a > b
		})
	}

	s.cache.Set(key, enriched)
	return enriched, nil
}

// enrich attaches authors, category names, counts and the viewer's like
// state to a batch of rows. Any lookup failure fails the whole batch;
// partially enriched pages are never served.
func (s *FeedService) enrich(ctx context.Context, viewerID string, rows []model.Discussion) ([]model.DiscussionPublic, error) {
	if len(rows) == 0 {
		return []model.DiscussionPublic{}, nil
	}

	ids := make([]string, 0, len(rows))
	authorSet := make(map[string]bool)
	categorySet := make(map[int]bool)
	for _, row := range rows {
		ids = append(ids, row.ID)
		authorSet[row.UserID] = true
		if row.CategoryID != nil {
			categorySet[*row.CategoryID] = true
		}
	}
	authorIDs := make([]string, 0, len(authorSet))
	for id := range authorSet {
		authorIDs = append(authorIDs, id)
	}
	categoryIDs := make([]int, 0, len(categorySet))
	for id := range categorySet {
		categoryIDs = append(categoryIDs, id)
	}

	var (
		authors       []model.User
		categoryNames map[int]string
		commentCounts map[string]int
		likeCounts    map[string]int
		viewerLikes   map[string]bool
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		authors, err = s.users.GetByIDs(gctx, authorIDs)
		return err
	})
	g.Go(func() error {
		var err error
		commentCounts, err = s.stats.DiscussionCommentCounts(gctx, ids)
		return err
	})
	g.Go(func() error {
		var err error
		likeCounts, err = s.stats.DiscussionLikeCounts(gctx, ids)
		return err
	})
	g.Go(func() error {
		var err error
		categoryNames, err = s.categories.NamesByIDs(gctx, categoryIDs)
		return err
	})
	if viewerID != "" {
		g.Go(func() error {
			var err error
			viewerLikes, err = s.likes.LikedDiscussionIDs(gctx, viewerID, ids)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	authorByID := make(map[string]model.User, len(authors))
	for _, u := range authors {
		authorByID[u.ID] = u
	}

	enriched := make([]model.DiscussionPublic, 0, len(rows))
	for _, row := range rows {
		d := row.Public()
		if author, ok := authorByID[row.UserID]; ok {
			d.AuthorUsername = author.Username
			d.AuthorAvatar = author.AvatarURL
			d.AuthorDisplayName = author.DisplayName
		}
		if row.CategoryID != nil {
			d.CategoryName = categoryNames[*row.CategoryID]
		}
		d.CommentCount = commentCounts[row.ID]
		d.LikeCount = likeCounts[row.ID]
		if viewerLikes != nil {
			d.IsLiked = viewerLikes[row.ID]
		}
		enriched = append(enriched, d)
	}
	return enriched, nil
}

// followingSet returns the viewer's feed authors: the users they follow
// plus the viewer themselves, sorted for stable cache keys.
func (s *FeedService) followingSet(ctx context.Context, viewerID string) ([]string, error) {
	if viewerID == "" {
		return nil, errors.NewUnauthorizedError("authentication required")
	}
	key := "following:" + viewerID
	if payload, ok := s.cache.Get(key, followingTTL); ok {
		return payload.([]string), nil
	}
	followed, err := s.follows.FollowingIDs(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	owners := append(followed, viewerID)
	sort.Strings(owners)
	s.cache.Set(key, owners)
	return owners, nil
}

// InvalidateFollowing drops the memoized following set after a follow
// edge changes, so feeds pick the change up immediately.
func (s *FeedService) InvalidateFollowing(viewerID string) {
	s.cache.Delete("following:" + viewerID)
}
