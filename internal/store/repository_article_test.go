package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-summary-news/models"
)

// ── SaveArticles / GetArticles on a real database ─────────────────────────────

func TestArticleRepository_SaveAndGet(t *testing.T) {
	ctx := context.Background()
	s := newTestStorages(t)
	u := createTestUser(t, s, "a@example.com")

	image := "https://img.example.com/1.png"
	first := testArticle("a1", u.UserID, models.Technology)
	first.ImageURL = &image
	second := testArticle("a2", u.UserID, models.Uncategorized)

	require.NoError(t, s.ArticleRepository.SaveArticles(ctx, []models.Article{first, second}))

	got, err := s.ArticleRepository.GetArticle(ctx, "a1", u.UserID)
	require.NoError(t, err)
	assert.Equal(t, first.Title, got.Title)
	assert.Equal(t, models.Technology, got.Category)
	require.NotNil(t, got.ImageURL)
	assert.Equal(t, image, *got.ImageURL)
	assert.True(t, first.CreatedAt.Equal(got.CreatedAt))

	got, err = s.ArticleRepository.GetArticle(ctx, "a2", u.UserID)
	require.NoError(t, err)
	assert.Nil(t, got.ImageURL)
	assert.Equal(t, models.Uncategorized, got.Category)
}

func TestArticleRepository_SaveEmptyBatchIsNoop(t *testing.T) {
	s := newTestStorages(t)
	require.NoError(t, s.ArticleRepository.SaveArticles(context.Background(), nil))
}

func TestArticleRepository_SaveRequiresOwner(t *testing.T) {
	s := newTestStorages(t)

	err := s.ArticleRepository.SaveArticles(context.Background(), []models.Article{testArticle("x", 0, "")})
	assert.ErrorIs(t, err, ErrMissingOwner)
}

func TestArticleRepository_SaveUnknownOwner(t *testing.T) {
	s := newTestStorages(t)

	err := s.ArticleRepository.SaveArticles(context.Background(), []models.Article{testArticle("x", 999, "")})
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

// TestArticleRepository_ReplaceOnConflict verifies that re-inserting an id
// overwrites the row instead of duplicating it.
func TestArticleRepository_ReplaceOnConflict(t *testing.T) {
	ctx := context.Background()
	s := newTestStorages(t)
	u := createTestUser(t, s, "a@example.com")

	original := testArticle("same", u.UserID, models.Sports)
	require.NoError(t, s.ArticleRepository.SaveArticles(ctx, []models.Article{original}))

	replacement := original
	replacement.Title = "replaced"
	replacement.Category = models.Health
	require.NoError(t, s.ArticleRepository.SaveArticles(ctx, []models.Article{replacement}))

	count, err := s.ArticleRepository.CountArticles(ctx, u.UserID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	got, err := s.ArticleRepository.GetArticle(ctx, "same", u.UserID)
	require.NoError(t, err)
	assert.Equal(t, "replaced", got.Title)
	assert.Equal(t, models.Health, got.Category)
}

// TestArticleRepository_SameIDForTwoOwners verifies that the replace rule is
// scoped to the owner: another user saving the same id keeps both rows.
func TestArticleRepository_SameIDForTwoOwners(t *testing.T) {
	ctx := context.Background()
	s := newTestStorages(t)
	u1 := createTestUser(t, s, "one@example.com")
	u2 := createTestUser(t, s, "two@example.com")

	require.NoError(t, s.ArticleRepository.SaveArticles(ctx, []models.Article{testArticle("same", u1.UserID, models.Sports)}))

	theirs := testArticle("same", u2.UserID, models.Health)
	theirs.Title = "theirs"
	require.NoError(t, s.ArticleRepository.SaveArticles(ctx, []models.Article{theirs}))

	for _, u := range []models.User{u1, u2} {
		count, err := s.ArticleRepository.CountArticles(ctx, u.UserID)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	}

	mine, err := s.ArticleRepository.GetArticle(ctx, "same", u1.UserID)
	require.NoError(t, err)
	assert.Equal(t, "title same", mine.Title)
	assert.Equal(t, models.Sports, mine.Category)

	got, err := s.ArticleRepository.GetArticle(ctx, "same", u2.UserID)
	require.NoError(t, err)
	assert.Equal(t, "theirs", got.Title)
}

// TestArticleRepository_UserScoping verifies that reads and writes never
// cross owners.
func TestArticleRepository_UserScoping(t *testing.T) {
	ctx := context.Background()
	s := newTestStorages(t)
	u1 := createTestUser(t, s, "one@example.com")
	u2 := createTestUser(t, s, "two@example.com")

	require.NoError(t, s.ArticleRepository.SaveArticles(ctx, []models.Article{
		testArticle("u1-a", u1.UserID, models.Politics),
		testArticle("u1-b", u1.UserID, models.Sports),
		testArticle("u2-a", u2.UserID, models.Politics),
	}))

	all, err := s.ArticleRepository.GetArticles(ctx, models.ArticleFilter{UserID: u1.UserID})
	require.NoError(t, err)
	require.Len(t, all, 2)
	for _, a := range all {
		assert.Equal(t, u1.UserID, a.UserID)
	}

	_, err = s.ArticleRepository.GetArticle(ctx, "u2-a", u1.UserID)
	assert.ErrorIs(t, err, ErrArticleNotFound)

	err = s.ArticleRepository.SetLiked(ctx, "u2-a", u1.UserID, true)
	assert.ErrorIs(t, err, ErrArticleNotFound)

	err = s.ArticleRepository.DeleteArticle(ctx, "u2-a", u1.UserID)
	assert.ErrorIs(t, err, ErrArticleNotFound)

	require.NoError(t, s.ArticleRepository.DeleteArticles(ctx, u1.UserID, []string{"u2-a"}))
	count, err := s.ArticleRepository.CountArticles(ctx, u2.UserID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	total, err := s.ArticleRepository.CountAllArticles(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
}

func TestArticleRepository_GetArticlesRequiresOwner(t *testing.T) {
	s := newTestStorages(t)

	_, err := s.ArticleRepository.GetArticles(context.Background(), models.ArticleFilter{})
	assert.ErrorIs(t, err, ErrMissingOwner)
}

func TestArticleRepository_Filters(t *testing.T) {
	ctx := context.Background()
	s := newTestStorages(t)
	u := createTestUser(t, s, "a@example.com")

	require.NoError(t, s.ArticleRepository.SaveArticles(ctx, []models.Article{
		testArticle("p1", u.UserID, models.Politics),
		testArticle("p2", u.UserID, models.Politics),
		testArticle("s1", u.UserID, models.Sports),
		testArticle("n1", u.UserID, models.Uncategorized),
	}))
	require.NoError(t, s.ArticleRepository.SetSaved(ctx, "p1", u.UserID, true))
	require.NoError(t, s.ArticleRepository.SetLiked(ctx, "s1", u.UserID, true))

	tests := []struct {
		name   string
		filter models.ArticleFilter
		want   int
	}{
		{name: "wildcard", filter: models.ArticleFilter{UserID: u.UserID, Category: categoryPtr(models.AllCategories)}, want: 4},
		{name: "no category", filter: models.ArticleFilter{UserID: u.UserID}, want: 4},
		{name: "blank category", filter: models.ArticleFilter{UserID: u.UserID, Category: categoryPtr(models.Uncategorized)}, want: 1},
		{name: "exact category", filter: models.ArticleFilter{UserID: u.UserID, Category: categoryPtr(models.Politics)}, want: 2},
		{name: "case sensitive", filter: models.ArticleFilter{UserID: u.UserID, Category: categoryPtr("política")}, want: 0},
		{name: "no partial match", filter: models.ArticleFilter{UserID: u.UserID, Category: categoryPtr("Pol")}, want: 0},
		{name: "saved only", filter: models.ArticleFilter{UserID: u.UserID, SavedOnly: true}, want: 1},
		{name: "liked only", filter: models.ArticleFilter{UserID: u.UserID, LikedOnly: true}, want: 1},
		{name: "limit", filter: models.ArticleFilter{UserID: u.UserID, Limit: 3}, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.ArticleRepository.GetArticles(ctx, tt.filter)
			require.NoError(t, err)
			assert.Len(t, got, tt.want)
		})
	}
}

// TestArticleRepository_FlagsAreIndependent verifies that liking never
// changes saved and saving never changes liked.
func TestArticleRepository_FlagsAreIndependent(t *testing.T) {
	ctx := context.Background()
	s := newTestStorages(t)
	u := createTestUser(t, s, "a@example.com")
	require.NoError(t, s.ArticleRepository.SaveArticles(ctx, []models.Article{testArticle("f", u.UserID, models.Science)}))

	require.NoError(t, s.ArticleRepository.SetSaved(ctx, "f", u.UserID, true))
	require.NoError(t, s.ArticleRepository.SetLiked(ctx, "f", u.UserID, true))
	require.NoError(t, s.ArticleRepository.SetLiked(ctx, "f", u.UserID, false))

	got, err := s.ArticleRepository.GetArticle(ctx, "f", u.UserID)
	require.NoError(t, err)
	assert.False(t, got.Liked)
	assert.True(t, got.Saved)

	require.NoError(t, s.ArticleRepository.SetLiked(ctx, "f", u.UserID, true))
	require.NoError(t, s.ArticleRepository.SetSaved(ctx, "f", u.UserID, false))

	got, err = s.ArticleRepository.GetArticle(ctx, "f", u.UserID)
	require.NoError(t, err)
	assert.True(t, got.Liked)
	assert.False(t, got.Saved)
}

func TestArticleRepository_UpdateArticle(t *testing.T) {
	ctx := context.Background()
	s := newTestStorages(t)
	u := createTestUser(t, s, "a@example.com")
	a := testArticle("up", u.UserID, models.Culture)
	require.NoError(t, s.ArticleRepository.SaveArticles(ctx, []models.Article{a}))

	a.Title = "new title"
	a.Saved = true
	require.NoError(t, s.ArticleRepository.UpdateArticle(ctx, a))

	got, err := s.ArticleRepository.GetArticle(ctx, "up", u.UserID)
	require.NoError(t, err)
	assert.Equal(t, "new title", got.Title)
	assert.True(t, got.Saved)
	assert.False(t, got.Liked)

	missing := a
	missing.ID = "nope"
	assert.ErrorIs(t, s.ArticleRepository.UpdateArticle(ctx, missing), ErrArticleNotFound)
}

// TestArticleRepository_DeleteUserCascades verifies that removing a user
// removes the user's articles.
func TestArticleRepository_DeleteUserCascades(t *testing.T) {
	ctx := context.Background()
	s := newTestStorages(t)
	u := createTestUser(t, s, "a@example.com")
	other := createTestUser(t, s, "b@example.com")

	require.NoError(t, s.ArticleRepository.SaveArticles(ctx, []models.Article{
		testArticle("c1", u.UserID, ""),
		testArticle("c2", u.UserID, ""),
		testArticle("c3", other.UserID, ""),
	}))

	require.NoError(t, s.UserRepository.DeleteUser(ctx, u.UserID))

	total, err := s.ArticleRepository.CountAllArticles(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
}

func TestArticleRepository_LikedPerCategory(t *testing.T) {
	ctx := context.Background()
	s := newTestStorages(t)
	u := createTestUser(t, s, "a@example.com")

	require.NoError(t, s.ArticleRepository.SaveArticles(ctx, []models.Article{
		testArticle("l1", u.UserID, models.Economy),
		testArticle("l2", u.UserID, models.Economy),
		testArticle("l3", u.UserID, models.Opinion),
		testArticle("l4", u.UserID, models.Opinion),
	}))
	for _, id := range []string{"l1", "l2", "l3"} {
		require.NoError(t, s.ArticleRepository.SetLiked(ctx, id, u.UserID, true))
	}

	counts, err := s.ArticleRepository.LikedPerCategory(ctx, u.UserID)
	require.NoError(t, err)
	assert.Equal(t, map[models.Category]int{models.Economy: 2, models.Opinion: 1}, counts)
}

// TestArticleRepository_WritesNotifyOwner verifies that writes publish on the
// owner's topic.
func TestArticleRepository_WritesNotifyOwner(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s := newTestStorages(t)
	u := createTestUser(t, s, "a@example.com")

	signals, err := s.Changes.Subscribe(ctx, u.UserID)
	require.NoError(t, err)

	require.NoError(t, s.ArticleRepository.SaveArticles(ctx, []models.Article{testArticle("n", u.UserID, "")}))
	waitSignal(t, signals)

	require.NoError(t, s.ArticleRepository.SetSaved(ctx, "n", u.UserID, true))
	waitSignal(t, signals)
}
