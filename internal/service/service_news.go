package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/MKhiriev/go-summary-news/internal/adapter"
	"github.com/MKhiriev/go-summary-news/internal/logger"
	"github.com/MKhiriev/go-summary-news/internal/store"
	"github.com/MKhiriev/go-summary-news/internal/utils"
	"github.com/MKhiriev/go-summary-news/models"
)

// DefaultEnrichmentConcurrency is used when a non-positive limit is given.
const DefaultEnrichmentConcurrency = 4

type newsService struct {
	articles   store.ArticleRepository
	changes    store.ChangeNotifier
	headlines  adapter.HeadlineSource
	enrichment adapter.EnrichmentSource

	concurrency int
	ids         *utils.UUIDGenerator
	sanitizer   *utils.Sanitizer
	now         func() time.Time

	pages  *pageCounter
	flight singleflight.Group

	logger *logger.Logger
}

// NewNewsService wires the synchronization repository.
//
// A nil enrichment source disables enrichment: rows are built from the
// sanitized raw title and description and stay uncategorized. concurrency
// bounds the number of enrichment calls in flight for one page.
func NewNewsService(
	articles store.ArticleRepository,
	changes store.ChangeNotifier,
	headlines adapter.HeadlineSource,
	enrichment adapter.EnrichmentSource,
	concurrency int,
	logger *logger.Logger,
) NewsService {
	if concurrency <= 0 {
		concurrency = DefaultEnrichmentConcurrency
	}

	return &newsService{
		articles:    articles,
		changes:     changes,
		headlines:   headlines,
		enrichment:  enrichment,
		concurrency: concurrency,
		ids:         utils.NewUUIDGenerator(),
		sanitizer:   utils.NewSanitizer(),
		now:         time.Now,
		pages:       newPageCounter(),
		logger:      logger,
	}
}

// UpdateArticle implements [NewsService].
func (s *newsService) UpdateArticle(ctx context.Context, article models.Article) error {
	if err := s.articles.UpdateArticle(ctx, article); err != nil {
		return fmt.Errorf("update article %s: %w", article.ID, err)
	}
	return nil
}

// SetLiked implements [NewsService].
func (s *newsService) SetLiked(ctx context.Context, id string, userID int64, liked bool) error {
	if err := s.articles.SetLiked(ctx, id, userID, liked); err != nil {
		return fmt.Errorf("set liked on %s: %w", id, err)
	}
	return nil
}

// SetSaved implements [NewsService].
func (s *newsService) SetSaved(ctx context.Context, id string, userID int64, saved bool) error {
	if err := s.articles.SetSaved(ctx, id, userID, saved); err != nil {
		return fmt.Errorf("set saved on %s: %w", id, err)
	}
	return nil
}

// ToggleLike implements [NewsService].
func (s *newsService) ToggleLike(ctx context.Context, article models.Article) (models.Article, error) {
	if err := s.SetLiked(ctx, article.ID, article.UserID, !article.Liked); err != nil {
		return article, err
	}
	article.Liked = !article.Liked
	return article, nil
}

// ToggleSave implements [NewsService].
func (s *newsService) ToggleSave(ctx context.Context, article models.Article) (models.Article, error) {
	if err := s.SetSaved(ctx, article.ID, article.UserID, !article.Saved); err != nil {
		return article, err
	}
	article.Saved = !article.Saved
	return article, nil
}

// DeleteArticle implements [NewsService].
func (s *newsService) DeleteArticle(ctx context.Context, article models.Article) error {
	if err := s.articles.DeleteArticle(ctx, article.ID, article.UserID); err != nil {
		return fmt.Errorf("delete article %s: %w", article.ID, err)
	}
	return nil
}

// IsLocalStoreEmpty implements [NewsService].
func (s *newsService) IsLocalStoreEmpty(ctx context.Context, userID int64) (bool, error) {
	n, err := s.CountArticles(ctx, userID)
	if err != nil {
		return false, err
	}
	return n == 0, nil
}

// CountArticles implements [NewsService].
func (s *newsService) CountArticles(ctx context.Context, userID int64) (int, error) {
	n, err := s.articles.CountArticles(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("count articles of user %d: %w", userID, err)
	}
	return n, nil
}

// CountAllArticles implements [NewsService].
func (s *newsService) CountAllArticles(ctx context.Context) (int, error) {
	n, err := s.articles.CountAllArticles(ctx)
	if err != nil {
		return 0, fmt.Errorf("count all articles: %w", err)
	}
	return n, nil
}
