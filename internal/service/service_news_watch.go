package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-summary-news/models"
)

// AllArticles implements [NewsService].
func (s *newsService) AllArticles(ctx context.Context, userID int64) (<-chan []models.Article, error) {
	return s.watch(ctx, models.ArticleFilter{UserID: userID})
}

// SavedArticles implements [NewsService].
func (s *newsService) SavedArticles(ctx context.Context, userID int64) (<-chan []models.Article, error) {
	return s.watch(ctx, models.ArticleFilter{UserID: userID, SavedOnly: true})
}

// ArticlesByCategory implements [NewsService]. The wildcard label yields
// every article of the user; any other label, the blank one included,
// matches exactly.
func (s *newsService) ArticlesByCategory(ctx context.Context, userID int64, label models.Category) (<-chan []models.Article, error) {
	return s.watch(ctx, models.ArticleFilter{UserID: userID, Category: &label})
}

// watch subscribes before taking the first snapshot so that no write between
// the two is missed. A failed re-query is logged and ends the stream.
func (s *newsService) watch(ctx context.Context, filter models.ArticleFilter) (<-chan []models.Article, error) {
	if filter.UserID <= 0 {
		return nil, ErrNoOwner
	}

	changes, err := s.changes.Subscribe(ctx, filter.UserID)
	if err != nil {
		return nil, fmt.Errorf("watch articles of user %d: %w", filter.UserID, err)
	}

	out := make(chan []models.Article, 1)
	go func() {
		defer close(out)

		for {
			rows, err := s.articles.GetArticles(ctx, filter)
			if err != nil {
				if ctx.Err() == nil {
					s.logger.Err(err).Str("func", "newsService.watch").Int64("user_id", filter.UserID).Msg("error querying articles, closing stream")
				}
				return
			}

			select {
			case out <- rows:
			case <-ctx.Done():
				return
			}

			select {
			case _, ok := <-changes:
				if !ok {
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}
