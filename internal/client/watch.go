package client

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-summary-news/internal/app"
	"github.com/MKhiriev/go-summary-news/models"
)

// watch logs every snapshot of the user's articles and saved articles until
// ctx ends.
func (a *App) watch(ctx context.Context, userID int64) error {
	all, err := a.services.NewsService.AllArticles(ctx, userID)
	if err != nil {
		return fmt.Errorf("watch articles: %w", err)
	}
	saved, err := a.services.NewsService.SavedArticles(ctx, userID)
	if err != nil {
		return fmt.Errorf("watch saved articles: %w", err)
	}

	go func() {
		for rows := range all {
			a.logSnapshot(userID, "all", rows)
		}
	}()
	go func() {
		for rows := range saved {
			a.logSnapshot(userID, "saved", rows)
		}
	}()

	return nil
}

func (a *App) logSnapshot(userID int64, stream string, rows []models.Article) {
	if len(rows) == 0 {
		a.logger.Info().Int64("user_id", userID).Str("stream", stream).Msg(app.MsgNoArticles)
		return
	}

	perCategory := zerolog.Dict()
	for _, c := range models.Categories() {
		if n := len(models.FilterByCategory(rows, c)); n > 0 {
			perCategory.Int(string(c), n)
		}
	}

	a.logger.Info().
		Int64("user_id", userID).
		Str("stream", stream).
		Int("articles", len(rows)).
		Dict("per_category", perCategory).
		Msg("articles snapshot")
}
