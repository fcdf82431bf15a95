package service

import (
	"context"
	"strconv"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-summary-news/internal/app"
	"github.com/MKhiriev/go-summary-news/models"
)

// fetchFunc performs the single remote call of a page fetch.
type fetchFunc func(ctx context.Context) (models.HeadlinesPage, error)

// outcome is the result of mapping one remote headline: either a row or the
// reason it was skipped.
type outcome struct {
	article models.Article
	skip    error
}

// FetchHeadlinesPage implements [NewsService].
func (s *newsService) FetchHeadlinesPage(ctx context.Context, region string, page int, userID int64) <-chan models.FetchResult {
	return s.stream(ctx, userID, func(ctx context.Context) (models.HeadlinesPage, error) {
		return s.headlines.TopHeadlines(ctx, region, page)
	})
}

// SearchPage implements [NewsService].
func (s *newsService) SearchPage(ctx context.Context, query string, page int, userID int64) <-chan models.FetchResult {
	return s.stream(ctx, userID, func(ctx context.Context) (models.HeadlinesPage, error) {
		return s.headlines.Search(ctx, query, page)
	})
}

// LoadMore implements [NewsService].
func (s *newsService) LoadMore(ctx context.Context, region string, userID int64) <-chan models.FetchResult {
	out := make(chan models.FetchResult, 2)
	out <- models.Loading()

	go func() {
		defer close(out)

		v, _, _ := s.flight.Do(strconv.FormatInt(userID, 10), func() (any, error) {
			page := s.pages.current(userID)
			result := s.fetchPage(ctx, userID, func(ctx context.Context) (models.HeadlinesPage, error) {
				return s.headlines.TopHeadlines(ctx, region, page)
			})
			if result.Status == models.FetchSuccess {
				s.pages.advance(userID)
			}
			return result, nil
		})

		out <- v.(models.FetchResult)
	}()

	return out
}

// CurrentPage implements [NewsService].
func (s *newsService) CurrentPage(userID int64) int {
	return s.pages.current(userID)
}

func (s *newsService) stream(ctx context.Context, userID int64, fetch fetchFunc) <-chan models.FetchResult {
	out := make(chan models.FetchResult, 2)
	out <- models.Loading()

	go func() {
		defer close(out)
		out <- s.fetchPage(ctx, userID, fetch)
	}()

	return out
}

// fetchPage runs one page through fetch, enrichment and the batch insert and
// returns the terminal result.
func (s *newsService) fetchPage(ctx context.Context, userID int64, fetch fetchFunc) models.FetchResult {
	if userID <= 0 {
		return models.Failure(app.MsgLocalStoreError, ErrNoOwner)
	}

	page, err := fetch(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "newsService.fetchPage").Int64("user_id", userID).Msg("error fetching headlines")
		return models.Failure(app.MsgNetworkOrConversionError, err)
	}

	rows := s.mapArticles(ctx, userID, page.Articles)
	if err = ctx.Err(); err != nil {
		s.logger.Warn().Err(err).Str("func", "newsService.fetchPage").Int64("user_id", userID).Msg("fetch canceled before the page was stored")
		return models.Failure(app.MsgNetworkOrConversionError, err)
	}

	if len(rows) > 0 {
		if err = s.articles.SaveArticles(ctx, rows); err != nil {
			s.logger.Err(err).Str("func", "newsService.fetchPage").Int64("user_id", userID).Int("rows", len(rows)).Msg("error saving fetched articles")
			return models.Failure(app.MsgLocalStoreError, err)
		}
	}

	s.logger.Debug().Int64("user_id", userID).Int("fetched", len(page.Articles)).Int("stored", len(rows)).Msg(app.MsgNewArticlesLoaded)
	return models.Success(rows)
}

// mapArticles turns every remote headline into an outcome, concurrently up
// to the configured limit, and keeps the rows in page order. Skipped
// headlines are logged and dropped.
func (s *newsService) mapArticles(ctx context.Context, userID int64, remote []models.RemoteArticle) []models.Article {
	outcomes := make([]outcome, len(remote))

	var g errgroup.Group
	g.SetLimit(s.concurrency)
	for i, ra := range remote {
		g.Go(func() error {
			outcomes[i] = s.toArticle(ctx, userID, ra)
			return nil
		})
	}
	_ = g.Wait()

	rows := make([]models.Article, 0, len(remote))
	seen := make(map[string]struct{}, len(remote))
	for i, o := range outcomes {
		if o.skip != nil {
			s.logger.Warn().Err(o.skip).Int64("user_id", userID).Int("index", i).Str("url", remote[i].URLOrEmpty()).Msg("headline skipped")
			continue
		}
		if _, dup := seen[o.article.ID]; dup {
			continue
		}
		seen[o.article.ID] = struct{}{}
		rows = append(rows, o.article)
	}

	return rows
}

func (s *newsService) toArticle(ctx context.Context, userID int64, ra models.RemoteArticle) outcome {
	rawTitle := ra.TitleOrEmpty()
	rawDescription := ra.DescriptionOrEmpty()

	article := models.Article{
		ID:        s.ids.ArticleID(userID, ra.URLOrEmpty(), rawTitle),
		UserID:    userID,
		SourceURL: ra.URLOrEmpty(),
		ImageRef:  models.DefaultImageRef,
		CreatedAt: s.now().UTC(),
	}
	if ra.URLToImage != nil && *ra.URLToImage != "" {
		imageURL := *ra.URLToImage
		article.ImageURL = &imageURL
	}

	if s.enrichment == nil {
		article.Title = s.sanitizer.PlainText(rawTitle)
		article.Summary = s.sanitizer.PlainText(rawDescription)
		article.Category = models.Uncategorized
		if article.Title == "" {
			return outcome{skip: ErrEmptyHeadline}
		}
		return outcome{article: article}
	}

	enriched, err := s.enrichment.Enrich(ctx, rawTitle, rawDescription)
	if err != nil {
		return outcome{skip: err}
	}

	article.Title = enriched.Title
	article.Summary = enriched.Summary
	article.Category = enriched.Category
	return outcome{article: article}
}

// pageCounter holds the next page of every user.
type pageCounter struct {
	mu    sync.Mutex
	pages map[int64]int
}

func newPageCounter() *pageCounter {
	return &pageCounter{pages: make(map[int64]int)}
}

func (c *pageCounter) current(userID int64) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	if p, ok := c.pages[userID]; ok {
		return p
	}
	return 1
}

func (c *pageCounter) advance(userID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.pages[userID]; !ok {
		c.pages[userID] = 1
	}
	c.pages[userID]++
}
