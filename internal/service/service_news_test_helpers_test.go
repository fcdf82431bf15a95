package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-summary-news/internal/logger"
	"github.com/MKhiriev/go-summary-news/internal/mock"
	"github.com/MKhiriev/go-summary-news/models"
)

type newsMocks struct {
	articles   *mock.MockArticleRepository
	changes    *mock.MockChangeNotifier
	headlines  *mock.MockHeadlineSource
	enrichment *mock.MockEnrichmentSource
}

// newTestNewsSvc wires a newsService over gomock collaborators and a fixed
// clock.
func newTestNewsSvc(t *testing.T, ctrl *gomock.Controller, withEnrichment bool) (*newsService, newsMocks) {
	t.Helper()

	m := newsMocks{
		articles:   mock.NewMockArticleRepository(ctrl),
		changes:    mock.NewMockChangeNotifier(ctrl),
		headlines:  mock.NewMockHeadlineSource(ctrl),
		enrichment: mock.NewMockEnrichmentSource(ctrl),
	}

	var svc NewsService
	if withEnrichment {
		svc = NewNewsService(m.articles, m.changes, m.headlines, m.enrichment, 2, logger.Nop())
	} else {
		svc = NewNewsService(m.articles, m.changes, m.headlines, nil, 2, logger.Nop())
	}

	s := svc.(*newsService)
	s.now = func() time.Time { return time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC) }
	return s, m
}

func strPtr(s string) *string { return &s }

// remotePage builds a headline page of n articles titled "raw 1".."raw n".
func remotePage(n int) models.HeadlinesPage {
	page := models.HeadlinesPage{Status: "ok", TotalResults: n}
	for i := 1; i <= n; i++ {
		page.Articles = append(page.Articles, models.RemoteArticle{
			Title:       strPtr(fmt.Sprintf("raw %d", i)),
			Description: strPtr(fmt.Sprintf("description %d", i)),
			URL:         strPtr(fmt.Sprintf("https://news.example/%d", i)),
		})
	}
	return page
}

func enrichedFor(title string) models.Enrichment {
	return models.Enrichment{Title: "ES " + title, Summary: "resumen de " + title, Category: models.Technology}
}

// collect drains a fetch stream, failing the test if it is not closed in
// time.
func collect(t *testing.T, ch <-chan models.FetchResult) []models.FetchResult {
	t.Helper()

	var out []models.FetchResult
	timeout := time.After(2 * time.Second)
	for {
		select {
		case r, ok := <-ch:
			if !ok {
				return out
			}
			out = append(out, r)
		case <-timeout:
			require.FailNow(t, "fetch stream was not closed")
			return nil
		}
	}
}

// terminal asserts the Loading-then-terminal shape and returns the terminal
// result.
func terminal(t *testing.T, results []models.FetchResult) models.FetchResult {
	t.Helper()

	require.Len(t, results, 2)
	require.Equal(t, models.FetchLoading, results[0].Status)
	require.True(t, results[1].IsTerminal())
	return results[1]
}

func nextSnapshot(t *testing.T, ch <-chan []models.Article) []models.Article {
	t.Helper()

	select {
	case rows, ok := <-ch:
		require.True(t, ok, "stream closed")
		return rows
	case <-time.After(2 * time.Second):
		require.FailNow(t, "no snapshot")
		return nil
	}
}
