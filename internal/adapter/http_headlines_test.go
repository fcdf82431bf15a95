// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-summary-news/internal/config"
	"github.com/MKhiriev/go-summary-news/internal/logger"
)

// newTestHeadlineSource points the headline client at a test server.
func newTestHeadlineSource(t *testing.T, serverURL string) HeadlineSource {
	t.Helper()

	src, err := NewHTTPHeadlineSource(config.Adapter{
		RequestTimeout: 5 * time.Second,
		News:           config.News{BaseURL: serverURL, APIKey: "test-key"},
	}, logger.Nop())
	require.NoError(t, err)
	return src
}

const headlinesBody = `{
  "status": "ok",
  "totalResults": 2,
  "articles": [
    {"title": "First", "description": "one", "url": "https://a.example/1", "urlToImage": "https://img.example/1.png"},
    {"title": "Second", "description": null, "url": null, "urlToImage": null}
  ]
}`

// ── TopHeadlines ────────────────────────────────────────────────────────────

func TestTopHeadlines_Success(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/v2/top-headlines", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "us", r.URL.Query().Get("country"))
		assert.Equal(t, "3", r.URL.Query().Get("page"))
		assert.Equal(t, "test-key", r.URL.Query().Get("apiKey"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(headlinesBody))
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	page, err := newTestHeadlineSource(t, srv.URL).TopHeadlines(context.Background(), "us", 3)

	require.NoError(t, err)
	assert.Equal(t, "ok", page.Status)
	assert.Equal(t, 2, page.TotalResults)
	require.Len(t, page.Articles, 2)
	assert.Equal(t, "First", page.Articles[0].TitleOrEmpty())
	assert.Equal(t, "https://img.example/1.png", *page.Articles[0].URLToImage)
	assert.Nil(t, page.Articles[1].URL)
	assert.Empty(t, page.Articles[1].DescriptionOrEmpty())
}

func TestTopHeadlines_Unauthorized(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/v2/top-headlines", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"status":"error","code":"apiKeyInvalid"}`))
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	_, err := newTestHeadlineSource(t, srv.URL).TopHeadlines(context.Background(), "us", 1)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnexpectedStatus)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "apiKeyInvalid")
}

func TestTopHeadlines_UnknownStatus(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/v2/top-headlines", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	_, err := newTestHeadlineSource(t, srv.URL).TopHeadlines(context.Background(), "us", 1)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnexpectedStatus)
	assert.NotErrorIs(t, err, ErrBadRequest)
}

func TestTopHeadlines_InvalidJSON(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/v2/top-headlines", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"articles": [`))
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	_, err := newTestHeadlineSource(t, srv.URL).TopHeadlines(context.Background(), "us", 1)

	assert.ErrorIs(t, err, ErrDecodingResponse)
}

func TestTopHeadlines_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := newTestHeadlineSource(t, url).TopHeadlines(context.Background(), "us", 1)

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnexpectedStatus)
}

func TestTopHeadlines_ContextCanceled(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/v2/top-headlines", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(headlinesBody))
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestHeadlineSource(t, srv.URL).TopHeadlines(ctx, "us", 1)

	assert.ErrorIs(t, err, context.Canceled)
}

// ── Search ──────────────────────────────────────────────────────────────────

func TestSearch_Success(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/v2/everything", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "golang", r.URL.Query().Get("q"))
		assert.Equal(t, "1", r.URL.Query().Get("page"))
		assert.Equal(t, "test-key", r.URL.Query().Get("apiKey"))
		_, _ = w.Write([]byte(`{"status":"ok","totalResults":0,"articles":[]}`))
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	page, err := newTestHeadlineSource(t, srv.URL).Search(context.Background(), "golang", 1)

	require.NoError(t, err)
	assert.Empty(t, page.Articles)
}

func TestSearch_TooManyRequests(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/v2/everything", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	_, err := newTestHeadlineSource(t, srv.URL).Search(context.Background(), "golang", 2)

	assert.ErrorIs(t, err, ErrTooManyRequests)
}

// ── normalizeBaseURL ────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "trailing slash", raw: "https://newsapi.org/", want: "https://newsapi.org"},
		{name: "no scheme", raw: "newsapi.org", want: "https://newsapi.org"},
		{name: "keeps path", raw: "http://localhost:8080/proxy/", want: "http://localhost:8080/proxy"},
		{name: "empty", raw: "  ", wantErr: true},
		{name: "no host", raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPHeadlineSource_InvalidURL(t *testing.T) {
	_, err := NewHTTPHeadlineSource(config.Adapter{}, logger.Nop())
	assert.Error(t, err)
}
