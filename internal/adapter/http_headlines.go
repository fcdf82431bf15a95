package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-summary-news/internal/config"
	"github.com/MKhiriev/go-summary-news/internal/logger"
	"github.com/MKhiriev/go-summary-news/internal/utils"
	"github.com/MKhiriev/go-summary-news/models"
)

const (
	topHeadlinesPath = "/v2/top-headlines"
	everythingPath   = "/v2/everything"
)

type httpHeadlineSource struct {
	client *utils.HTTPClient
	apiKey string

	logger *logger.Logger
}

// NewHTTPHeadlineSource constructs the resty implementation of
// [HeadlineSource] from the news section of the adapter config.
//
// Returns an error if the base URL is empty or cannot be parsed.
func NewHTTPHeadlineSource(cfg config.Adapter, logger *logger.Logger) (HeadlineSource, error) {
	baseURL, err := normalizeBaseURL(cfg.News.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid news base url: %w", err)
	}

	return &httpHeadlineSource{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		apiKey: cfg.News.APIKey,
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// TopHeadlines implements [HeadlineSource] over GET /v2/top-headlines.
func (h *httpHeadlineSource) TopHeadlines(ctx context.Context, country string, page int) (models.HeadlinesPage, error) {
	return h.get(ctx, topHeadlinesPath, map[string]string{
		"country": country,
		"page":    strconv.Itoa(page),
	})
}

// Search implements [HeadlineSource] over GET /v2/everything.
func (h *httpHeadlineSource) Search(ctx context.Context, query string, page int) (models.HeadlinesPage, error) {
	return h.get(ctx, everythingPath, map[string]string{
		"q":    query,
		"page": strconv.Itoa(page),
	})
}

func (h *httpHeadlineSource) get(ctx context.Context, path string, params map[string]string) (models.HeadlinesPage, error) {
	log := logger.FromContext(ctx)

	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetQueryParam("apiKey", h.apiKey).
		Get(path)
	if err != nil {
		log.Err(err).Str("func", "httpHeadlineSource.get").Str("path", path).Msg("headline request failed")
		return models.HeadlinesPage{}, fmt.Errorf("headline request %s: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Warn().Err(err).Str("func", "httpHeadlineSource.get").Str("path", path).Int("status", resp.StatusCode()).Msg("headline request rejected")
		return models.HeadlinesPage{}, err
	}

	var page models.HeadlinesPage
	if err = json.Unmarshal(resp.Body(), &page); err != nil {
		return models.HeadlinesPage{}, fmt.Errorf("%w: headlines: %w", ErrDecodingResponse, err)
	}

	return page, nil
}
