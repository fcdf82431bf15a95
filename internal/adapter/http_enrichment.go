package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"github.com/MKhiriev/go-summary-news/internal/config"
	"github.com/MKhiriev/go-summary-news/internal/logger"
	"github.com/MKhiriev/go-summary-news/internal/utils"
	"github.com/MKhiriev/go-summary-news/models"
)

type httpEnrichmentSource struct {
	client    *utils.HTTPClient
	apiKey    string
	model     string
	limiter   *rate.Limiter
	sanitizer *utils.Sanitizer

	logger *logger.Logger
}

// NewHTTPEnrichmentSource constructs the resty implementation of
// [EnrichmentSource] over POST /v1beta/models/{model}:generateContent.
//
// A positive RequestsPerMinute installs a client-side limiter; calls then
// wait for a token or for ctx to end.
func NewHTTPEnrichmentSource(cfg config.Adapter, logger *logger.Logger) (EnrichmentSource, error) {
	baseURL, err := normalizeBaseURL(cfg.Enrichment.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid enrichment base url: %w", err)
	}

	var limiter *rate.Limiter
	if rpm := cfg.Enrichment.RequestsPerMinute; rpm > 0 {
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(rpm)), 1)
	}

	return &httpEnrichmentSource{
		client:    utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		apiKey:    cfg.Enrichment.APIKey,
		model:     cfg.Enrichment.Model,
		limiter:   limiter,
		sanitizer: utils.NewSanitizer(),
		logger:    logger,
	}, nil
}

// Enrich implements [EnrichmentSource]. HTML in the inputs is stripped
// before prompting. There is no retry and no caching of prompts.
func (h *httpEnrichmentSource) Enrich(ctx context.Context, title, description string) (models.Enrichment, error) {
	log := logger.FromContext(ctx)

	if h.limiter != nil {
		if err := h.limiter.Wait(ctx); err != nil {
			return models.Enrichment{}, fmt.Errorf("enrichment rate limit: %w", err)
		}
	}

	prompt := buildPrompt(h.sanitizer.PlainText(title), h.sanitizer.PlainText(description))
	body := models.GenerateContentRequest{
		Contents: []models.Content{{Parts: []models.Part{{Text: prompt}}}},
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetQueryParam("key", h.apiKey).
		SetPathParam("model", h.model).
		SetBody(body).
		Post("/v1beta/models/{model}:generateContent")
	if err != nil {
		log.Err(err).Str("func", "httpEnrichmentSource.Enrich").Msg("enrichment request failed")
		return models.Enrichment{}, fmt.Errorf("enrichment request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Enrichment{}, err
	}

	var completion models.GenerateContentResponse
	if err = json.Unmarshal(resp.Body(), &completion); err != nil {
		return models.Enrichment{}, fmt.Errorf("%w: completion: %w", ErrDecodingResponse, err)
	}

	text, ok := completion.FirstText()
	if !ok {
		return models.Enrichment{}, ErrEmptyCompletion
	}

	return parseCompletion(text)
}
