// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the clients of the two remote collaborators of
// the news client: the headline API and the generative-language API used to
// enrich headlines.
//
// Both implementations are built on resty. Error values defined in errors.go
// are mapped from HTTP status codes by mapHTTPError so that callers can use
// [errors.Is] (e.g. [ErrUnauthorized] for 401, [ErrUnexpectedStatus] for any
// non-2xx answer).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-summary-news/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// HeadlineSource is a thin paged client of the headline API.
type HeadlineSource interface {
	// TopHeadlines fetches one page of top headlines for a country code.
	TopHeadlines(ctx context.Context, country string, page int) (models.HeadlinesPage, error)

	// Search fetches one page of the full-text search over all articles.
	Search(ctx context.Context, query string, page int) (models.HeadlinesPage, error)
}

// EnrichmentSource rewrites a raw headline: a translated title of 50 to 75
// characters, a summary of 40 to 50 words and exactly one category.
type EnrichmentSource interface {
	Enrich(ctx context.Context, title, description string) (models.Enrichment, error)
}
