package service

import (
	"github.com/MKhiriev/go-summary-news/internal/adapter"
	"github.com/MKhiriev/go-summary-news/internal/logger"
	"github.com/MKhiriev/go-summary-news/internal/store"
)

type Services struct {
	NewsService NewsService
	AuthService AuthService
	RefreshJob  RefreshJob
}

// NewServices wires every service over the storages and the remote sources.
// A nil enrichment source stores raw headlines.
func NewServices(
	storages *store.Storages,
	headlines adapter.HeadlineSource,
	enrichment adapter.EnrichmentSource,
	enrichmentConcurrency int,
	logger *logger.Logger,
) *Services {
	newsSvc := NewNewsService(storages.ArticleRepository, storages.Changes, headlines, enrichment, enrichmentConcurrency, logger)

	return &Services{
		NewsService: newsSvc,
		AuthService: NewAuthService(storages.UserRepository, storages.Preferences, logger),
		RefreshJob:  NewRefreshJob(newsSvc, logger),
	}
}
