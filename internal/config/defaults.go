package config

import "time"

// Default values applied before any other source.
const (
	DefaultRegion             = "us"
	DefaultDSN                = "noticias.db"
	DefaultPreferencesPath    = "preferences.json"
	DefaultRequestTimeout     = 15 * time.Second
	DefaultNewsBaseURL        = "https://newsapi.org/"
	DefaultEnrichmentBaseURL  = "https://generativelanguage.googleapis.com/"
	DefaultEnrichmentModel    = "gemini-1.5-flash-latest"
	DefaultEnrichmentParallel = 4
	DefaultLogLevel           = "debug"
	DefaultDotEnvFile         = ".env"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Region:   DefaultRegion,
			LogLevel: DefaultLogLevel,
		},
		Storage: Storage{
			DB:          DB{DSN: DefaultDSN},
			Preferences: Preferences{Path: DefaultPreferencesPath},
		},
		Adapter: Adapter{
			RequestTimeout: DefaultRequestTimeout,
			News:           News{BaseURL: DefaultNewsBaseURL},
			Enrichment: Enrichment{
				BaseURL:     DefaultEnrichmentBaseURL,
				Model:       DefaultEnrichmentModel,
				Concurrency: DefaultEnrichmentParallel,
			},
		},
	}
}
