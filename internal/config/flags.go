package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// parseFlags parses the configuration flags found in args (without the
// program name).
//
// Flags:
//
//	-c/-config json file path with configs
//	-region headline country code
//	-skip-seed do not insert starter articles
//	-log-level zerolog level
//	-log-file log file path
//	-d database DSN
//	-prefs preference file path
//	-request-timeout outbound request timeout (e.g., "15s")
//	-news-url headline API base url
//	-news-key headline API key
//	-no-enrich store raw headlines
//	-enrich-url enrichment API base url
//	-enrich-key enrichment API key
//	-enrich-model enrichment model name
//	-enrich-rpm enrichment requests per minute
//	-enrich-concurrency articles enriched in parallel
//	-refresh-interval background refresh period (e.g., "10m")
//	-name / -email / -password bootstrap account
func parseFlags(args []string) (*StructuredConfig, error) {
	var cfg StructuredConfig

	fs := flag.NewFlagSet("newsclient", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")

	fs.StringVar(&cfg.App.Region, "region", "", "Headline country code")
	fs.BoolVar(&cfg.App.SkipSeed, "skip-seed", false, "Do not seed an empty store")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Log level")
	fs.StringVar(&cfg.App.LogFile, "log-file", "", "Log file path")

	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN")
	fs.StringVar(&cfg.Storage.Preferences.Path, "prefs", "", "Preference file path")

	fs.DurationVar(&cfg.Adapter.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s)")
	fs.StringVar(&cfg.Adapter.News.BaseURL, "news-url", "", "Headline API base url")
	fs.StringVar(&cfg.Adapter.News.APIKey, "news-key", "", "Headline API key")
	fs.BoolVar(&cfg.Adapter.Enrichment.Disabled, "no-enrich", false, "Store raw headlines")
	fs.StringVar(&cfg.Adapter.Enrichment.BaseURL, "enrich-url", "", "Enrichment API base url")
	fs.StringVar(&cfg.Adapter.Enrichment.APIKey, "enrich-key", "", "Enrichment API key")
	fs.StringVar(&cfg.Adapter.Enrichment.Model, "enrich-model", "", "Enrichment model")
	fs.IntVar(&cfg.Adapter.Enrichment.RequestsPerMinute, "enrich-rpm", 0, "Enrichment requests per minute")
	fs.IntVar(&cfg.Adapter.Enrichment.Concurrency, "enrich-concurrency", 0, "Articles enriched in parallel")

	var refresh time.Duration
	fs.DurationVar(&refresh, "refresh-interval", 0, "Background refresh period (e.g., 10m)")

	fs.StringVar(&cfg.Account.Name, "name", "", "Account name used for registration")
	fs.StringVar(&cfg.Account.Email, "email", "", "Account email")
	fs.StringVar(&cfg.Account.Password, "password", "", "Account password")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}
	cfg.Workers.RefreshInterval = refresh

	return &cfg, nil
}
