// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the news
// client. It aggregates all sub-configurations and is populated by merging
// defaults, a .env file, environment variables, command-line flags and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the headline region
	// and logging.
	App App `envPrefix:"APP_"`

	// Storage holds the local database and preference file locations.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the settings of the remote headline and enrichment APIs.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// Account holds the credentials used by the headless client when no
	// session is stored.
	Account Account `envPrefix:"ACCOUNT_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from the other sources.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Region is the two-letter country code passed to the headline source.
	// Env: APP_REGION
	Region string `env:"REGION"`

	// SkipSeed disables inserting the starter articles into an empty store.
	// Env: APP_SKIP_SEED
	SkipSeed bool `env:"SKIP_SEED"`

	// LogLevel is a zerolog level name (e.g. "debug", "info").
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// LogFile is the file the client logger appends to. Empty selects a
	// file next to the executable.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Storage groups the configuration for the local persistence backends.
type Storage struct {
	// DB holds the SQLite database settings.
	DB DB `envPrefix:"DB_"`

	// Preferences holds the key-value preference file settings.
	Preferences Preferences `envPrefix:"PREFERENCES_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite file path or URI (e.g. "news.db").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Preferences holds the location of the session/settings document.
type Preferences struct {
	// Path is the JSON file holding the session and settings.
	// Env: STORAGE_PREFERENCES_PATH
	Path string `env:"PATH"`
}

// Adapter holds configuration for the outbound HTTP integrations.
type Adapter struct {
	// RequestTimeout bounds every outbound request (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// News configures the remote headline source.
	News News `envPrefix:"NEWS_"`

	// Enrichment configures the generative-language source.
	Enrichment Enrichment `envPrefix:"ENRICHMENT_"`
}

// News holds the headline API settings.
type News struct {
	// BaseURL is the root of the headline API (e.g. "https://newsapi.org/").
	// Env: ADAPTER_NEWS_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// APIKey is sent as the apiKey query parameter.
	// Env: ADAPTER_NEWS_API_KEY
	APIKey string `env:"API_KEY"`
}

// Enrichment holds the generative-language API settings.
type Enrichment struct {
	// Disabled stores raw headlines without calling the API.
	// Env: ADAPTER_ENRICHMENT_DISABLED
	Disabled bool `env:"DISABLED"`

	// BaseURL is the root of the API.
	// Env: ADAPTER_ENRICHMENT_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// APIKey is sent as the key query parameter.
	// Env: ADAPTER_ENRICHMENT_API_KEY
	APIKey string `env:"API_KEY"`

	// Model is the model name used in the generateContent path.
	// Env: ADAPTER_ENRICHMENT_MODEL
	Model string `env:"MODEL"`

	// RequestsPerMinute throttles calls on the client side. Zero disables
	// throttling.
	// Env: ADAPTER_ENRICHMENT_REQUESTS_PER_MINUTE
	RequestsPerMinute int `env:"REQUESTS_PER_MINUTE"`

	// Concurrency bounds the number of articles enriched at once.
	// Env: ADAPTER_ENRICHMENT_CONCURRENCY
	Concurrency int `env:"CONCURRENCY"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// RefreshInterval is the period of the background headline refresh.
	// Zero disables the job.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// Account holds the bootstrap credentials of the headless client.
// When Name is set and the login fails, the account is registered.
type Account struct {
	// Env: ACCOUNT_NAME
	Name string `env:"NAME"`
	// Env: ACCOUNT_EMAIL
	Email string `env:"EMAIL"`
	// Env: ACCOUNT_PASSWORD
	Password string `env:"PASSWORD"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Built-in defaults
//  2. .env file in the working directory (exported into the environment)
//  3. Environment variables
//  4. Command-line flags parsed from args
//  5. JSON file (path resolved from sources 3 and 4)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withDotEnv(DefaultDotEnvFile).
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
