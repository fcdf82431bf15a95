// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_REGION":    "mx",
		"APP_SKIP_SEED": "true",
		"APP_LOG_LEVEL": "warn",
		"APP_LOG_FILE":  "/var/log/news.log",

		"STORAGE_DB_DSN":           "/data/news.db",
		"STORAGE_PREFERENCES_PATH": "/data/prefs.json",

		"ADAPTER_REQUEST_TIMEOUT":                "30s",
		"ADAPTER_NEWS_BASE_URL":                  "https://newsapi.org/",
		"ADAPTER_NEWS_API_KEY":                   "news-secret",
		"ADAPTER_ENRICHMENT_DISABLED":            "true",
		"ADAPTER_ENRICHMENT_BASE_URL":            "https://gemini.local/",
		"ADAPTER_ENRICHMENT_API_KEY":             "gemini-secret",
		"ADAPTER_ENRICHMENT_MODEL":               "flash",
		"ADAPTER_ENRICHMENT_REQUESTS_PER_MINUTE": "60",
		"ADAPTER_ENRICHMENT_CONCURRENCY":         "3",

		"WORKERS_REFRESH_INTERVAL": "15m",

		"ACCOUNT_NAME":     "Ana",
		"ACCOUNT_EMAIL":    "ana@example.com",
		"ACCOUNT_PASSWORD": "1234",
	}
	for k, v := range envVars {
		t.Setenv(k, v)
	}

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "mx", cfg.App.Region)
	assert.True(t, cfg.App.SkipSeed)
	assert.Equal(t, "warn", cfg.App.LogLevel)
	assert.Equal(t, "/var/log/news.log", cfg.App.LogFile)

	assert.Equal(t, "/data/news.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/data/prefs.json", cfg.Storage.Preferences.Path)

	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "https://newsapi.org/", cfg.Adapter.News.BaseURL)
	assert.Equal(t, "news-secret", cfg.Adapter.News.APIKey)
	assert.True(t, cfg.Adapter.Enrichment.Disabled)
	assert.Equal(t, "https://gemini.local/", cfg.Adapter.Enrichment.BaseURL)
	assert.Equal(t, "gemini-secret", cfg.Adapter.Enrichment.APIKey)
	assert.Equal(t, "flash", cfg.Adapter.Enrichment.Model)
	assert.Equal(t, 60, cfg.Adapter.Enrichment.RequestsPerMinute)
	assert.Equal(t, 3, cfg.Adapter.Enrichment.Concurrency)

	assert.Equal(t, 15*time.Minute, cfg.Workers.RefreshInterval)

	assert.Equal(t, "Ana", cfg.Account.Name)
	assert.Equal(t, "ana@example.com", cfg.Account.Email)
	assert.Equal(t, "1234", cfg.Account.Password)
}

func TestParseEnv_InvalidBool(t *testing.T) {
	t.Setenv("APP_SKIP_SEED", "maybe")

	err := parseEnv(&StructuredConfig{})
	assert.Error(t, err)
}

func TestParseEnv_InvalidInt(t *testing.T) {
	t.Setenv("ADAPTER_ENRICHMENT_CONCURRENCY", "lots")

	err := parseEnv(&StructuredConfig{})
	assert.Error(t, err)
}
