// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if len(cfg.App.Region) != 2 {
		return fmt.Errorf("%w: region must be a two-letter country code", ErrInvalidAppConfigs)
	}

	if cfg.Storage.DB.DSN == "" || cfg.Storage.Preferences.Path == "" {
		return ErrInvalidStorageConfigs
	}

	if err := cfg.Adapter.validate(); err != nil {
		return err
	}

	if cfg.Workers.RefreshInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (a Adapter) validate() error {
	if a.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidAdapterConfigs)
	}

	if !isAbsoluteURL(a.News.BaseURL) || a.News.APIKey == "" {
		return fmt.Errorf("%w: news base url and api key are required", ErrInvalidAdapterConfigs)
	}

	if a.Enrichment.Disabled {
		return nil
	}

	if !isAbsoluteURL(a.Enrichment.BaseURL) || a.Enrichment.APIKey == "" || a.Enrichment.Model == "" {
		return fmt.Errorf("%w: enrichment base url, api key and model are required", ErrInvalidAdapterConfigs)
	}

	if a.Enrichment.Concurrency < 1 || a.Enrichment.RequestsPerMinute < 0 {
		return fmt.Errorf("%w: enrichment limits out of range", ErrInvalidAdapterConfigs)
	}

	return nil
}

func isAbsoluteURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && u.Scheme != "" && u.Host != ""
}
