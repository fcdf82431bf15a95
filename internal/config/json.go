package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the JSON file format.
type StructuredJSONConfig struct {
	App struct {
		Region   string `json:"region"`
		SkipSeed bool   `json:"skip_seed"`
		LogLevel string `json:"log_level"`
		LogFile  string `json:"log_file"`
	} `json:"app,omitempty"`

	Storage struct {
		DSN             string `json:"dsn"`
		PreferencesPath string `json:"preferences_path"`
	} `json:"storage,omitempty"`

	Adapter struct {
		RequestTimeout Duration `json:"request_timeout"`

		News struct {
			BaseURL string `json:"base_url"`
			APIKey  string `json:"api_key"`
		} `json:"news,omitempty"`

		Enrichment struct {
			Disabled          bool   `json:"disabled"`
			BaseURL           string `json:"base_url"`
			APIKey            string `json:"api_key"`
			Model             string `json:"model"`
			RequestsPerMinute int    `json:"requests_per_minute"`
			Concurrency       int    `json:"concurrency"`
		} `json:"enrichment,omitempty"`
	} `json:"adapter,omitempty"`

	Workers struct {
		RefreshInterval Duration `json:"refresh_interval"`
	} `json:"workers,omitempty"`

	Account struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	} `json:"account,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	enrichment := jsonCfg.Adapter.Enrichment
	cfg := &StructuredConfig{
		App: App{
			Region:   jsonCfg.App.Region,
			SkipSeed: jsonCfg.App.SkipSeed,
			LogLevel: jsonCfg.App.LogLevel,
			LogFile:  jsonCfg.App.LogFile,
		},
		Storage: Storage{
			DB:          DB{DSN: jsonCfg.Storage.DSN},
			Preferences: Preferences{Path: jsonCfg.Storage.PreferencesPath},
		},
		Adapter: Adapter{
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			News: News{
				BaseURL: jsonCfg.Adapter.News.BaseURL,
				APIKey:  jsonCfg.Adapter.News.APIKey,
			},
			Enrichment: Enrichment{
				Disabled:          enrichment.Disabled,
				BaseURL:           enrichment.BaseURL,
				APIKey:            enrichment.APIKey,
				Model:             enrichment.Model,
				RequestsPerMinute: enrichment.RequestsPerMinute,
				Concurrency:       enrichment.Concurrency,
			},
		},
		Workers: Workers{
			RefreshInterval: time.Duration(jsonCfg.Workers.RefreshInterval),
		},
		Account: Account{
			Name:     jsonCfg.Account.Name,
			Email:    jsonCfg.Account.Email,
			Password: jsonCfg.Account.Password,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as raw nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
