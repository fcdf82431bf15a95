package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// validConfig returns defaults completed with the keys validation requires.
func validConfig() *StructuredConfig {
	cfg := defaultConfig()
	cfg.Adapter.News.APIKey = "news-key"
	cfg.Adapter.Enrichment.APIKey = "gemini-key"
	return cfg
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilderFailsValidation verifies that a zero config is
// rejected by validation.
func TestBuild_EmptyBuilderFailsValidation(t *testing.T) {
	_, err := newConfigBuilder().build()
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourceWins verifies that non-zero fields of later configs
// override earlier ones while zero fields keep the earlier value.
func TestBuild_LaterSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		validConfig(),
		&StructuredConfig{App: App{Region: "ar"}},
		&StructuredConfig{Storage: Storage{DB: DB{DSN: "override.db"}}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "ar", cfg.App.Region)
	assert.Equal(t, "override.db", cfg.Storage.DB.DSN)
	assert.Equal(t, DefaultPreferencesPath, cfg.Storage.Preferences.Path)
	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
}

// ── withDefaults ──────────────────────────────────────────────────────────────

func TestWithDefaults_AppendsDefaults(t *testing.T) {
	b := newConfigBuilder().withDefaults()

	require.Len(t, b.configs, 1)
	assert.Equal(t, DefaultRegion, b.configs[0].App.Region)
	assert.Equal(t, DefaultEnrichmentModel, b.configs[0].Adapter.Enrichment.Model)
}

// ── withDotEnv ────────────────────────────────────────────────────────────────

func TestWithDotEnv_MissingFileIsIgnored(t *testing.T) {
	b := newConfigBuilder().withDotEnv(filepath.Join(t.TempDir(), ".env"))
	assert.NoError(t, b.err)
}

// TestWithDotEnv_ExportsVariables verifies that variables from the file are
// visible to the env step.
func TestWithDotEnv_ExportsVariables(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("ADAPTER_NEWS_API_KEY=from-dotenv\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("ADAPTER_NEWS_API_KEY") })

	b := newConfigBuilder().withDotEnv(path).withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "from-dotenv", b.configs[0].Adapter.News.APIKey)
}

// TestWithDotEnv_DoesNotOverrideEnvironment verifies that real environment
// variables take precedence over the file.
func TestWithDotEnv_DoesNotOverrideEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("APP_REGION=ar\n"), 0o600))
	t.Setenv("APP_REGION", "mx")

	b := newConfigBuilder().withDotEnv(path).withEnv()

	require.NoError(t, b.err)
	assert.Equal(t, "mx", b.configs[0].App.Region)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("APP_REGION", "de")
	t.Setenv("WORKERS_REFRESH_INTERVAL", "5m")

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "de", b.configs[0].App.Region)
	assert.Equal(t, 5*time.Minute, b.configs[0].Workers.RefreshInterval)
}

func TestWithEnv_InvalidDurationSetsError(t *testing.T) {
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "soon")

	b := newConfigBuilder().withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_AppendsParsedFlags(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-region", "fr", "-no-enrich"})

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "fr", b.configs[0].App.Region)
	assert.True(t, b.configs[0].Adapter.Enrichment.Disabled)
}

func TestWithFlags_UnknownFlagSetsError(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-unknown"})

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Region = "gb"
	payload.Adapter.Enrichment.Model = "gemini-pro"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "gb", b.configs[1].App.Region)
	assert.Equal(t, "gemini-pro", b.configs[1].Adapter.Enrichment.Model)
}

// TestWithJSON_LastPathWins verifies that the path from the latest source is
// the one loaded.
func TestWithJSON_LastPathWins(t *testing.T) {
	first := StructuredJSONConfig{}
	first.App.Region = "aa"
	second := StructuredJSONConfig{}
	second.App.Region = "bb"

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, first)},
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, second)},
	)
	b.withJSON()

	require.Len(t, b.configs, 3)
	assert.Equal(t, "bb", b.configs[2].App.Region)
}

func TestWithJSON_SetsError_WhenFileMissing(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/non/existent/config.json"})
	b.withJSON()

	assert.Error(t, b.err)
	assert.Len(t, b.configs, 1)
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

// TestGetStructuredConfig_Priority verifies the full chain: flags override
// env, the JSON file overrides flags and defaults fill the rest.
func TestGetStructuredConfig_Priority(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("ADAPTER_NEWS_API_KEY", "env-news")
	t.Setenv("ADAPTER_ENRICHMENT_API_KEY", "env-gemini")
	t.Setenv("APP_REGION", "de")

	payload := StructuredJSONConfig{}
	payload.Storage.DSN = "json.db"
	path := writeTempJSONConfig(t, payload)

	cfg, err := GetStructuredConfig([]string{"-region", "fr", "-d", "flag.db", "-c", path})
	require.NoError(t, err)

	assert.Equal(t, "fr", cfg.App.Region)
	assert.Equal(t, "json.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "env-news", cfg.Adapter.News.APIKey)
	assert.Equal(t, DefaultEnrichmentBaseURL, cfg.Adapter.Enrichment.BaseURL)
	assert.Equal(t, DefaultEnrichmentParallel, cfg.Adapter.Enrichment.Concurrency)
}

func TestGetStructuredConfig_MissingKeys(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("ADAPTER_NEWS_API_KEY", "")
	t.Setenv("ADAPTER_ENRICHMENT_API_KEY", "")

	_, err := GetStructuredConfig(nil)
	assert.ErrorIs(t, err, ErrInvalidAdapterConfigs)
}
