package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validDocument = `{
  "flight_search": {"engine": "google_flights", "currency_options": ["inr", "USD", "INR"]},
  "openai": {"model": "gpt-4o-mini", "temperature": 0.7},
  "custom_css": {"background_image_url": "https://example.com/bg.jpg", "hide_footer": true}
}`

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadSettings(t *testing.T) {
	s, err := LoadSettings(writeFile(t, validDocument))
	require.NoError(t, err)

	assert.Equal(t, "google_flights", s.FlightSearch.Engine)
	assert.Equal(t, []string{"INR", "USD"}, s.FlightSearch.CurrencyOptions)
	assert.Equal(t, "gpt-4o-mini", s.Completion.Model)
	assert.InDelta(t, 0.7, s.Completion.Temperature, 1e-9)
	assert.Equal(t, "https://example.com/bg.jpg", s.Presentation.BackgroundImageURL)
	assert.True(t, s.Presentation.HideFooter)
	assert.True(t, s.Currencies().Contains("usd"))
}

func TestLoadSettings_MissingFile(t *testing.T) {
	_, err := LoadSettings(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestParseSettings_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not json", `{"flight_search":`},
		{"missing section", `{"flight_search": {"engine": "google_flights", "currency_options": ["INR"]}, "openai": {"model": "m", "temperature": 1}}`},
		{"empty currencies", `{"flight_search": {"engine": "google_flights", "currency_options": []}, "openai": {"model": "m", "temperature": 1}, "custom_css": {"background_image_url": "", "hide_footer": false}}`},
		{"bad currency code", `{"flight_search": {"engine": "google_flights", "currency_options": ["RUPEE"]}, "openai": {"model": "m", "temperature": 1}, "custom_css": {"background_image_url": "", "hide_footer": false}}`},
		{"temperature out of range", `{"flight_search": {"engine": "google_flights", "currency_options": ["INR"]}, "openai": {"model": "m", "temperature": 3.5}, "custom_css": {"background_image_url": "", "hide_footer": false}}`},
		{"temperature as string", `{"flight_search": {"engine": "google_flights", "currency_options": ["INR"]}, "openai": {"model": "m", "temperature": "hot"}, "custom_css": {"background_image_url": "", "hide_footer": false}}`},
		{"empty engine", `{"flight_search": {"engine": "", "currency_options": ["INR"]}, "openai": {"model": "m", "temperature": 1}, "custom_css": {"background_image_url": "", "hide_footer": false}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSettings([]byte(tt.doc))
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestParseSettings_EnvOverride(t *testing.T) {
	t.Setenv("OPENAI_MODEL", "gpt-4o")
	t.Setenv("OPENAI_TEMPERATURE", "0.2")

	s, err := ParseSettings([]byte(validDocument))
	require.NoError(t, err)

	assert.Equal(t, "gpt-4o", s.Completion.Model)
	assert.InDelta(t, 0.2, s.Completion.Temperature, 1e-9)
}

func TestParseSettings_EnvOverrideRevalidated(t *testing.T) {
	t.Setenv("OPENAI_TEMPERATURE", "9")

	_, err := ParseSettings([]byte(validDocument))
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestLoadServer_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "SESSION_STORE", "SESSION_TTL", "OPENAI_BASE_URL", "REDIS_DB"} {
		t.Setenv(key, "")
	}

	cfg := LoadServer()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, SessionStoreMemory, cfg.SessionStore)
	assert.Equal(t, 12*time.Hour, cfg.SessionTTL)
	assert.Equal(t, "https://api.openai.com/v1", cfg.OpenAIBaseURL)
	assert.Equal(t, 0, cfg.RedisDB)
}

func TestLoadServer_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SESSION_STORE", "redis")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("HTTP_CLIENT_TIMEOUT", "not-a-duration")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("SERPAPI_API_KEY", "serp")

	cfg := LoadServer()
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, SessionStoreRedis, cfg.SessionStore)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Equal(t, 60*time.Second, cfg.HTTPClientTimeout)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, "serp", cfg.SerpAPIKey)
}
