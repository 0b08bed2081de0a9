package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	keys := []string{
		"CROWN_APP_NAME",
		"CROWN_APP_ENV",
		"CROWN_APP_PORT",
		"CROWN_SEED_ENABLED",
		"CROWN_COPYWRITER_API_KEY",
		"CROWN_COPYWRITER_MODEL",
		"CROWN_COPY_CACHE_TTL",
		"CROWN_REDIS_ENABLED",
		"CROWN_HTTP_CORS_ALLOW_ORIGINS",
		"CROWN_TELEMETRY_SAMPLING_RATIO",
		"CROWN_TELEMETRY_PROFILING_ENABLED",
		"API_KEY",
		"GEMINI_API_KEY",
	}
	for _, k := range keys {
		if v, ok := os.LookupEnv(k); ok {
			t.Setenv(k, v)
		}
	}
	clearEnv := func() {
		for _, k := range keys {
			os.Unsetenv(k)
		}
	}
	t.Cleanup(clearEnv)

	t.Run("loads default values when env vars not set", func(t *testing.T) {
		clearEnv()

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "crown-backend", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "8080", cfg.App.Port)
		assert.True(t, cfg.Seed.Enabled)
		assert.Empty(t, cfg.Copywriter.APIKey)
		assert.Equal(t, "gemini-2.5-flash", cfg.Copywriter.Model)
		assert.Equal(t, "https://generativelanguage.googleapis.com", cfg.Copywriter.BaseURL)
		assert.Equal(t, 30*time.Second, cfg.Copywriter.Timeout)
		assert.Equal(t, 24*time.Hour, cfg.CopyCache.TTL)
		assert.False(t, cfg.Redis.Enabled)
		assert.Equal(t, "localhost:6379", cfg.Redis.Addr())
		assert.Equal(t, "crown-backend", cfg.Telemetry.ServiceName)
		assert.Empty(t, cfg.HTTP.CORSAllowOrigins)
	})

	t.Run("loads values from environment variables with CROWN prefix", func(t *testing.T) {
		clearEnv()
		os.Setenv("CROWN_APP_NAME", "crown-test")
		os.Setenv("CROWN_APP_PORT", "9000")
		os.Setenv("CROWN_SEED_ENABLED", "false")
		os.Setenv("CROWN_COPYWRITER_MODEL", "gemini-2.5-pro")
		os.Setenv("CROWN_COPY_CACHE_TTL", "1h")
		os.Setenv("CROWN_REDIS_ENABLED", "true")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "crown-test", cfg.App.Name)
		assert.Equal(t, "9000", cfg.App.Port)
		assert.False(t, cfg.Seed.Enabled)
		assert.Equal(t, "gemini-2.5-pro", cfg.Copywriter.Model)
		assert.Equal(t, time.Hour, cfg.CopyCache.TTL)
		assert.True(t, cfg.Redis.Enabled)
	})

	t.Run("reads api key from conventional names", func(t *testing.T) {
		clearEnv()
		os.Setenv("API_KEY", "plain-key")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "plain-key", cfg.Copywriter.APIKey)

		os.Setenv("CROWN_COPYWRITER_API_KEY", "prefixed-key")
		cfg, err = Load()
		require.NoError(t, err)
		assert.Equal(t, "prefixed-key", cfg.Copywriter.APIKey)
	})

	t.Run("rejects wildcard CORS in production", func(t *testing.T) {
		clearEnv()
		os.Setenv("CROWN_APP_ENV", "production")
		os.Setenv("CROWN_HTTP_CORS_ALLOW_ORIGINS", "*")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("rejects out of range sampling ratio", func(t *testing.T) {
		clearEnv()
		os.Setenv("CROWN_TELEMETRY_SAMPLING_RATIO", "1.5")

		_, err := Load()
		assert.ErrorContains(t, err, "sampling_ratio")
	})

	t.Run("requires profiling server when profiling is on", func(t *testing.T) {
		clearEnv()
		os.Setenv("CROWN_TELEMETRY_PROFILING_ENABLED", "true")

		_, err := Load()
		assert.ErrorContains(t, err, "profiling_server_addr")
	})
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		App:        AppConfig{Name: "custom"},
		Copywriter: CopywriterConfig{Model: "custom-model", Timeout: 5 * time.Second},
		Telemetry:  TelemetryConfig{SamplingRatio: 0.25},
	}

	applyDefaults(cfg)

	assert.Equal(t, "custom", cfg.App.Name)
	assert.Equal(t, "custom", cfg.Telemetry.ServiceName)
	assert.Equal(t, "custom-model", cfg.Copywriter.Model)
	assert.Equal(t, 5*time.Second, cfg.Copywriter.Timeout)
	assert.Equal(t, 0.25, cfg.Telemetry.SamplingRatio)
	assert.Equal(t, "info", cfg.Telemetry.LogsLevel)
}

func TestConfig_IsProduction(t *testing.T) {
	assert.True(t, (&Config{App: AppConfig{Env: "production"}}).IsProduction())
	assert.False(t, (&Config{App: AppConfig{Env: "development"}}).IsProduction())
}
