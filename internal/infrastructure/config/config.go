package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App        AppConfig
	Log        LogConfig
	HTTP       HTTPConfig
	Seed       SeedConfig
	Copywriter CopywriterConfig
	CopyCache  CopyCacheConfig
	Redis      RedisConfig
	Event      EventConfig
	Telemetry  TelemetryConfig
}

// AppConfig holds application-specific settings
type AppConfig struct {
	Name    string
	Env     string
	Port    string
	Version string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

// HTTPConfig holds HTTP server configuration
type HTTPConfig struct {
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	ShutdownTimeout   time.Duration
	MaxHeaderBytes    int
	MaxBodySize       int64
	RateLimitEnabled  bool
	RateLimitRequests int
	RateLimitWindow   time.Duration
	CORSAllowOrigins  []string
	CORSAllowMethods  []string
	CORSAllowHeaders  []string
	TrustedProxies    []string
}

// SeedConfig controls the starting data set
type SeedConfig struct {
	Enabled bool
}

// CopywriterConfig holds the text-generation API settings.
// An empty APIKey is valid: generation then answers with a fixed placeholder.
type CopywriterConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// CopyCacheConfig controls caching of generated copy
type CopyCacheConfig struct {
	TTL             time.Duration
	CleanupInterval time.Duration
}

// RedisConfig holds Redis connection settings
type RedisConfig struct {
	Enabled   bool
	Host      string
	Port      int
	Password  string
	DB        int
	KeyPrefix string
}

// Addr returns host:port
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// EventConfig holds domain event settings
type EventConfig struct {
	LogEvents bool // log every published event at debug level
}

// TelemetryConfig holds OpenTelemetry and profiling configuration
type TelemetryConfig struct {
	Enabled               bool    // tracing
	CollectorEndpoint     string  // OTEL Collector endpoint (e.g., "localhost:4317")
	SamplingRatio         float64 // 0.0-1.0
	ServiceName           string
	Insecure              bool // non-TLS collector connection (development only)
	MetricsEnabled        bool
	MetricsExportInterval time.Duration
	LogsEnabled           bool
	LogsLevel             string
	ProfilingEnabled      bool
	ProfilingServerAddr   string // Pyroscope server (e.g., "http://pyroscope:4040")
	SpanProfilesEnabled   bool
}

// Load loads configuration from TOML file, .env file and environment variables
// Priority (highest to lowest):
// 1. Environment variables with CROWN_ prefix (e.g., CROWN_APP_PORT)
// 2. Variables from .env (never overriding the real environment)
// 3. config.toml
// 4. Built-in defaults
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/app")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix("CROWN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The generation key is also read from the conventional un-prefixed names
	if err := v.BindEnv("copywriter.api_key", "CROWN_COPYWRITER_API_KEY", "API_KEY", "GEMINI_API_KEY"); err != nil {
		return nil, fmt.Errorf("error binding api key env: %w", err)
	}

	v.SetDefault("seed.enabled", true)

	cfg := &Config{
		App: AppConfig{
			Name:    v.GetString("app.name"),
			Env:     v.GetString("app.env"),
			Port:    v.GetString("app.port"),
			Version: v.GetString("app.version"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
		HTTP: HTTPConfig{
			ReadTimeout:       v.GetDuration("http.read_timeout"),
			WriteTimeout:      v.GetDuration("http.write_timeout"),
			IdleTimeout:       v.GetDuration("http.idle_timeout"),
			ShutdownTimeout:   v.GetDuration("http.shutdown_timeout"),
			MaxHeaderBytes:    v.GetInt("http.max_header_bytes"),
			MaxBodySize:       v.GetInt64("http.max_body_size"),
			RateLimitEnabled:  v.GetBool("http.rate_limit_enabled"),
			RateLimitRequests: v.GetInt("http.rate_limit_requests"),
			RateLimitWindow:   v.GetDuration("http.rate_limit_window"),
			CORSAllowOrigins:  v.GetStringSlice("http.cors_allow_origins"),
			CORSAllowMethods:  v.GetStringSlice("http.cors_allow_methods"),
			CORSAllowHeaders:  v.GetStringSlice("http.cors_allow_headers"),
			TrustedProxies:    v.GetStringSlice("http.trusted_proxies"),
		},
		Seed: SeedConfig{
			Enabled: v.GetBool("seed.enabled"),
		},
		Copywriter: CopywriterConfig{
			APIKey:  v.GetString("copywriter.api_key"),
			Model:   v.GetString("copywriter.model"),
			BaseURL: v.GetString("copywriter.base_url"),
			Timeout: v.GetDuration("copywriter.timeout"),
		},
		CopyCache: CopyCacheConfig{
			TTL:             v.GetDuration("copy_cache.ttl"),
			CleanupInterval: v.GetDuration("copy_cache.cleanup_interval"),
		},
		Redis: RedisConfig{
			Enabled:   v.GetBool("redis.enabled"),
			Host:      v.GetString("redis.host"),
			Port:      v.GetInt("redis.port"),
			Password:  v.GetString("redis.password"),
			DB:        v.GetInt("redis.db"),
			KeyPrefix: v.GetString("redis.key_prefix"),
		},
		Event: EventConfig{
			LogEvents: v.GetBool("event.log_events"),
		},
		Telemetry: TelemetryConfig{
			Enabled:               v.GetBool("telemetry.enabled"),
			CollectorEndpoint:     v.GetString("telemetry.collector_endpoint"),
			SamplingRatio:         v.GetFloat64("telemetry.sampling_ratio"),
			ServiceName:           v.GetString("telemetry.service_name"),
			Insecure:              v.GetBool("telemetry.insecure"),
			MetricsEnabled:        v.GetBool("telemetry.metrics_enabled"),
			MetricsExportInterval: v.GetDuration("telemetry.metrics_export_interval"),
			LogsEnabled:           v.GetBool("telemetry.logs_enabled"),
			LogsLevel:             v.GetString("telemetry.logs_level"),
			ProfilingEnabled:      v.GetBool("telemetry.profiling_enabled"),
			ProfilingServerAddr:   v.GetString("telemetry.profiling_server_addr"),
			SpanProfilesEnabled:   v.GetBool("telemetry.span_profiles_enabled"),
		},
	}

	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults sets default values for any empty config fields
func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "crown-backend"
	}
	if cfg.App.Env == "" {
		cfg.App.Env = "development"
	}
	if cfg.App.Port == "" {
		cfg.App.Port = "8080"
	}
	if cfg.App.Version == "" {
		cfg.App.Version = "1.0.0"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
	if cfg.Log.Output == "" {
		cfg.Log.Output = "stdout"
	}
	if cfg.HTTP.ReadTimeout == 0 {
		cfg.HTTP.ReadTimeout = 15 * time.Second
	}
	// generation calls can take a while, so writes get more room than reads
	if cfg.HTTP.WriteTimeout == 0 {
		cfg.HTTP.WriteTimeout = 45 * time.Second
	}
	if cfg.HTTP.IdleTimeout == 0 {
		cfg.HTTP.IdleTimeout = 60 * time.Second
	}
	if cfg.HTTP.ShutdownTimeout == 0 {
		cfg.HTTP.ShutdownTimeout = 30 * time.Second
	}
	if cfg.HTTP.MaxHeaderBytes == 0 {
		cfg.HTTP.MaxHeaderBytes = 1 << 20 // 1MB
	}
	if cfg.HTTP.MaxBodySize == 0 {
		cfg.HTTP.MaxBodySize = 1 << 20 // 1MB
	}
	if cfg.HTTP.RateLimitRequests == 0 {
		cfg.HTTP.RateLimitRequests = 100
	}
	if cfg.HTTP.RateLimitWindow == 0 {
		cfg.HTTP.RateLimitWindow = time.Minute
	}
	// No CORS origin default: cross-origin requests stay closed until configured.
	if len(cfg.HTTP.CORSAllowMethods) == 0 {
		cfg.HTTP.CORSAllowMethods = []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"}
	}
	if len(cfg.HTTP.CORSAllowHeaders) == 0 {
		cfg.HTTP.CORSAllowHeaders = []string{"Content-Type", "Authorization", "X-Request-ID"}
	}
	if cfg.Copywriter.Model == "" {
		cfg.Copywriter.Model = "gemini-2.5-flash"
	}
	if cfg.Copywriter.BaseURL == "" {
		cfg.Copywriter.BaseURL = "https://generativelanguage.googleapis.com"
	}
	if cfg.Copywriter.Timeout == 0 {
		cfg.Copywriter.Timeout = 30 * time.Second
	}
	if cfg.CopyCache.TTL == 0 {
		cfg.CopyCache.TTL = 24 * time.Hour
	}
	if cfg.CopyCache.CleanupInterval == 0 {
		cfg.CopyCache.CleanupInterval = 5 * time.Minute
	}
	if cfg.Redis.Host == "" {
		cfg.Redis.Host = "localhost"
	}
	if cfg.Redis.Port == 0 {
		cfg.Redis.Port = 6379
	}
	if cfg.Redis.KeyPrefix == "" {
		cfg.Redis.KeyPrefix = "crown:copy:"
	}
	if cfg.Telemetry.CollectorEndpoint == "" {
		cfg.Telemetry.CollectorEndpoint = "localhost:4317"
	}
	if cfg.Telemetry.SamplingRatio == 0 {
		cfg.Telemetry.SamplingRatio = 1.0
	}
	if cfg.Telemetry.ServiceName == "" {
		cfg.Telemetry.ServiceName = cfg.App.Name
	}
	if cfg.Telemetry.MetricsExportInterval == 0 {
		cfg.Telemetry.MetricsExportInterval = 60 * time.Second
	}
	if cfg.Telemetry.LogsLevel == "" {
		cfg.Telemetry.LogsLevel = cfg.Log.Level
	}
}

// validate performs validation on the configuration
func (c *Config) validate() error {
	if c.HTTP.MaxBodySize < 0 {
		return fmt.Errorf("http.max_body_size cannot be negative")
	}
	if c.HTTP.RateLimitEnabled && c.HTTP.RateLimitRequests <= 0 {
		return fmt.Errorf("http.rate_limit_requests must be positive when rate limiting is enabled")
	}
	if c.Copywriter.Timeout < 0 {
		return fmt.Errorf("copywriter.timeout cannot be negative")
	}
	if c.CopyCache.TTL < 0 {
		return fmt.Errorf("copy_cache.ttl cannot be negative")
	}

	if c.App.Env == "production" {
		for _, origin := range c.HTTP.CORSAllowOrigins {
			if origin == "*" {
				return fmt.Errorf("cors_allow_origins cannot be '*' in production (use specific origins)")
			}
		}
		if c.Telemetry.Insecure && (c.Telemetry.Enabled || c.Telemetry.MetricsEnabled || c.Telemetry.LogsEnabled) {
			return fmt.Errorf("telemetry.insecure must be false in production")
		}
	}

	if c.Telemetry.SamplingRatio < 0.0 || c.Telemetry.SamplingRatio > 1.0 {
		return fmt.Errorf("telemetry.sampling_ratio must be between 0.0 and 1.0, got %f", c.Telemetry.SamplingRatio)
	}
	if c.Telemetry.ProfilingEnabled && c.Telemetry.ProfilingServerAddr == "" {
		return fmt.Errorf("telemetry.profiling_server_addr is required when profiling is enabled")
	}

	return nil
}

// IsProduction reports whether the app runs in the production environment
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
