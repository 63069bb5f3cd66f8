package config

import (
	"fmt"
	"strings"
	"time"

	"spectrum/database"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
// It is loaded once at startup and never mutated afterwards.
type Config struct {
	// Discord configuration
	DiscordToken string `envconfig:"DISCORD_TOKEN"`
	GuildID      string `envconfig:"GUILD_ID"` // Register commands to one guild; empty registers globally
	BotActivity  string `envconfig:"BOT_ACTIVITY" default:"Spectrum <3"`

	// Database configuration
	DatabaseURL      string `envconfig:"DATABASE_URL"`
	DatabaseName     string `envconfig:"DATABASE_NAME"`
	DatabaseMaxConns int32  `envconfig:"DATABASE_MAX_CONNS" default:"5"`

	// Identity provider configuration
	SteamAPIKey string `envconfig:"STEAM_API_KEY"`
	SteamAPIURL string `envconfig:"STEAM_API_URL" default:"https://api.steampowered.com/ISteamUser/GetPlayerSummaries/v2/"`

	// Live session service configuration
	LiveServiceURL   string `envconfig:"LIVE_SERVICE_URL" default:"http://127.0.0.1:30120"`
	LiveServiceToken string `envconfig:"LIVE_SERVICE_TOKEN"`

	// Outbound HTTP timeout shared by both HTTP clients
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"10s"`

	// NATS configuration; empty disables lookup auditing
	NATSServers      string `envconfig:"NATS_SERVERS"`
	NATSAuditSubject string `envconfig:"NATS_AUDIT_SUBJECT" default:"lookup.audit"`

	// Debug API port; 0 disables it
	DebugAPIPort int `envconfig:"DEBUG_API_PORT" default:"8899"`

	// OpenTelemetry configuration
	OTelEnabled              bool   `envconfig:"OTEL_ENABLED" default:"false"`
	OTelExporterType         string `envconfig:"OTEL_EXPORTER_TYPE" default:"none"` // none, console, otlp
	OTelOTLPEndpoint         string `envconfig:"OTEL_OTLP_ENDPOINT" default:"otel-collector:4317"`
	OTelServiceName          string `envconfig:"OTEL_SERVICE_NAME" default:"spectrum-lookup"`
	OTelExportIntervalMillis int    `envconfig:"OTEL_EXPORT_INTERVAL_MS" default:"30000"`

	// Environment
	Environment string `envconfig:"ENVIRONMENT" default:"development"` // "development", "production" or "test"
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads configuration from the environment, after loading an optional .env file
func Load() (*Config, error) {
	// A missing .env file is fine
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadDatabaseURL reads only the database settings. Used by the migrate
// subcommand so it does not require bot credentials.
func LoadDatabaseURL() (string, error) {
	_ = godotenv.Load()

	var cfg struct {
		DatabaseURL  string `envconfig:"DATABASE_URL" required:"true"`
		DatabaseName string `envconfig:"DATABASE_NAME"`
	}
	if err := envconfig.Process("", &cfg); err != nil {
		return "", fmt.Errorf("failed to load database config: %w", err)
	}

	return database.ConstructDatabaseURL(cfg.DatabaseURL, cfg.DatabaseName), nil
}

// Validate checks required settings. The test environment skips validation.
func (c *Config) Validate() error {
	if c.Environment == "test" {
		return nil
	}

	required := []struct{ name, value string }{
		{"DISCORD_TOKEN", c.DiscordToken},
		{"DATABASE_URL", c.DatabaseURL},
		{"STEAM_API_KEY", c.SteamAPIKey},
		{"LIVE_SERVICE_TOKEN", c.LiveServiceToken},
	}
	for _, setting := range required {
		if strings.TrimSpace(setting.value) == "" {
			return fmt.Errorf("%s is required", setting.name)
		}
	}

	if c.DatabaseMaxConns < 1 {
		return fmt.Errorf("DATABASE_MAX_CONNS must be at least 1")
	}

	return nil
}

// GetDatabaseURL constructs the full database URL by combining base URL and database name
func (c *Config) GetDatabaseURL() string {
	return database.ConstructDatabaseURL(c.DatabaseURL, c.DatabaseName)
}

// NATSEnabled reports whether lookup auditing over NATS is configured
func (c *Config) NATSEnabled() bool {
	return strings.TrimSpace(c.NATSServers) != ""
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// NewTestConfig creates a minimal config suitable for unit tests
func NewTestConfig() *Config {
	return &Config{
		Environment:      "test",
		DatabaseMaxConns: 5,
		SteamAPIKey:      "test-steam-key",
		LiveServiceToken: "test-live-token",
		HTTPTimeout:      5 * time.Second,
		NATSAuditSubject: "lookup.audit",
		LogLevel:         "debug",
	}
}
