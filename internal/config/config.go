package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port     int
	LogLevel string
	LogFmt   string

	DBUser        string
	DBPassword    string
	DBHost        string
	DBPort        string
	DBName        string
	DBAutoMigrate bool

	DiscordToken     string
	DiscordAppID     string
	DiscordGuildID   string
	LootChannelID    string // channel the loot notifier relays into
	DisplayChannelID string // channel holding the pinned team embeds

	WebhookAPIKey string

	TownConfigPath    string
	ResourcesPath     string
	BestiaryPath      string
	SlayerPath        string
	RefreshThrottle   time.Duration
	RefreshWorkers    int
	RefreshQueueDepth int

	EventLogRetentionDays int
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		LogFmt:           getEnv("LOG_FORMAT", "text"),
		DBUser:           getEnv("DB_USER", "postgres"),
		DBPassword:       getEnv("DB_PASSWORD", "postgres"),
		DBHost:           getEnv("DB_HOST", "localhost"),
		DBPort:           getEnv("DB_PORT", "5432"),
		DBName:           getEnv("DB_NAME", "clanwars"),
		DBAutoMigrate:    getEnv("DB_AUTO_MIGRATE", "false") == "true",
		DiscordToken:     getEnv("DISCORD_TOKEN", ""),
		DiscordAppID:     getEnv("DISCORD_APP_ID", ""),
		DiscordGuildID:   getEnv("DISCORD_GUILD_ID", ""),
		LootChannelID:    getEnv("LOOT_CHANNEL_ID", ""),
		DisplayChannelID: getEnv("DISPLAY_CHANNEL_ID", ""),
		WebhookAPIKey:    getEnv("WEBHOOK_API_KEY", ""),
		TownConfigPath:   getEnv("TOWN_CONFIG_PATH", ConfigPathTown),
		ResourcesPath:    getEnv("RESOURCES_PATH", ConfigPathResources),
		BestiaryPath:     getEnv("BESTIARY_PATH", ConfigPathBestiary),
		SlayerPath:       getEnv("SLAYER_PATH", ConfigPathSlayer),
	}

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	throttleStr := getEnv("REFRESH_THROTTLE", DefaultRefreshThrottle)
	throttle, err := time.ParseDuration(throttleStr)
	if err != nil {
		return nil, fmt.Errorf("invalid REFRESH_THROTTLE value: %w", err)
	}
	cfg.RefreshThrottle = throttle

	workersStr := getEnv("REFRESH_WORKERS", strconv.Itoa(DefaultRefreshWorkers))
	workers, err := strconv.Atoi(workersStr)
	if err != nil {
		return nil, fmt.Errorf("invalid REFRESH_WORKERS value: %w", err)
	}
	cfg.RefreshWorkers = workers
	cfg.RefreshQueueDepth = DefaultRefreshQueueDepth

	retentionStr := getEnv("EVENT_LOG_RETENTION_DAYS", strconv.Itoa(DefaultEventLogRetentionDays))
	retention, err := strconv.Atoi(retentionStr)
	if err != nil {
		return nil, fmt.Errorf("invalid EVENT_LOG_RETENTION_DAYS value: %w", err)
	}
	cfg.EventLogRetentionDays = retention

	if cfg.DiscordToken == "" {
		return nil, fmt.Errorf("DISCORD_TOKEN environment variable must be set")
	}
	if cfg.WebhookAPIKey == "" {
		return nil, fmt.Errorf("WEBHOOK_API_KEY environment variable must be set for security")
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
