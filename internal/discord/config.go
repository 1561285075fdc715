package discord

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StoreSQLite = "sqlite"
	StoreBadger = "badger"
)

type Config struct {
	DiscordToken string
	LogChannelID string
	Database     string
	StoreDriver  string
	BadgerPath   string
	GameTTL      time.Duration
	AllowGuild   bool
	LogLevel     slog.Level
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	token := os.Getenv("DISCORD_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("DISCORD_TOKEN is required")
	}

	driver := strings.ToLower(getEnv("STORE_DRIVER", StoreSQLite))
	if driver != StoreSQLite && driver != StoreBadger {
		return nil, fmt.Errorf("invalid STORE_DRIVER: %s (must be %s or %s)", driver, StoreSQLite, StoreBadger)
	}

	ttl := 24 * time.Hour // Default one day
	if ttlStr := os.Getenv("GAME_TTL"); ttlStr != "" {
		d, err := time.ParseDuration(ttlStr)
		if err != nil || d < 0 {
			return nil, fmt.Errorf("invalid GAME_TTL: %q", ttlStr)
		}
		ttl = d
	}

	allowGuild := false
	if agStr := os.Getenv("ALLOW_GUILD"); agStr != "" {
		if b, err := strconv.ParseBool(agStr); err == nil {
			allowGuild = b
		}
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(getEnv("LOG_LEVEL", "INFO"))); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	return &Config{
		DiscordToken: token,
		LogChannelID: os.Getenv("LOG_CHANNEL_ID"),
		Database:     getEnv("DATABASE", "blackjack.db"),
		StoreDriver:  driver,
		BadgerPath:   getEnv("BADGER_PATH", "data/badger"),
		GameTTL:      ttl,
		AllowGuild:   allowGuild,
		LogLevel:     level,
	}, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
