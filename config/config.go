package config

import (
	"os"
	"strings"
	"time"

	"github.com/bellapacxx/squares-backend/utils/logger"
	"github.com/joho/godotenv"
)

const DefaultScoreFeedURL = "https://site.api.espn.com/apis/site/v2/sports/football/nfl/scoreboard"

type Config struct {
	Port              string
	DatabaseURL       string // empty keeps games in memory
	AllowedOrigins    []string
	AMQPURL           string // empty disables cross-instance fan-out
	ScoreFeedURL      string
	ScorePollInterval time.Duration
	OddsTablePath     string
	LogLevel          string
}

// Load reads .env (if present) and the environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		logger.Info("[Init] No .env file found, reading environment variables")
	}

	cfg := &Config{
		Port:              getString("PORT", "4000"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		AllowedOrigins:    splitList(getString("CORS_ORIGINS", "http://localhost:3000")),
		AMQPURL:           os.Getenv("AMQP_URL"),
		ScoreFeedURL:      getString("SCORE_FEED_URL", DefaultScoreFeedURL),
		ScorePollInterval: getDuration("SCORE_POLL_INTERVAL", 30*time.Second),
		OddsTablePath:     os.Getenv("ODDS_TABLE_PATH"),
		LogLevel:          getString("LOG_LEVEL", "debug"),
	}
	return cfg
}

func getString(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		logger.Warnf("[Init] invalid %s=%q, using %s", key, v, fallback)
		return fallback
	}
	return d
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
