package main

import (
	"github.com/bellapacxx/squares-backend/config"
	"github.com/bellapacxx/squares-backend/utils/logger"
)

func main() {
	cfg := config.Load()
	if err := logger.Init(cfg.LogLevel); err != nil {
		panic(err)
	}
	defer logger.Sync()

	if cfg.DatabaseURL == "" {
		logger.Fatalf("[FATAL] DATABASE_URL is required to run migrations")
	}
	if _, err := config.ConnectDB(cfg.DatabaseURL); err != nil {
		logger.Fatalf("[FATAL] %v", err)
	}
	logger.Info("✅ Database migration completed successfully")
}
