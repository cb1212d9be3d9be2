package config

import (
	"fmt"

	"github.com/bellapacxx/squares-backend/models"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Game{}); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}
