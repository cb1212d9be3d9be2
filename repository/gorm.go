package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/bellapacxx/squares-backend/game"
	"github.com/bellapacxx/squares-backend/models"
	"gorm.io/gorm"
)

// GormRepository keeps one row per game. Save is a full-row update, so
// concurrent writers resolve last-write-wins at the database.
type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) Create(ctx context.Context, g game.State) error {
	rec, err := toRecord(g)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return fmt.Errorf("create game %s: %w", g.ID, err)
	}
	return nil
}

func (r *GormRepository) Load(ctx context.Context, id string) (game.State, error) {
	var rec models.Game
	if err := r.db.WithContext(ctx).First(&rec, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return game.State{}, ErrGameNotFound
		}
		return game.State{}, fmt.Errorf("load game %s: %w", id, err)
	}
	return fromRecord(rec)
}

func (r *GormRepository) Save(ctx context.Context, g game.State) error {
	rec, err := toRecord(g)
	if err != nil {
		return err
	}
	res := r.db.WithContext(ctx).Model(&models.Game{}).Where("id = ?", g.ID).Select("*").Updates(&rec)
	if res.Error != nil {
		return fmt.Errorf("save game %s: %w", g.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrGameNotFound
	}
	return nil
}
