package repository

import (
	"context"
	"errors"

	"github.com/bellapacxx/squares-backend/game"
)

var ErrGameNotFound = errors.New("game not found")

// Repository stores whole game documents. Save overwrites; the last write
// wins.
type Repository interface {
	Create(ctx context.Context, g game.State) error
	Load(ctx context.Context, id string) (game.State, error)
	Save(ctx context.Context, g game.State) error
}
