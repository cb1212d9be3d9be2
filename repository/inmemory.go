package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/bellapacxx/squares-backend/game"
)

type InMemoryRepository struct {
	mu    sync.Mutex
	games map[string]game.State
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{games: make(map[string]game.State)}
}

func (r *InMemoryRepository) Create(_ context.Context, g game.State) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.games[g.ID]; exists {
		return fmt.Errorf("game %s already exists", g.ID)
	}
	r.games[g.ID] = g.Clone()
	return nil
}

func (r *InMemoryRepository) Load(_ context.Context, id string) (game.State, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	g, ok := r.games[id]
	if !ok {
		return game.State{}, ErrGameNotFound
	}
	return g.Clone(), nil
}

func (r *InMemoryRepository) Save(_ context.Context, g game.State) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.games[g.ID]; !ok {
		return ErrGameNotFound
	}
	r.games[g.ID] = g.Clone()
	return nil
}
