package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bellapacxx/squares-backend/game"
	"github.com/bellapacxx/squares-backend/repository"
	"github.com/bellapacxx/squares-backend/utils/logger"
	"github.com/google/uuid"
)

const gameIDLength = 8

// Session is the client-held identity, passed explicitly with every command.
// For players ID is also their participant id. The host's ID is a separate
// secret; its boxes are held by ParticipantID.
type Session struct {
	ID            string `json:"id"`
	ParticipantID string `json:"participantId"`
	Name          string `json:"name"`
	GameID        string `json:"gameId"`
	IsCreator     bool   `json:"isCreator"`
}

type CreateGameParams struct {
	CreatorName  string             `json:"creatorName"`
	Mode         game.Mode          `json:"mode"`
	HomeTeam     string             `json:"homeTeam"`
	AwayTeam     string             `json:"awayTeam"`
	PricePerBox  float64            `json:"pricePerBox"`
	Distribution *game.Distribution `json:"payoutDistribution,omitempty"`
	Instructions string             `json:"instructions,omitempty"`
}

// GameService runs every mutation as load, apply, save, notify. There is no
// locking across those steps: concurrent writers resolve last-write-wins in
// the repository.
type GameService struct {
	repo     repository.Repository
	notifier Notifier
	env      game.Env
	odds     game.OddsTable
}

func NewGameService(repo repository.Repository, notifier Notifier, odds game.OddsTable) *GameService {
	return &GameService{repo: repo, notifier: notifier, odds: odds}
}

// WithEnv overrides clock, ids and randomness; used by tests.
func (s *GameService) WithEnv(env game.Env) *GameService {
	s.env = env
	return s
}

func newGameID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:gameIDLength]
}

func (s *GameService) Create(ctx context.Context, p CreateGameParams) (game.State, Session, error) {
	token := uuid.NewString()
	g, err := game.NewState(s.env, newGameID(), game.CreateParams{
		CreatorSessionID: token,
		CreatorName:      p.CreatorName,
		Mode:             p.Mode,
		HomeTeam:         p.HomeTeam,
		AwayTeam:         p.AwayTeam,
		PricePerBox:      p.PricePerBox,
		Distribution:     p.Distribution,
		Instructions:     p.Instructions,
	})
	if err != nil {
		return game.State{}, Session{}, err
	}
	if err := s.repo.Create(ctx, g); err != nil {
		return game.State{}, Session{}, fmt.Errorf("create game: %w", err)
	}
	logger.Infof("[Game %s] created by %s (%s, $%.2f/box)", g.ID, g.CreatorName, g.Mode, g.PricePerBox)
	return g, Session{ID: token, ParticipantID: g.HostParticipantID, Name: g.CreatorName, GameID: g.ID, IsCreator: true}, nil
}

// Join issues a new session and registers it as a participant.
func (s *GameService) Join(ctx context.Context, gameID, name string) (game.State, Session, error) {
	token := uuid.NewString()
	g, err := s.Dispatch(ctx, gameID, game.AddParticipant{Actor: token, ParticipantID: token, Name: name})
	if err != nil {
		return game.State{}, Session{}, err
	}
	p, _ := g.Participant(token)
	return g, Session{ID: token, ParticipantID: p.ID, Name: p.Name, GameID: g.ID}, nil
}

func (s *GameService) Get(ctx context.Context, id string) (game.State, error) {
	return s.repo.Load(ctx, id)
}

// Dispatch applies one command to the stored game and pushes the result to
// subscribers. Precondition failures never reach the store.
func (s *GameService) Dispatch(ctx context.Context, id string, cmd game.Command) (game.State, error) {
	current, err := s.repo.Load(ctx, id)
	if err != nil {
		return game.State{}, err
	}
	next, err := game.Apply(s.env, current, cmd)
	if err != nil {
		logger.Debugf("[Game %s] %T rejected: %v", id, cmd, err)
		return current, err
	}
	if err := s.repo.Save(ctx, next); err != nil {
		logger.Errorf("[Game %s] failed to save %T: %v", id, cmd, err)
		return current, fmt.Errorf("save game: %w", err)
	}
	logger.Infof("[Game %s] applied %T", id, cmd)
	if s.notifier != nil {
		s.notifier.Notify(ctx, next)
	}
	return next, nil
}

func (s *GameService) Payouts(ctx context.Context, id string) ([]game.PayoutSummary, error) {
	g, err := s.repo.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	return g.Payouts(), nil
}

func (s *GameService) Scores(ctx context.Context, id string) ([]game.ScoreResult, error) {
	g, err := s.repo.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	return g.ScoreResults(), nil
}

// Estimate is the host-only win probability projection.
func (s *GameService) Estimate(ctx context.Context, id, actor string) ([]game.Estimate, error) {
	g, err := s.repo.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !g.IsHost(actor) {
		return nil, game.ErrNotHost
	}
	return g.Estimate(s.odds)
}

// IsNotFound reports whether err means the game id is unknown.
func IsNotFound(err error) bool {
	return errors.Is(err, repository.ErrGameNotFound)
}
