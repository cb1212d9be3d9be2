package services

import (
	"context"
	"sync"
	"time"

	"github.com/bellapacxx/squares-backend/utils/logger"
)

// LiveScores polls the feed on its own timer. A failed poll keeps the last
// good scoreboard; nothing here touches game state.
type LiveScores struct {
	feed     *ScoreFeed
	interval time.Duration

	mu          sync.RWMutex
	games       []LiveGameScore
	lastFetched time.Time
	lastErr     error
}

func NewLiveScores(feed *ScoreFeed, interval time.Duration) *LiveScores {
	return &LiveScores{feed: feed, interval: interval}
}

// Run polls until ctx is cancelled.
func (l *LiveScores) Run(ctx context.Context) {
	_ = l.Refresh(ctx)

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_ = l.Refresh(ctx)
		}
	}
}

func (l *LiveScores) Refresh(ctx context.Context) error {
	games, err := l.feed.Fetch(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.lastErr = err
	if err != nil {
		logger.Warnf("[LiveScores] fetch failed, keeping last scoreboard: %v", err)
		return err
	}
	l.games = games
	l.lastFetched = time.Now()
	return nil
}

// LiveScoreResult is the cached answer for one game.
type LiveScoreResult struct {
	Score       *LiveGameScore `json:"score"`
	LastFetched *time.Time     `json:"lastFetched"`
	Error       string         `json:"error,omitempty"`
}

// Lookup matches the cached scoreboard against a game's team names.
func (l *LiveScores) Lookup(homeTeam, awayTeam string) LiveScoreResult {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var res LiveScoreResult
	if !l.lastFetched.IsZero() {
		t := l.lastFetched
		res.LastFetched = &t
	}
	if l.lastErr != nil {
		res.Error = l.lastErr.Error()
	}
	if g, ok := MatchGame(l.games, homeTeam, awayTeam); ok {
		res.Score = &g
	}
	return res
}
