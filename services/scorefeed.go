package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// LiveGameScore is one game from the scoreboard feed. Quarter is nil outside
// regulation periods.
type LiveGameScore struct {
	HomeTeam  string `json:"homeTeam"`
	AwayTeam  string `json:"awayTeam"`
	HomeScore int    `json:"homeScore"`
	AwayScore int    `json:"awayScore"`
	Quarter   *int   `json:"quarter"`
	Status    string `json:"status"` // pre | in | post
}

type espnScoreboard struct {
	Events []struct {
		Name         string `json:"name"`
		Competitions []struct {
			Competitors []struct {
				HomeAway string `json:"homeAway"`
				Team     struct {
					DisplayName  string `json:"displayName"`
					Abbreviation string `json:"abbreviation"`
				} `json:"team"`
				Score string `json:"score"`
			} `json:"competitors"`
			Status struct {
				Type struct {
					State string `json:"state"`
				} `json:"type"`
				Period int `json:"period"`
			} `json:"status"`
		} `json:"competitions"`
	} `json:"events"`
}

// ScoreFeed reads the public ESPN NFL scoreboard.
type ScoreFeed struct {
	url    string
	client *http.Client
}

func NewScoreFeed(url string) *ScoreFeed {
	return &ScoreFeed{url: url, client: &http.Client{Timeout: 10 * time.Second}}
}

// Fetch returns every game on the scoreboard that has both competitors.
func (f *ScoreFeed) Fetch(ctx context.Context) ([]LiveGameScore, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("score feed returned %s", resp.Status)
	}

	var board espnScoreboard
	if err := json.NewDecoder(resp.Body).Decode(&board); err != nil {
		return nil, fmt.Errorf("failed to parse response JSON: %w", err)
	}

	var games []LiveGameScore
	for _, ev := range board.Events {
		if len(ev.Competitions) == 0 {
			continue
		}
		comp := ev.Competitions[0]
		var live LiveGameScore
		var haveHome, haveAway bool
		for _, c := range comp.Competitors {
			score, _ := strconv.Atoi(strings.TrimSpace(c.Score))
			switch c.HomeAway {
			case "home":
				live.HomeTeam, live.HomeScore, haveHome = c.Team.DisplayName, score, true
			case "away":
				live.AwayTeam, live.AwayScore, haveAway = c.Team.DisplayName, score, true
			}
		}
		if !haveHome || !haveAway {
			continue
		}
		if p := comp.Status.Period; p >= 1 && p <= 4 {
			live.Quarter = &p
		}
		live.Status = comp.Status.Type.State
		games = append(games, live)
	}
	return games, nil
}

// MatchGame picks the game whose team names contain (or are contained in) the
// given names, ignoring case and home/away order. With no match it falls back
// to the first game.
func MatchGame(games []LiveGameScore, homeTeam, awayTeam string) (LiveGameScore, bool) {
	if len(games) == 0 {
		return LiveGameScore{}, false
	}
	home := strings.ToLower(strings.TrimSpace(homeTeam))
	away := strings.ToLower(strings.TrimSpace(awayTeam))
	if home != "" && away != "" {
		for _, g := range games {
			liveHome, liveAway := strings.ToLower(g.HomeTeam), strings.ToLower(g.AwayTeam)
			if (sameTeam(liveHome, home) && sameTeam(liveAway, away)) ||
				(sameTeam(liveHome, away) && sameTeam(liveAway, home)) {
				return g, true
			}
		}
	}
	return games[0], true
}

func sameTeam(a, b string) bool {
	return strings.Contains(a, b) || strings.Contains(b, a)
}
