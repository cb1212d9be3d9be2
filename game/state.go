package game

import (
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Grid is addressed [row][col]; rows follow HomeNumbers, columns AwayNumbers.
type Grid [GridSize][GridSize]Cell

// State is the whole game document. Every mutation goes through Apply.
type State struct {
	ID                string          `json:"id"`
	CreatorSessionID  string          `json:"creatorSessionId"`
	CreatorName       string          `json:"creatorName"`
	HostParticipantID string          `json:"hostParticipantId"`
	Mode              Mode            `json:"mode"`
	HomeTeam          string          `json:"homeTeam"`
	AwayTeam          string          `json:"awayTeam"`
	PricePerBox       float64         `json:"pricePerBox"`
	Distribution      *Distribution   `json:"payoutDistribution,omitempty"`
	Instructions      string          `json:"instructions,omitempty"`
	HomeNumbers       []int           `json:"homeNumbers"`
	AwayNumbers       []int           `json:"awayNumbers"`
	Grid              Grid            `json:"grid"`
	Participants      []Participant   `json:"participants"`
	ScoreHistory      []ScoreSnapshot `json:"scoreHistory"`
	PendingClaims     []Claim         `json:"pendingClaims"`
	Status            Status          `json:"status"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

// Env carries the non-deterministic inputs a command may need.
// Zero fields fall back to wall clock, random UUIDs and a time-seeded source.
type Env struct {
	Now   func() time.Time
	NewID func() string
	Rand  *rand.Rand
}

func (e Env) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

func (e Env) newID() string {
	if e.NewID != nil {
		return e.NewID()
	}
	return uuid.NewString()
}

func (e Env) rng() *rand.Rand {
	if e.Rand != nil {
		return e.Rand
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

type CreateParams struct {
	CreatorSessionID string
	CreatorName      string
	Mode             Mode
	HomeTeam         string
	AwayTeam         string
	PricePerBox      float64
	Distribution     *Distribution
	Instructions     string
}

// NewState builds an open game with an empty grid, hidden numbers and the
// creator as the first participant. The creator's participant id is distinct
// from CreatorSessionID, which is never shown to other players.
func NewState(env Env, id string, p CreateParams) (State, error) {
	name := strings.TrimSpace(p.CreatorName)
	if name == "" {
		return State{}, ErrMissingName
	}
	if !p.Mode.Valid() {
		return State{}, ErrInvalidMode
	}
	if p.PricePerBox < 0 {
		return State{}, ErrInvalidPrice
	}
	var dist *Distribution
	if p.Distribution != nil {
		if err := p.Distribution.Validate(); err != nil {
			return State{}, err
		}
		d := *p.Distribution
		dist = &d
	}

	hostPID := env.newID()
	now := env.now()
	return State{
		ID:                id,
		CreatorSessionID:  p.CreatorSessionID,
		CreatorName:       name,
		HostParticipantID: hostPID,
		Mode:              p.Mode,
		HomeTeam:          strings.TrimSpace(p.HomeTeam),
		AwayTeam:          strings.TrimSpace(p.AwayTeam),
		PricePerBox:       p.PricePerBox,
		Distribution:      dist,
		Instructions:      p.Instructions,
		HomeNumbers:       []int{},
		AwayNumbers:       []int{},
		Participants: []Participant{
			{ID: hostPID, Name: name, Color: Colors[0]},
		},
		ScoreHistory:  []ScoreSnapshot{},
		PendingClaims: []Claim{},
		Status:        StatusOpen,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// Clone returns a copy that shares no slices with s.
func (s State) Clone() State {
	out := s
	out.HomeNumbers = append([]int{}, s.HomeNumbers...)
	out.AwayNumbers = append([]int{}, s.AwayNumbers...)
	out.Participants = append([]Participant{}, s.Participants...)
	out.ScoreHistory = append([]ScoreSnapshot{}, s.ScoreHistory...)
	out.PendingClaims = append([]Claim{}, s.PendingClaims...)
	if s.Distribution != nil {
		d := *s.Distribution
		out.Distribution = &d
	}
	return out
}

// Command is one mutation of the game document.
type Command interface {
	apply(env Env, s *State) error
}

// Apply runs cmd against a copy of s. On error the original state is
// returned untouched.
func Apply(env Env, s State, cmd Command) (State, error) {
	next := s.Clone()
	if err := cmd.apply(env, &next); err != nil {
		return s, err
	}
	next.UpdatedAt = env.now()
	return next, nil
}

// PayoutDistribution returns the host override or the default split.
func (s State) PayoutDistribution() Distribution {
	if s.Distribution != nil {
		return *s.Distribution
	}
	return DefaultDistribution
}

func (s State) IsHost(actor string) bool {
	return actor != "" && actor == s.CreatorSessionID
}

func (s State) requireHost(actor string) error {
	if !s.IsHost(actor) {
		return ErrNotHost
	}
	return nil
}

func (s State) Participant(id string) (Participant, bool) {
	for _, p := range s.Participants {
		if p.ID == id {
			return p, true
		}
	}
	return Participant{}, false
}

// actorParticipant resolves the session behind a command to its participant.
// The host acts as HostParticipantID; everyone else's session is their id.
func (s State) actorParticipant(actor string) (Participant, bool) {
	if s.IsHost(actor) {
		return s.Participant(s.HostParticipantID)
	}
	return s.Participant(actor)
}

func (s State) Revealed() bool {
	return len(s.HomeNumbers) == GridSize && len(s.AwayNumbers) == GridSize
}
