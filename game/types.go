package game

import "time"

const (
	GridSize  = 10
	CellCount = GridSize * GridSize

	// FinalMinute is the sentinel minute for the final score in minute mode.
	FinalMinute = 60
)

// Palette slots handed out to participants in join order.
var Colors = []string{
	"#3b82f6", "#ef4444", "#10b981", "#f59e0b", "#8b5cf6",
	"#ec4899", "#06b6d4", "#f97316", "#a855f7", "#14b8a6",
}

type Mode string

const (
	ModeQuarter Mode = "TRADITIONAL"
	ModeMinute  Mode = "MINUTE_BY_MINUTE"
)

func (m Mode) Valid() bool {
	return m == ModeQuarter || m == ModeMinute
}

type Status string

const (
	StatusSetup      Status = "SETUP"
	StatusOpen       Status = "OPEN"
	StatusLocked     Status = "LOCKED"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusSetup, StatusOpen, StatusLocked, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

type ClaimStatus string

const (
	ClaimPending  ClaimStatus = "PENDING"
	ClaimApproved ClaimStatus = "APPROVED"
	ClaimRejected ClaimStatus = "REJECTED"
)

type Participant struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Cell is one grid position. An empty ParticipantID means unsold.
type Cell struct {
	ParticipantID string `json:"participantId,omitempty"`
}

func (c Cell) Owned() bool { return c.ParticipantID != "" }

type Claim struct {
	ID              string      `json:"id"`
	GameID          string      `json:"gameId"`
	ParticipantID   string      `json:"participantId"`
	ParticipantName string      `json:"participantName"`
	Row             int         `json:"row"`
	Col             int         `json:"col"`
	Status          ClaimStatus `json:"status"`
	CreatedAt       time.Time   `json:"createdAt"`
}

// ScoreSnapshot is one logged score. Quarter is 0 when not given.
type ScoreSnapshot struct {
	Minute    int `json:"minute"`
	Quarter   int `json:"quarter,omitempty"`
	HomeScore int `json:"homeScore"`
	AwayScore int `json:"awayScore"`
}

type PayoutSummary struct {
	ParticipantID   string  `json:"participantId"`
	ParticipantName string  `json:"participantName"`
	TotalOwed       float64 `json:"totalOwed"`
	WinCount        int     `json:"winCount"`
}
