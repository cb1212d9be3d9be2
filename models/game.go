package models

import (
	"time"

	"gorm.io/datatypes"
)

// Game is the persisted game document. List fields are JSON columns; the grid
// is stored flattened row-major (100 cells).
type Game struct {
	ID                 string `gorm:"primaryKey;size:16"`
	CreatorSessionID   string `gorm:"size:64;not null"`
	CreatorName        string
	HostParticipantID  string `gorm:"size:64"`
	Mode               string `gorm:"size:32;not null"`
	HomeTeam           string
	AwayTeam           string
	PricePerBox        float64
	PayoutDistribution datatypes.JSON // null when the default split applies
	Instructions       string
	HomeNumbers        datatypes.JSON
	AwayNumbers        datatypes.JSON
	Grid               datatypes.JSON
	Participants       datatypes.JSON
	ScoreHistory       datatypes.JSON
	PendingClaims      datatypes.JSON
	Status             string `gorm:"size:32;index"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
