package repository

import (
	"encoding/json"
	"fmt"

	"github.com/bellapacxx/squares-backend/game"
	"github.com/bellapacxx/squares-backend/models"
	"gorm.io/datatypes"
)

type encodedField struct {
	name string
	dst  *datatypes.JSON
	v    any
}

func toRecord(g game.State) (models.Game, error) {
	rec := models.Game{
		ID:                g.ID,
		CreatorSessionID:  g.CreatorSessionID,
		CreatorName:       g.CreatorName,
		HostParticipantID: g.HostParticipantID,
		Mode:              string(g.Mode),
		HomeTeam:          g.HomeTeam,
		AwayTeam:          g.AwayTeam,
		PricePerBox:       g.PricePerBox,
		Instructions:      g.Instructions,
		Status:            string(g.Status),
		CreatedAt:         g.CreatedAt,
		UpdatedAt:         g.UpdatedAt,
	}

	fields := []encodedField{
		{"homeNumbers", &rec.HomeNumbers, nonNil(g.HomeNumbers)},
		{"awayNumbers", &rec.AwayNumbers, nonNil(g.AwayNumbers)},
		{"grid", &rec.Grid, g.Grid.Flatten()},
		{"participants", &rec.Participants, nonNil(g.Participants)},
		{"scoreHistory", &rec.ScoreHistory, nonNil(g.ScoreHistory)},
		{"pendingClaims", &rec.PendingClaims, nonNil(g.PendingClaims)},
	}
	if g.Distribution != nil {
		fields = append(fields, encodedField{"payoutDistribution", &rec.PayoutDistribution, g.Distribution})
	}
	for _, f := range fields {
		b, err := json.Marshal(f.v)
		if err != nil {
			return models.Game{}, fmt.Errorf("encode %s: %w", f.name, err)
		}
		*f.dst = datatypes.JSON(b)
	}
	return rec, nil
}

func fromRecord(rec models.Game) (game.State, error) {
	g := game.State{
		ID:                rec.ID,
		CreatorSessionID:  rec.CreatorSessionID,
		CreatorName:       rec.CreatorName,
		HostParticipantID: rec.HostParticipantID,
		Mode:              game.Mode(rec.Mode),
		HomeTeam:          rec.HomeTeam,
		AwayTeam:          rec.AwayTeam,
		PricePerBox:       rec.PricePerBox,
		Instructions:      rec.Instructions,
		Status:            game.Status(rec.Status),
		CreatedAt:         rec.CreatedAt,
		UpdatedAt:         rec.UpdatedAt,
		HomeNumbers:       []int{},
		AwayNumbers:       []int{},
		Participants:      []game.Participant{},
		ScoreHistory:      []game.ScoreSnapshot{},
		PendingClaims:     []game.Claim{},
	}

	var flat []game.Cell
	fields := []struct {
		name string
		src  datatypes.JSON
		dst  any
	}{
		{"homeNumbers", rec.HomeNumbers, &g.HomeNumbers},
		{"awayNumbers", rec.AwayNumbers, &g.AwayNumbers},
		{"grid", rec.Grid, &flat},
		{"participants", rec.Participants, &g.Participants},
		{"scoreHistory", rec.ScoreHistory, &g.ScoreHistory},
		{"pendingClaims", rec.PendingClaims, &g.PendingClaims},
		{"payoutDistribution", rec.PayoutDistribution, &g.Distribution},
	}
	for _, f := range fields {
		if len(f.src) == 0 {
			continue
		}
		if err := json.Unmarshal(f.src, f.dst); err != nil {
			return game.State{}, fmt.Errorf("decode %s: %w", f.name, err)
		}
	}

	grid, err := game.UnflattenGrid(flat)
	if err != nil {
		return game.State{}, err
	}
	g.Grid = grid
	return g, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
