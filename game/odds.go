package game

import "sort"

// OddsTable holds historical frequencies indexed [homeDigit][awayDigit] by
// actual digit value, not grid position.
type OddsTable [GridSize][GridSize]float64

// Approximate share of NFL final scores ending in each digit.
var finalDigitFrequency = [GridSize]float64{0.19, 0.07, 0.02, 0.13, 0.15, 0.04, 0.06, 0.20, 0.05, 0.09}

// DefaultOddsTable treats the two teams' last digits as independent.
func DefaultOddsTable() OddsTable {
	var t OddsTable
	for h := 0; h < GridSize; h++ {
		for a := 0; a < GridSize; a++ {
			t[h][a] = finalDigitFrequency[h] * finalDigitFrequency[a]
		}
	}
	return t
}

// OddsTableFromRows validates and converts a decoded 10x10 table.
func OddsTableFromRows(rows [][]float64) (OddsTable, error) {
	var t OddsTable
	if len(rows) != GridSize {
		return t, ErrInvalidOddsTable
	}
	for h, row := range rows {
		if len(row) != GridSize {
			return t, ErrInvalidOddsTable
		}
		for a, p := range row {
			if p < 0 {
				return t, ErrInvalidOddsTable
			}
			t[h][a] = p
		}
	}
	return t, nil
}

// Estimate is an advisory projection for one participant. It never feeds into
// Payouts.
type Estimate struct {
	ParticipantID   string  `json:"participantId"`
	ParticipantName string  `json:"participantName"`
	Boxes           int     `json:"boxes"`
	Probability     float64 `json:"probability"`
	ExpectedPayout  float64 `json:"expectedPayout"`
}

// Estimate sums the table over each participant's boxes. Quarter mode only,
// after the numbers are revealed.
func (s State) Estimate(table OddsTable) ([]Estimate, error) {
	if s.Mode != ModeQuarter {
		return nil, ErrEstimateQuarterOnly
	}
	if !s.Revealed() {
		return nil, ErrNumbersNotRevealed
	}

	prob := make(map[string]float64, len(s.Participants))
	boxes := make(map[string]int, len(s.Participants))
	for r := 0; r < GridSize; r++ {
		for c := 0; c < GridSize; c++ {
			owner := s.Grid[r][c].ParticipantID
			if owner == "" {
				continue
			}
			prob[owner] += table[s.HomeNumbers[r]][s.AwayNumbers[c]]
			boxes[owner]++
		}
	}

	pot := s.PotSize()
	out := make([]Estimate, 0, len(s.Participants))
	for _, p := range s.Participants {
		out = append(out, Estimate{
			ParticipantID:   p.ID,
			ParticipantName: p.Name,
			Boxes:           boxes[p.ID],
			Probability:     prob[p.ID],
			ExpectedPayout:  prob[p.ID] * pot,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Probability > out[j].Probability })
	return out, nil
}
