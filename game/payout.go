package game

import (
	"sort"

	"github.com/shopspring/decimal"
)

var (
	minuteShare      = decimal.New(1, -2)
	finalMinuteShare = decimal.New(40, -2)
)

type Outcome string

const (
	OutcomeWinner       Outcome = "WINNER"
	OutcomeUnsold       Outcome = "UNSOLD"
	OutcomeUndetermined Outcome = "UNDETERMINED"
)

// Resolution is the grid cell a score lands on.
type Resolution struct {
	Row           int     `json:"row"`
	Col           int     `json:"col"`
	ParticipantID string  `json:"participantId,omitempty"`
	Outcome       Outcome `json:"outcome"`
}

// ScoreResult pairs a ledger entry with its resolved winner and the slot value.
type ScoreResult struct {
	Snapshot   ScoreSnapshot `json:"snapshot"`
	Resolution Resolution    `json:"resolution"`
	WinnerName string        `json:"winnerName,omitempty"`
	Amount     float64       `json:"amount"`
}

func lastDigit(n int) int {
	return ((n % 10) + 10) % 10
}

func indexOf(digits []int, d int) int {
	for i, v := range digits {
		if v == d {
			return i
		}
	}
	return -1
}

// Resolve maps a score to its cell using the last digit of each team's score.
// Before numbers are revealed nothing can be resolved.
func (s State) Resolve(home, away int) Resolution {
	row := indexOf(s.HomeNumbers, lastDigit(home))
	col := indexOf(s.AwayNumbers, lastDigit(away))
	if row < 0 || col < 0 {
		return Resolution{Row: -1, Col: -1, Outcome: OutcomeUndetermined}
	}
	owner := s.Grid[row][col].ParticipantID
	if owner == "" {
		return Resolution{Row: row, Col: col, Outcome: OutcomeUnsold}
	}
	return Resolution{Row: row, Col: col, ParticipantID: owner, Outcome: OutcomeWinner}
}

func (s State) pot() decimal.Decimal {
	return decimal.NewFromFloat(s.PricePerBox).Mul(decimal.NewFromInt(int64(s.BoxesClaimed())))
}

// PotSize is price per box times the number of sold boxes.
func (s State) PotSize() float64 {
	return s.pot().InexactFloat64()
}

// share returns the fraction of the pot a ledger entry pays, and whether the
// entry pays at all under the current mode.
func (s State) share(snap ScoreSnapshot) (decimal.Decimal, bool) {
	if s.Mode == ModeQuarter {
		if snap.Quarter < 1 || snap.Quarter > 4 {
			return decimal.Zero, false
		}
		return decimal.NewFromFloat(s.PayoutDistribution().ForQuarter(snap.Quarter)), true
	}
	if snap.Minute == FinalMinute {
		return finalMinuteShare, true
	}
	if snap.Minute >= 1 && snap.Minute < FinalMinute {
		return minuteShare, true
	}
	return decimal.Zero, false
}

// paying returns the ledger entries that pay out, one per quarter in quarter
// mode and every entry in minute mode.
func (s State) paying() []ScoreSnapshot {
	if s.Mode != ModeQuarter {
		return s.ScoreHistory
	}
	out := make([]ScoreSnapshot, 0, 4)
	for q := 1; q <= 4; q++ {
		for _, snap := range s.ScoreHistory {
			if snap.Quarter == q {
				out = append(out, snap)
				break
			}
		}
	}
	return out
}

// Payouts totals what each participant is owed. Unsold and undetermined slots
// are forfeited, not redistributed. Results are ordered by amount, highest
// first, keeping participant order on ties.
func (s State) Payouts() []PayoutSummary {
	pot := s.pot()
	totals := make(map[string]decimal.Decimal, len(s.Participants))
	wins := make(map[string]int, len(s.Participants))
	for _, p := range s.Participants {
		totals[p.ID] = decimal.Zero
	}

	for _, snap := range s.paying() {
		share, ok := s.share(snap)
		if !ok {
			continue
		}
		res := s.Resolve(snap.HomeScore, snap.AwayScore)
		if res.Outcome != OutcomeWinner {
			continue
		}
		total, known := totals[res.ParticipantID]
		if !known {
			continue
		}
		totals[res.ParticipantID] = total.Add(pot.Mul(share))
		wins[res.ParticipantID]++
	}

	out := make([]PayoutSummary, 0, len(s.Participants))
	for _, p := range s.Participants {
		out = append(out, PayoutSummary{
			ParticipantID:   p.ID,
			ParticipantName: p.Name,
			TotalOwed:       totals[p.ID].InexactFloat64(),
			WinCount:        wins[p.ID],
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].TotalOwed > out[j].TotalOwed })
	return out
}

// ScoreResults resolves every ledger entry for display, oldest first.
func (s State) ScoreResults() []ScoreResult {
	pot := s.pot()
	out := make([]ScoreResult, 0, len(s.ScoreHistory))
	for _, snap := range s.ScoreHistory {
		r := ScoreResult{Snapshot: snap, Resolution: s.Resolve(snap.HomeScore, snap.AwayScore)}
		if share, ok := s.share(snap); ok {
			r.Amount = pot.Mul(share).InexactFloat64()
		}
		if p, ok := s.Participant(r.Resolution.ParticipantID); ok {
			r.WinnerName = p.Name
		}
		out = append(out, r)
	}
	return out
}
