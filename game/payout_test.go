package game

import (
	"math"
	"testing"
)

// Home digit 7 sits at row 2 and away digit 3 at column 5.
var (
	testHomeNumbers = []int{0, 1, 7, 2, 3, 4, 5, 6, 8, 9}
	testAwayNumbers = []int{0, 1, 2, 4, 5, 3, 6, 7, 8, 9}
)

// revealedState returns a full grid owned by the host except (2,5), which is
// Alice's, with fixed numbers.
func revealedState(t *testing.T, env Env, mode Mode) State {
	t.Helper()
	s := newTestState(t, env, mode)
	s = join(t, env, s, "alice", "Alice")
	s = join(t, env, s, "bob", "Bob")
	s = mustApply(t, env, s, AssignOwner{Actor: hostID, Row: 2, Col: 5, ParticipantID: "alice"})
	s = fillGrid(s, hostParticipantID)
	s.HomeNumbers = append([]int(nil), testHomeNumbers...)
	s.AwayNumbers = append([]int(nil), testAwayNumbers...)
	return s
}

func summaryFor(t *testing.T, payouts []PayoutSummary, id string) PayoutSummary {
	t.Helper()
	for _, p := range payouts {
		if p.ParticipantID == id {
			return p
		}
	}
	t.Fatalf("no payout summary for %s", id)
	return PayoutSummary{}
}

func TestQuarterOnePayoutScenario(t *testing.T) {
	env := testEnv(1)
	s := revealedState(t, env, ModeQuarter)
	s = mustApply(t, env, s, RecordScore{Actor: hostID, Snapshot: ScoreSnapshot{Quarter: 1, HomeScore: 17, AwayScore: 23}})

	if s.PotSize() != 1000 {
		t.Fatalf("pot = %v, want 1000", s.PotSize())
	}
	alice := summaryFor(t, s.Payouts(), "alice")
	if alice.TotalOwed != 200 || alice.WinCount != 1 {
		t.Fatalf("alice = %+v, want 200 owed and 1 win", alice)
	}
}

func TestQuarterPayoutsDistributeWholePot(t *testing.T) {
	env := testEnv(1)
	s := revealedState(t, env, ModeQuarter)
	scores := []ScoreSnapshot{
		{Quarter: 1, HomeScore: 7, AwayScore: 3},
		{Quarter: 2, HomeScore: 10, AwayScore: 10},
		{Quarter: 3, HomeScore: 17, AwayScore: 13},
		{Quarter: 4, HomeScore: 31, AwayScore: 24},
	}
	for _, snap := range scores {
		s = mustApply(t, env, s, RecordScore{Actor: hostID, Snapshot: snap})
	}
	// Re-logging a quarter never pays twice.
	s = mustApply(t, env, s, RecordScore{Actor: hostID, Snapshot: scores[0]})

	total := 0.0
	wins := 0
	for _, p := range s.Payouts() {
		total += p.TotalOwed
		wins += p.WinCount
	}
	if total != s.PotSize() {
		t.Fatalf("distributed %v, want whole pot %v", total, s.PotSize())
	}
	if wins != 4 {
		t.Fatalf("wins = %d, want 4", wins)
	}
	alice := summaryFor(t, s.Payouts(), "alice")
	if alice.TotalOwed != 400 || alice.WinCount != 2 {
		t.Fatalf("alice = %+v, want Q1+Q3 = 400", alice)
	}
}

func TestQuarterPayoutsOnlyTriggeredShares(t *testing.T) {
	env := testEnv(1)
	s := revealedState(t, env, ModeQuarter)
	custom := Distribution{Q1: 0.1, Halftime: 0.2, Q3: 0.3, Final: 0.4}
	s.Distribution = &custom

	s = mustApply(t, env, s, RecordScore{Actor: hostID, Snapshot: ScoreSnapshot{Quarter: 2, HomeScore: 0, AwayScore: 0}})
	s = mustApply(t, env, s, RecordScore{Actor: hostID, Snapshot: ScoreSnapshot{Quarter: 4, HomeScore: 27, AwayScore: 13}})

	total := 0.0
	for _, p := range s.Payouts() {
		total += p.TotalOwed
	}
	if math.Abs(total-600) > 1e-9 {
		t.Fatalf("distributed %v, want pot x (0.2+0.4) = 600", total)
	}
}

func TestUnsoldBoxIsForfeited(t *testing.T) {
	env := testEnv(1)
	s := revealedState(t, env, ModeQuarter)
	// Leave (3,7) unsold: home digit at row 3 is 2, away digit at col 7 is 7.
	s.Grid[3][7] = Cell{}

	before := s.Payouts()
	s = mustApply(t, env, s, RecordScore{Actor: hostID, Snapshot: ScoreSnapshot{Quarter: 1, HomeScore: 12, AwayScore: 17}})

	res := s.Resolve(12, 17)
	if res.Outcome != OutcomeUnsold || res.Row != 3 || res.Col != 7 {
		t.Fatalf("resolution = %+v, want unsold (3,7)", res)
	}
	after := s.Payouts()
	for i := range after {
		b := summaryFor(t, before, after[i].ParticipantID)
		if after[i].TotalOwed != b.TotalOwed || after[i].WinCount != b.WinCount {
			t.Fatalf("%s changed from %+v to %+v", after[i].ParticipantID, b, after[i])
		}
	}
}

func TestUnrevealedNumbersResolveNoWinner(t *testing.T) {
	env := testEnv(1)
	s := fillGrid(newTestState(t, env, ModeQuarter), hostParticipantID)
	s = mustApply(t, env, s, RecordScore{Actor: hostID, Snapshot: ScoreSnapshot{Quarter: 1, HomeScore: 7, AwayScore: 0}})

	if res := s.Resolve(7, 0); res.Outcome != OutcomeUndetermined {
		t.Fatalf("outcome = %s, want UNDETERMINED", res.Outcome)
	}
	for _, p := range s.Payouts() {
		if p.TotalOwed != 0 || p.WinCount != 0 {
			t.Fatalf("payout before reveal: %+v", p)
		}
	}
}

func TestMinutePayouts(t *testing.T) {
	env := testEnv(1)
	s := revealedState(t, env, ModeMinute)

	for _, snap := range []ScoreSnapshot{
		{Minute: 1, HomeScore: 7, AwayScore: 3},
		{Minute: 2, HomeScore: 7, AwayScore: 3},
		{Minute: 3, HomeScore: 0, AwayScore: 0},
		{Minute: 60, HomeScore: 27, AwayScore: 23},
	} {
		s = mustApply(t, env, s, RecordScore{Actor: hostID, Snapshot: snap})
	}

	alice := summaryFor(t, s.Payouts(), "alice")
	// 1% of 1000 twice plus the 40% final.
	if math.Abs(alice.TotalOwed-420) > 1e-9 || alice.WinCount != 3 {
		t.Fatalf("alice = %+v, want 420 over 3 wins", alice)
	}
	host := summaryFor(t, s.Payouts(), hostParticipantID)
	if math.Abs(host.TotalOwed-10) > 1e-9 || host.WinCount != 1 {
		t.Fatalf("host = %+v, want 10 over 1 win", host)
	}
}

func TestPotCountsOnlySoldBoxes(t *testing.T) {
	env := testEnv(1)
	s := newTestState(t, env, ModeQuarter)
	s = mustApply(t, env, s, AssignOwner{Actor: hostID, Row: 0, Col: 0, ParticipantID: hostParticipantID})
	s = mustApply(t, env, s, AssignOwner{Actor: hostID, Row: 0, Col: 1, ParticipantID: hostParticipantID})
	if s.PotSize() != 20 {
		t.Fatalf("pot = %v, want 20", s.PotSize())
	}
}

func TestPayoutsSortedStable(t *testing.T) {
	env := testEnv(1)
	s := revealedState(t, env, ModeQuarter)
	s = mustApply(t, env, s, RecordScore{Actor: hostID, Snapshot: ScoreSnapshot{Quarter: 1, HomeScore: 7, AwayScore: 3}})

	payouts := s.Payouts()
	if payouts[0].ParticipantID != "alice" {
		t.Fatalf("top earner = %s, want alice", payouts[0].ParticipantID)
	}
	// Host and Bob tie at zero and keep join order.
	if payouts[1].ParticipantID != hostParticipantID || payouts[2].ParticipantID != "bob" {
		t.Fatalf("tie order = %s, %s", payouts[1].ParticipantID, payouts[2].ParticipantID)
	}
}

func TestScoreResults(t *testing.T) {
	env := testEnv(1)
	s := revealedState(t, env, ModeQuarter)
	s.Grid[3][7] = Cell{}
	s = mustApply(t, env, s, RecordScore{Actor: hostID, Snapshot: ScoreSnapshot{Quarter: 1, HomeScore: 17, AwayScore: 23}})
	s = mustApply(t, env, s, RecordScore{Actor: hostID, Snapshot: ScoreSnapshot{Quarter: 2, HomeScore: 12, AwayScore: 17}})

	results := s.ScoreResults()
	if len(results) != 2 {
		t.Fatalf("results = %d, want 2", len(results))
	}
	if results[0].WinnerName != "Alice" || results[0].Amount != 198 {
		t.Fatalf("Q1 = %+v, want Alice for 198", results[0])
	}
	if results[1].Resolution.Outcome != OutcomeUnsold || results[1].WinnerName != "" {
		t.Fatalf("Q2 = %+v, want unsold", results[1])
	}
}
