package game

import (
	"errors"
	"testing"
)

func TestRecordScoreDedupByQuarter(t *testing.T) {
	env := testEnv(1)
	s := newTestState(t, env, ModeQuarter)

	s = mustApply(t, env, s, RecordScore{Actor: hostID, Snapshot: ScoreSnapshot{Quarter: 2, HomeScore: 10, AwayScore: 7}})
	s = mustApply(t, env, s, RecordScore{Actor: hostID, Snapshot: ScoreSnapshot{Quarter: 1, HomeScore: 3, AwayScore: 0}})
	s = mustApply(t, env, s, RecordScore{Actor: hostID, Snapshot: ScoreSnapshot{Quarter: 2, HomeScore: 14, AwayScore: 7}})

	if len(s.ScoreHistory) != 2 {
		t.Fatalf("history = %d entries, want 2", len(s.ScoreHistory))
	}
	if s.ScoreHistory[0].Quarter != 1 || s.ScoreHistory[1].Quarter != 2 {
		t.Fatalf("history not sorted by minute: %+v", s.ScoreHistory)
	}
	if s.ScoreHistory[1].HomeScore != 14 {
		t.Fatalf("latest quarter 2 entry did not replace the old one")
	}
	if s.Status != StatusInProgress {
		t.Fatalf("status = %s, want IN_PROGRESS", s.Status)
	}
}

func TestRecordScoreDedupByMinute(t *testing.T) {
	env := testEnv(1)
	s := newTestState(t, env, ModeMinute)

	for _, snap := range []ScoreSnapshot{
		{Minute: 30, HomeScore: 10, AwayScore: 3},
		{Minute: 5, HomeScore: 0, AwayScore: 0},
		{Minute: 60, HomeScore: 24, AwayScore: 21},
		{Minute: 30, HomeScore: 10, AwayScore: 10},
		{Minute: 12, HomeScore: 7, AwayScore: 0, Quarter: 1},
	} {
		s = mustApply(t, env, s, RecordScore{Actor: hostID, Snapshot: snap})
		for i := 1; i < len(s.ScoreHistory); i++ {
			if s.ScoreHistory[i-1].Minute > s.ScoreHistory[i].Minute {
				t.Fatalf("history not sorted: %+v", s.ScoreHistory)
			}
		}
	}

	if len(s.ScoreHistory) != 4 {
		t.Fatalf("history = %d entries, want 4", len(s.ScoreHistory))
	}
	for _, snap := range s.ScoreHistory {
		if snap.Minute == 30 && snap.AwayScore != 10 {
			t.Fatalf("minute 30 kept stale entry %+v", snap)
		}
	}
}

func TestRecordScoreAllowsDecreasingScores(t *testing.T) {
	env := testEnv(1)
	s := newTestState(t, env, ModeMinute)
	s = mustApply(t, env, s, RecordScore{Actor: hostID, Snapshot: ScoreSnapshot{Minute: 10, HomeScore: 14}})
	s = mustApply(t, env, s, RecordScore{Actor: hostID, Snapshot: ScoreSnapshot{Minute: 11, HomeScore: 7}})
	if len(s.ScoreHistory) != 2 {
		t.Fatalf("history = %d entries, want 2", len(s.ScoreHistory))
	}
}

func TestRecordScoreValidation(t *testing.T) {
	env := testEnv(1)
	quarter := newTestState(t, env, ModeQuarter)
	minute := newTestState(t, env, ModeMinute)

	cases := []struct {
		name string
		s    State
		cmd  RecordScore
		want error
	}{
		{"not host", quarter, RecordScore{Actor: "p1", Snapshot: ScoreSnapshot{Quarter: 1}}, ErrNotHost},
		{"quarter missing", quarter, RecordScore{Actor: hostID, Snapshot: ScoreSnapshot{Minute: 15}}, ErrInvalidScore},
		{"quarter 5", quarter, RecordScore{Actor: hostID, Snapshot: ScoreSnapshot{Quarter: 5}}, ErrInvalidScore},
		{"minute 0", minute, RecordScore{Actor: hostID, Snapshot: ScoreSnapshot{Minute: 0}}, ErrInvalidScore},
		{"minute 61", minute, RecordScore{Actor: hostID, Snapshot: ScoreSnapshot{Minute: 61}}, ErrInvalidScore},
		{"negative score", minute, RecordScore{Actor: hostID, Snapshot: ScoreSnapshot{Minute: 3, HomeScore: -3}}, ErrInvalidScore},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Apply(env, tc.s, tc.cmd); !errors.Is(err, tc.want) {
				t.Fatalf("err = %v, want %v", err, tc.want)
			}
		})
	}
}
