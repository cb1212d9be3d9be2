package game

import "sort"

// RecordScore logs a score snapshot. The entry sharing the mode's dedup key
// (quarter or minute) is replaced, so the host corrects mistakes by logging
// the same key again. Scores are not checked for monotonicity.
type RecordScore struct {
	Actor    string
	Snapshot ScoreSnapshot
}

func (c RecordScore) apply(_ Env, s *State) error {
	if err := s.requireHost(c.Actor); err != nil {
		return err
	}
	snap := c.Snapshot
	if snap.HomeScore < 0 || snap.AwayScore < 0 {
		return ErrInvalidScore
	}
	switch s.Mode {
	case ModeQuarter:
		if snap.Quarter < 1 || snap.Quarter > 4 {
			return ErrInvalidScore
		}
		if snap.Minute == 0 {
			snap.Minute = snap.Quarter * FinalMinute / 4
		}
	case ModeMinute:
		if snap.Minute < 1 || snap.Minute > FinalMinute {
			return ErrInvalidScore
		}
	}
	if snap.Minute < 0 || snap.Minute > FinalMinute {
		return ErrInvalidScore
	}

	key := dedupKey(s.Mode)
	history := make([]ScoreSnapshot, 0, len(s.ScoreHistory)+1)
	for _, existing := range s.ScoreHistory {
		if key(existing) != key(snap) {
			history = append(history, existing)
		}
	}
	history = append(history, snap)
	sort.SliceStable(history, func(i, j int) bool { return history[i].Minute < history[j].Minute })

	s.ScoreHistory = history
	s.Status = StatusInProgress
	return nil
}

func dedupKey(m Mode) func(ScoreSnapshot) int {
	if m == ModeQuarter {
		return func(s ScoreSnapshot) int { return s.Quarter }
	}
	return func(s ScoreSnapshot) int { return s.Minute }
}
