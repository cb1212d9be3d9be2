package game

import "fmt"

func inBounds(row, col int) bool {
	return row >= 0 && row < GridSize && col >= 0 && col < GridSize
}

// Flatten lays the grid out row-major for stores without nested lists.
func (g Grid) Flatten() []Cell {
	flat := make([]Cell, 0, CellCount)
	for r := 0; r < GridSize; r++ {
		flat = append(flat, g[r][:]...)
	}
	return flat
}

// UnflattenGrid rebuilds the 10x10 shape from a row-major list. An empty list
// yields an empty grid.
func UnflattenGrid(flat []Cell) (Grid, error) {
	var g Grid
	if len(flat) == 0 {
		return g, nil
	}
	if len(flat) != CellCount {
		return g, fmt.Errorf("grid has %d cells, want %d", len(flat), CellCount)
	}
	for i, c := range flat {
		g[i/GridSize][i%GridSize] = c
	}
	return g, nil
}

// BoxesClaimed counts owned cells.
func (s State) BoxesClaimed() int {
	n := 0
	for r := range s.Grid {
		for c := range s.Grid[r] {
			if s.Grid[r][c].Owned() {
				n++
			}
		}
	}
	return n
}

// Ready reports whether every cell is owned, the precondition for reveal.
func (s State) Ready() bool {
	return s.BoxesClaimed() == CellCount
}

// AssignOwner is the host's direct box assignment. It bypasses the claim
// workflow. An empty ParticipantID clears the cell. Assigning an owner drops
// any pending claims on that cell since they can no longer be honoured.
type AssignOwner struct {
	Actor         string
	Row           int
	Col           int
	ParticipantID string
}

func (c AssignOwner) apply(_ Env, s *State) error {
	if err := s.requireHost(c.Actor); err != nil {
		return err
	}
	if !inBounds(c.Row, c.Col) {
		return ErrOutOfBounds
	}
	if c.ParticipantID != "" {
		if _, ok := s.Participant(c.ParticipantID); !ok {
			return ErrUnknownParticipant
		}
		s.PendingClaims = removeClaims(s.PendingClaims, func(cl Claim) bool {
			return cl.Row == c.Row && cl.Col == c.Col
		})
	}
	s.Grid[c.Row][c.Col] = Cell{ParticipantID: c.ParticipantID}
	return nil
}
