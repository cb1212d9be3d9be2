package game

// SubmitClaim asks the host for an empty cell. It is a silent no-op when the
// cell is already owned or already has a pending claim.
type SubmitClaim struct {
	Actor string
	Row   int
	Col   int
}

func (c SubmitClaim) apply(env Env, s *State) error {
	if !inBounds(c.Row, c.Col) {
		return ErrOutOfBounds
	}
	p, ok := s.actorParticipant(c.Actor)
	if !ok {
		return ErrNotParticipant
	}
	if s.Grid[c.Row][c.Col].Owned() {
		return nil
	}
	if _, pending := s.pendingClaimAt(c.Row, c.Col); pending {
		return nil
	}
	s.PendingClaims = append(s.PendingClaims, Claim{
		ID:              env.newID(),
		GameID:          s.ID,
		ParticipantID:   p.ID,
		ParticipantName: p.Name,
		Row:             c.Row,
		Col:             c.Col,
		Status:          ClaimPending,
		CreatedAt:       env.now(),
	})
	return nil
}

// ApproveClaim gives the cell to the claimant. Whatever the cell held before
// is overwritten.
type ApproveClaim struct {
	Actor   string
	ClaimID string
}

func (c ApproveClaim) apply(_ Env, s *State) error {
	if err := s.requireHost(c.Actor); err != nil {
		return err
	}
	claim, ok := s.claim(c.ClaimID)
	if !ok {
		return ErrClaimNotFound
	}
	s.Grid[claim.Row][claim.Col] = Cell{ParticipantID: claim.ParticipantID}
	s.PendingClaims = removeClaims(s.PendingClaims, func(cl Claim) bool { return cl.ID == c.ClaimID })
	return nil
}

// ApproveAllClaims applies every pending claim in order and clears the set.
type ApproveAllClaims struct {
	Actor string
}

func (c ApproveAllClaims) apply(_ Env, s *State) error {
	if err := s.requireHost(c.Actor); err != nil {
		return err
	}
	for _, claim := range s.PendingClaims {
		s.Grid[claim.Row][claim.Col] = Cell{ParticipantID: claim.ParticipantID}
	}
	s.PendingClaims = []Claim{}
	return nil
}

type RejectClaim struct {
	Actor   string
	ClaimID string
}

func (c RejectClaim) apply(_ Env, s *State) error {
	if err := s.requireHost(c.Actor); err != nil {
		return err
	}
	if _, ok := s.claim(c.ClaimID); !ok {
		return ErrClaimNotFound
	}
	s.PendingClaims = removeClaims(s.PendingClaims, func(cl Claim) bool { return cl.ID == c.ClaimID })
	return nil
}

func (s State) claim(id string) (Claim, bool) {
	for _, cl := range s.PendingClaims {
		if cl.ID == id {
			return cl, true
		}
	}
	return Claim{}, false
}

func (s State) pendingClaimAt(row, col int) (Claim, bool) {
	for _, cl := range s.PendingClaims {
		if cl.Row == row && cl.Col == col && cl.Status == ClaimPending {
			return cl, true
		}
	}
	return Claim{}, false
}

func removeClaims(claims []Claim, drop func(Claim) bool) []Claim {
	out := make([]Claim, 0, len(claims))
	for _, cl := range claims {
		if !drop(cl) {
			out = append(out, cl)
		}
	}
	return out
}
