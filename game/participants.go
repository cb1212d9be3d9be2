package game

import "strings"

// AddParticipant registers a player. A session joins itself by passing its own
// token as ParticipantID; the host adds offline players by leaving it empty.
// Adding an existing id is a no-op.
type AddParticipant struct {
	Actor         string
	ParticipantID string
	Name          string
}

func (c AddParticipant) apply(env Env, s *State) error {
	name := strings.TrimSpace(c.Name)
	if name == "" {
		return ErrMissingName
	}
	id := c.ParticipantID
	switch {
	case id == "":
		if err := s.requireHost(c.Actor); err != nil {
			return err
		}
		id = env.newID()
	case id != c.Actor:
		if err := s.requireHost(c.Actor); err != nil {
			return err
		}
	}
	if s.IsHost(id) {
		// The host is already participant #0 under its own id.
		return nil
	}
	if _, ok := s.Participant(id); ok {
		return nil
	}
	s.Participants = append(s.Participants, Participant{
		ID:    id,
		Name:  name,
		Color: Colors[len(s.Participants)%len(Colors)],
	})
	return nil
}

type SetStatus struct {
	Actor  string
	Status Status
}

func (c SetStatus) apply(_ Env, s *State) error {
	if err := s.requireHost(c.Actor); err != nil {
		return err
	}
	if !c.Status.Valid() {
		return ErrInvalidStatus
	}
	s.Status = c.Status
	return nil
}

// SetInstructions replaces the host's free-text notes (payment details etc).
type SetInstructions struct {
	Actor        string
	Instructions string
}

func (c SetInstructions) apply(_ Env, s *State) error {
	if err := s.requireHost(c.Actor); err != nil {
		return err
	}
	s.Instructions = strings.TrimSpace(c.Instructions)
	return nil
}
