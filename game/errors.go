package game

import "errors"

// Precondition failures. They are returned before any state changes.
var (
	ErrNotHost             = errors.New("only the game host can do that")
	ErrNotParticipant      = errors.New("session is not a participant in this game")
	ErrUnknownParticipant  = errors.New("participant not found")
	ErrOutOfBounds         = errors.New("cell is outside the 10x10 grid")
	ErrClaimNotFound       = errors.New("claim not found")
	ErrNotReady            = errors.New("all 100 boxes must be claimed before numbers are revealed")
	ErrInvalidDistribution = errors.New("payout distribution must be non-negative and sum to 100%")
	ErrInvalidScore        = errors.New("invalid score snapshot")
	ErrInvalidMode         = errors.New("invalid game mode")
	ErrInvalidStatus       = errors.New("invalid game status")
	ErrInvalidPrice        = errors.New("price per box must not be negative")
	ErrMissingName         = errors.New("name is required")
	ErrNumbersNotRevealed  = errors.New("numbers have not been revealed yet")
	ErrEstimateQuarterOnly = errors.New("win probability is only available in quarter mode")
	ErrInvalidOddsTable    = errors.New("odds table must be 10x10 with non-negative entries")
)
