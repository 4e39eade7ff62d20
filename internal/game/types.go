// internal/game/types.go
//
// Core type definitions for the guessing game.
// Defines:
//   - Outcome: result of submitting one attempt (ignored/too small/too big/win).
//   - State:   session state machine (awaiting_input → won).
//   - Parsed:  explicit success/failure result of parsing an attempt.
//   - Session: state for a single in-progress or finished game.

package game

import "time"

// Outcome represents the evaluation of one attempt.
// Possible values:
//   - "ignored":   the attempt was not an unsigned integer and was discarded.
//   - "too_small": the parsed guess is below the target.
//   - "too_big":   the parsed guess is above the target.
//   - "win":       the parsed guess equals the target.
type Outcome string

const (
	OutcomeIgnored  Outcome = "ignored"
	OutcomeTooSmall Outcome = "too_small"
	OutcomeTooBig   Outcome = "too_big"
	OutcomeWin      Outcome = "win"
)

// Message is the line printed to the player for o.
// Ignored attempts print nothing.
func (o Outcome) Message() string {
	switch o {
	case OutcomeTooSmall:
		return "Too small!"
	case OutcomeTooBig:
		return "Too big!"
	case OutcomeWin:
		return "You win!"
	}
	return ""
}

// State is the session state. Won is terminal.
type State string

const (
	StateAwaitingInput State = "awaiting_input"
	StateWon           State = "won"
)

// Parsed is the result of ParseAttempt. Value is meaningful only when OK.
type Parsed struct {
	Value uint32
	OK    bool
}

// Session holds the state of a single guessing game.
type Session struct {
	ID         string    // Unique session identifier (uuid).
	Target     uint32    // The number to guess; fixed for the session's lifetime.
	Min        uint32    // Inclusive lower bound the target was drawn from.
	Max        uint32    // Inclusive upper bound the target was drawn from.
	State      State     // awaiting_input until the target is guessed.
	Attempts   int       // Valid (parsed) guesses so far.
	Ignored    int       // Attempts discarded as unparseable.
	StartedAt  time.Time // Creation time (UTC).
	FinishedAt time.Time // Zero until won.
}
