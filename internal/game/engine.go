// internal/game/engine.go
//
// Core game engine for a single guessing session.
// Responsibilities:
//   - Create sessions with a target drawn from an injectable secret.Source.
//   - Parse raw attempts into unsigned integers (explicit Parsed result).
//   - Compare guesses against the target with three-way ordering.
//   - Track state transitions: awaiting_input → won.
//
// Malformed attempts never change session state other than the ignored counter.
package game

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/robalobadob/numguess/internal/secret"
)

// ErrFinished is returned when submitting to a session that was already won.
var ErrFinished = errors.New("game finished")

// New constructs a session whose target is drawn from src over [secret.Min, secret.Max].
func New(src secret.Source) (*Session, error) {
	target, err := secret.Draw(src)
	if err != nil {
		return nil, err
	}
	return &Session{
		ID:        uuid.NewString(),
		Target:    target,
		Min:       secret.Min,
		Max:       secret.Max,
		State:     StateAwaitingInput,
		StartedAt: time.Now().UTC(),
	}, nil
}

// ParseAttempt trims surrounding whitespace and parses an unsigned 32-bit
// decimal integer. Signs, blanks and overflow all yield OK == false.
func ParseAttempt(attempt string) Parsed {
	n, err := strconv.ParseUint(strings.TrimSpace(attempt), 10, 32)
	if err != nil {
		return Parsed{}
	}
	return Parsed{Value: uint32(n), OK: true}
}

// Compare orders guess against target.
func Compare(guess, target uint32) Outcome {
	switch {
	case guess < target:
		return OutcomeTooSmall
	case guess > target:
		return OutcomeTooBig
	default:
		return OutcomeWin
	}
}

// Submit parses a raw attempt and applies it.
// Unparseable attempts return OutcomeIgnored and leave the state untouched.
func (s *Session) Submit(attempt string) (Outcome, error) {
	if s.Finished() {
		return "", ErrFinished
	}
	p := ParseAttempt(attempt)
	if !p.OK {
		s.Ignored++
		return OutcomeIgnored, nil
	}
	return s.Apply(p.Value)
}

// Apply compares an already-parsed guess and advances the state machine.
func (s *Session) Apply(guess uint32) (Outcome, error) {
	if s.Finished() {
		return "", ErrFinished
	}
	s.Attempts++
	o := Compare(guess, s.Target)
	if o == OutcomeWin {
		s.State = StateWon
		s.FinishedAt = time.Now().UTC()
	}
	return o, nil
}

// Finished reports whether the session reached the terminal state.
func (s *Session) Finished() bool { return s.State == StateWon }
