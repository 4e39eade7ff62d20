package game

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/numguess/internal/secret"
)

// ErrInput marks an unrecoverable failure to read the next attempt.
var ErrInput = errors.New("failed to read line")

// Loop is the console guess-validation loop.
type Loop struct {
	In     io.Reader
	Out    io.Writer
	Target uint32
	Reveal bool // print the target at startup
}

// Result summarizes a finished console game.
type Result struct {
	Attempts int
	Ignored  int
}

// Run prompts until the target is guessed. It returns an error wrapping
// ErrInput if the input stream fails or ends before a win; it never returns
// for any other reason.
func (l Loop) Run() (Result, error) {
	s := consoleSession(l.Target)
	in := bufio.NewReader(l.In)

	fmt.Fprintln(l.Out, "Guess the number!")
	if l.Reveal {
		fmt.Fprintf(l.Out, "The secret number is: %d\n", l.Target)
	}

	for {
		fmt.Fprintln(l.Out, "Please input your guess.")

		line, err := in.ReadString('\n')
		if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
			return Result{Attempts: s.Attempts, Ignored: s.Ignored}, fmt.Errorf("%w: %w", ErrInput, err)
		}

		p := ParseAttempt(line)
		if !p.OK {
			s.Ignored++
			log.Debug().Str("attempt", line).Msg("discarded unparseable attempt")
			continue
		}

		fmt.Fprintf(l.Out, "You guessed: %d\n", p.Value)
		o, err := s.Apply(p.Value)
		if err != nil {
			return Result{Attempts: s.Attempts, Ignored: s.Ignored}, err
		}
		fmt.Fprintln(l.Out, o.Message())
		if o == OutcomeWin {
			return Result{Attempts: s.Attempts, Ignored: s.Ignored}, nil
		}
	}
}

// consoleSession wraps a pre-drawn target in a session over the classic bounds.
func consoleSession(target uint32) *Session {
	return &Session{Target: target, Min: secret.Min, Max: secret.Max, State: StateAwaitingInput}
}
