package game

import (
	"errors"
	"testing"

	"github.com/robalobadob/numguess/internal/secret"
)

func TestParseAttempt(t *testing.T) {
	cases := []struct {
		in   string
		want Parsed
	}{
		{"57", Parsed{57, true}},
		{"  42 \n", Parsed{42, true}},
		{"\t1\r\n", Parsed{1, true}},
		{"0", Parsed{0, true}},
		{"4294967295", Parsed{4294967295, true}},
		{"4294967296", Parsed{}},
		{"abc", Parsed{}},
		{"-5", Parsed{}},
		{"+5", Parsed{}},
		{"", Parsed{}},
		{"   \n", Parsed{}},
		{"5 5", Parsed{}},
		{"3.0", Parsed{}},
	}
	for _, c := range cases {
		if got := ParseAttempt(c.in); got != c.want {
			t.Errorf("ParseAttempt(%q) = %+v, want %+v", c.in, got, c.want)
		}
	}
}

func TestCompareExhaustive(t *testing.T) {
	for target := secret.Min; target <= secret.Max; target++ {
		for g := secret.Min; g <= secret.Max; g++ {
			o := Compare(g, target)
			switch {
			case g < target && o != OutcomeTooSmall:
				t.Fatalf("Compare(%d, %d) = %s, want too_small", g, target, o)
			case g > target && o != OutcomeTooBig:
				t.Fatalf("Compare(%d, %d) = %s, want too_big", g, target, o)
			case g == target && o != OutcomeWin:
				t.Fatalf("Compare(%d, %d) = %s, want win", g, target, o)
			}
		}
	}
}

func mustNew(t *testing.T, src secret.Source) *Session {
	t.Helper()
	s, err := New(src)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

type failingSource struct{ err error }

func (f failingSource) InRange(lo, hi uint32) (uint32, error) { return 0, f.err }

func TestNewPropagatesSourceError(t *testing.T) {
	boom := errors.New("entropy exhausted")
	s, err := New(failingSource{boom})
	if !errors.Is(err, boom) || s != nil {
		t.Errorf("New = %v, %v, want nil and %v", s, err, boom)
	}
}

func TestNewUsesSource(t *testing.T) {
	s := mustNew(t, secret.Fixed(73))
	if s.Target != 73 {
		t.Errorf("Target = %d, want 73", s.Target)
	}
	if s.State != StateAwaitingInput {
		t.Errorf("State = %s", s.State)
	}
	if s.ID == "" {
		t.Error("empty ID")
	}
	if s.Min != secret.Min || s.Max != secret.Max {
		t.Errorf("bounds = [%d, %d]", s.Min, s.Max)
	}
}

func TestSubmitSequence(t *testing.T) {
	s := mustNew(t, secret.Fixed(57))
	steps := []struct {
		attempt string
		want    Outcome
	}{
		{"abc", OutcomeIgnored},
		{"-5", OutcomeIgnored},
		{"101", OutcomeTooBig},
		{"3", OutcomeTooSmall},
		{"57", OutcomeWin},
	}
	for _, st := range steps {
		got, err := s.Submit(st.attempt)
		if err != nil {
			t.Fatalf("Submit(%q): %v", st.attempt, err)
		}
		if got != st.want {
			t.Errorf("Submit(%q) = %s, want %s", st.attempt, got, st.want)
		}
	}
	if s.State != StateWon || s.FinishedAt.IsZero() {
		t.Errorf("state after win = %s, finished %v", s.State, s.FinishedAt)
	}
	if s.Attempts != 3 || s.Ignored != 2 {
		t.Errorf("attempts=%d ignored=%d, want 3 and 2", s.Attempts, s.Ignored)
	}
	if _, err := s.Submit("57"); !errors.Is(err, ErrFinished) {
		t.Errorf("Submit after win err = %v, want ErrFinished", err)
	}
}

func TestMalformedInputKeepsState(t *testing.T) {
	s := mustNew(t, secret.Fixed(10))
	for i := 0; i < 50; i++ {
		if o, err := s.Submit("nope"); err != nil || o != OutcomeIgnored {
			t.Fatalf("Submit(nope) = %s, %v", o, err)
		}
	}
	if s.Target != 10 || s.State != StateAwaitingInput || s.Attempts != 0 {
		t.Errorf("state changed: %+v", s)
	}
}

func TestBoundaryWins(t *testing.T) {
	for _, v := range []uint32{secret.Min, secret.Max} {
		s := mustNew(t, secret.Fixed(v))
		o, err := s.Apply(v)
		if err != nil || o != OutcomeWin {
			t.Errorf("Apply(%d) vs %d = %s, %v", v, v, o, err)
		}
	}
}

func TestOutcomeMessage(t *testing.T) {
	want := map[Outcome]string{
		OutcomeTooSmall: "Too small!",
		OutcomeTooBig:   "Too big!",
		OutcomeWin:      "You win!",
		OutcomeIgnored:  "",
	}
	for o, m := range want {
		if got := o.Message(); got != m {
			t.Errorf("%s.Message() = %q, want %q", o, got, m)
		}
	}
}
