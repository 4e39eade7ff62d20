package game

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/robalobadob/numguess/internal/secret"
)

func TestLoopSequence(t *testing.T) {
	var out bytes.Buffer
	l := Loop{In: strings.NewReader("abc\n-5\n101\n57\n"), Out: &out, Target: 57}
	res, err := l.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Attempts != 2 || res.Ignored != 2 {
		t.Errorf("result = %+v, want 2 attempts and 2 ignored", res)
	}
	want := strings.Join([]string{
		"Guess the number!",
		"Please input your guess.",
		"Please input your guess.",
		"Please input your guess.",
		"You guessed: 101",
		"Too big!",
		"Please input your guess.",
		"You guessed: 57",
		"You win!",
		"",
	}, "\n")
	if got := out.String(); got != want {
		t.Errorf("output mismatch:\n got: %q\nwant: %q", got, want)
	}
}

func TestLoopReveal(t *testing.T) {
	var out bytes.Buffer
	l := Loop{In: strings.NewReader("9\n"), Out: &out, Target: 9, Reveal: true}
	if _, err := l.Run(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "The secret number is: 9\n") {
		t.Errorf("missing disclosure in %q", out.String())
	}
}

func TestLoopStopsAfterWin(t *testing.T) {
	var out bytes.Buffer
	l := Loop{In: strings.NewReader("  1  \n2\n3\n"), Out: &out, Target: 1}
	res, err := l.Run()
	if err != nil {
		t.Fatal(err)
	}
	if res.Attempts != 1 {
		t.Errorf("attempts = %d, want 1", res.Attempts)
	}
	if strings.Contains(out.String(), "You guessed: 2") {
		t.Error("loop continued after win")
	}
}

func TestLoopFinalLineWithoutNewline(t *testing.T) {
	var out bytes.Buffer
	l := Loop{In: strings.NewReader("50\n100"), Out: &out, Target: 100}
	res, err := l.Run()
	if err != nil {
		t.Fatal(err)
	}
	if res.Attempts != 2 {
		t.Errorf("attempts = %d, want 2", res.Attempts)
	}
}

func TestLoopEOFIsFatal(t *testing.T) {
	var out bytes.Buffer
	l := Loop{In: strings.NewReader("1\nx\n"), Out: &out, Target: 50}
	_, err := l.Run()
	if !errors.Is(err, ErrInput) {
		t.Fatalf("err = %v, want ErrInput", err)
	}
	if !errors.Is(err, io.EOF) {
		t.Errorf("err = %v, want wrapped io.EOF", err)
	}
}

type failingReader struct{}

var errBroken = errors.New("broken pipe")

func (failingReader) Read([]byte) (int, error) { return 0, errBroken }

func TestLoopReadFailure(t *testing.T) {
	var out bytes.Buffer
	_, err := Loop{In: failingReader{}, Out: &out, Target: 5}.Run()
	if !errors.Is(err, ErrInput) || !errors.Is(err, errBroken) {
		t.Fatalf("err = %v", err)
	}
}

func TestConsoleSessionBounds(t *testing.T) {
	s := consoleSession(57)
	if s.Min != secret.Min || s.Max != secret.Max || s.Target != 57 || s.State != StateAwaitingInput {
		t.Errorf("consoleSession(57) = %+v", s)
	}
	if o, err := s.Apply(57); err != nil || o != OutcomeWin {
		t.Fatalf("Apply(57) = %s, %v", o, err)
	}
	if _, err := s.Apply(57); !errors.Is(err, ErrFinished) {
		t.Errorf("Apply after win err = %v, want ErrFinished", err)
	}
}
