package basics

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
)

func TestHello(t *testing.T) {
	var b bytes.Buffer
	Hello(&b)
	if b.String() != "Hello, world!\n" {
		t.Errorf("Hello wrote %q", b.String())
	}
}

func TestVariables(t *testing.T) {
	var b bytes.Buffer
	got := Variables(&b)
	if got != (Shadow{Inner: 12, Outer: 6}) {
		t.Errorf("Variables = %+v", got)
	}
	if ThreeHoursInSeconds != 10800 {
		t.Errorf("ThreeHoursInSeconds = %d", ThreeHoursInSeconds)
	}
	want := "The value of x in the inner scope is: 12\n" +
		"The number of seconds in 3 hours is: 10800\n" +
		"The value of x is: 6\n"
	if b.String() != want {
		t.Errorf("output = %q, want %q", b.String(), want)
	}
}

func TestDataTypes(t *testing.T) {
	var b bytes.Buffer
	got, err := DataTypes(&b)
	if err != nil {
		t.Fatal(err)
	}
	want := Types{
		Guess:   42,
		Tuple:   Triple{500, 6.4, 1},
		Numbers: [5]int32{1, 2, 3, 4, 5},
		Threes:  [5]int{3, 3, 3, 3, 3},
		First:   3,
	}
	if got != want {
		t.Errorf("DataTypes = %+v, want %+v", got, want)
	}
	if b.String() != "The value of z is: 1\n" {
		t.Errorf("output = %q", b.String())
	}
}

func TestFunctions(t *testing.T) {
	var b bytes.Buffer
	got := Functions(&b, 5, 'w')
	if got != (Funcs{Y: 4, Five: 5}) {
		t.Errorf("Functions = %+v", got)
	}
	if !strings.HasPrefix(b.String(), "The measurement is: 5w\n") {
		t.Errorf("output = %q", b.String())
	}
}

func TestControlFlow(t *testing.T) {
	var b bytes.Buffer
	got := ControlFlow(&b)
	want := Flow{
		Number:    5,
		Result:    20,
		EndCount:  2,
		Countdown: []int{3, 2, 1},
		Elements:  []int{10, 20, 30, 40, 50},
		Reversed:  []int{40, 30, 20},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ControlFlow = %+v, want %+v", got, want)
	}
	out := b.String()
	for _, line := range []string{"count = 0\n", "remaining = 10\n", "remaining = 9\n", "count = 2\n", "End count = 2\n"} {
		if !strings.Contains(out, line) {
			t.Errorf("output missing %q", line)
		}
	}
	if strings.Contains(out, "count = 3\n") {
		t.Error("labelled break did not exit the outer loop")
	}
}

func TestAll(t *testing.T) {
	var b bytes.Buffer
	if err := All(&b); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(b.String(), "End count = 2") {
		t.Error("All did not run ControlFlow")
	}
}
