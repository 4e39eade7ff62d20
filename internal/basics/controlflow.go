package basics

import (
	"fmt"
	"io"
)

// Flow reports the values computed by ControlFlow.
type Flow struct {
	Number    int
	Result    int
	EndCount  int
	Countdown []int
	Elements  []int
	Reversed  []int
}

// ControlFlow walks through if/else, loops that produce a value, labelled
// loops, while-style loops and ranges.
func ControlFlow(w io.Writer) Flow {
	var f Flow

	condition := true
	number := 6
	if condition {
		number = 5
	}
	f.Number = number
	fmt.Fprintf(w, "The value of number is: %d\n", number)

	f.Result = doubleAtTen()
	fmt.Fprintf(w, "The result is %d\n", f.Result)

	count := 0
countingUp:
	for {
		fmt.Fprintf(w, "count = %d\n", count)
		remaining := 10
		for {
			fmt.Fprintf(w, "remaining = %d\n", remaining)
			if remaining == 9 {
				break
			}
			if count == 2 {
				break countingUp
			}
			remaining--
		}
		count++
	}
	f.EndCount = count
	fmt.Fprintf(w, "End count = %d\n", count)

	n := 3
	for n != 0 {
		fmt.Fprintf(w, "%d!\n", n)
		f.Countdown = append(f.Countdown, n)
		n--
	}

	a := [5]int{10, 20, 30, 40, 50}
	for _, element := range a {
		fmt.Fprintf(w, "the value is: %d\n", element)
		f.Elements = append(f.Elements, element)
	}

	for i := 3; i >= 1; i-- {
		fmt.Fprintln(w, a[i])
		f.Reversed = append(f.Reversed, a[i])
	}
	return f
}

// doubleAtTen counts to ten and returns early from inside the loop.
func doubleAtTen() int {
	counter := 0
	for {
		counter++
		if counter == 10 {
			return counter * 2
		}
	}
}
