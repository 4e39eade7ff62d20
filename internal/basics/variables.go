package basics

import (
	"fmt"
	"io"
)

// Constants are evaluated at compile time and can never be reassigned.
const ThreeHoursInSeconds uint32 = 60 * 60 * 3

// Shadow reports the values observed by Variables.
type Shadow struct {
	Inner int
	Outer int
}

// Variables demonstrates constants and shadowing. A := inside a nested
// block declares a new variable that hides the outer one until the block ends.
func Variables(w io.Writer) Shadow {
	x := 5
	x = x + 1

	var inner int
	{
		x := x * 2
		inner = x
		fmt.Fprintf(w, "The value of x in the inner scope is: %d\n", x)
	}

	fmt.Fprintf(w, "The number of seconds in 3 hours is: %d\n", ThreeHoursInSeconds)
	fmt.Fprintf(w, "The value of x is: %d\n", x)
	return Shadow{Inner: inner, Outer: x}
}
