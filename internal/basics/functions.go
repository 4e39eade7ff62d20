package basics

import (
	"fmt"
	"io"
)

// Funcs reports the values computed by Functions.
type Funcs struct {
	Y    int
	Five int
}

// Functions prints a measurement and evaluates a closure used as a block
// expression. Every parameter needs a declared type.
func Functions(w io.Writer, value int32, unitLabel rune) Funcs {
	fmt.Fprintf(w, "The measurement is: %d%c\n", value, unitLabel)

	y := func() int {
		x := 3
		return x + 1
	}()

	val := five()
	fmt.Fprintf(w, "The value returned from five() is: %d\n", val)
	return Funcs{Y: y, Five: val}
}

func five() int {
	return 5
}
