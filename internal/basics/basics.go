// Package basics holds small annotated exercises: hello world, variables,
// data types, functions and control flow. Every exercise prints to an
// io.Writer and returns the values it computed so tests can check them.
package basics

import (
	"fmt"
	"io"
)

// Hello prints the traditional greeting.
func Hello(w io.Writer) {
	fmt.Fprintln(w, "Hello, world!")
}

// All runs every exercise in order, the way the `basics` command does.
func All(w io.Writer) error {
	Variables(w)
	if _, err := DataTypes(w); err != nil {
		return err
	}
	Functions(w, 5, 'w')
	ControlFlow(w)
	return nil
}
