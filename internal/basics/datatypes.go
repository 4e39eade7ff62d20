package basics

import (
	"fmt"
	"io"
	"strconv"
)

// Scalars:
//   - integers: int8..int64, uint8..uint64, int/uint (word sized), uintptr
//   - floats: float32, float64 (the default for untyped constants)
//   - bool
//   - rune (int32), one Unicode code point
//
// Compound values: fixed-length arrays, and structs where other languages
// would reach for tuples.

// Triple groups values of different types, like a tuple.
type Triple struct {
	A int32
	B float64
	C uint8
}

// Types reports the values computed by DataTypes.
type Types struct {
	Guess   uint32
	Tuple   Triple
	Numbers [5]int32
	Threes  [5]int
	First   int
}

// DataTypes parses a literal, destructures a struct and indexes arrays.
func DataTypes(w io.Writer) (Types, error) {
	n, err := strconv.ParseUint("42", 10, 32)
	if err != nil {
		return Types{}, fmt.Errorf("not a number: %w", err)
	}

	tup := Triple{500, 6.4, 1}
	x, y, z := tup.A, tup.B, tup.C
	_, _ = x, y
	fmt.Fprintf(w, "The value of z is: %d\n", z)

	a := [5]int32{1, 2, 3, 4, 5}
	var threes [5]int
	for i := range threes {
		threes[i] = 3
	}

	return Types{
		Guess:   uint32(n),
		Tuple:   tup,
		Numbers: a,
		Threes:  threes,
		First:   threes[0],
	}, nil
}
