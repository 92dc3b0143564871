/*
File    : numexpr/internal/builtin/bits.go
Author  : Rohan Verma
Contact : rverma(@protonmail.com)
*/
package builtin

import "math"

// bitLimit is 2^53 - 1, the largest value a 53-bit unsigned integer can
// hold — spec.md 4.4's ceiling for bitwise operands.
const bitLimit = (1 << 53) - 1

// Bits53 rounds f to the nearest integer and reports it as a uint64,
// failing if the rounded value is negative or exceeds 2^53-1. Both the
// '&'/'|' infix operators and the bit/xor builtins share this exact
// validation, per spec.md 4.4 and P6.
func Bits53(f float64) (uint64, bool) {
	r := math.Round(f)
	if r < 0 || r > bitLimit {
		return 0, false
	}
	return uint64(r), true
}
