package solver

import "math"

// luby returns the x'th element of the Luby restart sequence with base y,
// i.e. y raised to the x'th exponent of 0, 0, 1, 0, 0, 1, 2, 0, 0, 1, 0, 0,
// 1, 2, 3, ...; with y = 2 that is 1, 1, 2, 1, 1, 2, 4, 1, 1, 2, 1, 1, 2,
// 4, 8, ... Used to bound the number of conflicts allowed before the next
// restart.
func luby(y float64, x int) float64 {
	size, seq := 1, 0
	for size < x+1 {
		seq++
		size = 2*size + 1
	}
	for size-1 != x {
		size = (size - 1) / 2
		seq--
		x = x % size
	}
	return math.Pow(y, float64(seq))
}
