package superellipse

import "math"

const twoPi = 2 * math.Pi

// Angles returns steps+1 evenly spaced angles 0, 2π/steps, …, 2π. The last
// angle closes the loop onto the first one. steps must be positive; callers
// validate it beforehand.
func Angles(steps int) []float64 {
	ts := make([]float64, steps+1)
	for i := 0; i < steps; i++ {
		ts[i] = float64(i) * twoPi / float64(steps)
	}
	ts[steps] = twoPi
	return ts
}
