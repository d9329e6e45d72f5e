package advanced

import "math"

const Tolerance = 1e-6

// To compensate for imprecision in floats, equality checks on derived values
// (areas, distances) are tolerance based. Point equality is always exact.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

func DistanceBetween(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// Twice the signed area of abc. Positive when abc winds counterclockwise.
func orientation(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

func isFinite(p Point) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}
