// Package geometry holds the coordinate rules behind the distance API:
// how query text becomes a coordinate, how a point's norm is computed,
// and how results are rounded for display.
package geometry

import "math"

// Point is a location in 3D space.
type Point struct {
	X float64
	Y float64
	Z float64
}

// Norm returns the Euclidean distance of p from the origin.
// Hypot keeps intermediate squares from overflowing for large coordinates.
func (p Point) Norm() float64 {
	return math.Hypot(math.Hypot(p.X, p.Y), p.Z)
}

// roundLimit is the magnitude above which a float64 has no fractional
// digits left to round.
const roundLimit = 1 << 52

// Round2 rounds v to 2 decimal places, halves away from zero.
func Round2(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v) >= roundLimit {
		return v
	}
	return math.Round(v*100) / 100
}

// Distance computes the rounded distance of p from the origin.
// Returns ErrInvalidInput when the norm does not fit in a float64.
func Distance(p Point) (float64, error) {
	n := p.Norm()
	if math.IsInf(n, 0) || math.IsNaN(n) {
		return 0, ErrInvalidInput
	}
	return Round2(n), nil
}
