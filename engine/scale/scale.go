package scale

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Clamp restricts t to the closed interval spanned by lo and hi, in either order.
func Clamp[T constraints.Integer | constraints.Float](t, lo, hi T) T {
	if lo > hi {
		lo, hi = hi, lo
	}
	if t < lo {
		return lo
	}
	if t > hi {
		return hi
	}
	return t
}

// Unit clamps t to [0, 1]. NaN becomes 0.
func Unit(t float64) float64 {
	if math.IsNaN(t) {
		return 0
	}
	return Clamp(t, 0, 1)
}

// ToUnitClamp returns a function that scales a number from the interval [rMin,rMax]
// to the unit interval ([0,1]), if the result falls outside [0,1], it is clamped
// to 0 or 1.
func ToUnitClamp(rMin, rMax float64) func(m float64) float64 {
	return func(m float64) float64 {
		if rMax == rMin {
			return 0
		}
		return Unit((m - rMin) / (rMax - rMin))
	}
}

// Lerp blends a towards b by t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Mod is the floored modulo: the result has the sign of m.
func Mod(x, m float64) float64 {
	r := math.Mod(x, m)
	if r != 0 && (r < 0) != (m < 0) {
		r += m
	}
	return r
}

// Ratio returns since/duration clamped to [0, 1]. No time elapsed is 0 and a
// non-positive duration is already complete.
func Ratio(since, duration float64) float64 {
	if since <= 0 {
		return 0
	}
	if duration <= 0 {
		return 1
	}
	return Unit(since / duration)
}
