package gamemath

import "math"

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Lerp moves from toward to by fraction t.
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// Sign returns -1, 0 or 1.
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// Damp scales speed by factor and snaps it to zero once its magnitude drops
// below threshold.
func Damp(speed, factor, threshold float64) float64 {
	speed *= factor
	if math.Abs(speed) < threshold {
		return 0
	}
	return speed
}

// AxisDirection converts an analog axis value into -1, 0 or 1. Values inside
// the deadzone read as 0.
func AxisDirection(v, deadzone float64) int {
	if v > deadzone {
		return 1
	}
	if v < -deadzone {
		return -1
	}
	return 0
}
