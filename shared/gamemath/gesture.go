package gamemath

import "math"

// Distance is the euclidean distance between two points.
func Distance(ax, ay, bx, by float64) float64 {
	return math.Hypot(bx-ax, by-ay)
}

// SwipeDirection normalizes a screen-space drag into a unit jump direction.
// Y is inverted so a downward swipe points up. Drags shorter than
// minDistance are ignored.
func SwipeDirection(dx, dy, minDistance float64) (x, y float64, ok bool) {
	length := math.Hypot(dx, dy)
	if length <= minDistance {
		return 0, 0, false
	}
	return dx / length, -dy / length, true
}
