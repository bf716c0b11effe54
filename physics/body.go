// Package physics holds the arcade physics used by the player: gravity,
// friction, AABB resolution against terrain, wall and ladder sensors and
// jump impulses. Every function mutates only the body it is given.
package physics

import (
	dmath "github.com/yohamta/donburi/features/math"
)

// AABB is an axis-aligned rectangle with its origin at the top-left
type AABB struct {
	X, Y          float64
	Width, Height float64
}

func (a AABB) Right() float64   { return a.X + a.Width }
func (a AABB) Bottom() float64  { return a.Y + a.Height }
func (a AABB) CenterX() float64 { return a.X + a.Width/2 }
func (a AABB) CenterY() float64 { return a.Y + a.Height/2 }

// Overlaps reports whether the rectangles share interior area. Touching
// edges do not count.
func (a AABB) Overlaps(b AABB) bool {
	return a.X < b.X+b.Width &&
		a.X+a.Width > b.X &&
		a.Y < b.Y+b.Height &&
		a.Y+a.Height > b.Y
}

// Body is a moving AABB. Bounds.X/Y must equal Position after every
// mutation; SyncBounds restores that.
type Body struct {
	Position    dmath.Vec2
	Velocity    dmath.Vec2
	Bounds      AABB
	Grounded    bool
	FacingRight bool
}

func NewBody(x, y, width, height float64) *Body {
	return &Body{
		Position:    dmath.Vec2{X: x, Y: y},
		Bounds:      AABB{X: x, Y: y, Width: width, Height: height},
		FacingRight: true,
	}
}

func (b *Body) SyncBounds() {
	b.Bounds.X = b.Position.X
	b.Bounds.Y = b.Position.Y
}

// WallSide is the side of the body that touches a wall
type WallSide int

const (
	WallNone WallSide = iota
	WallLeft
	WallRight
)

func (w WallSide) String() string {
	switch w {
	case WallLeft:
		return "left"
	case WallRight:
		return "right"
	}
	return "none"
}
