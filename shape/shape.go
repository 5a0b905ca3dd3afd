// This file is part of Shapemotion.
//
// Shapemotion is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Shapemotion is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Shapemotion.  If not, see <https://www.gnu.org/licenses/>.

package shape

import "math"

// Shape is implemented by all shapes.
type Shape interface {
	// Bounds returns the region covered by the shape when centred on the
	// specified position.
	Bounds(center Vec2) Region

	// Check returns true if the pixel is part of the shape when the shape is
	// centred on the specified position.
	Check(center Vec2, pixel Vec2) bool
}

// Rect is a filled rectangle. The rectangle is 2*HalfSize+1 pixels in each
// dimension.
type Rect struct {
	HalfSize Vec2
}

// Bounds implements the Shape interface.
func (r Rect) Bounds(center Vec2) Region {
	return Region{
		TopLeft:  center.Sub(r.HalfSize),
		BotRight: center.Add(r.HalfSize),
	}
}

// Check implements the Shape interface.
func (r Rect) Check(center Vec2, pixel Vec2) bool {
	return r.Bounds(center).Contains(pixel)
}

// RectOutline is a rectangle with a one pixel border and no fill.
type RectOutline struct {
	HalfSize Vec2
}

// Bounds implements the Shape interface.
func (r RectOutline) Bounds(center Vec2) Region {
	return Rect(r).Bounds(center)
}

// Check implements the Shape interface.
func (r RectOutline) Check(center Vec2, pixel Vec2) bool {
	b := r.Bounds(center)
	if !b.Contains(pixel) {
		return false
	}
	return pixel.X == b.TopLeft.X || pixel.X == b.BotRight.X ||
		pixel.Y == b.TopLeft.Y || pixel.Y == b.BotRight.Y
}

// Circle is a filled circle. Use NewCircle() to create a Circle.
type Circle struct {
	radius int

	// half the width of the circle for each row distance from the centre
	chords []int
}

// NewCircle is the preferred method of initialisation for the Circle type.
func NewCircle(radius int) Circle {
	c := Circle{
		radius: radius,
		chords: make([]int, radius+1),
	}

	// half-width of each row, rounded outwards
	for i := range c.chords {
		c.chords[i] = int(math.Sqrt(float64(radius*radius + radius - i*i)))
	}

	return c
}

// Radius returns the radius of the circle.
func (c Circle) Radius() int {
	return c.radius
}

// Bounds implements the Shape interface.
func (c Circle) Bounds(center Vec2) Region {
	r := Vec2{X: c.radius, Y: c.radius}
	return Region{
		TopLeft:  center.Sub(r),
		BotRight: center.Add(r),
	}
}

// Check implements the Shape interface.
func (c Circle) Check(center Vec2, pixel Vec2) bool {
	d := pixel.Sub(center)
	row := abs(d.Y)
	col := abs(d.X)
	return row <= c.radius && col <= c.chords[row]
}

// RArrow is an arrow pointing to the right. The arrow has a rectangular
// shaft to the left of centre and a triangular head to the right.
type RArrow struct {
	Size int
}

// Bounds implements the Shape interface.
func (a RArrow) Bounds(center Vec2) Region {
	h := Vec2{X: a.Size / 2, Y: a.Size / 2}
	return Region{
		TopLeft:  center.Sub(h),
		BotRight: center.Add(h),
	}
}

// Check implements the Shape interface.
func (a RArrow) Check(center Vec2, pixel Vec2) bool {
	if !a.Bounds(center).Contains(pixel) {
		return false
	}

	half := a.Size / 2
	quarter := half / 2

	d := pixel.Sub(center)
	if d.X < 0 {
		// shaft
		return d.X > -half && d.Y < quarter && d.Y > -quarter
	}

	// head
	return abs(d.Y) <= half-d.X
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
