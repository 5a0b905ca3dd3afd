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

import "fmt"

// Axis indexes the components of a Vec2.
const (
	AxisX = 0
	AxisY = 1
)

// Vec2 is a two dimensional integer vector.
type Vec2 struct {
	X, Y int
}

func (v Vec2) String() string {
	return fmt.Sprintf("(%d,%d)", v.X, v.Y)
}

// Add returns the sum of the two vectors.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns v minus w.
func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2{X: v.X - w.X, Y: v.Y - w.Y}
}

// Axis returns the component of the vector for the axis.
func (v Vec2) Axis(axis int) int {
	if axis == AxisX {
		return v.X
	}
	return v.Y
}

// SetAxis sets the component of the vector for the axis.
func (v *Vec2) SetAxis(axis int, val int) {
	if axis == AxisX {
		v.X = val
	} else {
		v.Y = val
	}
}

// Region is an axis aligned rectangle. Both corners are inside the region.
type Region struct {
	TopLeft  Vec2
	BotRight Vec2
}

func (r Region) String() string {
	return fmt.Sprintf("%s-%s", r.TopLeft, r.BotRight)
}

// Width returns the number of columns covered by the region.
func (r Region) Width() int {
	return r.BotRight.X - r.TopLeft.X + 1
}

// Height returns the number of rows covered by the region.
func (r Region) Height() int {
	return r.BotRight.Y - r.TopLeft.Y + 1
}

// Empty returns true if the region covers no pixels.
func (r Region) Empty() bool {
	return r.BotRight.X < r.TopLeft.X || r.BotRight.Y < r.TopLeft.Y
}

// Contains returns true if the point is inside the region.
func (r Region) Contains(p Vec2) bool {
	return p.X >= r.TopLeft.X && p.X <= r.BotRight.X &&
		p.Y >= r.TopLeft.Y && p.Y <= r.BotRight.Y
}

// Within returns true if the region lies entirely inside the fence.
func (r Region) Within(fence Region) bool {
	for axis := AxisX; axis <= AxisY; axis++ {
		if r.TopLeft.Axis(axis) < fence.TopLeft.Axis(axis) ||
			r.BotRight.Axis(axis) > fence.BotRight.Axis(axis) {
			return false
		}
	}
	return true
}

// Union returns the smallest region that covers both regions.
func (r Region) Union(s Region) Region {
	return Region{
		TopLeft:  Vec2{X: min(r.TopLeft.X, s.TopLeft.X), Y: min(r.TopLeft.Y, s.TopLeft.Y)},
		BotRight: Vec2{X: max(r.BotRight.X, s.BotRight.X), Y: max(r.BotRight.Y, s.BotRight.Y)},
	}
}

// Clip returns the part of the region that is inside the clipping region. The
// result may be Empty().
func (r Region) Clip(c Region) Region {
	return Region{
		TopLeft:  Vec2{X: max(r.TopLeft.X, c.TopLeft.X), Y: max(r.TopLeft.Y, c.TopLeft.Y)},
		BotRight: Vec2{X: min(r.BotRight.X, c.BotRight.X), Y: min(r.BotRight.Y, c.BotRight.Y)},
	}
}
