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

import (
	"fmt"

	"github.com/jetsetilly/shapemotion/hardware/lcd"
)

// Layer places a shape on the display. Pos is the position at which the
// shape is drawn. PosNext is the position the shape will be drawn at once it
// is committed and PosLast is the position at which it was drawn before the
// most recent commit.
type Layer struct {
	Shape   Shape
	Pos     Vec2
	PosLast Vec2
	PosNext Vec2
	Color   lcd.Color
}

func (l *Layer) String() string {
	return fmt.Sprintf("%T at %s [last %s next %s] %s", l.Shape, l.Pos, l.PosLast, l.PosNext, l.Color)
}

// Bounds returns the region covered by the layer at its current position.
func (l *Layer) Bounds() Region {
	return l.Shape.Bounds(l.Pos)
}

// Commit makes the pending position the current position.
func (l *Layer) Commit() {
	l.PosLast = l.Pos
	l.Pos = l.PosNext
}

// Dirty returns the region that must be repainted after the most recent
// commit. This is the union of the bounds at the last and current positions.
func (l *Layer) Dirty() Region {
	return l.Shape.Bounds(l.PosLast).Union(l.Bounds())
}

// Layers is a list of layers in paint priority order.
type Layers []Layer

// Init sets the last and next positions of every layer to the current
// position.
func (ls Layers) Init() {
	for i := range ls {
		ls[i].PosLast = ls[i].Pos
		ls[i].PosNext = ls[i].Pos
	}
}

// Probe returns the colour of the first layer that covers the pixel. If no
// layer covers the pixel then the false is returned.
func (ls Layers) Probe(pixel Vec2) (lcd.Color, bool) {
	for i := range ls {
		if ls[i].Shape.Check(ls[i].Pos, pixel) {
			return ls[i].Color, true
		}
	}
	return 0, false
}
