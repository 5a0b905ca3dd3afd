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

package game

import (
	"github.com/jetsetilly/shapemotion/hardware/lcd"
	"github.com/jetsetilly/shapemotion/shape"
)

var screen = shape.Region{
	BotRight: shape.Vec2{X: lcd.Width - 1, Y: lcd.Height - 1},
}

// Render commits the pending position of every moving layer and repaints the
// area of the screen covered by each layer before and after the move.
//
// The commit happens with interrupts disabled so that the interrupt handler
// never sees a partially committed set of layers. Painting happens with
// interrupts enabled.
func (g *Game) Render(movers ...*MovingLayer) {
	g.brd.SR.DisableInterrupts()
	for _, ml := range movers {
		g.Layer(ml).Commit()
	}
	g.brd.SR.EnableInterrupts()

	for _, ml := range movers {
		g.paint(g.Layer(ml).Dirty())
	}
}

// layerDraw paints every layer in the list.
func (g *Game) layerDraw() {
	for i := range g.Layers {
		g.paint(g.Layers[i].Bounds())
	}
}

// paint streams the colour of every pixel in the region to the display. The
// colour of a pixel is the colour of the first layer that covers it, or the
// background colour if no layer covers it.
func (g *Game) paint(r shape.Region) {
	r = r.Clip(screen)
	if r.Empty() {
		return
	}

	g.display.SetArea(r.TopLeft.X, r.TopLeft.Y, r.BotRight.X, r.BotRight.Y)

	var pixel shape.Vec2
	for pixel.Y = r.TopLeft.Y; pixel.Y <= r.BotRight.Y; pixel.Y++ {
		for pixel.X = r.TopLeft.X; pixel.X <= r.BotRight.X; pixel.X++ {
			col, ok := g.Layers.Probe(pixel)
			if !ok {
				col = g.Background
			}
			g.display.WriteColor(col)
		}
	}
}

// drawText draws the player labels and scores.
func (g *Game) drawText(scores [2]Score) {
	lcd.DrawString5x7(g.display, leftLabelCol, scoreRow, "P1: ", lcd.Green, g.Background)
	lcd.DrawString5x7(g.display, rightLabelCol, scoreRow, "P2: ", lcd.Blue, g.Background)
	lcd.DrawString5x7(g.display, leftScoreCol, scoreRow, scores[PlayerLeft].String(), lcd.White, g.Background)
	lcd.DrawString5x7(g.display, rightScoreCol, scoreRow, scores[PlayerRight].String(), lcd.White, g.Background)
}
