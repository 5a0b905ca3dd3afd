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

import "github.com/jetsetilly/shapemotion/hardware/switches"

// values of the switch register that move the paddles. the register is
// active low and the changed bits in the upper byte must be clear, meaning
// the switch must have been held since the previous interrupt
const (
	leftUp    = uint16(switches.Mask &^ uint8(switches.SW1))
	leftDown  = uint16(switches.Mask &^ uint8(switches.SW2))
	rightUp   = uint16(switches.Mask &^ uint8(switches.SW3))
	rightDown = uint16(switches.Mask &^ uint8(switches.SW4))
)

// Interrupt implements the hardware.Firmware interface. The LED is lit for
// the duration of the handler.
func (g *Game) Interrupt() {
	g.switches = g.brd.Switches.Read()
	g.brd.LED.On()
	defer g.brd.LED.Off()

	g.count++
	if g.count >= g.brd.Env().Prefs.WDTDivisor.Get().(int) {
		g.tick()
		g.count = 0
	}
}

// tick is one logical step of the game.
func (g *Game) tick() {
	g.AdvanceBall()

	switch g.switches {
	case leftUp:
		g.AdvancePaddle(g.Left, false)
	case leftDown:
		g.AdvancePaddle(g.Left, true)
	case rightUp:
		g.AdvancePaddle(g.Right, false)
	case rightDown:
		g.AdvancePaddle(g.Right, true)
	}

	g.brd.Buzzer.SetPeriod(g.StateSound.Period())
	g.StateSound = SoundNone
	g.brd.Buzzer.AdvanceFrequency()

	g.redraw.Store(true)
}

// Main implements the hardware.Firmware interface. The LED is off when the
// main loop has nothing to do.
func (g *Game) Main() bool {
	if !g.redraw.CompareAndSwap(true, false) {
		g.brd.LED.Off()
		return false
	}

	g.brd.LED.On()
	g.Redraw()

	return true
}

// Redraw the ball, both paddles and the scores.
func (g *Game) Redraw() {
	g.Render(g.Ball)
	g.Render(g.Left)
	g.Render(g.Right)

	g.brd.SR.DisableInterrupts()
	scores := g.Scores
	g.brd.SR.EnableInterrupts()

	g.drawText(scores)
}

// RedrawPending returns true if the interrupt handler has requested a redraw
// that the main loop has not yet started.
func (g *Game) RedrawPending() bool {
	return g.redraw.Load()
}
