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

// Package statedump writes a graphviz representation of the game state. The
// output can be converted to an image with the dot tool:
//
//	dot -Tpng shapemotion.dot > shapemotion.png
package statedump

import (
	"fmt"
	"io"
	"os"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/shapemotion/game"
	"github.com/jetsetilly/shapemotion/hardware/buzzer"
	"github.com/jetsetilly/shapemotion/shape"
)

// State is a copy of the parts of the game worth visualising.
type State struct {
	Layers shape.Layers
	Movers []*game.MovingLayer
	Fence  shape.Region
	Scores [2]string
	Sound  string

	Buzzer struct {
		State   buzzer.State
		Counter int
		CCR0    uint16
		CCR1    uint16
	}

	Switches string
}

// Snapshot copies the game state. Interrupts are disabled for the duration of
// the copy.
func Snapshot(g *game.Game) *State {
	brd := g.Board()
	brd.SR.DisableInterrupts()
	defer brd.SR.EnableInterrupts()

	s := &State{
		Layers: make(shape.Layers, len(g.Layers)),
		Fence:  g.Fence,
		Sound:  g.StateSound.String(),
	}
	copy(s.Layers, g.Layers)

	// movers point into the copied layers by index only so copying the
	// structs is enough
	for _, ml := range []*game.MovingLayer{g.Ball, g.Left, g.Right} {
		c := *ml
		s.Movers = append(s.Movers, &c)
	}

	s.Scores[game.PlayerLeft] = g.Scores[game.PlayerLeft].String()
	s.Scores[game.PlayerRight] = g.Scores[game.PlayerRight].String()

	s.Buzzer.State = brd.Buzzer.State()
	s.Buzzer.Counter = brd.Buzzer.Counter()
	s.Buzzer.CCR0, s.Buzzer.CCR1 = brd.Buzzer.Registers()
	s.Switches = brd.Switches.String()

	return s
}

// Write the graphviz representation of the game state to the io.Writer.
func Write(w io.Writer, g *game.Game) {
	memviz.Map(w, Snapshot(g))
}

// ToFile writes the graphviz representation of the game state to the named
// file.
func ToFile(filename string, g *game.Game) (rerr error) {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("statedump: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = fmt.Errorf("statedump: %w", err)
		}
	}()

	Write(f, g)

	return nil
}
