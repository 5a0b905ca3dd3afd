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

package userinput

import "github.com/jetsetilly/shapemotion/hardware/switches"

// HandleInput conceptualises data being sent to the board's switches.
type HandleInput interface {
	Press(sw switches.Switch)
	Release(sw switches.Switch)
}

// KeyMod identifies the modifier key held with a keyboard event.
type KeyMod int

// list of valid key modifiers
const (
	KeyModNone KeyMod = iota
	KeyModShift
	KeyModCtrl
	KeyModAlt
)

// Event represents all the different type of events that can occur in the
// GUI.
type Event interface{}

// EventQuit is sent when the GUI wishes the emulation to end.
type EventQuit struct{}

// EventKeyboard is sent when a key is pressed or released. Key names are
// those produced by SDL's GetKeyName() function.
type EventKeyboard struct {
	Key    string
	Down   bool
	Mod    KeyMod
	Repeat bool
}
