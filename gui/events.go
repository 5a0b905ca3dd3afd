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

package gui

// EmulationState indicates to the GUI that the emulation is in a particular
// state.
//
// The GUI state will start in StateInitialising and the play loop should set
// StateRunning as soon as the emulation begins.
type EmulationState int

// List of valid emulation states.
const (
	StateInitialising EmulationState = iota
	StateRunning
	StateEnding
)

func (s EmulationState) String() string {
	switch s {
	case StateInitialising:
		return "initialising"
	case StateRunning:
		return "running"
	case StateEnding:
		return "ending"
	}
	return "unknown"
}
