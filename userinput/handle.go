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

// keyboard maps a key name to a switch. returns false if the key is not
// mapped to any switch.
func keyboard(key string) (switches.Switch, bool) {
	switch key {
	// left paddle
	case "Q", "1":
		return switches.SW1, true
	case "A", "2":
		return switches.SW2, true

	// right paddle
	case "Up", "3":
		return switches.SW3, true
	case "Down", "4":
		return switches.SW4, true
	}

	return 0, false
}

// isQuit returns true if the key is the quit key.
func isQuit(ev EventKeyboard) bool {
	return ev.Down && ev.Mod == KeyModNone && ev.Key == "Escape"
}
