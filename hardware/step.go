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

package hardware

import "github.com/jetsetilly/shapemotion/curated"

// Step the emulation by one watchdog interrupt. The interrupt is serviced on
// the calling goroutine and then the firmware's main loop is run until it is
// ready to sleep. Returns the number of frames that were completed.
//
// Unlike Run(), stepping the emulation is entirely deterministic.
func (brd *Board) Step() (int, error) {
	if brd.fw == nil {
		return 0, curated.Errorf(NoFirmware)
	}

	if err := brd.interrupt(); err != nil {
		return 0, err
	}

	return brd.mainLoop()
}
