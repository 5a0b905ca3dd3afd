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

// Package led emulates the green status LED. The firmware lights the LED
// while the CPU is running, so the brightness of the LED is an indication of
// how busy the CPU is.
package led

import (
	"sync/atomic"
)

// LED is the status LED. It can be read from any goroutine.
type LED struct {
	on atomic.Bool

	// number of times the LED has been switched on
	lit atomic.Uint64
}

// On switches the LED on.
func (l *LED) On() {
	if !l.on.Swap(true) {
		l.lit.Add(1)
	}
}

// Off switches the LED off.
func (l *LED) Off() {
	l.on.Store(false)
}

// IsOn returns true if the LED is lit.
func (l *LED) IsOn() bool {
	return l.on.Load()
}

// Lit returns the number of times the LED has been switched on.
func (l *LED) Lit() uint64 {
	return l.lit.Load()
}
