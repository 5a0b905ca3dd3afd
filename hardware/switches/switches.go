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

// Package switches emulates the four push switches connected to port 2 of the
// microcontroller.
//
// The switches are active-low. A released switch reads as a one bit and a
// pressed switch reads as a zero bit. With no switches pressed the register
// reads 0x0f.
package switches

import (
	"fmt"
	"sync/atomic"
)

// Switch identifies one of the four switches by its bit in the register.
type Switch uint8

// List of valid Switch values.
const (
	SW1 Switch = 1 << iota
	SW2
	SW3
	SW4
)

func (sw Switch) String() string {
	switch sw {
	case SW1:
		return "SW1"
	case SW2:
		return "SW2"
	case SW3:
		return "SW3"
	case SW4:
		return "SW4"
	}
	return fmt.Sprintf("switch(%#02x)", uint8(sw))
}

// Mask covers all four switches. It is also the value of the register when no
// switches are pressed.
const Mask = uint8(SW1 | SW2 | SW3 | SW4)

// Switches is the emulated switch register. Press() and Release() can be
// called from any goroutine.
type Switches struct {
	current atomic.Uint32

	// the value returned by the most recent call to Read(). only accessed
	// from the interrupt context
	lastReported uint8
}

// NewSwitches is the preferred method of initialisation for the Switches
// type.
func NewSwitches() *Switches {
	s := &Switches{
		lastReported: Mask,
	}
	s.current.Store(uint32(Mask))
	return s
}

func (s *Switches) String() string {
	return fmt.Sprintf("%04b", s.State())
}

// Press the switch.
func (s *Switches) Press(sw Switch) {
	for {
		o := s.current.Load()
		if s.current.CompareAndSwap(o, o&^uint32(sw)) {
			return
		}
	}
}

// Release the switch.
func (s *Switches) Release(sw Switch) {
	for {
		o := s.current.Load()
		if s.current.CompareAndSwap(o, (o|uint32(sw))&uint32(Mask)) {
			return
		}
	}
}

// SetState sets the state of all switches at once. The value is active-low.
func (s *Switches) SetState(state uint8) {
	s.current.Store(uint32(state & Mask))
}

// State returns the current active-low state of all switches. Unlike Read()
// it does not affect the changed bits.
func (s *Switches) State() uint8 {
	return uint8(s.current.Load())
}

// IsPressed returns true if the switch is currently pressed.
func (s *Switches) IsPressed(sw Switch) bool {
	return s.State()&uint8(sw) == 0
}

// Read returns the current active-low state of the switches in the low byte
// and the switches that have changed since the previous call to Read() in the
// high byte.
func (s *Switches) Read() uint16 {
	current := s.State()
	changed := current ^ s.lastReported
	s.lastReported = current
	return uint16(current) | uint16(changed)<<8
}
