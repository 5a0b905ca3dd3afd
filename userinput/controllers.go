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

import (
	"fmt"
	"sync"
	"time"

	"github.com/jetsetilly/shapemotion/hardware/switches"
)

// DefaultPulse is a sensible value for Controllers.PulseDuration. It is
// longer than the usual keyboard auto-repeat interval so that a held key
// keeps the switch pressed.
const DefaultPulse = 600 * time.Millisecond

// Controllers keeps track of hardware userinput options.
type Controllers struct {
	// if PulseDuration is non-zero then key release events are ignored and
	// switches are released automatically after the duration. every new
	// key press for the same switch extends the pulse
	PulseDuration time.Duration

	// whether or not the last HandleUserInput() was for an event that was
	// consumed by the emulation as an input
	LastKeyHandled bool

	// is true if last event was a quit emulation event
	Quit bool

	crit   sync.Mutex
	pulses map[switches.Switch]*time.Timer
}

func (c *Controllers) keyboard(ev EventKeyboard, handle HandleInput) {
	if ev.Repeat && c.PulseDuration == 0 {
		c.LastKeyHandled = false
		return
	}

	sw, ok := keyboard(ev.Key)
	if !ok {
		c.LastKeyHandled = false
		return
	}
	c.LastKeyHandled = true

	if c.PulseDuration > 0 {
		if ev.Down {
			c.pulse(sw, handle)
		}
		return
	}

	if ev.Down {
		handle.Press(sw)
	} else {
		handle.Release(sw)
	}
}

func (c *Controllers) pulse(sw switches.Switch, handle HandleInput) {
	c.crit.Lock()
	defer c.crit.Unlock()

	if c.pulses == nil {
		c.pulses = make(map[switches.Switch]*time.Timer)
	}

	handle.Press(sw)

	if t, ok := c.pulses[sw]; ok && t.Stop() {
		t.Reset(c.PulseDuration)
		return
	}

	// a timer that fired while the lock was held will find that it has been
	// replaced and will not release the switch
	var t *time.Timer
	t = time.AfterFunc(c.PulseDuration, func() {
		c.crit.Lock()
		defer c.crit.Unlock()
		if c.pulses[sw] != t {
			return
		}
		delete(c.pulses, sw)
		handle.Release(sw)
	})
	c.pulses[sw] = t
}

// HandleUserInput deciphers the Event and forwards the input to the board's
// switches. Returns true if event is a quit event and false otherwise.
func (c *Controllers) HandleUserInput(ev Event, handle HandleInput) (bool, error) {
	if handle == nil {
		return false, fmt.Errorf("userinput: no input handler")
	}

	c.Quit = false
	c.LastKeyHandled = false

	switch ev := ev.(type) {
	case EventQuit:
		c.Quit = true
	case EventKeyboard:
		if isQuit(ev) {
			c.Quit = true
		} else {
			c.keyboard(ev, handle)
		}
	default:
	}

	return c.Quit, nil
}
