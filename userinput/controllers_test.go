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

package userinput_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/shapemotion/hardware/switches"
	"github.com/jetsetilly/shapemotion/test"
	"github.com/jetsetilly/shapemotion/userinput"
)

func TestKeyboard(t *testing.T) {
	var c userinput.Controllers
	sw := switches.NewSwitches()

	quit, err := c.HandleUserInput(userinput.EventKeyboard{Key: "Q", Down: true}, sw)
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, quit)
	test.ExpectSuccess(t, c.LastKeyHandled)
	test.ExpectSuccess(t, sw.IsPressed(switches.SW1))

	_, err = c.HandleUserInput(userinput.EventKeyboard{Key: "Down", Down: true}, sw)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, sw.IsPressed(switches.SW4))
	test.ExpectEquality(t, sw.String(), "0110")

	_, err = c.HandleUserInput(userinput.EventKeyboard{Key: "Q", Down: false}, sw)
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, sw.IsPressed(switches.SW1))
	test.ExpectSuccess(t, sw.IsPressed(switches.SW4))

	// unmapped key
	_, err = c.HandleUserInput(userinput.EventKeyboard{Key: "Z", Down: true}, sw)
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, c.LastKeyHandled)

	// repeated key down events are ignored when key releases are reported
	_, err = c.HandleUserInput(userinput.EventKeyboard{Key: "A", Down: true, Repeat: true}, sw)
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, c.LastKeyHandled)
	test.ExpectFailure(t, sw.IsPressed(switches.SW2))
}

func TestQuit(t *testing.T) {
	var c userinput.Controllers
	sw := switches.NewSwitches()

	quit, err := c.HandleUserInput(userinput.EventQuit{}, sw)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, quit)

	quit, err = c.HandleUserInput(userinput.EventKeyboard{Key: "Escape", Down: true}, sw)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, quit)

	quit, err = c.HandleUserInput(userinput.EventKeyboard{Key: "Escape", Down: true, Mod: userinput.KeyModShift}, sw)
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, quit)

	_, err = c.HandleUserInput(userinput.EventQuit{}, nil)
	test.ExpectFailure(t, err)
}

func TestPulse(t *testing.T) {
	c := userinput.Controllers{PulseDuration: 10 * time.Millisecond}
	sw := switches.NewSwitches()

	_, err := c.HandleUserInput(userinput.EventKeyboard{Key: "3", Down: true}, sw)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, sw.IsPressed(switches.SW3))

	// key releases are ignored in pulse mode
	_, err = c.HandleUserInput(userinput.EventKeyboard{Key: "3", Down: false}, sw)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, sw.IsPressed(switches.SW3))

	deadline := time.Now().Add(time.Second)
	for sw.IsPressed(switches.SW3) && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	test.ExpectFailure(t, sw.IsPressed(switches.SW3))
}
