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

package playmode

import (
	"time"

	"github.com/jetsetilly/shapemotion/curated"
	"github.com/jetsetilly/shapemotion/userinput"
)

// userInputHandler returns false if the event is a quit event.
func (pl *playmode) userInputHandler(ev userinput.Event) (bool, error) {
	quit, err := pl.controllers.HandleUserInput(ev, pl.handle)
	if err != nil {
		return false, curated.Errorf("playmode: %v", err)
	}
	return !quit, nil
}

// eventHandler is the continueCheck function for hardware.Board.Run(). it is
// called every time the main context wakes.
func (pl *playmode) eventHandler() (bool, error) {
	if pl.plb != nil && pl.plb.Finished() {
		return false, nil
	}

	if !pl.deadline.IsZero() && time.Now().After(pl.deadline) {
		return false, nil
	}

	select {
	case <-pl.intChan:
		return false, nil

	case ev := <-pl.userinput:
		return pl.userInputHandler(ev)

	default:
	}

	return true, nil
}
