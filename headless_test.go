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

package main

import (
	"testing"

	"github.com/jetsetilly/shapemotion/curated"
	"github.com/jetsetilly/shapemotion/gui"
	"github.com/jetsetilly/shapemotion/userinput"
	"github.com/jetsetilly/shapemotion/test"
)

func TestHeadlessFeatures(t *testing.T) {
	h := &headlessGUI{}
	test.DemandImplements[gui.GUI](t, h, nil)

	test.ExpectSuccess(t, h.SetFeature(gui.ReqState, gui.StateRunning))
	test.ExpectEquality(t, h.state, gui.StateRunning)

	// without a terminal the event channel is accepted but never written to
	events := make(chan userinput.Event, 1)
	test.ExpectSuccess(t, h.SetFeature(gui.ReqSetEventChan, events))
	test.ExpectEquality(t, len(events), 0)

	err := h.SetFeature(gui.ReqSetScale, float32(2.0))
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, gui.UnsupportedGuiFeature))

	// wrong argument type
	test.ExpectFailure(t, h.SetFeature(gui.ReqState, 10))
}
