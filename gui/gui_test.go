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

package gui_test

import (
	"testing"

	"github.com/jetsetilly/shapemotion/curated"
	"github.com/jetsetilly/shapemotion/gui"
	"github.com/jetsetilly/shapemotion/test"
)

func TestStub(t *testing.T) {
	var g gui.GUI = gui.Stub{}
	test.ExpectSuccess(t, g.SetFeature(gui.ReqState, gui.StateRunning))

	err := g.SetFeature(gui.ReqSetScale, float32(2.0))
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, gui.UnsupportedGuiFeature))
}

func TestState(t *testing.T) {
	test.ExpectEquality(t, gui.StateRunning.String(), "running")
	test.ExpectEquality(t, gui.EmulationState(10).String(), "unknown")
}
