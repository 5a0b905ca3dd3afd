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

package digest_test

import (
	"testing"

	"github.com/jetsetilly/shapemotion/digest"
	"github.com/jetsetilly/shapemotion/hardware/lcd"
	"github.com/jetsetilly/shapemotion/test"
)

func TestVideo(t *testing.T) {
	a, err := digest.NewVideo(lcd.NewLCD())
	test.DemandSuccess(t, err)
	b, err := digest.NewVideo(lcd.NewLCD())
	test.DemandSuccess(t, err)

	test.DemandImplements[lcd.FrameRenderer](t, a, nil)
	test.DemandImplements[digest.Digest](t, a, nil)

	test.ExpectSuccess(t, a.EndFrame())
	test.ExpectSuccess(t, b.EndFrame())
	test.ExpectEquality(t, a.Hash(), b.Hash())
	test.ExpectEquality(t, a.Frames(), 1)

	// identical final frame but a different history
	a.Clear(lcd.Red)
	test.ExpectSuccess(t, a.EndFrame())
	a.Clear(lcd.Black)
	test.ExpectSuccess(t, a.EndFrame())
	b.Clear(lcd.Black)
	test.ExpectSuccess(t, b.EndFrame())
	test.ExpectInequality(t, a.Hash(), b.Hash())

	a.ResetDigest()
	b.ResetDigest()
	test.ExpectEquality(t, a.Hash(), b.Hash())

	a.SetArea(0, 0, 0, 0)
	a.WriteColor(lcd.Blue)
	test.ExpectSuccess(t, a.EndFrame())
	test.ExpectSuccess(t, b.EndFrame())
	test.ExpectInequality(t, a.Hash(), b.Hash())

	_, err = digest.NewVideo(nil)
	test.ExpectFailure(t, err)
}

func TestAudio(t *testing.T) {
	a := digest.NewAudio()
	b := digest.NewAudio()

	samples := make([]int16, 5000)
	for i := range samples {
		samples[i] = int16(i * 7)
	}

	test.ExpectSuccess(t, a.SetAudio(samples))
	test.ExpectSuccess(t, b.SetAudio(samples))
	test.ExpectEquality(t, a.Hash(), b.Hash())

	// only the first full buffer has been hashed. the remainder is hashed
	// when mixing ends
	h := a.Hash()
	test.ExpectSuccess(t, a.EndMixing())
	test.ExpectInequality(t, a.Hash(), h)

	a.ResetDigest()
	b.ResetDigest()
	test.ExpectSuccess(t, a.SetAudio(samples[:10]))
	test.ExpectSuccess(t, b.SetAudio(samples[10:20]))
	test.ExpectSuccess(t, a.EndMixing())
	test.ExpectSuccess(t, b.EndMixing())
	test.ExpectInequality(t, a.Hash(), b.Hash())
}
