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

package buzzer_test

import (
	"math/rand/v2"
	"testing"

	"github.com/jetsetilly/shapemotion/hardware/buzzer"
	"github.com/jetsetilly/shapemotion/hardware/clocks"
	"github.com/jetsetilly/shapemotion/test"
)

func TestDuty(t *testing.T) {
	bz := buzzer.NewBuzzer()
	test.ExpectEquality(t, bz.CCR0(), uint16(0))
	test.ExpectEquality(t, bz.CCR1(), uint16(0))

	for _, p := range []uint16{0, 1, 2000, 4000, 8000, 0xffff} {
		bz.SetPeriod(p)
		ccr0, ccr1 := bz.Registers()
		test.ExpectEquality(t, ccr0, p)
		test.ExpectEquality(t, ccr1, p>>1)
	}

	for range 100 {
		p := uint16(rand.IntN(0x10000))
		bz.SetPeriod(p)
		test.ExpectEquality(t, bz.CCR1(), bz.CCR0()>>1)
	}
}

func TestIdleDoesNotChangePeriod(t *testing.T) {
	bz := buzzer.NewBuzzer()
	bz.SetPeriod(2000)
	for range 20 {
		bz.AdvanceFrequency()
		test.ExpectEquality(t, bz.CCR0(), uint16(2000))
	}
	test.ExpectEquality(t, bz.State(), buzzer.Idle)
}

func TestPanic(t *testing.T) {
	bz := buzzer.NewBuzzer()
	bz.SetState(buzzer.Panic)
	bz.AdvanceFrequency()
	test.ExpectEquality(t, bz.CCR0(), uint16(buzzer.PanicPeriod))
	test.ExpectEquality(t, bz.CCR1(), uint16(buzzer.PanicPeriod/2))
}

// the step counter cycles through eleven values for a ten step song. the
// eleventh step is silent
func TestSongSteps(t *testing.T) {
	bz := buzzer.NewBuzzer()
	bz.SetState(buzzer.Song1)

	expected := []uint16{950, 0, 950, 0, 950, 710, 710, 0, 560, 0, 0, 950}
	for i, e := range expected {
		bz.AdvanceFrequency()
		test.ExpectEquality(t, bz.CCR0(), e, i)
	}
	test.ExpectEquality(t, bz.Counter(), 1)
}

func TestCounterWraps(t *testing.T) {
	bz := buzzer.NewBuzzer()
	for i := range buzzer.Steps * 3 {
		test.DemandEquality(t, bz.Counter(), i%buzzer.Steps)
		bz.AdvanceFrequency()
	}
}

func TestSong3(t *testing.T) {
	bz := buzzer.NewBuzzer()
	bz.SetState(buzzer.Song3)

	// step zero is only reached after the counter wraps
	for range buzzer.Steps {
		bz.AdvanceFrequency()
	}
	test.ExpectEquality(t, bz.Counter(), 0)
	test.ExpectEquality(t, bz.CCR0(), uint16(200))
	test.ExpectEquality(t, bz.State().String(), "song 3")
}

func TestGenerate(t *testing.T) {
	bz := buzzer.NewBuzzer()

	// silence
	buf := bz.Generate(nil, 100, 1.0)
	test.DemandEquality(t, len(buf), 100)
	for _, s := range buf {
		test.DemandEquality(t, s, int16(0))
	}

	// square wave. count the number of rising edges in one second of audio
	bz.SetPeriod(2000)
	buf = bz.Generate(buf[:0], clocks.AudioSampleRate, 0.5)
	test.DemandEquality(t, len(buf), clocks.AudioSampleRate)

	var edges int
	for i := 1; i < len(buf); i++ {
		if buf[i-1] < 0 && buf[i] > 0 {
			edges++
		}
		test.DemandSuccess(t, buf[i] == 16383 || buf[i] == -16383)
	}
	test.ExpectApproximate(t, float64(edges), bz.Frequency(), 0.01)
	test.ExpectApproximate(t, bz.Frequency(), 999.5, 0.001)
}
