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

package hardware_test

import (
	"sync/atomic"
	"testing"

	"github.com/jetsetilly/shapemotion/curated"
	"github.com/jetsetilly/shapemotion/environment"
	"github.com/jetsetilly/shapemotion/hardware"
	"github.com/jetsetilly/shapemotion/hardware/lcd"
	"github.com/jetsetilly/shapemotion/hardware/preferences"
	"github.com/jetsetilly/shapemotion/test"
)

// firmware that requests a frame every fourth interrupt
type testFirmware struct {
	brd        *hardware.Board
	booted     bool
	interrupts int
	redraw     atomic.Bool
	frames     int
}

func (fw *testFirmware) Boot() {
	fw.booted = true
	fw.brd.LCD.Clear(lcd.Blue)
}

func (fw *testFirmware) Interrupt() {
	fw.interrupts++
	if fw.interrupts%4 == 0 {
		fw.redraw.Store(true)
		fw.brd.Buzzer.SetPeriod(2000)
	}
}

func (fw *testFirmware) Main() bool {
	if !fw.redraw.CompareAndSwap(true, false) {
		return false
	}
	fw.frames++
	fw.brd.LCD.SetArea(0, 0, 0, 0)
	fw.brd.LCD.WriteColor(lcd.Color(fw.frames))
	return true
}

type testMixer struct {
	samples int
	ended   bool
}

func (m *testMixer) SetAudio(samples []int16) error {
	m.samples += len(samples)
	return nil
}

func (m *testMixer) EndMixing() error {
	m.ended = true
	return nil
}

type testInput struct {
	seen []uint64
	fail uint64
}

func (h *testInput) HandleInput(interrupt uint64) error {
	h.seen = append(h.seen, interrupt)
	if interrupt == h.fail {
		return curated.Errorf("test input: %d", interrupt)
	}
	return nil
}

func newBoard(t *testing.T) *hardware.Board {
	t.Helper()
	p, err := preferences.NewPreferencesFile(t.TempDir() + "/preferences")
	test.DemandSuccess(t, err)
	env, err := environment.NewEnvironment(environment.MainEmulation, p)
	test.DemandSuccess(t, err)
	env.Quiet = true
	brd, err := hardware.NewBoard(env)
	test.DemandSuccess(t, err)
	return brd
}

func TestNoFirmware(t *testing.T) {
	brd := newBoard(t)
	_, err := brd.Step()
	test.ExpectEquality(t, curated.Is(err, hardware.NoFirmware), true)
	test.ExpectEquality(t, curated.Is(brd.Run(nil), hardware.NoFirmware), true)
	test.ExpectEquality(t, curated.Is(brd.AttachFirmware(nil), hardware.NoFirmware), true)
}

func TestStep(t *testing.T) {
	brd := newBoard(t)
	fw := &testFirmware{brd: brd}
	test.DemandSuccess(t, brd.AttachFirmware(fw))
	test.ExpectEquality(t, fw.booted, true)
	test.ExpectEquality(t, brd.LCD.FrameNum(), 1)
	test.ExpectEquality(t, brd.LCD.Pixel(10, 10), lcd.Blue)

	for i := 1; i <= 3; i++ {
		frames, err := brd.Step()
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, frames, 0, i)
	}

	frames, err := brd.Step()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, frames, 1)
	test.ExpectEquality(t, brd.LCD.FrameNum(), 2)
	test.ExpectEquality(t, brd.LCD.Pixel(0, 0), lcd.Color(1))
	test.ExpectEquality(t, brd.WDT.Count(), uint64(4))
	test.ExpectEquality(t, brd.SR.Serviced(), uint64(4))
	test.ExpectEquality(t, brd.Buzzer.CCR0(), uint16(2000))
}

func TestAudioAndInput(t *testing.T) {
	brd := newBoard(t)
	fw := &testFirmware{brd: brd}
	test.DemandSuccess(t, brd.AttachFirmware(fw))

	mix := &testMixer{}
	brd.AddAudioMixer(mix)
	inp := &testInput{fail: 251}
	brd.AddInputHandler(inp)

	// one second of interrupts at the default rate
	for range 250 {
		_, err := brd.Step()
		test.DemandSuccess(t, err)
	}
	test.ExpectEquality(t, mix.samples, 44100)
	test.ExpectEquality(t, len(inp.seen), 250)
	test.ExpectEquality(t, inp.seen[0], uint64(1))
	test.ExpectEquality(t, inp.seen[249], uint64(250))

	_, err := brd.Step()
	test.ExpectFailure(t, err)

	test.ExpectSuccess(t, brd.EndMixing())
	test.ExpectEquality(t, mix.ended, true)
}

func TestRunForFrameCount(t *testing.T) {
	brd := newBoard(t)
	fw := &testFirmware{brd: brd}
	test.DemandSuccess(t, brd.AttachFirmware(fw))

	err := brd.RunForFrameCount(5, nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, fw.frames, 5)
	test.ExpectEquality(t, fw.interrupts, 20)

	var calls int
	err = brd.RunForFrameCount(5, func(frame int) (bool, error) {
		calls++
		return frame < 8, nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, brd.LCD.FrameNum(), 8)
	test.ExpectEquality(t, calls, 8)
}

func TestRun(t *testing.T) {
	brd := newBoard(t)
	brd.Env().Prefs.WDTRate.Set(1000)
	fw := &testFirmware{brd: brd}
	test.DemandSuccess(t, brd.AttachFirmware(fw))

	err := brd.Run(func() (bool, error) {
		return brd.LCD.FrameNum() < 4, nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, brd.LCD.FrameNum() >= 4, true)
	test.ExpectEquality(t, brd.SR.CPUOff(), false)

	// every watchdog interval is counted once
	test.ExpectEquality(t, brd.WDT.Count(), brd.SR.Serviced())
	test.ExpectEquality(t, brd.WDT.Count(), uint64(fw.interrupts))
}

func TestRunMatchesStepInterrupts(t *testing.T) {
	brd := newBoard(t)
	brd.Env().Prefs.WDTRate.Set(1000)
	fw := &testFirmware{brd: brd}
	test.DemandSuccess(t, brd.AttachFirmware(fw))

	inp := &testInput{}
	brd.AddInputHandler(inp)

	err := brd.Run(func() (bool, error) {
		return brd.SR.Serviced() < 20, nil
	})
	test.ExpectSuccess(t, err)

	// input handlers see consecutive interrupt numbers starting at one
	test.DemandEquality(t, len(inp.seen) >= 20, true)
	for i, n := range inp.seen {
		test.ExpectEquality(t, n, uint64(i+1))
	}
	test.ExpectEquality(t, uint64(len(inp.seen)), brd.WDT.Count())
}
