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

// Package buzzer emulates the piezo buzzer and the timer that drives it.
//
// Timer A runs in up mode from the sub-main clock. Capture/compare register
// zero (CCR0) sets the period of the timer and CCR1 sets the point in the
// period where the output to the buzzer is set. The output is reset when the
// timer wraps. A CCR0 value of zero stops the timer and silences the buzzer.
//
// On top of the timer sits a small state machine that can play a panic tone
// or one of three songs. The state machine is advanced with
// AdvanceFrequency().
package buzzer

import (
	"fmt"
	"sync/atomic"

	"github.com/jetsetilly/shapemotion/hardware/clocks"
)

// State of the buzzer state machine.
type State int

// List of valid State values.
const (
	Idle State = iota
	Panic
	Song1
	Song2
	Song3
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Panic:
		return "panic"
	case Song1:
		return "song 1"
	case Song2:
		return "song 2"
	case Song3:
		return "song 3"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// PanicPeriod is the timer period used in the Panic state.
const PanicPeriod = 1000

// Steps is the number of values taken by the step counter. It is one more
// than the length of a song. The final step is silent.
const Steps = 11

// timer periods for each step of the songs. zero is silence
var songs = [...][10]uint16{
	{0, 950, 0, 950, 0, 950, 710, 710, 0, 560},
	{1130, 0, 710, 0, 950, 0, 630, 0, 710, 0},
	{200, 0, 600, 0, 8000, 0, 500, 0, 4000, 0},
}

// Buzzer emulates the timer and buzzer. The registers can be read from any
// goroutine. The state machine belongs to the interrupt context.
type Buzzer struct {
	// CCR0 in the low 16bits and CCR1 in the high 16bits. written together
	regs atomic.Uint32

	state   State
	counter int

	// timer count and clock remainder used when generating audio
	count int
	acc   int
}

// NewBuzzer is the preferred method of initialisation for the Buzzer type.
// The buzzer is initially silent and idle.
func NewBuzzer() *Buzzer {
	return &Buzzer{}
}

func (bz *Buzzer) String() string {
	ccr0, ccr1 := bz.Registers()
	return fmt.Sprintf("%s step=%d CCR0=%d CCR1=%d", bz.state, bz.counter, ccr0, ccr1)
}

// SetPeriod sets the timer period. The duty register is set to half the
// period in the same update. A period of zero silences the buzzer.
func (bz *Buzzer) SetPeriod(cycles uint16) {
	bz.regs.Store(uint32(cycles) | uint32(cycles>>1)<<16)
}

// Registers returns the values of CCR0 and CCR1. The two values are always
// from the same call to SetPeriod().
func (bz *Buzzer) Registers() (uint16, uint16) {
	r := bz.regs.Load()
	return uint16(r), uint16(r >> 16)
}

// CCR0 returns the value of the period register.
func (bz *Buzzer) CCR0() uint16 {
	ccr0, _ := bz.Registers()
	return ccr0
}

// CCR1 returns the value of the duty register.
func (bz *Buzzer) CCR1() uint16 {
	_, ccr1 := bz.Registers()
	return ccr1
}

// Frequency returns the frequency of the tone currently being generated. A
// value of zero means the buzzer is silent.
func (bz *Buzzer) Frequency() float64 {
	ccr0 := bz.CCR0()
	if ccr0 == 0 {
		return 0
	}
	return float64(clocks.SMCLK) / float64(int(ccr0)+1)
}

// SetState changes the state of the state machine. Nothing in the game logic
// changes the state.
func (bz *Buzzer) SetState(s State) {
	bz.state = s
}

// State returns the current state of the state machine.
func (bz *Buzzer) State() State {
	return bz.state
}

// Counter returns the current step of the state machine.
func (bz *Buzzer) Counter() int {
	return bz.counter
}

// AdvanceFrequency moves the state machine on by one step and sets the timer
// period according to the current state. In the Idle state the period is not
// changed.
func (bz *Buzzer) AdvanceFrequency() {
	bz.counter = (bz.counter + 1) % Steps

	switch bz.state {
	case Panic:
		bz.SetPeriod(PanicPeriod)
	case Song1, Song2, Song3:
		song := songs[bz.state-Song1]
		if bz.counter < len(song) {
			bz.SetPeriod(song[bz.counter])
		} else {
			bz.SetPeriod(0)
		}
	}
}

// Generate appends n audio samples to buf and returns the extended slice. The
// samples are signed 16bit mono at clocks.AudioSampleRate. Volume should be
// between zero and one.
//
// Generate should only be called from one goroutine.
func (bz *Buzzer) Generate(buf []int16, n int, volume float64) []int16 {
	ccr0, ccr1 := bz.Registers()
	amp := int16(volume * 32767)

	for range n {
		if ccr0 == 0 {
			// stopped timer. the speaker is at rest
			buf = append(buf, 0)
			continue
		}

		bz.acc += clocks.SMCLK
		bz.count = (bz.count + bz.acc/clocks.AudioSampleRate) % (int(ccr0) + 1)
		bz.acc %= clocks.AudioSampleRate

		// output mode set/reset. set when the count reaches CCR1 and reset
		// when the count returns to zero
		if bz.count >= int(ccr1) {
			buf = append(buf, amp)
		} else {
			buf = append(buf, -amp)
		}
	}

	return buf
}
