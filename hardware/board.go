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

package hardware

import (
	"fmt"

	"github.com/jetsetilly/shapemotion/curated"
	"github.com/jetsetilly/shapemotion/environment"
	"github.com/jetsetilly/shapemotion/hardware/buzzer"
	"github.com/jetsetilly/shapemotion/hardware/clocks"
	"github.com/jetsetilly/shapemotion/hardware/cpu"
	"github.com/jetsetilly/shapemotion/hardware/lcd"
	"github.com/jetsetilly/shapemotion/hardware/led"
	"github.com/jetsetilly/shapemotion/hardware/switches"
	"github.com/jetsetilly/shapemotion/hardware/wdt"
	"github.com/jetsetilly/shapemotion/logger"
)

// Firmware is the program running on the board.
type Firmware interface {
	// Boot is called once when the firmware is attached. The board's
	// peripherals are ready to use.
	Boot()

	// Interrupt is the watchdog interrupt handler. It is never called
	// concurrently with itself or with a section of Main() that has disabled
	// interrupts.
	Interrupt()

	// Main runs one pass of the firmware's main loop. It should return false
	// if there is nothing more to do and the CPU should be put to sleep until
	// the next interrupt.
	Main() bool
}

// InputHandler implementations are called before every watchdog interrupt.
// The interrupt argument is the number of the interrupt about to be serviced.
type InputHandler interface {
	HandleInput(interrupt uint64) error
}

// AudioMixer implementations receive the buzzer output as signed 16bit mono
// samples at clocks.AudioSampleRate.
type AudioMixer interface {
	SetAudio(samples []int16) error
	EndMixing() error
}

// Sentinal error patterns.
const (
	NoFirmware = "board: no firmware attached"
)

// Board is the root of the emulation.
type Board struct {
	env *environment.Environment

	SR       *cpu.StatusRegister
	LCD      *lcd.LCD
	Switches *switches.Switches
	Buzzer   *buzzer.Buzzer
	WDT      *wdt.WDT
	LED      *led.LED

	fw Firmware

	inputHandlers []InputHandler
	mixers        []AudioMixer

	// audio samples generated during the most recent interrupt
	audio []int16

	// remainder of the sample rate division. see generateAudio()
	sampleAcc int
}

// NewBoard creates a new Board and everything associated with the hardware.
func NewBoard(env *environment.Environment) (*Board, error) {
	if env == nil {
		return nil, curated.Errorf("board: %v", "no environment")
	}

	brd := &Board{
		env:      env,
		SR:       cpu.NewStatusRegister(),
		LCD:      lcd.NewLCD(),
		Switches: switches.NewSwitches(),
		Buzzer:   buzzer.NewBuzzer(),
		WDT:      wdt.NewWDT(env.Prefs.WDTRate.Get().(int)),
		LED:      &led.LED{},
	}

	return brd, nil
}

func (brd *Board) String() string {
	return fmt.Sprintf("%s interrupts=%d %s LED=%v", brd.SR, brd.WDT.Count(), brd.Switches, brd.LED.IsOn())
}

// Env returns the environment the board was created with.
func (brd *Board) Env() *environment.Environment {
	return brd.env
}

// AttachFirmware attaches and boots the firmware. The frame painted during
// boot is announced to the LCD's frame renderers.
func (brd *Board) AttachFirmware(fw Firmware) error {
	brd.fw = fw
	if brd.fw == nil {
		return curated.Errorf(NoFirmware)
	}
	logger.Logf(brd.env, "board", "booting firmware (%T)", fw)
	brd.fw.Boot()
	return brd.LCD.EndFrame()
}

// AddInputHandler adds an InputHandler to the board. Handlers are called in
// the order they were added.
func (brd *Board) AddInputHandler(h InputHandler) {
	brd.inputHandlers = append(brd.inputHandlers, h)
}

// AddAudioMixer adds an AudioMixer to the board.
func (brd *Board) AddAudioMixer(m AudioMixer) {
	brd.mixers = append(brd.mixers, m)
}

// EndMixing should be called when the emulation is finished with. Every
// AudioMixer is told that mixing has ended. The first error encountered is
// returned but every mixer is visited.
func (brd *Board) EndMixing() error {
	var rerr error
	for _, m := range brd.mixers {
		if err := m.EndMixing(); err != nil && rerr == nil {
			rerr = err
		}
	}
	return rerr
}

// interrupt services one watchdog interrupt. The buzzer output covering the
// interrupt interval is passed to the audio mixers.
func (brd *Board) interrupt() error {
	for _, h := range brd.inputHandlers {
		if err := h.HandleInput(brd.WDT.Count() + 1); err != nil {
			return err
		}
	}

	brd.WDT.SetRate(brd.env.Prefs.WDTRate.Get().(int))
	brd.WDT.Elapse(func() {
		brd.SR.Service(brd.fw.Interrupt)
	})

	return brd.generateAudio()
}

func (brd *Board) generateAudio() error {
	if len(brd.mixers) == 0 {
		return nil
	}

	brd.sampleAcc += clocks.AudioSampleRate
	n := brd.sampleAcc / brd.WDT.Rate()
	brd.sampleAcc %= brd.WDT.Rate()

	brd.audio = brd.Buzzer.Generate(brd.audio[:0], n, brd.env.Prefs.BuzzerVolume.Get().(float64))

	for _, m := range brd.mixers {
		if err := m.SetAudio(brd.audio); err != nil {
			return err
		}
	}

	return nil
}

// mainLoop runs the firmware's main loop until the firmware is ready to sleep.
// Returns the number of frames completed.
func (brd *Board) mainLoop() (int, error) {
	var frames int
	for brd.fw.Main() {
		if err := brd.LCD.EndFrame(); err != nil {
			return frames, err
		}
		frames++
	}
	return frames, nil
}
