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

package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/shapemotion/environment"
	"github.com/jetsetilly/shapemotion/game"
	"github.com/jetsetilly/shapemotion/hardware"
)

// sentinal error returned by Run() loop.
var timedOut = errors.New("performance timed out")

// leadtime before measurement begins. allows the framerate to settle down
var leadTime = 2 * time.Second

// Check the performance of the emulator.
//
// Emulation will run for the specificed duration and will create a cpu,
// memory profile, a trace (or a combination of those) as defined by the
// Profile argument.
//
// If uncapped is true then the board is stepped as quickly as possible,
// otherwise it runs in real time.
func Check(output io.Writer, profile Profile, env *environment.Environment, uncapped bool, duration string) error {
	var err error

	// create board
	brd, err := hardware.NewBoard(env)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	err = brd.AttachFirmware(game.NewGame(brd))
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	// parse supplied duration
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	// get starting frame number
	startFrame := brd.LCD.FrameNum()
	startInterrupt := brd.WDT.Count()

	// run for specified period of time
	runner := func() error {
		// setup trigger that expires when duration has elapsed. signals true
		// when duration has expired. signals false to indicate that
		// performance measurement should start
		timerChan := make(chan bool, 2)

		// the leadtime will put false on the timerChan. the conclusion of
		// the measurement period will put true on the timerChan.
		go func() {
			time.AfterFunc(leadTime, func() {
				// signal parent function that leadtime has elapsed
				timerChan <- false

				time.AfterFunc(dur, func() {
					timerChan <- true
				})
			})
		}()

		// only check for end of measurement period every PerformanceBrake
		// interrupts
		performanceBrake := 0

		check := func() (bool, error) {
			performanceBrake++
			if performanceBrake >= hardware.PerformanceBrake {
				performanceBrake = 0

				select {
				case v := <-timerChan:
					// timerChan has returned true, which means measurement
					// period has finished
					if v {
						return false, timedOut
					}

					// timerChan has returned false which indicates that the
					// leadtime has concluded
					startFrame = brd.LCD.FrameNum()
					startInterrupt = brd.WDT.Count()
				default:
				}
			}
			return true, nil
		}

		if !uncapped {
			return brd.Run(check)
		}

		for {
			if _, err := brd.Step(); err != nil {
				return err
			}
			if _, err := check(); err != nil {
				return err
			}
		}
	}

	// launch runner directly or through the CPU profiler, depending on
	// supplied arguments
	err = RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return fmt.Errorf("performance: %w", err)
	}

	// calculate performance
	numFrames := brd.LCD.FrameNum() - startFrame
	numInterrupts := brd.WDT.Count() - startInterrupt
	fps, accuracy := CalcFPS(env.Prefs, numFrames, dur.Seconds())
	fmt.Fprintf(output, "%.2f fps (%d frames in %.2f seconds) %.1f%%\n", fps, numFrames, dur.Seconds(), accuracy)
	fmt.Fprintf(output, "%.2f interrupts per second\n", float64(numInterrupts)/dur.Seconds())

	return nil
}
