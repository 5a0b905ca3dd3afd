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
	"sync"

	"github.com/jetsetilly/shapemotion/curated"
	"github.com/jetsetilly/shapemotion/logger"
)

// The continueCheck() function can be expensive if it is called every
// interrupt. The PerformanceBrake is a standard value that can be used to
// filter out expensive code paths within a continueCheck() implementation.
// For example:
//
//	performanceFilter++
//	if performanceFilter >= hardware.PerformanceBrake {
//		performanceFilter = 0
//		if end_condition == true {
//			return false, nil
//		}
//	}
//	return true, nil
const PerformanceBrake = 100

// Run sets the emulation running in real time. The watchdog interval timer
// runs in its own goroutine and the firmware's main loop runs on the calling
// goroutine, sleeping between interrupts.
//
// The continueCheck function is called every time the main context wakes. The
// emulation stops when continueCheck returns false or an error. A nil
// continueCheck means the emulation runs until an error occurs.
func (brd *Board) Run(continueCheck func() (bool, error)) (rerr error) {
	if brd.fw == nil {
		return curated.Errorf(NoFirmware)
	}

	if continueCheck == nil {
		continueCheck = func() (bool, error) { return true, nil }
	}

	quit := make(chan struct{})
	intErr := make(chan error, 1)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		brd.WDT.Run(quit, func() {
			if err := brd.interrupt(); err != nil {
				select {
				case intErr <- err:
				default:
				}
				brd.SR.Wake()
			}
		})
	}()

	// stop the watchdog and give the main loop the chance to service a
	// redraw requested by the final interrupt
	defer func() {
		close(quit)
		wg.Wait()
		if _, err := brd.mainLoop(); err != nil && rerr == nil {
			rerr = err
		}
		logger.Logf(brd.env, "board", "stopped after %d interrupts", brd.WDT.Count())
	}()

	for {
		if _, err := brd.mainLoop(); err != nil {
			return err
		}

		select {
		case err := <-intErr:
			return err
		default:
		}

		cont, err := continueCheck()
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}

		brd.SR.Sleep(quit)
	}
}

// RunForFrameCount steps the emulation until the specified number of frames
// have been completed. The continueCheck function is called after every
// interrupt with the current frame number and can end the emulation early by
// returning false.
//
// Useful for playback and performance measurement.
func (brd *Board) RunForFrameCount(numFrames int, continueCheck func(frame int) (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func(_ int) (bool, error) { return true, nil }
	}

	targetFrame := brd.LCD.FrameNum() + numFrames

	for brd.LCD.FrameNum() < targetFrame {
		if _, err := brd.Step(); err != nil {
			return err
		}

		cont, err := continueCheck(brd.LCD.FrameNum())
		if err != nil {
			return err
		}
		if !cont {
			break
		}
	}

	return nil
}
