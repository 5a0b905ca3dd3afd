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

// Package wdt emulates the watchdog timer of the microcontroller in interval
// mode. In interval mode the watchdog does not reset the board. Instead it
// generates an interrupt at a fixed rate.
package wdt

import (
	"sync/atomic"
	"time"
)

// WDT is the watchdog interval timer.
type WDT struct {
	rate atomic.Int64

	// number of times the interval has elapsed
	count atomic.Uint64
}

// NewWDT is the preferred method of initialisation for the WDT type. The rate
// is the number of interrupts per second.
func NewWDT(rate int) *WDT {
	w := &WDT{}
	w.SetRate(rate)
	return w
}

// SetRate changes the number of interrupts per second. Rates less than one
// are treated as one.
func (w *WDT) SetRate(rate int) {
	w.rate.Store(int64(max(rate, 1)))
}

// Rate returns the number of interrupts per second.
func (w *WDT) Rate() int {
	return int(w.rate.Load())
}

// Interval returns the time between interrupts.
func (w *WDT) Interval() time.Duration {
	return time.Second / time.Duration(w.rate.Load())
}

// Count returns the number of intervals that have elapsed.
func (w *WDT) Count() uint64 {
	return w.count.Load()
}

// Elapse marks the end of an interval and calls the interrupt function.
func (w *WDT) Elapse(interrupt func()) {
	w.count.Add(1)
	interrupt()
}

// Run calls the tick function in real time until the quit channel is closed.
// Run does not count intervals. The tick function should call Elapse() when
// the interrupt is raised. Changes to the rate take effect at the end of the
// current interval.
func (w *WDT) Run(quit <-chan struct{}, tick func()) {
	interval := w.Interval()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-quit:
			return
		case <-ticker.C:
			tick()
			if i := w.Interval(); i != interval {
				interval = i
				ticker.Reset(interval)
			}
		}
	}
}
