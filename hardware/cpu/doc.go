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

// Package cpu models the parts of the microcontroller's status register that
// the firmware relies on: the general interrupt enable (GIE) flag and the
// CPUOFF flag.
//
// The firmware is a single thread of execution plus one interrupt context.
// The StatusRegister type reproduces this with a lock that is held whenever
// interrupts are disabled. The interrupt source services its handler with
// Service(), which also takes the lock, so that a handler never runs while
// the main thread has interrupts disabled and never runs concurrently with
// another handler.
//
//	sr := cpu.NewStatusRegister()
//
//	// interrupt context
//	go func() {
//		for range ticker.C {
//			sr.Service(handler)
//		}
//	}()
//
//	// main context
//	for {
//		sr.Sleep(quit)
//		sr.DisableInterrupts()
//		commit()
//		sr.EnableInterrupts()
//		paint()
//	}
//
// Sleep() models setting the CPUOFF flag. The main context is suspended until
// the next interrupt has been serviced.
package cpu
