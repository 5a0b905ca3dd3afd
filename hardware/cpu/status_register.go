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

package cpu

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// StatusRegister models the GIE and CPUOFF flags of the status register. The
// zero value is not usable, use NewStatusRegister().
type StatusRegister struct {
	// held while interrupts are disabled
	gie sync.Mutex

	// interrupts disabled by the main context. the interrupt context does
	// not set this flag during Service() because the hardware restores the
	// status register on return from interrupt
	disabled atomic.Bool

	cpuOff atomic.Bool
	wake   chan struct{}

	// number of interrupts serviced
	serviced atomic.Uint64
}

// NewStatusRegister is the preferred method of initialisation for the
// StatusRegister type.
func NewStatusRegister() *StatusRegister {
	return &StatusRegister{
		wake: make(chan struct{}, 1),
	}
}

func (sr *StatusRegister) String() string {
	return fmt.Sprintf("SR: %s", sr.ToBits())
}

// ToBits returns the modelled flags as a labelled bit pattern.
func (sr *StatusRegister) ToBits() string {
	var v string
	if sr.cpuOff.Load() {
		v += "O"
	} else {
		v += "o"
	}
	if sr.disabled.Load() {
		v += "g"
	} else {
		v += "G"
	}
	return v
}

// DisableInterrupts clears the GIE flag. The function blocks if an interrupt
// is currently being serviced. Every call must be paired with a call to
// EnableInterrupts().
func (sr *StatusRegister) DisableInterrupts() {
	sr.gie.Lock()
	sr.disabled.Store(true)
}

// EnableInterrupts sets the GIE flag. Pending interrupts will be serviced.
func (sr *StatusRegister) EnableInterrupts() {
	sr.disabled.Store(false)
	sr.gie.Unlock()
}

// InterruptsEnabled returns the state of the GIE flag.
func (sr *StatusRegister) InterruptsEnabled() bool {
	return !sr.disabled.Load()
}

// Service runs the interrupt handler. The handler never overlaps with another
// handler or with a section of code that has disabled interrupts. If the main
// context is sleeping it will be woken after the handler returns.
func (sr *StatusRegister) Service(isr func()) {
	sr.gie.Lock()
	isr()
	sr.serviced.Add(1)
	sr.gie.Unlock()
	sr.Wake()
}

// Serviced returns the number of interrupts that have been serviced.
func (sr *StatusRegister) Serviced() uint64 {
	return sr.serviced.Load()
}

// Wake the main context if it is sleeping. If the main context is not
// sleeping then the next call to Sleep() will return immediately.
func (sr *StatusRegister) Wake() {
	select {
	case sr.wake <- struct{}{}:
	default:
	}
}

// Sleep sets the CPUOFF flag and suspends the calling goroutine until an
// interrupt has been serviced or until the quit channel is closed. Returns
// false if the quit channel was closed.
func (sr *StatusRegister) Sleep(quit <-chan struct{}) bool {
	sr.cpuOff.Store(true)
	defer sr.cpuOff.Store(false)

	select {
	case <-sr.wake:
		return true
	case <-quit:
		return false
	}
}

// CPUOff returns the state of the CPUOFF flag.
func (sr *StatusRegister) CPUOff() bool {
	return sr.cpuOff.Load()
}
