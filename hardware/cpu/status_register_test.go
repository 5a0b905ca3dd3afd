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

package cpu_test

import (
	"sync"
	"testing"
	"time"

	"github.com/jetsetilly/shapemotion/hardware/cpu"
	"github.com/jetsetilly/shapemotion/test"
)

func TestFlags(t *testing.T) {
	sr := cpu.NewStatusRegister()
	test.ExpectEquality(t, sr.ToBits(), "oG")
	test.ExpectSuccess(t, sr.InterruptsEnabled())

	sr.DisableInterrupts()
	test.ExpectEquality(t, sr.ToBits(), "og")
	test.ExpectFailure(t, sr.InterruptsEnabled())
	sr.EnableInterrupts()
	test.ExpectEquality(t, sr.String(), "SR: oG")
}

func TestServiceBlockedByDisable(t *testing.T) {
	sr := cpu.NewStatusRegister()

	var serviced sync.WaitGroup
	serviced.Add(1)

	var ran bool

	sr.DisableInterrupts()
	go func() {
		sr.Service(func() { ran = true })
		serviced.Done()
	}()

	// the interrupt cannot be serviced while interrupts are disabled
	time.Sleep(10 * time.Millisecond)
	test.ExpectEquality(t, sr.Serviced(), uint64(0))

	sr.EnableInterrupts()
	serviced.Wait()
	test.ExpectSuccess(t, ran)
	test.ExpectEquality(t, sr.Serviced(), uint64(1))
}

func TestSleep(t *testing.T) {
	sr := cpu.NewStatusRegister()

	go sr.Service(func() {})
	test.ExpectSuccess(t, sr.Sleep(nil))

	// a closed quit channel ends the sleep
	quit := make(chan struct{})
	close(quit)
	test.ExpectFailure(t, sr.Sleep(quit))
	test.ExpectFailure(t, sr.CPUOff())
}
