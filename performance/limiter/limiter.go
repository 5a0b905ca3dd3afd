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

// Package limiter provides a rough and ready way of limiting events to a fixed
// rate.
//
// A new FpsLimiter can be created with (error handling removed for clarity):
//
//	fps, _ := limiter.NewFPSLimiter(60)
//	defer fps.Stop()
//
// Operations can then be stalled with the Wait() function. For example:
//
//	for {
//		fps.Wait()
//		renderImage()
//	}
package limiter

import (
	"fmt"
	"sync"
	"time"
)

// FpsLimiter will trigger every frames per second.
type FpsLimiter struct {
	crit            sync.Mutex
	framesPerSecond int

	ticker *time.Ticker
	stop   chan struct{}
	once   sync.Once
}

// NewFPSLimiter is the preferred method of initialisation for FpsLimiter type.
func NewFPSLimiter(framesPerSecond int) (*FpsLimiter, error) {
	if framesPerSecond <= 0 {
		return nil, fmt.Errorf("limiter: frames per second must be positive (%d)", framesPerSecond)
	}

	lim := &FpsLimiter{
		framesPerSecond: framesPerSecond,
		ticker:          time.NewTicker(period(framesPerSecond)),
		stop:            make(chan struct{}),
	}

	return lim, nil
}

func period(framesPerSecond int) time.Duration {
	return time.Second / time.Duration(framesPerSecond)
}

// SetLimit changes the limit at which the FpsLimiter waits. Values less than
// or equal to zero are ignored.
func (lim *FpsLimiter) SetLimit(framesPerSecond int) {
	if framesPerSecond <= 0 {
		return
	}
	lim.crit.Lock()
	defer lim.crit.Unlock()
	lim.framesPerSecond = framesPerSecond
	lim.ticker.Reset(period(framesPerSecond))
}

// Limit returns the current limit.
func (lim *FpsLimiter) Limit() int {
	lim.crit.Lock()
	defer lim.crit.Unlock()
	return lim.framesPerSecond
}

// Wait will block until trigger. Returns immediately once Stop() has been
// called.
func (lim *FpsLimiter) Wait() {
	select {
	case <-lim.ticker.C:
	case <-lim.stop:
	}
}

// HasWaited will return true if time has already elapsed and false it it is
// still yet to happen.
func (lim *FpsLimiter) HasWaited() bool {
	select {
	case <-lim.ticker.C:
		return true
	case <-lim.stop:
		return true
	default:
		// default case means that the channel receiving case doesn't block
		return false
	}
}

// Stop the limiter. Safe to call more than once.
func (lim *FpsLimiter) Stop() {
	lim.once.Do(func() {
		lim.ticker.Stop()
		close(lim.stop)
	})
}
