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

package termplay

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/jetsetilly/shapemotion/hardware/clocks"
)

const sampleRate = beep.SampleRate(clocks.AudioSampleRate)

// the maximum number of samples held by the stream. audio pushed when the
// stream is full is dropped
const maxBuffered = clocks.AudioSampleRate / 4

// stream is a beep.Streamer of the audio generated by the board. when there
// is no audio available the stream plays silence.
type stream struct {
	crit sync.Mutex
	buf  []float64
}

// push audio to the end of the stream.
func (s *stream) push(samples []int16) {
	s.crit.Lock()
	defer s.crit.Unlock()
	for _, v := range samples {
		if len(s.buf) >= maxBuffered {
			return
		}
		s.buf = append(s.buf, float64(v)/-math.MinInt16)
	}
}

func (s *stream) clear() {
	s.crit.Lock()
	defer s.crit.Unlock()
	s.buf = s.buf[:0]
}

func (s *stream) buffered() int {
	s.crit.Lock()
	defer s.crit.Unlock()
	return len(s.buf)
}

// Stream implements the beep.Streamer interface.
func (s *stream) Stream(samples [][2]float64) (int, bool) {
	s.crit.Lock()
	defer s.crit.Unlock()

	n := 0
	for i := range samples {
		var v float64
		if n < len(s.buf) {
			v = s.buf[n]
			n++
		}
		samples[i][0] = v
		samples[i][1] = v
	}
	s.buf = s.buf[:copy(s.buf, s.buf[n:])]

	return len(samples), true
}

// Err implements the beep.Streamer interface.
func (s *stream) Err() error {
	return nil
}

// sound plays the stream through the speaker.
type sound struct {
	stream
}

func newSound() (*sound, error) {
	snd := &sound{}
	err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond))
	if err != nil {
		return nil, err
	}
	speaker.Play(&snd.stream)
	return snd, nil
}

func (snd *sound) destroy() {
	speaker.Clear()
	speaker.Close()
}
