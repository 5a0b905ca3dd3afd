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

package sdlplay

import (
	"encoding/binary"

	"github.com/jetsetilly/shapemotion/hardware/clocks"
	"github.com/jetsetilly/shapemotion/logger"
	"github.com/veandco/go-sdl2/sdl"
)

// the number of samples in the audio device's buffer. the value has been
// found through trial and error and is not critical
const bufferLength = 1024

// if the amount of queued audio (in bytes) grows beyond this value new audio
// is dropped until the queue has drained. this happens when the emulation
// runs faster than real time
const maxQueued = clocks.AudioSampleRate / 4 * 2

// sound outputs the buzzer using the SDL audio queue
type sound struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	// reused for every call to queue()
	buf []byte
}

func newSound(perm logger.Permission) (*sound, error) {
	snd := &sound{}

	spec := &sdl.AudioSpec{
		Freq:     clocks.AudioSampleRate,
		Format:   sdl.AUDIO_S16SYS,
		Channels: 1,
		Samples:  bufferLength,
	}

	var err error

	snd.id, err = sdl.OpenAudioDevice("", false, spec, &snd.spec, 0)
	if err != nil {
		return nil, err
	}

	logger.Logf(perm, "sdlplay", "audio device: %dHz %d channel(s) %d samples", snd.spec.Freq, snd.spec.Channels, snd.spec.Samples)

	sdl.PauseAudioDevice(snd.id, false)

	return snd, nil
}

func (snd *sound) queue(samples []int16) error {
	if sdl.GetQueuedAudioSize(snd.id) > maxQueued {
		return nil
	}

	snd.buf = snd.buf[:0]
	for _, s := range samples {
		snd.buf = binary.NativeEndian.AppendUint16(snd.buf, uint16(s))
	}

	return sdl.QueueAudio(snd.id, snd.buf)
}

func (snd *sound) clear() error {
	sdl.ClearQueuedAudio(snd.id)
	return nil
}

func (snd *sound) destroy() {
	sdl.CloseAudioDevice(snd.id)
}
