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

// Package wavwriter allows writing of audio data to disk as a WAV file. Note
// that audio data is buffered in memory in its entirity, and written to disk
// on program end. It is therefore probably only suitable for testing purposes.
package wavwriter

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/jetsetilly/shapemotion/curated"
	"github.com/jetsetilly/shapemotion/hardware/clocks"
	"github.com/jetsetilly/shapemotion/logger"
)

// bit depth of the samples given to SetAudio()
const bitDepth = 16

// WavWriter implements the hardware.AudioMixer interface.
type WavWriter struct {
	perm     logger.Permission
	filename string
	buffer   []int
}

// New is the preferred method of initialisation for the WavWriter type.
func New(perm logger.Permission, filename string) (*WavWriter, error) {
	aw := &WavWriter{
		perm:     perm,
		filename: filename,
		buffer:   make([]int, 0, clocks.AudioSampleRate),
	}

	return aw, nil
}

// SetAudio implements the hardware.AudioMixer interface.
func (aw *WavWriter) SetAudio(samples []int16) error {
	for _, s := range samples {
		aw.buffer = append(aw.buffer, int(s))
	}
	return nil
}

// Samples returns the number of samples buffered so far.
func (aw *WavWriter) Samples() int {
	return len(aw.buffer)
}

// EndMixing implements the hardware.AudioMixer interface.
func (aw *WavWriter) EndMixing() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	// the wav format type 1 is uncompressed PCM
	enc := wav.NewEncoder(f, clocks.AudioSampleRate, bitDepth, 1, 1)
	if enc == nil {
		return curated.Errorf("wavwriter: %v", "bad parameters for wav encoding")
	}
	defer func() {
		err := enc.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	buf := audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  clocks.AudioSampleRate,
		},
		Data:           aw.buffer,
		SourceBitDepth: bitDepth,
	}

	logger.Logf(aw.perm, "wavwriter", "writing audio to %s", aw.filename)

	err = enc.Write(&buf)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	return nil
}
