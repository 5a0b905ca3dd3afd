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

package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/jetsetilly/shapemotion/curated"
)

// length of samples buffer in bytes. the value is arbitrary
const audioBufferLength = 4096 + sha1.Size

// the previous digest value is stored at the beginning of the buffer so that
// it is included when the next digest value is created
const audioBufferStart = sha1.Size

// Audio implements the hardware.AudioMixer interface. Samples are buffered
// and the buffer is hashed, along with the previous hash, whenever it is full.
type Audio struct {
	digest   [sha1.Size]byte
	buffer   []uint8
	bufferCt int
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio() *Audio {
	dig := &Audio{}
	dig.buffer = make([]uint8, audioBufferLength)
	dig.bufferCt = audioBufferStart
	return dig
}

// Hash implements digest.Digest interface.
func (dig *Audio) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements digest.Digest interface. Any buffered samples are
// discarded.
func (dig *Audio) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
	dig.bufferCt = audioBufferStart
}

// SetAudio implements the hardware.AudioMixer interface.
func (dig *Audio) SetAudio(samples []int16) error {
	for _, s := range samples {
		dig.buffer[dig.bufferCt] = uint8(s)
		dig.buffer[dig.bufferCt+1] = uint8(s >> 8)
		dig.bufferCt += 2

		if dig.bufferCt >= audioBufferLength {
			if err := dig.flushAudio(); err != nil {
				return err
			}
		}
	}

	return nil
}

func (dig *Audio) flushAudio() error {
	dig.digest = sha1.Sum(dig.buffer[:dig.bufferCt])
	n := copy(dig.buffer, dig.digest[:])
	if n != len(dig.digest) {
		return curated.Errorf("digest: audio: %v", "digest error while flushing audio stream")
	}
	dig.bufferCt = audioBufferStart
	return nil
}

// EndMixing implements the hardware.AudioMixer interface. Buffered samples
// are added to the digest.
func (dig *Audio) EndMixing() error {
	if dig.bufferCt == audioBufferStart {
		return nil
	}
	return dig.flushAudio()
}
