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
	"sync"

	"github.com/jetsetilly/shapemotion/curated"
	"github.com/jetsetilly/shapemotion/hardware/lcd"
)

// Video is an implementation of the lcd.FrameRenderer interface with an
// embedded LCD. The only thing this renderer does is to create a SHA-1 value
// for every frame. At every call to NewFrame() the previous SHA-1 value is
// combined with the pixels of the new frame. In this way the final digest is
// a fingerprint of every frame since the digest was last reset.
//
// Note that the use of SHA-1 is fine for this application because this is not
// a cryptographic task.
type Video struct {
	*lcd.LCD

	// the digest can be read from a goroutine other than the one calling
	// NewFrame()
	crit sync.Mutex

	digest   [sha1.Size]byte
	pixels   []byte
	frameNum int
}

// bytes per pixel in the digest buffer
const pixelDepth = 2

// NewVideo initialises a new instance of Video and adds it to the LCD's list
// of frame renderers.
func NewVideo(l *lcd.LCD) (*Video, error) {
	if l == nil {
		return nil, curated.Errorf("digest: video: %v", "no LCD")
	}

	dig := &Video{LCD: l}

	// the pixels array contains enough room for the previous frame's digest
	// value
	dig.pixels = make([]byte, len(dig.digest)+lcd.Width*lcd.Height*pixelDepth)

	dig.AddFrameRenderer(dig)

	return dig, nil
}

// Hash implements digest.Digest interface.
func (dig *Video) Hash() string {
	dig.crit.Lock()
	defer dig.crit.Unlock()
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements digest.Digest interface.
func (dig *Video) ResetDigest() {
	dig.crit.Lock()
	defer dig.crit.Unlock()
	for i := range dig.digest {
		dig.digest[i] = 0
	}
}

// Frames returns the frame number of the most recent frame added to the
// digest.
func (dig *Video) Frames() int {
	dig.crit.Lock()
	defer dig.crit.Unlock()
	return dig.frameNum
}

// NewFrame implements lcd.FrameRenderer interface.
func (dig *Video) NewFrame(frameNum int, pixels []lcd.Color) error {
	dig.crit.Lock()
	defer dig.crit.Unlock()

	// chain fingerprints by copying the value of the last fingerprint
	// to the head of the video data
	n := copy(dig.pixels, dig.digest[:])
	if n != len(dig.digest) {
		return curated.Errorf("digest: video: %v", "digest error during new frame")
	}

	i := n
	for _, c := range pixels {
		if i > len(dig.pixels)-pixelDepth {
			break
		}
		dig.pixels[i] = byte(c)
		dig.pixels[i+1] = byte(c >> 8)
		i += pixelDepth
	}

	dig.digest = sha1.Sum(dig.pixels)
	dig.frameNum = frameNum
	return nil
}
