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

// Package digest contains implementations of the lcd.FrameRenderer and
// hardware.AudioMixer interfaces, such that a cryptographic hash is produced.
// The hash can then be used to compare output from subsequent emulation
// executions - if a new hash differs from a previously recorded value then
// something has changed. We use this as the basis for playback verification.
package digest

// Digest implementations should return a cryptographic hash in response to a
// Hash() request. Generation of the hash is achieved via another interface.
type Digest interface {
	Hash() string
	ResetDigest()
}
