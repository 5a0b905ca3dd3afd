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

// Package recorder handles recording and playback of user input. The Recorder
// type implements the hardware.InputHandler interface and writes every change
// of the switch register to a transcript file, along with the number of the
// interrupt at which the change was seen and a digest of the display at that
// point.
//
// The Playback type reads a transcript and also implements the
// hardware.InputHandler interface. It sets the switch register at the recorded
// interrupts and checks that the display digest matches the digest in the
// transcript. A mismatch stops the playback with a PlaybackMismatch error.
//
// For a playback to succeed the board must be stepped (see
// hardware.Board.Step()) and the Playback must be attached to the board
// before the firmware is attached. A recording can be made with the board
// running in real time but the display digest will then depend on whether the
// main loop finished its frame before the interrupt. Such recordings may fail
// to play back.
package recorder
