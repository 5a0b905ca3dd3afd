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

// Package clocks defines the constant values that define the speed of the
// clocks on the board.
//
// The master clock is configured by the board support code to run at 16MHz.
// The sub-main clock, which drives timer A and therefore the buzzer, is the
// master clock divided by eight.
package clocks

// Clock speeds in Hz.
const (
	MCLK  = 16000000
	SMCLK = MCLK / 8
)

// AudioSampleRate is the sample rate of the audio generated from the buzzer
// output.
const AudioSampleRate = 44100
