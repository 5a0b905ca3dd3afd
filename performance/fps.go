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

package performance

import "github.com/jetsetilly/shapemotion/hardware/preferences"

// ExpectedFPS returns the number of frames per second the game produces when
// the board is running in real time.
func ExpectedFPS(prefs *preferences.Preferences) float64 {
	return float64(prefs.WDTRate.Get().(int)) / float64(prefs.WDTDivisor.Get().(int))
}

// CalcFPS takes the the number of frames and duration (in seconds) and returns
// the frames-per-second and the accuracy of that value as a percentage.
func CalcFPS(prefs *preferences.Preferences, numFrames int, duration float64) (fps float64, accuracy float64) {
	fps = float64(numFrames) / duration
	accuracy = 100 * float64(numFrames) / (duration * ExpectedFPS(prefs))
	return fps, accuracy
}
