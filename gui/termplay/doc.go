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

// Package termplay presents the board in a terminal. Each character cell
// shows two LCD pixels using the upper half block character, with the
// foreground colour set to the upper pixel and the background colour set to
// the lower pixel. The full LCD requires a terminal of 128 columns and 80
// rows. Smaller terminals show the top-left of the LCD.
//
// Terminals do not report key releases so the keys are best handled by a
// userinput.Controllers with a non-zero PulseDuration.
//
// Audio is optional and is played through the default sound device.
package termplay
