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

// Package game is the firmware running on the board. It is a two player
// bat and ball game.
//
// The playing field, both paddles and the ball are layers in a single
// shape.Layers list. The list also defines the paint priority of the layers.
// The ball and the paddles are also MovingLayers. A MovingLayer adds a
// velocity to a layer.
//
// The watchdog interrupt handler (Game.Interrupt) is the only place where the
// game state changes. Every fifteenth interrupt the ball is advanced, the
// paddles are moved according to the switches and the buzzer is updated. A
// redraw is then requested of the main loop (Game.Main), which commits the
// pending positions of the moving layers and repaints the parts of the screen
// that have changed.
package game
