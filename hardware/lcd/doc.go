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

// Package lcd emulates the 128x160 colour LCD fitted to the board.
//
// The display is directly addressed. A drawing window is selected with
// SetArea() and colours are then streamed into the window with WriteColor().
// The window is filled row-major, left to right and top to bottom. When the
// window is full, writing continues from the top-left of the window again.
// Pixels of the window that fall outside of the glass are silently dropped.
//
// There is no double buffering. Completed frames are announced with
// EndFrame(), which passes a copy of the glass to every FrameRenderer added
// with AddFrameRenderer().
//
// The text functions DrawChar5x7() and DrawString5x7() write to any Display
// implementation using the board's 5x7 font.
package lcd
