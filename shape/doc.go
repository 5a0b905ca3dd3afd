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

// Package shape provides the geometry used to draw on the LCD. Shapes are
// abstract: they know their bounds and whether a pixel is inside them when
// centred at a given position, but they do not know their position or
// colour. A Layer places a shape on the display with a colour.
//
// Layers are kept in an ordered Layers slice. When more than one layer covers
// a pixel, the layer that comes first in the slice gives the pixel its
// colour.
package shape
