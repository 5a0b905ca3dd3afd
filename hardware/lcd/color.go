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

package lcd

import "fmt"

// Color is a 16bit colour value in the BGR565 format used by the LCD
// controller.
type Color uint16

// List of named colours.
const (
	Black  Color = 0x0000
	White  Color = 0xffff
	Red    Color = 0x001f
	Green  Color = 0x07e0
	Blue   Color = 0xf800
	Yellow Color = 0x07ff
	Pink   Color = 0xfc1f
)

func (c Color) String() string {
	return fmt.Sprintf("0x%04x", uint16(c))
}

// RGB returns the colour as 8bit red, green and blue components.
func (c Color) RGB() (uint8, uint8, uint8) {
	r := uint8(c & 0x1f)
	g := uint8((c >> 5) & 0x3f)
	b := uint8((c >> 11) & 0x1f)

	// expand to 8bits by replicating the most significant bits
	return r<<3 | r>>2, g<<2 | g>>4, b<<3 | b>>2
}

// FromRGB creates a Color from 8bit red, green and blue components.
func FromRGB(r, g, b uint8) Color {
	return Color(uint16(b>>3)<<11 | uint16(g>>2)<<5 | uint16(r>>3))
}
