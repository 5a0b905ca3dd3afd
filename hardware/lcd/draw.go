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

// Character cell dimensions for the 5x7 font. The cell is one row taller than
// the glyph and strings advance one column further than the glyph width.
const (
	CharWidth   = 5
	CharHeight  = 8
	CharAdvance = CharWidth + 1
)

// DrawChar5x7 draws a single character with its top-left corner at the
// specified column and row. Every pixel of the character cell is written,
// either in the foreground or the background colour.
func DrawChar5x7(d Display, col, row int, c byte, fg, bg Color) {
	g := glyph(c)
	d.SetArea(col, row, col+CharWidth-1, row+CharHeight-1)
	for r := range CharHeight {
		bit := uint8(1) << r
		for cl := range CharWidth {
			if g[cl]&bit != 0 {
				d.WriteColor(fg)
			} else {
				d.WriteColor(bg)
			}
		}
	}
}

// DrawString5x7 draws a string of characters starting at the specified column
// and row. The string is drawn until the end of the string or the first NUL
// character, whichever comes first.
func DrawString5x7(d Display, col, row int, s string, fg, bg Color) {
	for i := range len(s) {
		if s[i] == 0 {
			return
		}
		DrawChar5x7(d, col, row, s[i], fg, bg)
		col += CharAdvance
	}
}
