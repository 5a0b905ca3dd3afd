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

package easyterm

import (
	"strings"
	"unicode"
)

// list of ASCII codes for non-alphanumeric characters
const (
	KeyCtrlC          = 3
	KeyTab            = 9
	KeyCarriageReturn = 13
	KeyEsc            = 27
	KeyBackspace      = 127
)

// ASCII code for the character that follows KeyEsc in a cursor sequence
const EscCursor = '['

// list of ASCII code for characters that can follow EscCursor
const (
	CursorUp       = 'A'
	CursorDown     = 'B'
	CursorForward  = 'C'
	CursorBackward = 'D'
)

// KeyName translates the bytes produced by a single keypress into a key name.
// Printable characters are returned in upper case. Cursor keys are returned
// as "Up", "Down", "Left" and "Right". The empty string is returned if the
// bytes are not recognised.
func KeyName(b []byte) string {
	if len(b) == 0 {
		return ""
	}

	switch b[0] {
	case KeyEsc:
		if len(b) == 1 {
			return "Escape"
		}
		if len(b) >= 3 && b[1] == EscCursor {
			switch b[2] {
			case CursorUp:
				return "Up"
			case CursorDown:
				return "Down"
			case CursorForward:
				return "Right"
			case CursorBackward:
				return "Left"
			}
		}
		return ""
	case KeyTab:
		return "Tab"
	case KeyCarriageReturn, '\n':
		return "Return"
	case KeyBackspace:
		return "Backspace"
	case ' ':
		return "Space"
	}

	r := rune(b[0])
	if r > unicode.MaxASCII || !unicode.IsPrint(r) {
		return ""
	}
	return strings.ToUpper(string(r))
}
