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

package easyterm_test

import (
	"testing"

	"github.com/jetsetilly/shapemotion/easyterm"
	"github.com/jetsetilly/shapemotion/test"
)

func TestKeyName(t *testing.T) {
	test.ExpectEquality(t, easyterm.KeyName([]byte("q")), "Q")
	test.ExpectEquality(t, easyterm.KeyName([]byte("A")), "A")
	test.ExpectEquality(t, easyterm.KeyName([]byte("1")), "1")
	test.ExpectEquality(t, easyterm.KeyName([]byte(" ")), "Space")
	test.ExpectEquality(t, easyterm.KeyName([]byte{easyterm.KeyEsc}), "Escape")
	test.ExpectEquality(t, easyterm.KeyName([]byte{easyterm.KeyEsc, '[', 'A'}), "Up")
	test.ExpectEquality(t, easyterm.KeyName([]byte{easyterm.KeyEsc, '[', 'B'}), "Down")
	test.ExpectEquality(t, easyterm.KeyName([]byte{easyterm.KeyEsc, '[', 'C'}), "Right")
	test.ExpectEquality(t, easyterm.KeyName([]byte{easyterm.KeyEsc, '[', 'D'}), "Left")
	test.ExpectEquality(t, easyterm.KeyName([]byte{easyterm.KeyEsc, '[', 'Z'}), "")
	test.ExpectEquality(t, easyterm.KeyName([]byte{easyterm.KeyCtrlC}), "")
	test.ExpectEquality(t, easyterm.KeyName(nil), "")
}
