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

package lcd_test

import (
	"testing"

	"github.com/jetsetilly/shapemotion/hardware/lcd"
	"github.com/jetsetilly/shapemotion/test"
)

func TestWindow(t *testing.T) {
	l := lcd.NewLCD()

	// 3x2 window is filled row-major
	l.SetArea(10, 20, 12, 21)
	for i := range 6 {
		l.WriteColor(lcd.Color(i + 1))
	}
	test.ExpectEquality(t, l.Pixel(10, 20), lcd.Color(1))
	test.ExpectEquality(t, l.Pixel(12, 20), lcd.Color(3))
	test.ExpectEquality(t, l.Pixel(10, 21), lcd.Color(4))
	test.ExpectEquality(t, l.Pixel(12, 21), lcd.Color(6))

	// outside of the window is untouched
	test.ExpectEquality(t, l.Pixel(13, 20), lcd.Black)
	test.ExpectEquality(t, l.Pixel(10, 22), lcd.Black)

	// writing beyond the end of the window wraps to the start
	l.WriteColor(lcd.White)
	test.ExpectEquality(t, l.Pixel(10, 20), lcd.White)
}

func TestReversedWindow(t *testing.T) {
	l := lcd.NewLCD()
	l.SetArea(5, 5, 4, 4)
	l.WriteColor(lcd.Red)
	test.ExpectEquality(t, l.Pixel(4, 4), lcd.Red)
}

func TestClipping(t *testing.T) {
	l := lcd.NewLCD()

	// window hanging off the left edge of the glass
	l.SetArea(-1, 0, 0, 0)
	l.WriteColor(lcd.Red)
	l.WriteColor(lcd.Green)
	test.ExpectEquality(t, l.Pixel(0, 0), lcd.Green)

	// window hanging off the bottom-right of the glass
	l.SetArea(lcd.Width-1, lcd.Height-1, lcd.Width, lcd.Height)
	for range 4 {
		l.WriteColor(lcd.Blue)
	}
	test.ExpectEquality(t, l.Pixel(lcd.Width-1, lcd.Height-1), lcd.Blue)
	test.ExpectEquality(t, l.Pixel(lcd.Width, lcd.Height), lcd.Black)
}

func TestClear(t *testing.T) {
	l := lcd.NewLCD()
	l.Clear(lcd.Pink)
	for _, p := range l.Pixels() {
		test.DemandEquality(t, p, lcd.Pink)
	}
}

type frameCounter struct {
	frames int
	last   []lcd.Color
}

func (f *frameCounter) NewFrame(frameNum int, pixels []lcd.Color) error {
	f.frames = frameNum
	f.last = pixels
	return nil
}

func TestFrameRenderer(t *testing.T) {
	l := lcd.NewLCD()

	f := &frameCounter{}
	l.AddFrameRenderer(f)
	l.AddFrameRenderer(f)

	l.SetArea(0, 0, 0, 0)
	l.WriteColor(lcd.Red)
	test.ExpectSuccess(t, l.EndFrame())
	test.ExpectEquality(t, f.frames, 1)
	test.ExpectEquality(t, l.FrameNum(), 1)
	test.ExpectEquality(t, len(f.last), lcd.Width*lcd.Height)
	test.ExpectEquality(t, f.last[0], lcd.Red)

	l.RemoveFrameRenderer(f)
	test.ExpectSuccess(t, l.EndFrame())
	test.ExpectEquality(t, f.frames, 1)
	test.ExpectEquality(t, l.FrameNum(), 2)
}

func TestColor(t *testing.T) {
	r, g, b := lcd.Red.RGB()
	test.ExpectEquality(t, r, uint8(0xff))
	test.ExpectEquality(t, g, uint8(0x00))
	test.ExpectEquality(t, b, uint8(0x00))

	r, g, b = lcd.Blue.RGB()
	test.ExpectEquality(t, r, uint8(0x00))
	test.ExpectEquality(t, b, uint8(0xff))

	test.ExpectEquality(t, lcd.FromRGB(0xff, 0xff, 0xff), lcd.White)
	test.ExpectEquality(t, lcd.FromRGB(0x00, 0xff, 0x00), lcd.Green)
	test.ExpectEquality(t, lcd.Green.String(), "0x07e0")
}

func TestDrawChar(t *testing.T) {
	l := lcd.NewLCD()
	lcd.DrawChar5x7(l, 0, 0, '1', lcd.White, lcd.Blue)

	// the glyph for '1' is a vertical bar in the centre column with a serif
	// at the top-left and a base along the bottom of the glyph
	test.ExpectEquality(t, l.Pixel(2, 0), lcd.White)
	test.ExpectEquality(t, l.Pixel(2, 3), lcd.White)
	test.ExpectEquality(t, l.Pixel(1, 1), lcd.White)
	test.ExpectEquality(t, l.Pixel(0, 0), lcd.Blue)
	test.ExpectEquality(t, l.Pixel(3, 6), lcd.White)
	test.ExpectEquality(t, l.Pixel(4, 6), lcd.Blue)

	// the bottom row of the cell is always background
	for c := range lcd.CharWidth {
		test.ExpectEquality(t, l.Pixel(c, 7), lcd.Blue)
	}

	// column beyond the cell is untouched
	test.ExpectEquality(t, l.Pixel(5, 0), lcd.Black)
}

func TestDrawString(t *testing.T) {
	l := lcd.NewLCD()
	lcd.DrawString5x7(l, 10, 0, "P1\x00X", lcd.Green, lcd.Black)

	// 'P' has a solid left column
	for r := range 7 {
		test.ExpectEquality(t, l.Pixel(10, r), lcd.Green)
	}

	// second character starts one column after the first cell
	test.ExpectEquality(t, l.Pixel(10+lcd.CharAdvance+2, 3), lcd.Green)

	// drawing stops at the NUL so the third cell is never drawn
	for r := range lcd.CharHeight {
		for c := range lcd.CharWidth {
			test.DemandEquality(t, l.Pixel(10+2*lcd.CharAdvance+c, r), lcd.Black)
		}
	}

	// unknown characters are drawn as spaces
	lcd.DrawChar5x7(l, 50, 50, 0x01, lcd.White, lcd.Red)
	test.ExpectEquality(t, l.Pixel(52, 53), lcd.Red)
}
