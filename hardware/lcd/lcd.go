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

import (
	"sync"
)

// Dimensions of the glass in pixels.
const (
	Width  = 128
	Height = 160
)

// Display is the interface to a directly addressed display.
type Display interface {
	// SetArea selects the drawing window. Coordinates are inclusive.
	SetArea(colStart, rowStart, colEnd, rowEnd int)

	// WriteColor writes the colour to the next pixel of the drawing window.
	WriteColor(c Color)
}

// FrameRenderer implementations are given a copy of the glass every time a
// frame is completed. The pixels slice is row-major and must not be retained
// beyond the call.
type FrameRenderer interface {
	NewFrame(frameNum int, pixels []Color) error
}

// LCD emulates the display. It implements the Display interface.
//
// Writes to the display happen on the emulation's main goroutine but the
// contents of the glass can be read from any goroutine.
type LCD struct {
	crit sync.Mutex

	glass [Width * Height]Color

	// the drawing window and the position of the next write
	colStart, rowStart int
	colEnd, rowEnd     int
	col, row           int

	frameNum int
	frame    []Color

	renderers []FrameRenderer
}

// NewLCD is the preferred method of initialisation for the LCD type. The
// drawing window is initially the whole of the glass.
func NewLCD() *LCD {
	l := &LCD{
		frame: make([]Color, Width*Height),
	}
	l.SetArea(0, 0, Width-1, Height-1)
	return l
}

// SetArea implements the Display interface.
func (l *LCD) SetArea(colStart, rowStart, colEnd, rowEnd int) {
	l.crit.Lock()
	defer l.crit.Unlock()

	// the controller swaps reversed coordinates
	if colEnd < colStart {
		colStart, colEnd = colEnd, colStart
	}
	if rowEnd < rowStart {
		rowStart, rowEnd = rowEnd, rowStart
	}

	l.colStart = colStart
	l.rowStart = rowStart
	l.colEnd = colEnd
	l.rowEnd = rowEnd
	l.col = colStart
	l.row = rowStart
}

// WriteColor implements the Display interface.
func (l *LCD) WriteColor(c Color) {
	l.crit.Lock()
	defer l.crit.Unlock()

	if l.col >= 0 && l.col < Width && l.row >= 0 && l.row < Height {
		l.glass[l.row*Width+l.col] = c
	}

	l.col++
	if l.col > l.colEnd {
		l.col = l.colStart
		l.row++
		if l.row > l.rowEnd {
			l.row = l.rowStart
		}
	}
}

// Clear fills the entire glass with a single colour. The drawing window is
// reset to the whole of the glass.
func (l *LCD) Clear(c Color) {
	l.SetArea(0, 0, Width-1, Height-1)

	l.crit.Lock()
	defer l.crit.Unlock()
	for i := range l.glass {
		l.glass[i] = c
	}
}

// Pixel returns the colour of a single pixel. Pixels outside of the glass
// are reported as Black.
func (l *LCD) Pixel(col, row int) Color {
	if col < 0 || col >= Width || row < 0 || row >= Height {
		return Black
	}
	l.crit.Lock()
	defer l.crit.Unlock()
	return l.glass[row*Width+col]
}

// Pixels returns a copy of the glass. The slice is row-major.
func (l *LCD) Pixels() []Color {
	l.crit.Lock()
	defer l.crit.Unlock()
	p := make([]Color, len(l.glass))
	copy(p, l.glass[:])
	return p
}

// FrameNum returns the number of frames that have been completed.
func (l *LCD) FrameNum() int {
	l.crit.Lock()
	defer l.crit.Unlock()
	return l.frameNum
}

// AddFrameRenderer registers an implementation of FrameRenderer. Adding the
// same renderer twice has no effect.
func (l *LCD) AddFrameRenderer(r FrameRenderer) {
	l.crit.Lock()
	defer l.crit.Unlock()
	for _, f := range l.renderers {
		if f == r {
			return
		}
	}
	l.renderers = append(l.renderers, r)
}

// RemoveFrameRenderer removes a previously added FrameRenderer.
func (l *LCD) RemoveFrameRenderer(r FrameRenderer) {
	l.crit.Lock()
	defer l.crit.Unlock()
	for i, f := range l.renderers {
		if f == r {
			l.renderers = append(l.renderers[:i], l.renderers[i+1:]...)
			return
		}
	}
}

// EndFrame marks the end of a frame. Every FrameRenderer is given a copy of
// the glass. The first error returned by a renderer stops the process and is
// returned.
func (l *LCD) EndFrame() error {
	l.crit.Lock()
	l.frameNum++
	frameNum := l.frameNum
	copy(l.frame, l.glass[:])
	renderers := make([]FrameRenderer, len(l.renderers))
	copy(renderers, l.renderers)
	l.crit.Unlock()

	for _, r := range renderers {
		if err := r.NewFrame(frameNum, l.frame); err != nil {
			return err
		}
	}

	return nil
}
