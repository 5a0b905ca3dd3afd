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

// Package easyterm is a wrapper for "github.com/pkg/term/termios". It puts
// the terminal into cbreak mode so that individual keypresses can be read
// without waiting for the return key, and translates the byte sequences
// produced by the terminal into key names.
package easyterm

import (
	"fmt"
	"os"
	"sync"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// Terminal is the main container for posix terminals.
type Terminal struct {
	input  *os.File
	output *os.File

	canAttr    unix.Termios
	cbreakAttr unix.Termios

	// cbreak is true if the terminal is currently in cbreak mode
	cbreak bool

	mu sync.Mutex
}

// Initialise the fields in the Terminal struct. The terminal is left in
// canonical mode.
func (pt *Terminal) Initialise(inputFile, outputFile *os.File) error {
	if inputFile == nil {
		return fmt.Errorf("easyterm: Terminal requires an input file")
	}
	if outputFile == nil {
		return fmt.Errorf("easyterm: Terminal requires an output file")
	}

	pt.input = inputFile
	pt.output = outputFile

	// prepare the attributes for the different terminal modes we'll be using
	err := termios.Tcgetattr(pt.input.Fd(), &pt.canAttr)
	if err != nil {
		return fmt.Errorf("easyterm: %w", err)
	}
	pt.cbreakAttr = pt.canAttr
	termios.Cfmakecbreak(&pt.cbreakAttr)

	return nil
}

// CleanUp returns the terminal to canonical mode.
func (pt *Terminal) CleanUp() error {
	return pt.CanonicalMode()
}

// Print writes the formatted string to the output file.
func (pt *Terminal) Print(s string, a ...any) {
	pt.mu.Lock()
	defer pt.mu.Unlock()
	fmt.Fprintf(pt.output, s, a...)
}

// CanonicalMode puts terminal into normal, everyday canonical mode.
func (pt *Terminal) CanonicalMode() error {
	pt.mu.Lock()
	defer pt.mu.Unlock()
	if !pt.cbreak {
		return nil
	}
	if err := termios.Tcsetattr(pt.input.Fd(), termios.TCSANOW, &pt.canAttr); err != nil {
		return fmt.Errorf("easyterm: %w", err)
	}
	pt.cbreak = false
	return nil
}

// CBreakMode puts terminal into cbreak mode. Input is available one
// keypress at a time and is not echoed. Signals from the keyboard (ctrl-c)
// are still generated.
func (pt *Terminal) CBreakMode() error {
	pt.mu.Lock()
	defer pt.mu.Unlock()
	if err := termios.Tcsetattr(pt.input.Fd(), termios.TCSANOW, &pt.cbreakAttr); err != nil {
		return fmt.Errorf("easyterm: %w", err)
	}
	pt.cbreak = true
	return nil
}

// Flush makes sure the terminal's input/output buffers are empty.
func (pt *Terminal) Flush() error {
	if err := termios.Tcflush(pt.input.Fd(), termios.TCIFLUSH); err != nil {
		return fmt.Errorf("easyterm: %w", err)
	}
	if err := termios.Tcflush(pt.output.Fd(), termios.TCOFLUSH); err != nil {
		return fmt.Errorf("easyterm: %w", err)
	}
	return nil
}

// ReadKey blocks until a key is pressed and returns the name of the key. See
// KeyName() for the format of the name.
func (pt *Terminal) ReadKey() (string, error) {
	b := make([]byte, 8)
	for {
		n, err := pt.input.Read(b)
		if err != nil {
			return "", fmt.Errorf("easyterm: %w", err)
		}
		if k := KeyName(b[:n]); k != "" {
			return k, nil
		}
	}
}
