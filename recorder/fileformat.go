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

package recorder

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jetsetilly/shapemotion/curated"
	"github.com/jetsetilly/shapemotion/version"
)

// transcript entry format
// -----------------------
//
// <interrupt>, <switch register>, <display digest>

const (
	fieldInterrupt int = iota
	fieldSwitches
	fieldHash
	numFields
)

const fieldSep = ", "

// transcript header format
// ------------------------
//
// <magic string>
// <version>
// <watchdog rate>, <watchdog divisor>, <background colour>

const (
	lineMagic int = iota
	lineVersion
	lineBoard
	numHeaderLines
)

const magicString = "shapemotion transcript"

const (
	fieldBoardRate int = iota
	fieldBoardDivisor
	fieldBoardBackground
	numBoardFields
)

func (rec *Recorder) writeHeader() error {
	lines := make([]string, numHeaderLines)

	prefs := rec.brd.Env().Prefs

	// add header information
	lines[lineMagic] = magicString
	lines[lineVersion], _, _ = version.Version()
	lines[lineBoard] = fmt.Sprintf("%s%s%s%s%s\n",
		prefs.WDTRate.String(), fieldSep,
		prefs.WDTDivisor.String(), fieldSep,
		prefs.LCDBackground.String())

	line := strings.Join(lines, "\n")

	n, err := io.WriteString(rec.output, line)
	if err != nil {
		rec.output.Close()
		return curated.Errorf("recorder: %v", err)
	}

	if n != len(line) {
		rec.output.Close()
		return curated.Errorf("recorder: %v", "output truncated")
	}

	return nil
}

func (plb *Playback) readHeader(lines []string) error {
	if len(lines) < numHeaderLines {
		return curated.Errorf("playback: %v", "file too short")
	}

	if lines[lineMagic] != magicString {
		return curated.Errorf("playback: %v", "not a transcript file")
	}

	plb.Version = lines[lineVersion]

	toks := strings.Split(lines[lineBoard], fieldSep)
	if len(toks) != numBoardFields {
		return curated.Errorf("playback: expected %d fields at line %d", numBoardFields, lineBoard+1)
	}

	var err error

	plb.Rate, err = strconv.Atoi(toks[fieldBoardRate])
	if err != nil {
		return curated.Errorf("playback: %v line %d", err, lineBoard+1)
	}

	plb.Divisor, err = strconv.Atoi(toks[fieldBoardDivisor])
	if err != nil {
		return curated.Errorf("playback: %v line %d", err, lineBoard+1)
	}

	plb.Background = toks[fieldBoardBackground]

	return nil
}
