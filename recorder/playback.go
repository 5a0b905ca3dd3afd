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
	"os"
	"strconv"
	"strings"

	"github.com/jetsetilly/shapemotion/curated"
	"github.com/jetsetilly/shapemotion/digest"
	"github.com/jetsetilly/shapemotion/hardware"
	"github.com/jetsetilly/shapemotion/logger"
)

type playbackEntry struct {
	interrupt uint64
	switches  uint8
	hash      string

	// the line in the transcript file the playback event appears
	line int
}

// Playback is used to reperform the user input recorded in a previously
// recorded file. It implements the hardware.InputHandler interface.
type Playback struct {
	transcript string

	// header information
	Version    string
	Rate       int
	Divisor    int
	Background string

	sequence []playbackEntry
	seqCt    int

	brd    *hardware.Board
	digest *digest.Video

	// the interrupt of the last entry in the transcript
	endInterrupt uint64
}

func (plb *Playback) String() string {
	if plb.brd == nil || plb.endInterrupt == 0 {
		return plb.transcript
	}
	curr := plb.brd.WDT.Count()
	return fmt.Sprintf("%d/%d (%.1f%%)", curr, plb.endInterrupt, 100*(float64(curr)/float64(plb.endInterrupt)))
}

// Finished returns true if every entry in the transcript has been played back.
func (plb *Playback) Finished() bool {
	return plb.seqCt >= len(plb.sequence)
}

// EndInterrupt returns the interrupt of the final entry in the transcript.
func (plb *Playback) EndInterrupt() uint64 {
	return plb.endInterrupt
}

// NewPlayback is the preferred method of implementation for the Playback type.
func NewPlayback(transcript string) (*Playback, error) {
	var err error

	plb := &Playback{
		transcript: transcript,
		sequence:   make([]playbackEntry, 0),
	}

	tf, err := os.Open(transcript)
	if err != nil {
		return nil, curated.Errorf("playback: %v", err)
	}
	buffer, err := io.ReadAll(tf)
	if err != nil {
		return nil, curated.Errorf("playback: %v", err)
	}
	err = tf.Close()
	if err != nil {
		return nil, curated.Errorf("playback: %v", err)
	}

	// convert file contents to an array of lines
	lines := strings.Split(string(buffer), "\n")

	// read header and perform validation checks
	err = plb.readHeader(lines)
	if err != nil {
		return nil, err
	}

	for i := numHeaderLines; i < len(lines)-1; i++ {
		toks := strings.Split(lines[i], fieldSep)

		if len(toks) != numFields {
			return nil, curated.Errorf("playback: expected %d fields at line %d", numFields, i+1)
		}

		// create a new playbackEntry and convert tokens accordingly. any
		// errors in the transcript causes failure
		entry := playbackEntry{line: i + 1}

		entry.interrupt, err = strconv.ParseUint(toks[fieldInterrupt], 10, 64)
		if err != nil {
			return nil, curated.Errorf("playback: %v line %d, col %d", err, i+1, len(strings.Join(toks[:fieldInterrupt+1], fieldSep)))
		}

		// interrupts must be listed in order. the last entry in the file will
		// be the end interrupt
		if entry.interrupt <= plb.endInterrupt && len(plb.sequence) > 0 {
			return nil, curated.Errorf("playback: entries out of order at line %d", i+1)
		}
		plb.endInterrupt = entry.interrupt

		sw, err := strconv.ParseUint(toks[fieldSwitches], 2, 8)
		if err != nil {
			return nil, curated.Errorf("playback: %v line %d, col %d", err, i+1, len(strings.Join(toks[:fieldSwitches+1], fieldSep)))
		}
		entry.switches = uint8(sw)

		entry.hash = toks[fieldHash]

		// add new entry to list of events in the correct playback sequence
		plb.sequence = append(plb.sequence, entry)
	}

	return plb, nil
}

// AttachToBoard attaches the playback instance to the board. The board's
// preferences are reset to their defaults and then set to the values recorded
// in the transcript.
//
// Playback must be attached before the firmware.
func (plb *Playback) AttachToBoard(brd *hardware.Board) error {
	// check we're working with correct information
	if brd == nil {
		return curated.Errorf("playback: no playback hardware available")
	}
	plb.brd = brd

	var err error

	// we want the machine in a known state. the easiest way to do this is to
	// reset the hardware preferences
	env := brd.Env()
	env.Normalise()

	err = env.Prefs.WDTRate.Set(plb.Rate)
	if err != nil {
		return curated.Errorf("playback: %v", err)
	}
	err = env.Prefs.WDTDivisor.Set(plb.Divisor)
	if err != nil {
		return curated.Errorf("playback: %v", err)
	}
	err = env.Prefs.LCDBackground.Set(plb.Background)
	if err != nil {
		return curated.Errorf("playback: %v", err)
	}

	plb.digest, err = digest.NewVideo(brd.LCD)
	if err != nil {
		return curated.Errorf("playback: %v", err)
	}

	brd.AddInputHandler(plb)

	logger.Logf(env, "playback", "%s: %d entries to interrupt %d", plb.transcript, len(plb.sequence), plb.endInterrupt)

	return nil
}

// Sentinal error returned by HandleInput if a digest mismatch is encountered.
const (
	PlaybackMismatch = "playback: unexpected display at line %d (interrupt %d)"
)

// HandleInput implements the hardware.InputHandler interface.
func (plb *Playback) HandleInput(interrupt uint64) error {
	// we've reached the end of the list of events
	if plb.seqCt >= len(plb.sequence) {
		return nil
	}

	// compare current interrupt with the recording
	entry := plb.sequence[plb.seqCt]
	if entry.interrupt != interrupt {
		return nil
	}

	plb.seqCt++
	if entry.hash != plb.digest.Hash() {
		return curated.Errorf(PlaybackMismatch, entry.line, interrupt)
	}

	plb.brd.Switches.SetState(entry.switches)

	return nil
}
