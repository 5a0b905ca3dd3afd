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

	"github.com/jetsetilly/shapemotion/curated"
	"github.com/jetsetilly/shapemotion/digest"
	"github.com/jetsetilly/shapemotion/hardware"
	"github.com/jetsetilly/shapemotion/logger"
)

// Recorder transcribes user input to a file. It implements the
// hardware.InputHandler interface.
type Recorder struct {
	transcript string
	output     *os.File

	brd    *hardware.Board
	digest *digest.Video

	// the most recently recorded state of the switch register. a negative
	// value means no state has yet been recorded
	last int

	entries int
}

// NewRecorder is the preferred method of implementation for the Recorder type.
// The recorder must be created before firmware is attached to the board.
func NewRecorder(transcript string, brd *hardware.Board) (*Recorder, error) {
	var err error

	// check we're working with correct information
	if brd == nil {
		return nil, curated.Errorf("recorder: hardware is not suitable for recording")
	}

	rec := &Recorder{
		transcript: transcript,
		brd:        brd,
		last:       -1,
	}

	rec.digest, err = digest.NewVideo(brd.LCD)
	if err != nil {
		return nil, curated.Errorf("recorder: %v", err)
	}

	// open file
	_, err = os.Stat(transcript)
	if os.IsNotExist(err) {
		rec.output, err = os.Create(transcript)
		if err != nil {
			return nil, curated.Errorf("recorder: can't create file")
		}
	} else {
		return nil, curated.Errorf("recorder: file already exists")
	}

	err = rec.writeHeader()
	if err != nil {
		return nil, err
	}

	brd.AddInputHandler(rec)

	logger.Logf(brd.Env(), "recorder", "recording to %s", transcript)

	return rec, nil
}

// Abort closes and removes the transcript file. It should be used instead of
// End() when the emulation never started.
func (rec *Recorder) Abort() error {
	err := rec.output.Close()
	if rmErr := os.Remove(rec.transcript); rmErr != nil && err == nil {
		err = rmErr
	}
	if err != nil {
		return curated.Errorf("recorder: %v", err)
	}

	logger.Logf(rec.brd.Env(), "recorder", "%s aborted", rec.transcript)

	return nil
}

func (rec *Recorder) String() string {
	return fmt.Sprintf("%s (%d entries)", rec.transcript, rec.entries)
}

// End flushes all remaining transcription to the output file and closes it.
// The final entry of the transcript records the state of the board at the
// point the recording ended.
func (rec *Recorder) End() error {
	// write the power off event to the transcript
	err := rec.writeEntry(rec.brd.WDT.Count()+1, rec.brd.Switches.State())
	if err != nil {
		return err
	}

	err = rec.output.Close()
	if err != nil {
		return curated.Errorf("recorder: %v", err)
	}

	logger.Logf(rec.brd.Env(), "recorder", "%s", rec)

	return nil
}

// HandleInput implements the hardware.InputHandler interface.
func (rec *Recorder) HandleInput(interrupt uint64) error {
	state := rec.brd.Switches.State()
	if int(state) == rec.last {
		return nil
	}
	rec.last = int(state)
	return rec.writeEntry(interrupt, state)
}

func (rec *Recorder) writeEntry(interrupt uint64, state uint8) error {
	if rec.output == nil {
		return curated.Errorf("recorder: recording has not been started")
	}

	line := fmt.Sprintf("%d%s%04b%s%s\n", interrupt, fieldSep, state, fieldSep, rec.digest.Hash())

	n, err := io.WriteString(rec.output, line)
	if err != nil {
		rec.output.Close()
		return curated.Errorf("recorder: %v", err)
	}
	if n != len(line) {
		rec.output.Close()
		return curated.Errorf("recorder: output truncated")
	}

	rec.entries++

	return nil
}
