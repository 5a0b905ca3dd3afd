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

package recorder_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/shapemotion/curated"
	"github.com/jetsetilly/shapemotion/environment"
	"github.com/jetsetilly/shapemotion/game"
	"github.com/jetsetilly/shapemotion/hardware"
	"github.com/jetsetilly/shapemotion/hardware/preferences"
	"github.com/jetsetilly/shapemotion/hardware/switches"
	"github.com/jetsetilly/shapemotion/recorder"
	"github.com/jetsetilly/shapemotion/test"
)

func newBoard(t *testing.T) *hardware.Board {
	t.Helper()
	p, err := preferences.NewPreferencesFile(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)
	env, err := environment.NewEnvironment(environment.MainEmulation, p)
	test.DemandSuccess(t, err)
	env.Quiet = true
	brd, err := hardware.NewBoard(env)
	test.DemandSuccess(t, err)
	return brd
}

func step(t *testing.T, brd *hardware.Board, n int) {
	t.Helper()
	for range n {
		_, err := brd.Step()
		test.DemandSuccess(t, err)
	}
}

// record a short session. the left paddle is moved down and the right paddle
// up, with a pause in between
func record(t *testing.T, transcript string) {
	t.Helper()

	brd := newBoard(t)
	test.DemandSuccess(t, brd.Env().Prefs.WDTDivisor.Set(5))

	rec, err := recorder.NewRecorder(transcript, brd)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, brd.AttachFirmware(game.NewGame(brd)))

	step(t, brd, 20)
	brd.Switches.Press(switches.SW2)
	step(t, brd, 30)
	brd.Switches.Release(switches.SW2)
	step(t, brd, 7)
	brd.Switches.Press(switches.SW3)
	step(t, brd, 22)
	brd.Switches.Release(switches.SW3)
	step(t, brd, 50)

	test.DemandSuccess(t, rec.End())
}

func TestRecordAndPlayback(t *testing.T) {
	transcript := filepath.Join(t.TempDir(), "transcript")
	record(t, transcript)

	plb, err := recorder.NewPlayback(transcript)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, plb.Rate, preferences.DefaultWDTRate)
	test.ExpectEquality(t, plb.Divisor, 5)
	test.ExpectEquality(t, plb.Background, "0x0000")
	test.ExpectEquality(t, plb.EndInterrupt(), uint64(130))

	brd := newBoard(t)
	test.DemandSuccess(t, plb.AttachToBoard(brd))
	test.ExpectEquality(t, brd.Env().Prefs.WDTDivisor.Get().(int), 5)

	g := game.NewGame(brd)
	test.DemandSuccess(t, brd.AttachFirmware(g))

	for !plb.Finished() {
		_, err := brd.Step()
		test.DemandSuccess(t, err)
	}
	test.ExpectEquality(t, brd.WDT.Count(), uint64(130))

	// the paddles have moved as they did during the recording
	test.ExpectInequality(t, g.Layer(g.Left).Pos.Y, 38)
	test.ExpectInequality(t, g.Layer(g.Right).Pos.Y, 130)
}

func TestPlaybackMismatch(t *testing.T) {
	transcript := filepath.Join(t.TempDir(), "transcript")
	record(t, transcript)

	// corrupt the digest of the final entry
	b, err := os.ReadFile(transcript)
	test.DemandSuccess(t, err)
	lines := strings.Split(string(b), "\n")
	last := strings.Split(lines[len(lines)-2], ", ")
	last[2] = strings.Repeat("0", len(last[2]))
	lines[len(lines)-2] = strings.Join(last, ", ")
	test.DemandSuccess(t, os.WriteFile(transcript, []byte(strings.Join(lines, "\n")), 0o600))

	plb, err := recorder.NewPlayback(transcript)
	test.DemandSuccess(t, err)

	brd := newBoard(t)
	test.DemandSuccess(t, plb.AttachToBoard(brd))
	test.DemandSuccess(t, brd.AttachFirmware(game.NewGame(brd)))

	for !plb.Finished() {
		_, err = brd.Step()
		if err != nil {
			break
		}
	}
	test.ExpectEquality(t, curated.Is(err, recorder.PlaybackMismatch), true)
	test.ExpectEquality(t, brd.WDT.Count(), uint64(129))
}

func TestRecorderFileExists(t *testing.T) {
	transcript := filepath.Join(t.TempDir(), "transcript")
	test.DemandSuccess(t, os.WriteFile(transcript, []byte{}, 0o600))

	_, err := recorder.NewRecorder(transcript, newBoard(t))
	test.ExpectFailure(t, err)
}

func TestBadTranscript(t *testing.T) {
	transcript := filepath.Join(t.TempDir(), "transcript")

	test.DemandSuccess(t, os.WriteFile(transcript, []byte("not a transcript\n"), 0o600))
	_, err := recorder.NewPlayback(transcript)
	test.ExpectFailure(t, err)

	test.DemandSuccess(t, os.WriteFile(transcript, []byte("shapemotion transcript\nv0.1.0\n250, 15, 0x0000\n10, 1111\n"), 0o600))
	_, err = recorder.NewPlayback(transcript)
	test.ExpectFailure(t, err)

	test.DemandSuccess(t, os.WriteFile(transcript, []byte("shapemotion transcript\nv0.1.0\n250, 15, 0x0000\n10, 1111, abcd\n5, 1101, abcd\n"), 0o600))
	_, err = recorder.NewPlayback(transcript)
	test.ExpectFailure(t, err)

	_, err = recorder.NewPlayback(filepath.Join(t.TempDir(), "missing"))
	test.ExpectFailure(t, err)
}

func TestAbort(t *testing.T) {
	transcript := filepath.Join(t.TempDir(), "transcript")

	rec, err := recorder.NewRecorder(transcript, newBoard(t))
	test.DemandSuccess(t, err)
	_, err = os.Stat(transcript)
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, rec.Abort())
	_, err = os.Stat(transcript)
	test.ExpectSuccess(t, os.IsNotExist(err))
}
