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

package playmode_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jetsetilly/shapemotion/environment"
	"github.com/jetsetilly/shapemotion/gui"
	"github.com/jetsetilly/shapemotion/hardware"
	"github.com/jetsetilly/shapemotion/hardware/preferences"
	"github.com/jetsetilly/shapemotion/playmode"
	"github.com/jetsetilly/shapemotion/test"
	"github.com/jetsetilly/shapemotion/userinput"
)

// testGUI records the requests made of it. if quit is true then a quit event
// is sent as soon as the event channel is set
type testGUI struct {
	quit   bool
	fail   bool
	states []gui.EmulationState
}

func (g *testGUI) SetFeature(request gui.FeatureReq, args ...gui.FeatureReqData) error {
	switch request {
	case gui.ReqSetEventChan:
		if g.fail {
			return gui.ArgError(request, "test failure")
		}
		if g.quit {
			args[0].(chan userinput.Event) <- userinput.EventQuit{}
		}
	case gui.ReqState:
		g.states = append(g.states, args[0].(gui.EmulationState))
	default:
		return gui.Unsupported(request)
	}
	return nil
}

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

func TestQuit(t *testing.T) {
	brd := newBoard(t)
	scr := &testGUI{quit: true}

	msg, err := playmode.Play(brd, scr, playmode.Options{})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, msg, "")
	test.ExpectEquality(t, len(scr.states), 2)
	test.ExpectEquality(t, scr.states[0], gui.StateRunning)
	test.ExpectEquality(t, scr.states[1], gui.StateEnding)
}

func TestRecordAndPlayback(t *testing.T) {
	dir := t.TempDir()
	transcript := filepath.Join(dir, "transcript")
	wav := filepath.Join(dir, "audio.wav")
	dump := filepath.Join(dir, "state.dot")

	msg, err := playmode.Play(newBoard(t), &testGUI{}, playmode.Options{
		Record:     true,
		Transcript: transcript,
		Wav:        wav,
		Dump:       dump,
		Duration:   200 * time.Millisecond,
	})
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.HasPrefix(msg, "recording completed"))

	for _, fn := range []string{transcript, wav, dump} {
		_, err = os.Stat(fn)
		test.ExpectSuccess(t, err, fn)
	}

	msg, err = playmode.Play(newBoard(t), &testGUI{}, playmode.Options{
		Transcript: transcript,
	})
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.HasPrefix(msg, "playback completed"))

	// paced playback takes at least as long as the recording
	start := time.Now()
	msg, err = playmode.Play(newBoard(t), &testGUI{}, playmode.Options{
		Transcript: transcript,
		Paced:      true,
	})
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.HasPrefix(msg, "playback completed"))
	test.ExpectSuccess(t, time.Since(start) >= 150*time.Millisecond)
}

func TestRecordingRemovedOnFailedStart(t *testing.T) {
	transcript := filepath.Join(t.TempDir(), "transcript")

	_, err := playmode.Play(newBoard(t), &testGUI{fail: true}, playmode.Options{
		Record:     true,
		Transcript: transcript,
	})
	test.ExpectFailure(t, err)

	_, err = os.Stat(transcript)
	test.ExpectSuccess(t, os.IsNotExist(err))
}

func TestMissingTranscript(t *testing.T) {
	_, err := playmode.Play(newBoard(t), &testGUI{}, playmode.Options{
		Transcript: filepath.Join(t.TempDir(), "missing"),
	})
	test.ExpectFailure(t, err)
}
