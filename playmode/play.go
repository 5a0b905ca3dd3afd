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

// Package playmode runs the emulation in real time, presented by a GUI, with
// no debugging features. Sessions can be recorded and played back.
package playmode

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/jetsetilly/shapemotion/curated"
	"github.com/jetsetilly/shapemotion/game"
	"github.com/jetsetilly/shapemotion/gui"
	"github.com/jetsetilly/shapemotion/hardware"
	"github.com/jetsetilly/shapemotion/hardware/switches"
	"github.com/jetsetilly/shapemotion/logger"
	"github.com/jetsetilly/shapemotion/paths"
	"github.com/jetsetilly/shapemotion/performance/limiter"
	"github.com/jetsetilly/shapemotion/recorder"
	"github.com/jetsetilly/shapemotion/statedump"
	"github.com/jetsetilly/shapemotion/userinput"
	"github.com/jetsetilly/shapemotion/wavwriter"
)

// Options for the Play() function.
type Options struct {
	// if Record is true then a new recording is made to Transcript. if
	// Transcript is empty a unique filename is created
	//
	// if Record is false and Transcript is not empty then the transcript is
	// played back
	Record     bool
	Transcript string

	// write buzzer output to the named WAV file
	Wav string

	// write graphviz representation of the game state to the named file when
	// the emulation ends
	Dump string

	// see userinput.Controllers.PulseDuration
	PulseDuration time.Duration

	// end the emulation after the duration. zero means no limit
	Duration time.Duration

	// playback runs as quickly as possible unless Paced is true, in which
	// case interrupts are limited to the watchdog rate
	Paced bool
}

type playmode struct {
	brd  *hardware.Board
	scr  gui.GUI
	game *game.Game

	controllers userinput.Controllers
	userinput   chan userinput.Event
	handle      userinput.HandleInput

	// ctrl-c is caught so that recordings can be completed
	intChan chan os.Signal

	plb      *recorder.Playback
	deadline time.Time
}

// noInput is used in place of the board's switches during playback. the
// switches are set by the transcript.
type noInput struct{}

func (noInput) Press(_ switches.Switch) {}
func (noInput) Release(_ switches.Switch) {}

// Play sets the emulation running. The GUI should already be attached to the
// board as a frame renderer. Play returns a description of what has been
// completed, suitable for presenting to the user.
func Play(brd *hardware.Board, scr gui.GUI, opts Options) (_ string, rerr error) {
	pl := &playmode{
		brd:         brd,
		scr:         scr,
		controllers: userinput.Controllers{PulseDuration: opts.PulseDuration},
		userinput:   make(chan userinput.Event, 10),
		handle:      brd.Switches,
		intChan:     make(chan os.Signal, 1),
	}

	var rec *recorder.Recorder
	var err error

	// true once the emulation has started
	var started bool

	// recorder and playback must be attached before the firmware
	if opts.Record {
		if opts.Transcript == "" {
			opts.Transcript = paths.UniqueFilename("recording", "")
		}
		rec, err = recorder.NewRecorder(opts.Transcript, brd)
		if err != nil {
			return "", curated.Errorf("playmode: %v", err)
		}

		// remove the transcript if the emulation fails to start
		defer func() {
			if rerr != nil && !started {
				_ = rec.Abort()
			}
		}()
	} else if opts.Transcript != "" {
		pl.plb, err = recorder.NewPlayback(opts.Transcript)
		if err != nil {
			return "", curated.Errorf("playmode: %v", err)
		}
		err = pl.plb.AttachToBoard(brd)
		if err != nil {
			return "", curated.Errorf("playmode: %v", err)
		}
		pl.handle = noInput{}
	}

	if opts.Wav != "" {
		aw, err := wavwriter.New(brd.Env(), opts.Wav)
		if err != nil {
			return "", curated.Errorf("playmode: %v", err)
		}
		brd.AddAudioMixer(aw)
	}

	pl.game = game.NewGame(brd)
	err = brd.AttachFirmware(pl.game)
	if err != nil {
		return "", curated.Errorf("playmode: %v", err)
	}

	// connect gui
	err = pl.request(gui.ReqSetEventChan, pl.userinput)
	if err != nil {
		return "", err
	}
	err = pl.request(gui.ReqSetVisibility, true)
	if err != nil {
		return "", err
	}

	signal.Notify(pl.intChan, os.Interrupt)
	defer signal.Stop(pl.intChan)

	if opts.Duration > 0 {
		pl.deadline = time.Now().Add(opts.Duration)
	}

	started = true

	_ = pl.request(gui.ReqState, gui.StateRunning)
	if pl.plb != nil {
		err = pl.playback(opts.Paced)
	} else {
		err = brd.Run(pl.eventHandler)
	}
	_ = pl.request(gui.ReqState, gui.StateEnding)

	// the recording is ended and the audio mixers flushed whether or not the
	// emulation ended with an error
	if rec != nil {
		if endErr := rec.End(); endErr != nil && err == nil {
			err = endErr
		}
	}
	if mixErr := brd.EndMixing(); mixErr != nil && err == nil {
		err = mixErr
	}

	if err != nil {
		return "", curated.Errorf("playmode: %v", err)
	}

	if opts.Dump != "" {
		err = statedump.ToFile(opts.Dump, pl.game)
		if err != nil {
			return "", curated.Errorf("playmode: %v", err)
		}
	}

	logger.Logf(brd.Env(), "playmode", "ended with %s", pl.game)

	switch {
	case rec != nil:
		return fmt.Sprintf("recording completed: %s", opts.Transcript), nil
	case pl.plb != nil:
		if pl.plb.Finished() {
			return fmt.Sprintf("playback completed: %s", opts.Transcript), nil
		}
		return fmt.Sprintf("playback ended early: %s", pl.plb), nil
	}
	return "", nil
}

// playback steps the board until the final entry of the transcript has been
// reached. stepping is deterministic, so the display digests are taken at the
// same point in the emulation as they were when recorded.
func (pl *playmode) playback(paced bool) error {
	var lmtr *limiter.FpsLimiter
	if paced {
		var err error
		lmtr, err = limiter.NewFPSLimiter(pl.brd.WDT.Rate())
		if err != nil {
			return err
		}
		defer lmtr.Stop()
	}

	for pl.brd.WDT.Count() < pl.plb.EndInterrupt() {
		if _, err := pl.brd.Step(); err != nil {
			return err
		}

		cont, err := pl.eventHandler()
		if err != nil || !cont {
			return err
		}

		if lmtr != nil {
			lmtr.Wait()
		}
	}

	return nil
}

// request a feature from the GUI. unsupported features are not an error.
func (pl *playmode) request(request gui.FeatureReq, args ...gui.FeatureReqData) error {
	err := pl.scr.SetFeature(request, args...)
	if err != nil && !curated.Is(err, gui.UnsupportedGuiFeature) {
		return curated.Errorf("playmode: %v", err)
	}
	return nil
}
