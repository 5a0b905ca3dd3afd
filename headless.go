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

package main

import (
	"os"

	"github.com/jetsetilly/shapemotion/easyterm"
	"github.com/jetsetilly/shapemotion/gui"
	"github.com/jetsetilly/shapemotion/logger"
	"github.com/jetsetilly/shapemotion/modalflag"
	"github.com/jetsetilly/shapemotion/userinput"
)

// headlessGUI runs the emulation without a display. if stdin is a terminal
// then key presses are read in cbreak mode and forwarded as keyboard events.
type headlessGUI struct {
	term  *easyterm.Terminal
	state gui.EmulationState
}

func (h *headlessGUI) SetFeature(request gui.FeatureReq, args ...gui.FeatureReqData) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = gui.ArgError(request, r)
		}
	}()

	switch request {
	case gui.ReqSetEventChan:
		if h.term != nil {
			go h.readKeys(args[0].(chan userinput.Event))
		}
	case gui.ReqState:
		h.state = args[0].(gui.EmulationState)
	default:
		return gui.Unsupported(request)
	}

	return nil
}

// readKeys never returns. the goroutine is left blocked on the terminal when
// the emulation ends.
func (h *headlessGUI) readKeys(events chan userinput.Event) {
	for {
		k, err := h.term.ReadKey()
		if err != nil {
			events <- userinput.EventQuit{}
			return
		}
		events <- userinput.EventKeyboard{Key: k, Down: true}
	}
}

func headless(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	duration := md.AddDuration("duration", 0, "stop after duration (zero runs until Escape or ctrl-c)")
	f := addPlayFlags(md, true)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *f.log {
		logger.SetEcho(os.Stdout, false)
	} else {
		logger.SetEcho(nil, false)
	}

	brd, err := newBoard(*f.prefs)
	if err != nil {
		return err
	}

	h := &headlessGUI{}

	term := &easyterm.Terminal{}
	if err := term.Initialise(os.Stdin, os.Stdout); err != nil {
		logger.Logf(brd.Env(), "headless", "no keyboard input: %v", err)
	} else if err := term.CBreakMode(); err != nil {
		logger.Logf(brd.Env(), "headless", "no keyboard input: %v", err)
	} else {
		defer term.CleanUp()
		h.term = term
		term.Print("Q/A left paddle. Up/Down right paddle. Escape quits\n")
	}

	return runPlay(md, sync, brd, h, f, userinput.DefaultPulse, *duration)
}
