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

package sdlplay

import (
	"github.com/jetsetilly/shapemotion/logger"
	"github.com/jetsetilly/shapemotion/userinput"
	"github.com/veandco/go-sdl2/sdl"
)

// Service implements the GuiCreator interface.
//
// MUST ONLY be called from the #mainthread
func (scr *SdlPlay) Service() {
	// feature requests are serviced first so that an event channel set by
	// the request is used immediately
	select {
	case r := <-scr.featureReq:
		scr.serviceFeatureRequest(r)
	default:
	}

	// loop until there are no more events to retrieve. servicing just one
	// event per frame is not enough because queued events would take one
	// frame longer to resolve
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		// close window
		case *sdl.QuitEvent:
			scr.send(userinput.EventQuit{})

		case *sdl.KeyboardEvent:
			mod := userinput.KeyModNone

			if ev.Keysym.Mod&sdl.KMOD_LALT == sdl.KMOD_LALT ||
				ev.Keysym.Mod&sdl.KMOD_RALT == sdl.KMOD_RALT {
				mod = userinput.KeyModAlt
			} else if ev.Keysym.Mod&sdl.KMOD_LSHIFT == sdl.KMOD_LSHIFT ||
				ev.Keysym.Mod&sdl.KMOD_RSHIFT == sdl.KMOD_RSHIFT {
				mod = userinput.KeyModShift
			} else if ev.Keysym.Mod&sdl.KMOD_LCTRL == sdl.KMOD_LCTRL ||
				ev.Keysym.Mod&sdl.KMOD_RCTRL == sdl.KMOD_RCTRL {
				mod = userinput.KeyModCtrl
			}

			scr.send(userinput.EventKeyboard{
				Key:    sdl.GetKeyName(ev.Keysym.Sym),
				Mod:    mod,
				Down:   ev.Type == sdl.KEYDOWN,
				Repeat: ev.Repeat != 0,
			})
		}
	}

	if err := scr.present(); err != nil {
		logger.Log(scr.brd.Env(), "sdlplay", err)
	}

	// wait for frame limiter
	scr.lmtr.Wait()
}

// send event to the play loop. events are dropped if no event channel has
// been set or if the channel is full.
func (scr *SdlPlay) send(ev userinput.Event) {
	if scr.events == nil {
		return
	}
	select {
	case scr.events <- ev:
	default:
		logger.Logf(scr.brd.Env(), "sdlplay", "dropped event: %T", ev)
	}
}
