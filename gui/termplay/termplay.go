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

package termplay

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/jetsetilly/shapemotion/gui"
	"github.com/jetsetilly/shapemotion/hardware"
	"github.com/jetsetilly/shapemotion/hardware/lcd"
	"github.com/jetsetilly/shapemotion/logger"
	"github.com/jetsetilly/shapemotion/performance/limiter"
	"github.com/jetsetilly/shapemotion/userinput"
)

// the rate at which Service() redraws the terminal
const serviceRate = 30

// the character used to draw two pixels in one cell
const halfBlock = '▀'

// TermPlay is a tcell implementation of the gui.GUI interface. It also
// implements the lcd.FrameRenderer and hardware.AudioMixer interfaces.
type TermPlay struct {
	brd    *hardware.Board
	screen tcell.Screen

	crit     sync.Mutex
	events   chan userinput.Event
	state    gui.EmulationState
	pixels   []lcd.Color
	newFrame bool

	lmtr *limiter.FpsLimiter

	// nil if audio has not been requested
	snd *sound

	// closed when the event polling goroutine has finished
	pollDone chan struct{}
}

// NewTermPlay is the preferred method of initialisation for TermPlay. If
// screen is nil then a new tcell screen is created for the terminal. The
// screen is initialised by NewTermPlay() and finalised by Destroy().
func NewTermPlay(brd *hardware.Board, screen tcell.Screen, withAudio bool) (*TermPlay, error) {
	var err error

	if screen == nil {
		screen, err = tcell.NewScreen()
		if err != nil {
			return nil, fmt.Errorf("termplay: %w", err)
		}
	}

	err = screen.Init()
	if err != nil {
		return nil, fmt.Errorf("termplay: %w", err)
	}
	screen.HideCursor()
	screen.Clear()

	trm := &TermPlay{
		brd:      brd,
		screen:   screen,
		pixels:   make([]lcd.Color, lcd.Width*lcd.Height),
		pollDone: make(chan struct{}),
	}

	trm.lmtr, err = limiter.NewFPSLimiter(serviceRate)
	if err != nil {
		screen.Fini()
		return nil, fmt.Errorf("termplay: %w", err)
	}

	if withAudio {
		trm.snd, err = newSound()
		if err != nil {
			screen.Fini()
			return nil, fmt.Errorf("termplay: %w", err)
		}
		brd.AddAudioMixer(trm)
	}

	_ = trm.NewFrame(brd.LCD.FrameNum(), brd.LCD.Pixels())
	brd.LCD.AddFrameRenderer(trm)

	go trm.pollEvents()

	logger.Logf(brd.Env(), "termplay", "screen created (audio %v)", withAudio)

	return trm, nil
}

// Destroy implements the GuiCreator interface.
func (trm *TermPlay) Destroy(output io.Writer) {
	trm.brd.LCD.RemoveFrameRenderer(trm)
	trm.lmtr.Stop()

	if trm.snd != nil {
		trm.snd.destroy()
	}

	// finalising the screen causes PollEvent() to return nil which ends the
	// polling goroutine
	trm.screen.Fini()
	<-trm.pollDone
}

// NewFrame implements the lcd.FrameRenderer interface.
func (trm *TermPlay) NewFrame(_ int, pixels []lcd.Color) error {
	trm.crit.Lock()
	defer trm.crit.Unlock()
	copy(trm.pixels, pixels)
	trm.newFrame = true
	return nil
}

func color(c lcd.Color) tcell.Color {
	r, g, b := c.RGB()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// draw the most recent frame to the screen. returns false if there was no
// new frame to draw.
func (trm *TermPlay) draw() bool {
	trm.crit.Lock()
	defer trm.crit.Unlock()

	if !trm.newFrame {
		return false
	}
	trm.newFrame = false

	for row := 0; row < lcd.Height/2; row++ {
		top := trm.pixels[row*2*lcd.Width:]
		bot := trm.pixels[(row*2+1)*lcd.Width:]
		for col := 0; col < lcd.Width; col++ {
			style := tcell.StyleDefault.Foreground(color(top[col])).Background(color(bot[col]))
			trm.screen.SetContent(col, row, halfBlock, nil, style)
		}
	}

	return true
}

// Service implements the GuiCreator interface.
func (trm *TermPlay) Service() {
	if trm.draw() {
		trm.screen.Show()
	}
	trm.lmtr.Wait()
}

func (trm *TermPlay) pollEvents() {
	defer close(trm.pollDone)

	for {
		ev := trm.screen.PollEvent()
		if ev == nil {
			return
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyCtrlC || (ev.Key() == tcell.KeyRune && ev.Rune() == 'c' && ev.Modifiers()&tcell.ModCtrl != 0) {
				trm.send(userinput.EventQuit{})
				continue
			}
			if k := keyName(ev); k != "" {
				trm.send(userinput.EventKeyboard{Key: k, Down: true})
			}

		case *tcell.EventResize:
			trm.crit.Lock()
			trm.newFrame = true
			trm.crit.Unlock()
			trm.screen.Sync()
		}
	}
}

// keyName translates the tcell key to the names used by the userinput
// package.
func keyName(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyUp:
		return "Up"
	case tcell.KeyDown:
		return "Down"
	case tcell.KeyLeft:
		return "Left"
	case tcell.KeyRight:
		return "Right"
	case tcell.KeyEscape:
		return "Escape"
	case tcell.KeyRune:
		if ev.Rune() == ' ' {
			return "Space"
		}
		return strings.ToUpper(string(ev.Rune()))
	}
	return ""
}

// send event to the play loop. events are dropped if no event channel has
// been set or if the channel is full.
func (trm *TermPlay) send(ev userinput.Event) {
	trm.crit.Lock()
	events := trm.events
	trm.crit.Unlock()

	if events == nil {
		return
	}
	select {
	case events <- ev:
	default:
	}
}

// SetFeature implements the gui.GUI interface.
func (trm *TermPlay) SetFeature(request gui.FeatureReq, args ...gui.FeatureReqData) (err error) {
	trm.crit.Lock()
	defer trm.crit.Unlock()

	// lazy (but clear) handling of type assertion errors
	defer func() {
		if r := recover(); r != nil {
			err = gui.ArgError(request, r)
		}
	}()

	switch request {
	case gui.ReqSetEventChan:
		trm.events = args[0].(chan userinput.Event)
	case gui.ReqState:
		trm.state = args[0].(gui.EmulationState)
	case gui.ReqSetVisibility:
		// the terminal is always visible
		_ = args[0].(bool)
	default:
		return gui.Unsupported(request)
	}

	return nil
}

// SetAudio implements the hardware.AudioMixer interface.
func (trm *TermPlay) SetAudio(samples []int16) error {
	trm.snd.push(samples)
	return nil
}

// EndMixing implements the hardware.AudioMixer interface.
func (trm *TermPlay) EndMixing() error {
	trm.snd.clear()
	return nil
}
