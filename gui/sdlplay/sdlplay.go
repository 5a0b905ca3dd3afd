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
	"fmt"
	"io"
	"sync"

	"github.com/jetsetilly/shapemotion/gui"
	"github.com/jetsetilly/shapemotion/hardware"
	"github.com/jetsetilly/shapemotion/hardware/lcd"
	"github.com/jetsetilly/shapemotion/logger"
	"github.com/jetsetilly/shapemotion/performance/limiter"
	"github.com/jetsetilly/shapemotion/userinput"
	"github.com/veandco/go-sdl2/sdl"
)

const pixelDepth = 4

// the rate at which Service() presents the LCD and polls for events
const serviceRate = 60

// DefaultScale is the number of window pixels used for each LCD pixel when
// no other value has been requested.
const DefaultScale = 3.0

// SdlPlay is a simple SDL implementation of the gui.GUI interface. It also
// implements the lcd.FrameRenderer and hardware.AudioMixer interfaces.
type SdlPlay struct {
	brd *hardware.Board

	// connects SDL service loop with the play loop. events are not sent until
	// the channel has been set with a ReqSetEventChan request
	events chan userinput.Event

	// feature requests are serviced by Service() on the main thread
	featureReq chan featureRequest
	featureErr chan error

	// limit screen updates to a fixed rate
	lmtr *limiter.FpsLimiter

	// all audio is handled by the sound type
	snd *sound

	// sdl stuff
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// pixels is the byte array that we copy to the texture. it is updated by
	// NewFrame() in the emulation goroutine and consumed by Service() in the
	// main thread
	crit     sync.Mutex
	pixels   []byte
	newFrame bool

	scale float32
	state gui.EmulationState
}

// NewSdlPlay is the preferred method of initialisation for SdlPlay.
//
// MUST ONLY be called from the #mainthread
func NewSdlPlay(brd *hardware.Board, scale float32) (*SdlPlay, error) {
	scr := &SdlPlay{
		brd:        brd,
		featureReq: make(chan featureRequest, 1),
		featureErr: make(chan error, 1),
		pixels:     make([]byte, lcd.Width*lcd.Height*pixelDepth),
	}

	var err error

	err = sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO)
	if err != nil {
		return nil, fmt.Errorf("sdlplay: %w", err)
	}

	// SDL window - window size is set in the setScaling() function
	scr.window, err = sdl.CreateWindow("Shapemotion",
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		lcd.Width, lcd.Height,
		uint32(sdl.WINDOW_HIDDEN))
	if err != nil {
		return nil, fmt.Errorf("sdlplay: %w", err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		return nil, fmt.Errorf("sdlplay: %w", err)
	}

	// texture is the same size as the LCD. the renderer scales it to fit the
	// window
	scr.texture, err = scr.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING), lcd.Width, lcd.Height)
	if err != nil {
		return nil, fmt.Errorf("sdlplay: %w", err)
	}

	if scale <= 0 {
		scale = DefaultScale
	}
	err = scr.setScaling(scale)
	if err != nil {
		return nil, fmt.Errorf("sdlplay: %w", err)
	}

	scr.snd, err = newSound(brd.Env())
	if err != nil {
		return nil, fmt.Errorf("sdlplay: %w", err)
	}

	scr.lmtr, err = limiter.NewFPSLimiter(serviceRate)
	if err != nil {
		return nil, fmt.Errorf("sdlplay: %w", err)
	}

	// preset alpha channel - we never change the value of this channel
	for i := pixelDepth - 1; i < len(scr.pixels); i += pixelDepth {
		scr.pixels[i] = 255
	}
	scr.NewFrame(brd.LCD.FrameNum(), brd.LCD.Pixels())

	brd.LCD.AddFrameRenderer(scr)
	brd.AddAudioMixer(scr)

	logger.Logf(brd.Env(), "sdlplay", "window created with scale %.1f", scale)

	// note that we've elected not to show the window on startup. window is
	// instead opened on a ReqSetVisibility request

	return scr, nil
}

// Destroy implements the GuiCreator interface.
//
// MUST ONLY be called from the #mainthread
func (scr *SdlPlay) Destroy(output io.Writer) {
	scr.brd.LCD.RemoveFrameRenderer(scr)
	scr.lmtr.Stop()

	scr.snd.destroy()

	if err := scr.texture.Destroy(); err != nil {
		fmt.Fprintln(output, err)
	}
	if err := scr.renderer.Destroy(); err != nil {
		fmt.Fprintln(output, err)
	}
	if err := scr.window.Destroy(); err != nil {
		fmt.Fprintln(output, err)
	}

	sdl.Quit()
}

// use scale of -1 to reapply existing scale value.
func (scr *SdlPlay) setScaling(scale float32) error {
	if scale > 0 {
		scr.scale = scale
	}

	w := int32(float32(lcd.Width) * scr.scale)
	h := int32(float32(lcd.Height) * scr.scale)
	scr.window.SetSize(w, h)

	// make sure everything drawn through the renderer is correctly scaled
	return scr.renderer.SetLogicalSize(lcd.Width, lcd.Height)
}

// NewFrame implements the lcd.FrameRenderer interface.
func (scr *SdlPlay) NewFrame(_ int, pixels []lcd.Color) error {
	scr.crit.Lock()
	defer scr.crit.Unlock()

	for i, c := range pixels {
		r, g, b := c.RGB()
		j := i * pixelDepth
		scr.pixels[j] = r
		scr.pixels[j+1] = g
		scr.pixels[j+2] = b
	}
	scr.newFrame = true

	return nil
}

// present copies the most recent frame to the texture and displays it.
//
// MUST ONLY be called from the #mainthread
func (scr *SdlPlay) present() error {
	scr.crit.Lock()
	if !scr.newFrame {
		scr.crit.Unlock()
		return nil
	}

	pixels, pitch, err := scr.texture.Lock(nil)
	if err != nil {
		scr.crit.Unlock()
		return err
	}
	for row := 0; row < lcd.Height; row++ {
		copy(pixels[row*pitch:], scr.pixels[row*lcd.Width*pixelDepth:(row+1)*lcd.Width*pixelDepth])
	}
	scr.texture.Unlock()

	scr.newFrame = false
	scr.crit.Unlock()

	err = scr.renderer.Copy(scr.texture, nil, nil)
	if err != nil {
		return err
	}
	scr.renderer.Present()

	return nil
}

func (scr *SdlPlay) showWindow(show bool) {
	if show {
		scr.window.Show()
	} else {
		scr.window.Hide()
	}
}

// SetAudio implements the hardware.AudioMixer interface.
func (scr *SdlPlay) SetAudio(samples []int16) error {
	return scr.snd.queue(samples)
}

// EndMixing implements the hardware.AudioMixer interface.
func (scr *SdlPlay) EndMixing() error {
	return scr.snd.clear()
}
