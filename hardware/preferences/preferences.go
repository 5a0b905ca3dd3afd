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

package preferences

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/jetsetilly/shapemotion/curated"
	"github.com/jetsetilly/shapemotion/paths"
	"github.com/jetsetilly/shapemotion/prefs"
)

// Preferences defines and collates all the preference values used by the
// emulated board.
type Preferences struct {
	dsk *prefs.Disk

	// the rate at which the watchdog interval timer generates interrupts (Hz)
	WDTRate prefs.Int

	// the number of watchdog interrupts that make up one logical tick of the
	// game
	WDTDivisor prefs.Int

	// volume of the buzzer output. zero is silent and one is full volume
	BuzzerVolume prefs.Float

	// colour of pixels not covered by any shape. see Background()
	LCDBackground *prefs.Generic

	background atomic.Uint32
}

// default values for the preferences. see SetDefaults()
const (
	DefaultWDTRate      = 250
	DefaultWDTDivisor   = 15
	DefaultBuzzerVolume = 0.25
	DefaultBackground   = 0x0000
)

// Sentinal error patterns.
const (
	BadRate       = "preferences: watchdog rate must be between 1 and 10000 (%d)"
	BadDivisor    = "preferences: watchdog divisor must be positive (%d)"
	BadVolume     = "preferences: buzzer volume must be between 0 and 1 (%.3f)"
	BadBackground = "preferences: background must be a 16bit hex value (%s)"
)

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the default preferences file.
func NewPreferences() (*Preferences, error) {
	return NewPreferencesFile(paths.ResourcePath("", prefs.DefaultPrefsFile))
}

// NewPreferencesFile is like NewPreferences() but loads preferences from the
// specified file.
func NewPreferencesFile(pth string) (*Preferences, error) {
	p := &Preferences{}

	p.LCDBackground = prefs.NewGeneric(
		func(s string) error {
			s = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "0x")
			if s == "" {
				p.background.Store(DefaultBackground)
				return nil
			}
			v, err := strconv.ParseUint(s, 16, 16)
			if err != nil {
				return curated.Errorf(BadBackground, s)
			}
			p.background.Store(uint32(v))
			return nil
		},
		func() string {
			return fmt.Sprintf("0x%04x", p.background.Load())
		},
	)

	p.WDTRate.SetHookPre(func(v prefs.Value) error {
		if r := v.(int); r < 1 || r > 10000 {
			return curated.Errorf(BadRate, r)
		}
		return nil
	})
	p.WDTDivisor.SetHookPre(func(v prefs.Value) error {
		if d := v.(int); d < 1 {
			return curated.Errorf(BadDivisor, d)
		}
		return nil
	})
	p.BuzzerVolume.SetHookPre(func(v prefs.Value) error {
		if f := v.(float64); f < 0.0 || f > 1.0 {
			return curated.Errorf(BadVolume, f)
		}
		return nil
	})

	p.SetDefaults()

	var err error

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("board.wdt.rate", &p.WDTRate)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("board.wdt.divisor", &p.WDTDivisor)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("board.buzzer.volume", &p.BuzzerVolume)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("board.lcd.background", p.LCDBackground)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Load(false)
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	_ = p.WDTRate.Set(DefaultWDTRate)
	_ = p.WDTDivisor.Set(DefaultWDTDivisor)
	_ = p.BuzzerVolume.Set(DefaultBuzzerVolume)
	p.background.Store(DefaultBackground)
}

// Background returns the background colour as a 16bit LCD colour value.
func (p *Preferences) Background() uint16 {
	return uint16(p.background.Load())
}

// Load current board preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current board preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
