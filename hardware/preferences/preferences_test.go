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

package preferences_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/shapemotion/curated"
	"github.com/jetsetilly/shapemotion/hardware/preferences"
	"github.com/jetsetilly/shapemotion/test"
)

func TestDefaults(t *testing.T) {
	p, err := preferences.NewPreferencesFile(filepath.Join(t.TempDir(), "prefs"))
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, p.WDTRate.Get().(int), preferences.DefaultWDTRate)
	test.ExpectEquality(t, p.WDTDivisor.Get().(int), preferences.DefaultWDTDivisor)
	test.ExpectEquality(t, p.BuzzerVolume.Get().(float64), preferences.DefaultBuzzerVolume)
	test.ExpectEquality(t, p.Background(), uint16(preferences.DefaultBackground))
}

func TestValidation(t *testing.T) {
	p, err := preferences.NewPreferencesFile(filepath.Join(t.TempDir(), "prefs"))
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, curated.Is(p.WDTRate.Set(0), preferences.BadRate))
	test.ExpectSuccess(t, curated.Is(p.WDTDivisor.Set(-1), preferences.BadDivisor))
	test.ExpectSuccess(t, curated.Is(p.BuzzerVolume.Set(1.5), preferences.BadVolume))
	test.ExpectSuccess(t, curated.Is(p.LCDBackground.Set("xyz"), preferences.BadBackground))

	// failed validation leaves the previous value in place
	test.ExpectEquality(t, p.WDTRate.Get().(int), preferences.DefaultWDTRate)

	test.ExpectSuccess(t, p.LCDBackground.Set("0xf81f"))
	test.ExpectEquality(t, p.Background(), uint16(0xf81f))
	test.ExpectEquality(t, p.LCDBackground.String(), "0xf81f")
}

func TestSaveAndLoad(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "prefs")

	p, err := preferences.NewPreferencesFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, p.WDTRate.Set(500))
	test.ExpectSuccess(t, p.LCDBackground.Set("001f"))
	test.DemandSuccess(t, p.Save())

	_, err = os.Stat(pth)
	test.DemandSuccess(t, err)

	q, err := preferences.NewPreferencesFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q.WDTRate.Get().(int), 500)
	test.ExpectEquality(t, q.Background(), uint16(0x001f))

	q.SetDefaults()
	test.ExpectEquality(t, q.WDTRate.Get().(int), preferences.DefaultWDTRate)
}
