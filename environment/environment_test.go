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

package environment_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/shapemotion/environment"
	"github.com/jetsetilly/shapemotion/hardware/preferences"
	"github.com/jetsetilly/shapemotion/logger"
	"github.com/jetsetilly/shapemotion/test"
)

func TestEnvironment(t *testing.T) {
	p, err := preferences.NewPreferencesFile(filepath.Join(t.TempDir(), "prefs"))
	test.DemandSuccess(t, err)

	env, err := environment.NewEnvironment(environment.MainEmulation, p)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, env.IsMainEmulation())
	test.ExpectFailure(t, env.IsEmulation("playback"))

	test.ExpectSuccess(t, env.Prefs.WDTRate.Set(100))
	env.Normalise()
	test.ExpectEquality(t, env.Prefs.WDTRate.Get().(int), preferences.DefaultWDTRate)
}

func TestPermission(t *testing.T) {
	p, err := preferences.NewPreferencesFile(filepath.Join(t.TempDir(), "prefs"))
	test.DemandSuccess(t, err)

	env, err := environment.NewEnvironment("playback", p)
	test.DemandSuccess(t, err)

	log := logger.NewLogger(10)
	w := &strings.Builder{}

	env.Quiet = true
	log.Log(env, "env", "quiet")
	env.Quiet = false
	log.Log(env, "env", "loud")

	log.Write(w)
	test.ExpectEquality(t, w.String(), "env: loud\n")
}
