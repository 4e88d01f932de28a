// This file is part of g2aica.
//
// g2aica is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// g2aica is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with g2aica.  If not, see <https://www.gnu.org/licenses/>.

package environment_test

import (
	"testing"

	"github.com/jetsetilly/g2aica/environment"
	"github.com/jetsetilly/g2aica/hardware/preferences"
	"github.com/jetsetilly/g2aica/test"
)

func TestEnvironment(t *testing.T) {
	env, err := environment.NewEnvironment(environment.MainEmulation, nil)
	test.DemandSuccess(t, err)
	env.Normalise()

	test.ExpectSuccess(t, env.AllowLogging())
	test.Equate(t, env.Prefs.InlineThreshold.Get().(int), preferences.DefaultInlineThreshold)
	test.Equate(t, env.Prefs.CyclesPerG2Byte(), 4)
	test.ExpectSuccess(t, env.Prefs.FixedRTC.Get().(bool))

	env.Quiet = true
	test.ExpectFailure(t, env.AllowLogging())

	// a second emulation sharing the preferences never logs
	sub, err := environment.NewEnvironment("thumbnail", env.Prefs)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, sub.AllowLogging())
	test.ExpectSuccess(t, sub.Prefs == env.Prefs)
}
