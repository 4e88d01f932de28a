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

// Package environment provides the context for an emulation. It is passed to
// all the hardware components and is used to access the preferences and to
// decide whether the component should make log entries.
package environment

import (
	"github.com/jetsetilly/g2aica/hardware/preferences"
)

// Label is used to name the environment.
type Label string

// MainEmulation is the label used for the main emulation.
const MainEmulation = Label("")

// Environment is used to provide context for an emulation. Particularly useful
// when using multiple emulations.
type Environment struct {
	Label Label

	// the emulation preferences
	Prefs *preferences.Preferences

	// silence all logging for this environment
	Quiet bool
}

// NewEnvironment is the preferred method of initialisation for the
// Environment type.
//
// The prefs argument can be nil, in which case a new Preferences instance will
// be created. Providing a non-nil value allows the preferences of more than
// one emulation to be synchronised.
func NewEnvironment(label Label, prefs *preferences.Preferences) (*Environment, error) {
	env := &Environment{
		Label: label,
	}

	if prefs == nil {
		var err error
		prefs, err = preferences.NewPreferences()
		if err != nil {
			return nil, err
		}
	}

	env.Prefs = prefs

	return env, nil
}

// Normalise ensures the environment is in a known default state. Useful for
// regression testing where the initial state must be the same for every run
// of the test.
func (env *Environment) Normalise() {
	env.Prefs.SetDefaults()
	env.Prefs.FixedRTC.Set(true)
}

// AllowLogging implements the logger.Permission interface. Only the main
// emulation is allowed to make log entries.
func (env *Environment) AllowLogging() bool {
	return !env.Quiet && env.IsEmulation(MainEmulation)
}

// IsEmulation checks the emulation label and returns true if it matches.
func (env *Environment) IsEmulation(label Label) bool {
	return env.Label == label
}
