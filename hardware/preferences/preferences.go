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

// Package preferences contains the preference values for the emulated
// hardware. Values are stored on disk with the prefs package.
package preferences

import (
	"github.com/jetsetilly/g2aica/curated"
	"github.com/jetsetilly/g2aica/hardware/clocks"
	"github.com/jetsetilly/g2aica/paths"
	"github.com/jetsetilly/g2aica/prefs"
)

// Default values for the timing preferences.
const (
	DefaultInlineThreshold = 4096
)

// Preferences defines and collates all the preference values used by the
// hardware.
type Preferences struct {
	dsk *prefs.Disk

	// the main clock drives the scheduler. the number of cycles in one
	// emulated second
	MainClock prefs.Int

	// the G2 bus clock. together with the main clock this determines how
	// long an AICA DMA transfer takes
	G2BusClock prefs.Int

	// AICA DMA transfers that would take fewer cycles than this complete
	// immediately rather than being scheduled
	InlineThreshold prefs.Int

	// log the direction and extent of every EXT1, EXT2 and DEV transfer
	DMALogging prefs.Bool

	// seed the RTC with RTCSeed rather than with the wall clock. useful for
	// regression testing where the RTC must be predictable
	FixedRTC prefs.Bool
	RTCSeed  prefs.Int
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the Preferences type.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}

	for k, v := range map[string]interface{}{
		"hardware.clock.main":     &p.MainClock,
		"hardware.clock.g2bus":    &p.G2BusClock,
		"hardware.g2.inline":      &p.InlineThreshold,
		"hardware.g2.log":         &p.DMALogging,
		"hardware.aica.rtc.fixed": &p.FixedRTC,
		"hardware.aica.rtc.seed":  &p.RTCSeed,
	} {
		var err error
		switch v := v.(type) {
		case *prefs.Int:
			err = p.dsk.Add(k, v)
		case *prefs.Bool:
			err = p.dsk.Add(k, v)
		}
		if err != nil {
			return nil, curated.Errorf("preferences: %v", err)
		}
	}

	err = p.dsk.Load()
	if err != nil {
		// ignore missing prefs file errors
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, curated.Errorf("preferences: %v", err)
		}
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	p.MainClock.Set(clocks.SH4)
	p.G2BusClock.Set(clocks.G2Bus)
	p.InlineThreshold.Set(DefaultInlineThreshold)
	p.DMALogging.Set(true)
	p.FixedRTC.Set(false)
	p.RTCSeed.Set(0)
}

// Load current hardware preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// CyclesPerSecond is the MainClock preference as an int.
func (p *Preferences) CyclesPerSecond() int {
	return p.MainClock.Get().(int)
}

// CyclesPerG2Byte is the number of main clock cycles needed to move one byte
// over the G2 bus.
func (p *Preferences) CyclesPerG2Byte() int {
	return clocks.CyclesPerG2Byte(p.MainClock.Get().(int), p.G2BusClock.Get().(int))
}
