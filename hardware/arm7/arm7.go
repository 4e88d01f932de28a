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

// Package arm7 stands in for the ARM7 co-processor inside the AICA. Only the
// enabled state is modelled. The AICA interface holds the ARM in reset by
// writing to the ARMRST register.
package arm7

import (
	"fmt"

	"github.com/jetsetilly/g2aica/environment"
	"github.com/jetsetilly/g2aica/logger"
)

// ARM7 is the co-processor enable state.
type ARM7 struct {
	env *environment.Environment

	enabled bool

	// number of times the enabled state has changed
	Transitions int
}

// NewARM7 is the preferred method of initialisation for the ARM7 type. The
// ARM7 starts in the disabled state.
func NewARM7(env *environment.Environment) *ARM7 {
	return &ARM7{env: env}
}

func (arm *ARM7) String() string {
	if arm.enabled {
		return "ARM7: running"
	}
	return "ARM7: held in reset"
}

// SetEnabled changes the enabled state of the ARM7.
func (arm *ARM7) SetEnabled(enabled bool) {
	if arm.enabled == enabled {
		return
	}
	arm.enabled = enabled
	arm.Transitions++
	logger.Log(arm.env, "arm7", fmt.Sprintf("enabled = %v", enabled))
}

// Enabled returns the enabled state of the ARM7.
func (arm *ARM7) Enabled() bool {
	return arm.enabled
}
