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

package hardware

// Quantum is the number of cycles the scheduler is advanced by between calls
// to the continueCheck() function in Run() and RunFor().
const Quantum = 448

// Run advances the emulation until continueCheck() returns false or an
// error. A nil continueCheck() runs the emulation forever.
func (sys *System) Run(continueCheck func() (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func() (bool, error) { return true, nil }
	}

	for {
		sys.Scheduler.Advance(Quantum)

		cont, err := continueCheck()
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}
	}
}

// RunFor advances the emulation by the specified number of cycles. The
// continueCheck() function can end the run early and can be nil.
func (sys *System) RunFor(cycles int, continueCheck func() (bool, error)) error {
	for cycles > 0 {
		q := min(cycles, Quantum)
		sys.Scheduler.Advance(q)
		cycles -= q

		if continueCheck != nil {
			cont, err := continueCheck()
			if err != nil {
				return err
			}
			if !cont {
				return nil
			}
		}
	}
	return nil
}

// RunForSeconds advances the emulation by the specified number of emulated
// seconds.
func (sys *System) RunForSeconds(seconds int, continueCheck func() (bool, error)) error {
	return sys.RunFor(seconds*sys.Env.Prefs.CyclesPerSecond(), continueCheck)
}
