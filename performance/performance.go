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

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/g2aica/curated"
	"github.com/jetsetilly/g2aica/hardware"
)

// CalcSpeed returns the number of emulated seconds per real second and the
// percentage of real hardware speed.
func CalcSpeed(cycles int64, cyclesPerSecond int, elapsed time.Duration) (float64, float64) {
	if cyclesPerSecond <= 0 || elapsed <= 0 {
		return 0, 0
	}
	emulated := float64(cycles) / float64(cyclesPerSecond)
	speed := emulated / elapsed.Seconds()
	return speed, speed * 100
}

// Check runs the system for the specified duration of real time and reports
// the speed of the emulation.
func Check(output io.Writer, sys *hardware.System, profile Profile, duration time.Duration) error {
	start := sys.Scheduler.Now()
	fired := sys.Scheduler.Fired()

	var elapsed time.Duration

	err := RunProfiler(profile, "performance", func() error {
		timesUp := time.After(duration)
		began := time.Now()

		err := sys.Run(func() (bool, error) {
			select {
			case <-timesUp:
				return false, nil
			default:
			}
			return true, nil
		})
		elapsed = time.Since(began)
		return err
	})
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	cycles := sys.Scheduler.Now() - start
	speed, accuracy := CalcSpeed(cycles, sys.Env.Prefs.CyclesPerSecond(), elapsed)

	fmt.Fprintf(output, "%.2f emulated seconds per second (%d cycles, %d events in %.2f seconds) %.1f%%\n",
		speed, cycles, sys.Scheduler.Fired()-fired, elapsed.Seconds(), accuracy)

	return nil
}
