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
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/jetsetilly/g2aica/curated"
)

// Profile specifies which profiling (if any) to perform.
type Profile int

// List of valid Profile values. Values can be combined.
const (
	ProfileNone Profile = 0
	ProfileCPU  Profile = 1 << iota
	ProfileMem
)

// ParseProfileString converts a string to a Profile value. Valid strings are
// "NONE", "CPU", "MEM" and "ALL".
func ParseProfileString(profile string) (Profile, error) {
	switch profile {
	case "NONE", "none", "":
		return ProfileNone, nil
	case "CPU", "cpu":
		return ProfileCPU, nil
	case "MEM", "mem":
		return ProfileMem, nil
	case "ALL", "all":
		return ProfileCPU | ProfileMem, nil
	}
	return ProfileNone, curated.Errorf("performance: unknown profile type (%s)", profile)
}

// RunProfiler runs the supplied function with the requested profiling. The
// profile files are named with the filenameHeader and the profile type.
func RunProfiler(profile Profile, filenameHeader string, run func() error) (rerr error) {
	if profile&ProfileCPU == ProfileCPU {
		f, err := os.Create(fmt.Sprintf("%s_cpu.profile", filenameHeader))
		if err != nil {
			return curated.Errorf("performance: %v", err)
		}
		defer func() {
			if err := f.Close(); err != nil && rerr == nil {
				rerr = curated.Errorf("performance: %v", err)
			}
		}()

		if err := pprof.StartCPUProfile(f); err != nil {
			return curated.Errorf("performance: %v", err)
		}
		defer pprof.StopCPUProfile()
	}

	if err := run(); err != nil {
		return err
	}

	if profile&ProfileMem == ProfileMem {
		f, err := os.Create(fmt.Sprintf("%s_mem.profile", filenameHeader))
		if err != nil {
			return curated.Errorf("performance: %v", err)
		}
		defer f.Close()

		runtime.GC()
		if err := pprof.WriteHeapProfile(f); err != nil {
			return curated.Errorf("performance: %v", err)
		}
	}

	return nil
}
