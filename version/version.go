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

// Package version reports the version of the application. The version
// number is set at build time with the linker and the revision is taken from
// the build information embedded by the Go toolchain.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "g2aica"

// if number is empty then the project was not built using the makefile
var number string

var revision string
var version string

// Version returns the version string, the revision string and whether this is
// a numbered release version.
//
// The version string is "unreleased" if the project has been built from a
// repository without a version number and "local" if there is no version
// control information at all.
func Version() (string, string, bool) {
	return version, revision, number != "" && version == number
}

// String returns the application name with the version.
func String() string {
	v, r, release := Version()
	if release {
		return fmt.Sprintf("%s %s", ApplicationName, v)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, v, r)
}

func init() {
	var vcs bool
	var vcsRevision string
	var vcsModified bool

	if info, ok := debug.ReadBuildInfo(); ok {
		for _, v := range info.Settings {
			switch v.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				vcsRevision = v.Value
			case "vcs.modified":
				vcsModified = v.Value == "true"
			}
		}
	}

	if vcsRevision == "" {
		revision = "no revision information"
	} else {
		revision = vcsRevision
		if vcsModified {
			revision = fmt.Sprintf("%s+dirty", revision)
		}
	}

	switch {
	case number != "":
		version = number
	case vcs:
		version = "unreleased"
	default:
		version = "local"
	}
}
