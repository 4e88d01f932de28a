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

// Package modalflag wraps the flag package of the standard library with
// support for program modes. Each mode has its own set of flags.
//
// Arguments are given to the Modes type with NewArgs() and then parsed with
// Parse(). Sub-modes for the next call to Parse() are added with
// AddSubModes(). The first sub-mode is the default. If the first argument
// after the flags names a sub-mode then that becomes the current mode,
// otherwise the default is selected.
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("run", "inspect")
//	_, _ = md.Parse()
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		seconds := md.AddInt("seconds", 1, "emulated seconds to run for")
//		...
//	}
//
// Mode comparisons are case insensitive and Mode() always returns the upper
// case version.
package modalflag
