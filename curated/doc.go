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

// Package curated is a helper package for the plain Go language error type.
// Curated errors are created with the Errorf() function and are
// differentiated by the formatting pattern rather than by the formatted
// message. For example:
//
//	e := curated.Errorf("state: bad checksum (%02x)", sum)
//
//	if curated.Is(e, "state: bad checksum (%02x)") {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain. The chain is formed by using a curated error as a
// placeholder value in another curated error.
//
// Packages that return curated errors that are worth checking for should
// export the pattern as a constant. For instance, the prefs package exports
// NoPrefsFile.
//
// The Error() function normalises the error chain so that duplicate adjacent
// parts of the message are removed. This means that a package can wrap
// errors with its own prefix without worrying whether the error was already
// prefixed by a lower level function in the same package.
package curated
