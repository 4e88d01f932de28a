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

// Package prefs facilitates the storage of preferential values in the
// emulation. Preference values are declared as one of the types in the
// package (Bool, Int and String) and are then added to a Disk instance with
// a unique key. The Disk type saves and loads the values to and from a plain
// text file of "key :: value" lines.
//
// A preferences file can be shared between more than one Disk instance. Keys
// that are not registered with a Disk instance are preserved when that Disk
// is saved.
//
// Preference values can be overridden on the command line with the command
// line stack. A preference string has the form:
//
//	key::value; key::value
//
// Values on the top of the command line stack take precedence over values
// on disk when a Disk is loaded. Values are removed from the stack once they
// have been used.
package prefs
