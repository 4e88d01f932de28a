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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The ExpectFailure and ExpectSuccess functions test for failure and success
// under generic conditions. The documentation for those functions describe
// the currently supported types. The Demand* functions are similar but a
// failed test is fatal.
//
// It is worth describing how the "Expect" functions handle the nil type
// because it is not obvious. The nil type is considered a success and
// consequently will cause ExpectFailure to fail and ExpectSuccess to
// succeed. This is because of how errors usually work (nil to indicate no
// error).
//
// The Writer type implements the io.Writer interface and should be used to
// capture output. The Writer.Compare() function can then be used to test for
// equality. RingWriter is similar but only keeps the most recent output.
//
// The Equate() function compares like-typed variables for equality. Unsigned
// types can be compared against int for convenience because a literal number
// value is of type int.
package test
