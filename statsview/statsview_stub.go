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


//go:build !statsview

package statsview

import "io"

// Address of the statistics server. Empty because the server is not
// available in this build.
const Address = ""

// Launch does nothing in this build.
func Launch(_ io.Writer) {
}

// Available returns true if a statsview is available to launch.
func Available() bool {
	return false
}
