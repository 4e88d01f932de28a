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


package prefs

import (
	"testing"

	"github.com/jetsetilly/g2aica/test"
)

func TestDefunct(t *testing.T) {
	// there are no retired preference keys
	test.Equate(t, len(defunct), 0)
	test.ExpectFailure(t, isDefunct("hardware.g2.inline"))
	test.ExpectFailure(t, isDefunct(""))
}
