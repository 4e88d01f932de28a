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

package memorymap_test

import (
	"testing"

	"github.com/jetsetilly/g2aica/hardware/memory/memorymap"
	"github.com/jetsetilly/g2aica/test"
)

func TestMapAddress(t *testing.T) {
	idx, area := memorymap.MapAddress(0x0c000010)
	test.Equate(t, idx, 0x10)
	test.Equate(t, area == memorymap.SystemRAM, true)

	// P2 mirror and the upper area 3 mirror
	idx, area = memorymap.MapAddress(0xac000010)
	test.Equate(t, idx, 0x10)
	test.Equate(t, area == memorymap.SystemRAM, true)
	idx, area = memorymap.MapAddress(0x0f000020)
	test.Equate(t, idx, 0x20)
	test.Equate(t, area == memorymap.SystemRAM, true)

	// wave ram and its mirror
	idx, area = memorymap.MapAddress(0x00800100)
	test.Equate(t, idx, 0x100)
	test.Equate(t, area == memorymap.WaveRAM, true)
	idx, area = memorymap.MapAddress(0x00a00100)
	test.Equate(t, idx, 0x100)
	test.Equate(t, area == memorymap.WaveRAM, true)

	_, area = memorymap.MapAddress(0x005f7800)
	test.Equate(t, area == memorymap.Undefined, true)

	test.Equate(t, memorymap.Summary(0x00800100), "00800100 (Wave RAM 000100)")
	test.Equate(t, memorymap.Summary(0x01000000), "01000000 (unmapped)")
}
