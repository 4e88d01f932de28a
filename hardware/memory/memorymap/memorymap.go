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

package memorymap

import "fmt"

// Area represents the different areas of memory.
type Area int

func (a Area) String() string {
	switch a {
	case SystemRAM:
		return "System RAM"
	case WaveRAM:
		return "Wave RAM"
	}
	return "undefined"
}

// The different memory areas that can be the source or destination of a G2
// DMA transfer.
const (
	Undefined Area = iota
	SystemRAM
	WaveRAM
)

// The origin and size of each area of memory. Checking which area an address
// falls within and forcing the address into the normalised range is handled
// by the MapAddress() function.
const (
	OriginSystemRAM = uint32(0x0c000000)
	SizeSystemRAM   = uint32(0x01000000)
	OriginWaveRAM   = uint32(0x00800000)
	SizeWaveRAM     = uint32(0x00200000)
)

// The SH4 address space is 29 bits wide. The top three bits select the
// privileged region and the cache mode and can be ignored for the purposes of
// DMA.
const physicalMask = uint32(0x1fffffff)

// System RAM is found in area 3 (0x0c000000 to 0x0fffffff) and is mirrored
// four times.
const (
	area3Origin = uint32(0x0c000000)
	area3Memtop = uint32(0x0fffffff)
)

// Wave RAM is mirrored throughout 0x00800000 to 0x00ffffff.
const (
	waveOrigin = uint32(0x00800000)
	waveMemtop = uint32(0x00ffffff)
)

// MapAddress translates the address argument from mirror space to an index
// into the area.
func MapAddress(address uint32) (uint32, Area) {
	address &= physicalMask

	if address >= area3Origin && address <= area3Memtop {
		return address & (SizeSystemRAM - 1), SystemRAM
	}

	if address >= waveOrigin && address <= waveMemtop {
		return address & (SizeWaveRAM - 1), WaveRAM
	}

	return 0, Undefined
}

// Summary returns a one line description of an address.
func Summary(address uint32) string {
	idx, area := MapAddress(address)
	if area == Undefined {
		return fmt.Sprintf("%08x (unmapped)", address)
	}
	return fmt.Sprintf("%08x (%s %06x)", address, area, idx)
}
