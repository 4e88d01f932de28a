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

package memory

import (
	"encoding/binary"
	"fmt"

	"github.com/jetsetilly/g2aica/curated"
	"github.com/jetsetilly/g2aica/environment"
	"github.com/jetsetilly/g2aica/hardware/memory/memorymap"
	"github.com/jetsetilly/g2aica/logger"
)

// UnmappedAddress is returned by Peek(), Poke() and Block() for addresses
// that do not map to any area of memory.
const UnmappedAddress = "memory: unmapped address: %08x"

// Memory is the backing store for system RAM and wave RAM.
type Memory struct {
	env *environment.Environment

	SystemRAM []uint8
	WaveRAM   []uint8
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory(env *environment.Environment) *Memory {
	return &Memory{
		env:       env,
		SystemRAM: make([]uint8, memorymap.SizeSystemRAM),
		WaveRAM:   make([]uint8, memorymap.SizeWaveRAM),
	}
}

func (mem *Memory) String() string {
	return fmt.Sprintf("system ram %dKB, wave ram %dKB", len(mem.SystemRAM)/1024, len(mem.WaveRAM)/1024)
}

// span returns the slice of the area that address maps to, starting at the
// address and continuing to the end of the area.
func (mem *Memory) span(address uint32) []uint8 {
	idx, area := memorymap.MapAddress(address)
	switch area {
	case memorymap.SystemRAM:
		return mem.SystemRAM[idx:]
	case memorymap.WaveRAM:
		return mem.WaveRAM[idx:]
	}
	return nil
}

// Move copies n bytes from src to dst. Areas are wrapped through their
// mirrors so a transfer that runs off the end of an area continues at the
// start of the next mirror.
func (mem *Memory) Move(dst uint32, src uint32, n uint32) {
	for n > 0 {
		d := mem.span(dst)
		if d == nil {
			logger.Logf(mem.env, "memory", "move: unmapped destination %08x (%d bytes dropped)", dst, n)
			return
		}
		s := mem.span(src)
		if s == nil {
			logger.Logf(mem.env, "memory", "move: unmapped source %08x (%d bytes dropped)", src, n)
			return
		}

		c := uint32(copy(d[:min(uint32(len(d)), n)], s))
		dst += c
		src += c
		n -= c
	}
}

// Block returns a copy of n bytes of memory starting at address.
func (mem *Memory) Block(address uint32, n uint32) ([]uint8, error) {
	b := make([]uint8, 0, n)
	for uint32(len(b)) < n {
		s := mem.span(address + uint32(len(b)))
		if s == nil {
			return nil, curated.Errorf(UnmappedAddress, address+uint32(len(b)))
		}
		b = append(b, s[:min(uint32(len(s)), n-uint32(len(b)))]...)
	}
	return b, nil
}

// Peek returns the byte at address.
func (mem *Memory) Peek(address uint32) (uint8, error) {
	s := mem.span(address)
	if s == nil {
		return 0, curated.Errorf(UnmappedAddress, address)
	}
	return s[0], nil
}

// Poke writes the byte at address.
func (mem *Memory) Poke(address uint32, data uint8) error {
	s := mem.span(address)
	if s == nil {
		return curated.Errorf(UnmappedAddress, address)
	}
	s[0] = data
	return nil
}

// Load copies data into memory starting at address.
func (mem *Memory) Load(address uint32, data []uint8) error {
	for len(data) > 0 {
		s := mem.span(address)
		if s == nil {
			return curated.Errorf(UnmappedAddress, address)
		}
		c := copy(s, data)
		data = data[c:]
		address += uint32(c)
	}
	return nil
}

// Read32 returns the little-endian word at address. Unmapped addresses read
// as zero.
func (mem *Memory) Read32(address uint32) uint32 {
	b, err := mem.Block(address, 4)
	if err != nil {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

// Write32 writes the little-endian word at address. Unmapped addresses are
// ignored.
func (mem *Memory) Write32(address uint32, data uint32) {
	var b [4]uint8
	binary.LittleEndian.PutUint32(b[:], data)
	_ = mem.Load(address, b[:])
}
