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

package memory_test

import (
	"testing"

	"github.com/jetsetilly/g2aica/curated"
	"github.com/jetsetilly/g2aica/environment"
	"github.com/jetsetilly/g2aica/hardware/memory"
	"github.com/jetsetilly/g2aica/hardware/memory/memorymap"
	"github.com/jetsetilly/g2aica/test"
)

func newMemory(t *testing.T) *memory.Memory {
	t.Helper()
	env, err := environment.NewEnvironment(environment.MainEmulation, nil)
	test.DemandSuccess(t, err)
	env.Normalise()
	return memory.NewMemory(env)
}

func TestPeekPoke(t *testing.T) {
	mem := newMemory(t)

	test.ExpectSuccess(t, mem.Poke(0x0c000000, 0x12))
	v, err := mem.Peek(0x8c000000)
	test.ExpectSuccess(t, err)
	test.Equate(t, v, 0x12)

	_, err = mem.Peek(0x005f7800)
	test.ExpectSuccess(t, curated.Is(err, memory.UnmappedAddress))
	test.ExpectFailure(t, mem.Poke(0x01000000, 0x00))
}

func TestWords(t *testing.T) {
	mem := newMemory(t)

	mem.Write32(0x00800010, 0xdeadbeef)
	test.Equate(t, mem.Read32(0x00800010), 0xdeadbeef)
	test.Equate(t, mem.WaveRAM[0x10], 0xef)
	test.Equate(t, mem.WaveRAM[0x13], 0xde)

	// unmapped words read as zero
	test.Equate(t, mem.Read32(0x01000000), 0)
}

func TestMove(t *testing.T) {
	mem := newMemory(t)

	data := []uint8{1, 2, 3, 4, 5, 6, 7, 8}
	test.DemandSuccess(t, mem.Load(0x0c001000, data))

	mem.Move(0x00800000, 0x0c001000, uint32(len(data)))
	b, err := mem.Block(0x00800000, uint32(len(data)))
	test.DemandSuccess(t, err)
	test.Equate(t, string(b), string(data))

	// and back again to another location
	mem.Move(0x0c002000, 0x00800002, 4)
	b, err = mem.Block(0x0c002000, 4)
	test.DemandSuccess(t, err)
	test.Equate(t, string(b), string(data[2:6]))
}

func TestMoveWrap(t *testing.T) {
	mem := newMemory(t)

	// the last two bytes of wave ram and the first two bytes of the next mirror
	top := memorymap.OriginWaveRAM + memorymap.SizeWaveRAM - 2
	test.DemandSuccess(t, mem.Load(0x0c000000, []uint8{0xaa, 0xbb, 0xcc, 0xdd}))

	mem.Move(top, 0x0c000000, 4)
	test.Equate(t, mem.WaveRAM[memorymap.SizeWaveRAM-2], 0xaa)
	test.Equate(t, mem.WaveRAM[memorymap.SizeWaveRAM-1], 0xbb)
	test.Equate(t, mem.WaveRAM[0], 0xcc)
	test.Equate(t, mem.WaveRAM[1], 0xdd)
}

func TestMoveUnmapped(t *testing.T) {
	mem := newMemory(t)

	// moves to unmapped areas are dropped without complaint
	mem.Move(0x01000000, 0x0c000000, 16)
	mem.Move(0x0c000000, 0x01000000, 16)
	test.Equate(t, mem.SystemRAM[0], 0)
}
