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

// Package soundregs is plain storage for the AICA sound registers (channel
// control, common data, DSP). The registers have no behaviour in this
// emulation. They exist so that register accesses passed through by the AICA
// interface land somewhere and can be read back.
package soundregs

import "encoding/binary"

// Size of the register file in bytes.
const Size = 0x8000

// Registers is the sound register file. Multi-byte accesses are
// little-endian.
type Registers struct {
	data [Size]uint8
}

// NewRegisters is the preferred method of initialisation for the Registers
// type.
func NewRegisters() *Registers {
	return &Registers{}
}

// ReadReg returns the value of the register at addr. The width is the number
// of bytes to read (1, 2 or 4).
func (regs *Registers) ReadReg(addr uint32, width int) uint32 {
	addr &= Size - 1
	switch width {
	case 1:
		return uint32(regs.data[addr])
	case 2:
		if addr+2 > Size {
			return 0
		}
		return uint32(binary.LittleEndian.Uint16(regs.data[addr:]))
	case 4:
		if addr+4 > Size {
			return 0
		}
		return binary.LittleEndian.Uint32(regs.data[addr:])
	}
	return 0
}

// WriteReg writes to the register at addr. The width is the number of bytes
// to write (1, 2 or 4).
func (regs *Registers) WriteReg(addr uint32, data uint32, width int) {
	addr &= Size - 1
	switch width {
	case 1:
		regs.data[addr] = uint8(data)
	case 2:
		if addr+2 <= Size {
			binary.LittleEndian.PutUint16(regs.data[addr:], uint16(data))
		}
	case 4:
		if addr+4 <= Size {
			binary.LittleEndian.PutUint32(regs.data[addr:], data)
		}
	}
}

// Reset all registers to zero.
func (regs *Registers) Reset() {
	clear(regs.data[:])
}
