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

package aica

import (
	"github.com/jetsetilly/g2aica/logger"
)

// Width is the size of a register access in bytes.
type Width int

// List of valid Width values.
const (
	Byte Width = 1
	Half Width = 2
	Word Width = 4
)

// Addresses in the AICA register area intercepted by the interface. Only the
// low 15 bits of an address are decoded.
const (
	AddrMask   = 0x7fff
	AddrARMRST = 0x2c00
	AddrVREG   = 0x2c01
)

// the result of decoding an address in the AICA register area
type target int

const (
	passThrough target = iota
	targetARMRST
	targetVREG
	targetPair
)

func decode(addr uint32, width Width) (target, uint32) {
	addr &= AddrMask

	switch addr {
	case AddrARMRST:
		switch width {
		case Byte:
			return targetARMRST, addr
		case Half:
			return targetPair, addr
		}
	case AddrVREG:
		if width == Byte {
			return targetVREG, addr
		}
	}

	return passThrough, addr
}

// ReadReg returns the value of the register at addr. Accesses to the
// ARMRST/VREG pair are handled by the interface and all other accesses are
// passed to the sound register file.
func (aica *AICA) ReadReg(addr uint32, width Width) uint32 {
	t, addr := decode(addr, width)

	switch t {
	case targetARMRST:
		return uint32(aica.ARMRST)
	case targetVREG:
		return uint32(aica.VREG)
	case targetPair:
		return uint32(aica.VREG)<<8 | uint32(aica.ARMRST)
	}

	if aica.regs == nil {
		logger.Logf(aica.env, "aica", "read: no register file for %04x", addr)
		return 0
	}
	return aica.regs.ReadReg(addr, int(width))
}

// WriteReg writes data to the register at addr. A write that changes the
// ARMRST register also changes the enabled state of the ARM7.
func (aica *AICA) WriteReg(addr uint32, data uint32, width Width) {
	t, addr := decode(addr, width)

	switch t {
	case targetARMRST:
		aica.writeARMRST(uint8(data))
		logger.Logf(aica.env, "aica", "ARMRST = %02x", aica.ARMRST)
		return
	case targetVREG:
		aica.VREG = uint8(data)
		logger.Logf(aica.env, "aica", "VREG = %02x", aica.VREG)
		return
	case targetPair:
		aica.VREG = uint8(data >> 8)
		aica.writeARMRST(uint8(data))
		logger.Logf(aica.env, "aica", "VREG = %02x ARMRST = %02x", aica.VREG, aica.ARMRST)
		return
	}

	if aica.regs == nil {
		logger.Logf(aica.env, "aica", "write: no register file for %04x", addr)
		return
	}
	aica.regs.WriteReg(addr, data, int(width))
}

// the ARM7 runs when bit 0 of ARMRST is clear. the register is stored
// verbatim so that the other bits read back as written
func (aica *AICA) writeARMRST(data uint8) {
	aica.ARMRST = data
	if aica.arm != nil {
		aica.arm.SetEnabled(data&0x01 == 0x00)
	}
}
