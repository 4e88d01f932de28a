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

package g2

import (
	"fmt"

	"github.com/jetsetilly/g2aica/hardware/interrupts"
	"github.com/jetsetilly/g2aica/hardware/scheduler"
)

// ChannelID identifies one of the four DMA channels.
type ChannelID int

// List of valid ChannelID values.
const (
	AICA ChannelID = iota
	EXT1
	EXT2
	DEV
	NumChannels
)

func (id ChannelID) String() string {
	if id < 0 || id >= NumChannels {
		return "unknown"
	}
	return descriptors[id].name
}

// ChannelFromString returns the ChannelID with the name s. The boolean return
// value is false if there is no channel with that name.
func ChannelFromString(s string) (ChannelID, bool) {
	for id := AICA; id < NumChannels; id++ {
		if descriptors[id].name == s {
			return id, true
		}
	}
	return AICA, false
}

// Base address of the register block for each channel. The blocks are
// contiguous.
const (
	OriginRegisters = 0x005f7800
	sizeBlock       = 0x20
	MemtopRegisters = OriginRegisters + sizeBlock*uint32(NumChannels) - 1
)

// Register offsets within a channel's register block.
const (
	OffsetSTAG = 0x00
	OffsetSTAR = 0x04
	OffsetLEN  = 0x08
	OffsetDIR  = 0x0c
	OffsetTSEL = 0x10
	OffsetEN   = 0x14
	OffsetST   = 0x18
	OffsetSUSP = 0x1c
)

// Bits with special meaning in the channel registers.
const (
	// the byte count is in the lower 31 bits of LEN. if the top bit is set
	// the channel remains enabled after the transfer completes
	LenAutoEnable = 0x80000000
	LenMask       = 0x7fffffff

	// set in the SUSP register of the AICA channel when no transfer is in
	// progress
	SuspNotTransferring = 0x10
)

// the fixed properties of a channel
type descriptor struct {
	name string
	irq  interrupts.Interrupt

	// completion of the transfer is delayed in proportion to its length
	timed bool
}

var descriptors = [NumChannels]descriptor{
	AICA: {name: "aica", irq: interrupts.AICADMA, timed: true},
	EXT1: {name: "ext1", irq: interrupts.EXTDMA1},
	EXT2: {name: "ext2", irq: interrupts.EXTDMA2},
	DEV:  {name: "dev", irq: interrupts.DEVDMA},
}

// Channel is the register set of a single DMA channel.
type Channel struct {
	ID ChannelID

	// the address on the G2 side of the bus
	STAG uint32

	// the address in system memory
	STAR uint32

	LEN  uint32
	DIR  uint32
	TSEL uint32
	EN   uint32
	ST   uint32
	SUSP uint32

	// completion event. not part of the channel state
	event scheduler.Handle
}

func (ch *Channel) String() string {
	return fmt.Sprintf("%-4s STAG=%08x STAR=%08x LEN=%08x DIR=%d EN=%d ST=%d SUSP=%02x",
		ch.ID, ch.STAG, ch.STAR, ch.LEN, ch.DIR, ch.EN, ch.ST, ch.SUSP)
}

// Busy returns true if a transfer is in progress.
func (ch *Channel) Busy() bool {
	return ch.ST&0x01 == 0x01
}

// Enabled returns true if a write to the ST register will start a transfer.
func (ch *Channel) Enabled() bool {
	return ch.EN&0x01 == 0x01
}

// Length returns the number of bytes the channel is set to transfer.
func (ch *Channel) Length() uint32 {
	return ch.LEN & LenMask
}

// Reset zeroes all registers.
func (ch *Channel) Reset() {
	ch.STAG = 0
	ch.STAR = 0
	ch.LEN = 0
	ch.DIR = 0
	ch.TSEL = 0
	ch.EN = 0
	ch.ST = 0
	ch.SUSP = 0
}

// the source and destination of a transfer. the DIR register reverses the
// default direction of system memory to G2
func (ch *Channel) route() (dst uint32, src uint32) {
	if ch.DIR&0x01 == 0x01 {
		return ch.STAR, ch.STAG
	}
	return ch.STAG, ch.STAR
}

func (ch *Channel) read(offset uint32) (uint32, bool) {
	switch offset {
	case OffsetSTAG:
		return ch.STAG, true
	case OffsetSTAR:
		return ch.STAR, true
	case OffsetLEN:
		return ch.LEN, true
	case OffsetDIR:
		return ch.DIR, true
	case OffsetTSEL:
		return ch.TSEL, true
	case OffsetEN:
		return ch.EN, true
	case OffsetST:
		return ch.ST, true
	case OffsetSUSP:
		return ch.SUSP, true
	}
	return 0, false
}

// write to any register except ST
func (ch *Channel) write(offset uint32, data uint32) bool {
	switch offset {
	case OffsetSTAG:
		ch.STAG = data
	case OffsetSTAR:
		ch.STAR = data
	case OffsetLEN:
		ch.LEN = data
	case OffsetDIR:
		ch.DIR = data
	case OffsetTSEL:
		ch.TSEL = data
	case OffsetEN:
		ch.EN = data
	case OffsetSUSP:
		// the transfer status bit can not be written to
		ch.SUSP = (data &^ SuspNotTransferring) | (ch.SUSP & SuspNotTransferring)
	default:
		return false
	}
	return true
}
