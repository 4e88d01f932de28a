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

// Package interrupts is a minimal model of the Holly normal interrupt status
// register (SB_ISTNRM). It is enough for the G2 DMA channels to signal the
// end of a transfer and for tests and tools to see that they have done so.
package interrupts

import (
	"fmt"
	"strings"
)

// Interrupt identifies a bit in the normal interrupt status register.
type Interrupt int

// List of valid Interrupt values that are raised by the AICA interface.
const (
	AICADMA Interrupt = 15
	EXTDMA1 Interrupt = 16
	EXTDMA2 Interrupt = 17
	DEVDMA  Interrupt = 18
)

func (irq Interrupt) String() string {
	switch irq {
	case AICADMA:
		return "AICA DMA"
	case EXTDMA1:
		return "EXT DMA1"
	case EXTDMA2:
		return "EXT DMA2"
	case DEVDMA:
		return "DEV DMA"
	}
	return fmt.Sprintf("NRM bit %d", int(irq))
}

// Controller records raised interrupts.
type Controller struct {
	// normal interrupt status
	ISTNRM uint32

	// number of times each interrupt has been raised
	count map[Interrupt]int
}

// NewController is the preferred method of initialisation for the Controller
// type.
func NewController() *Controller {
	return &Controller{
		count: make(map[Interrupt]int),
	}
}

func (ctl *Controller) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("ISTNRM=%08x", ctl.ISTNRM))
	for _, irq := range []Interrupt{AICADMA, EXTDMA1, EXTDMA2, DEVDMA} {
		if ctl.count[irq] > 0 {
			s.WriteString(fmt.Sprintf(" %s=%d", irq, ctl.count[irq]))
		}
	}
	return s.String()
}

// Raise the interrupt.
func (ctl *Controller) Raise(irq Interrupt) {
	ctl.ISTNRM |= 1 << uint(irq)
	ctl.count[irq]++
}

// Pending returns true if interrupt has been raised and not acknowledged.
func (ctl *Controller) Pending(irq Interrupt) bool {
	return ctl.ISTNRM&(1<<uint(irq)) != 0
}

// Count returns the number of times the interrupt has been raised.
func (ctl *Controller) Count(irq Interrupt) int {
	return ctl.count[irq]
}

// Acknowledge clears the pending state of the interrupt. Mirrors the write to
// SB_ISTNRM that clears status bits.
func (ctl *Controller) Acknowledge(irq Interrupt) {
	ctl.ISTNRM &^= 1 << uint(irq)
}

// Reset forgets all raised interrupts.
func (ctl *Controller) Reset() {
	ctl.ISTNRM = 0
	clear(ctl.count)
}
