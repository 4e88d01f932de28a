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

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jetsetilly/g2aica/hardware"
	"github.com/jetsetilly/g2aica/hardware/g2"
	"github.com/jetsetilly/g2aica/hardware/interrupts"
)

type styles struct {
	header   lipgloss.Style
	register lipgloss.Style
	value    lipgloss.Style
	busy     lipgloss.Style
	idle     lipgloss.Style
	irq      lipgloss.Style
	err      lipgloss.Style
}

func newStyles() styles {
	return styles{
		header:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(7)).Background(lipgloss.ANSIColor(4)),
		register: lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(6)),
		value:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(3)),
		busy:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(7)).Background(lipgloss.ANSIColor(1)),
		idle:     lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(2)),
		irq:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(5)),
		err:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(7)).Background(lipgloss.ANSIColor(1)),
	}
}

func (st styles) field(name string, format string, v any) string {
	return fmt.Sprintf("%s=%s", st.register.Render(name), st.value.Render(fmt.Sprintf(format, v)))
}

// writeRegisters prints the state of the AICA interface and the G2 bus
func (st styles) writeRegisters(output io.Writer, sys *hardware.System) {
	fmt.Fprintln(output, st.header.Render(" AICA "))
	fmt.Fprintln(output, strings.Join([]string{
		st.field("RTC", "%08x", sys.AICA.RTC.Value),
		st.field("EN", "%v", sys.AICA.RTC.Enable),
		st.field("ARMRST", "%02x", sys.AICA.ARMRST),
		st.field("VREG", "%02x", sys.AICA.VREG),
	}, " "))
	fmt.Fprintln(output, sys.ARM.String())

	fmt.Fprintln(output, st.header.Render(" G2 DMA "))
	for id := range sys.G2.Channels {
		ch := &sys.G2.Channels[id]

		status := st.idle.Render("idle")
		if ch.Busy() {
			status = st.busy.Render("busy")
		}

		fmt.Fprintf(output, "%-4s %s %s\n", ch.ID, status, strings.Join([]string{
			st.field("STAG", "%08x", ch.STAG),
			st.field("STAR", "%08x", ch.STAR),
			st.field("LEN", "%08x", ch.LEN),
			st.field("DIR", "%d", ch.DIR),
			st.field("EN", "%d", ch.EN),
			st.field("SUSP", "%02x", ch.SUSP),
		}, " "))
	}

	fmt.Fprintln(output, st.header.Render(" Interrupts "))
	irqs := make([]string, 0, g2.NumChannels)
	for _, irq := range []interrupts.Interrupt{interrupts.AICADMA, interrupts.EXTDMA1, interrupts.EXTDMA2, interrupts.DEVDMA} {
		s := fmt.Sprintf("%s: %d", irq, sys.IRQ.Count(irq))
		if sys.IRQ.Pending(irq) {
			s = st.irq.Render(s)
		}
		irqs = append(irqs, s)
	}
	fmt.Fprintln(output, strings.Join(irqs, "  "))
}
