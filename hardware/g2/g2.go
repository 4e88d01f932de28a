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
	"math"
	"strings"

	"github.com/jetsetilly/g2aica/environment"
	"github.com/jetsetilly/g2aica/hardware/interrupts"
	"github.com/jetsetilly/g2aica/hardware/scheduler"
	"github.com/jetsetilly/g2aica/logger"
)

// TagDMA is the scheduler tag for the completion event of the first channel.
// The tag for other channels is TagDMA plus the ChannelID.
const TagDMA scheduler.Tag = 0x200

// the longest delay that will be requested for a transfer. fits in a 32bit int
const maxDuration = math.MaxInt32

// Mover copies blocks of memory.
type Mover interface {
	Move(dst uint32, src uint32, n uint32)
}

// Interrupter is the interrupt controller.
type Interrupter interface {
	Raise(irq interrupts.Interrupt)
}

// Scheduler is the part of the scheduler used by the G2 bus.
type Scheduler interface {
	Register(tag scheduler.Tag, handler scheduler.Handler) scheduler.Handle
	Request(h scheduler.Handle, cycles int)
}

// Tracker implementations are notified of every memory move made by a
// channel.
type Tracker interface {
	Transfer(id ChannelID, dst uint32, src uint32, n uint32)
}

// G2 is the set of DMA channels on the G2 bus.
type G2 struct {
	env *environment.Environment

	mem Mover
	irq Interrupter
	sch Scheduler

	trackers []Tracker

	Channels [NumChannels]Channel
}

// NewG2 is the preferred method of initialisation for the G2 type.
func NewG2(env *environment.Environment, sch Scheduler, mem Mover, irq Interrupter) *G2 {
	g2 := &G2{
		env: env,
		mem: mem,
		irq: irq,
		sch: sch,
	}
	for id := range g2.Channels {
		g2.Channels[id].ID = ChannelID(id)
		g2.Channels[id].event = scheduler.NoHandle
	}
	return g2
}

func (g2 *G2) String() string {
	s := strings.Builder{}
	for id := range g2.Channels {
		s.WriteString(g2.Channels[id].String())
		s.WriteString("\n")
	}
	return strings.TrimSuffix(s.String(), "\n")
}

// Snapshot creates a copy of the G2 bus in its current state. Trackers are
// not copied.
func (g2 *G2) Snapshot() *G2 {
	n := *g2
	n.trackers = nil
	return &n
}

// Restore the channel registers from a snapshot. The completion events are
// requested again for channels that were busy when the snapshot was taken.
func (g2 *G2) Restore(from *G2) {
	for id := range g2.Channels {
		event := g2.Channels[id].event
		g2.Channels[id] = from.Channels[id]
		g2.Channels[id].event = event
	}
	g2.Resume()
}

// Resume brings the completion events into line with the channel registers.
// Used after the registers have been changed other than by the CPU.
//
// Untimed channels are never busy between accesses so a
// set ST register on those channels is cleared.
func (g2 *G2) Resume() {
	for id := range g2.Channels {
		ch := &g2.Channels[id]
		if !descriptors[id].timed {
			if ch.Busy() {
				logger.Logf(g2.env, "g2", "%s: clearing ST of untimed channel", ch.ID)
				ch.ST &^= 0x01
			}
			continue
		}
		if ch.event == scheduler.NoHandle {
			continue
		}
		if ch.Busy() {
			g2.sch.Request(ch.event, g2.duration(ch.Length()))
		} else {
			g2.sch.Request(ch.event, -1)
		}
	}
}

// AttachTracker adds a Tracker to the G2 bus. A nil value removes all
// attached trackers.
func (g2 *G2) AttachTracker(tracker Tracker) {
	if tracker == nil {
		g2.trackers = g2.trackers[:0]
		return
	}
	g2.trackers = append(g2.trackers, tracker)
}

// Init registers the completion events with the scheduler. Events are only
// registered the first time Init() is called.
func (g2 *G2) Init() {
	for id := range g2.Channels {
		ch := &g2.Channels[id]
		if descriptors[id].timed && ch.event == scheduler.NoHandle {
			ch.event = g2.sch.Register(TagDMA+scheduler.Tag(id), g2)
		}
	}
}

// Term stops any pending completion events.
func (g2 *G2) Term() {
	for id := range g2.Channels {
		if g2.Channels[id].event != scheduler.NoHandle {
			g2.sch.Request(g2.Channels[id].event, -1)
		}
	}
}

// Reset zeroes the registers of every channel. Pending completion events are
// not cancelled but will do nothing when they fire.
func (g2 *G2) Reset() {
	for id := range g2.Channels {
		g2.Channels[id].Reset()
	}
}

// decode an address in the register block into a channel and a register
// offset.
func (g2 *G2) decode(addr uint32) (*Channel, uint32, bool) {
	addr &= 0x1fffffff
	if addr < OriginRegisters || addr > MemtopRegisters {
		return nil, 0, false
	}
	addr -= OriginRegisters
	return &g2.Channels[addr/sizeBlock], addr % sizeBlock, true
}

// Read returns the value of the register at addr.
func (g2 *G2) Read(addr uint32) uint32 {
	ch, offset, ok := g2.decode(addr)
	if ok {
		if v, ok := ch.read(offset); ok {
			return v
		}
	}
	logger.Logf(g2.env, "g2", "read: invalid register access %08x", addr)
	return 0
}

// Write data to the register at addr. A write to an ST register with bit 0
// set starts a transfer.
func (g2 *G2) Write(addr uint32, data uint32) {
	ch, offset, ok := g2.decode(addr)
	if !ok {
		logger.Logf(g2.env, "g2", "write: invalid register access %08x", addr)
		return
	}

	if offset == OffsetST {
		if data&0x01 == 0x01 {
			g2.Start(ch.ID)
		}
		return
	}

	if !ch.write(offset, data) {
		logger.Logf(g2.env, "g2", "write: invalid register access %08x", addr)
	}
}

// Start a transfer on the channel. Has no effect if the channel is not
// enabled.
func (g2 *G2) Start(id ChannelID) {
	ch := &g2.Channels[id]
	if !ch.Enabled() {
		return
	}

	n := ch.Length()
	dst, src := ch.route()
	g2.mem.Move(dst, src, n)

	for _, t := range g2.trackers {
		t.Transfer(id, dst, src, n)
	}

	if !descriptors[id].timed {
		if g2.env.Prefs.DMALogging.Get().(bool) {
			logger.Logf(g2.env, "g2", "%s: %s", id, transferDetail(ch, n))
		}
		g2.complete(ch)
		return
	}

	ch.ST = 0x01
	ch.SUSP &^= SuspNotTransferring

	cycles := g2.duration(n)
	if cycles < g2.env.Prefs.InlineThreshold.Get().(int) {
		g2.complete(ch)
		return
	}

	g2.sch.Request(ch.event, cycles)
}

// the number of cycles needed to transfer n bytes
func (g2 *G2) duration(n uint32) int {
	cycles := int64(n) * int64(g2.env.Prefs.CyclesPerG2Byte())
	return int(min(cycles, maxDuration))
}

// complete a transfer. the source and destination registers are advanced by
// the length of the transfer regardless of direction
func (g2 *G2) complete(ch *Channel) {
	n := ch.Length()
	ch.STAR += n
	ch.STAG += n

	if ch.LEN&LenAutoEnable == LenAutoEnable {
		ch.EN = 0x01
	} else {
		ch.EN = 0x00
	}
	ch.ST = 0x00
	ch.LEN = 0x00

	if descriptors[ch.ID].timed {
		ch.SUSP |= SuspNotTransferring
	}

	g2.irq.Raise(descriptors[ch.ID].irq)
}

// ScheduledEvent implements the scheduler.Handler interface.
func (g2 *G2) ScheduledEvent(tag scheduler.Tag, _ int, _ int) int {
	id := ChannelID(tag - TagDMA)
	if id < 0 || id >= NumChannels {
		logger.Logf(g2.env, "g2", "unexpected scheduler tag %d", tag)
		return 0
	}

	// the channel was reset while the transfer was in progress
	ch := &g2.Channels[id]
	if !ch.Busy() {
		return 0
	}

	g2.complete(ch)
	return 0
}

func transferDetail(ch *Channel, n uint32) string {
	if ch.DIR&0x01 == 0x01 {
		return fmt.Sprintf("g2 %08x -> system %08x (%d bytes)", ch.STAG, ch.STAR, n)
	}
	return fmt.Sprintf("system %08x -> g2 %08x (%d bytes)", ch.STAR, ch.STAG, n)
}
