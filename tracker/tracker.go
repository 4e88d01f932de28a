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

// Package tracker keeps a history of the transfers made by the G2 DMA
// channels.
package tracker

import (
	"fmt"
	"io"

	"github.com/jetsetilly/g2aica/hardware/g2"
)

// Clock returns the current cycle count of the emulation.
type Clock interface {
	Now() int64
}

// Entry is a single transfer in the history.
type Entry struct {
	Cycle   int64
	Channel g2.ChannelID
	Dst     uint32
	Src     uint32
	Len     uint32
}

func (e Entry) String() string {
	return fmt.Sprintf("%12d %-4s %08x -> %08x (%d bytes)", e.Cycle, e.Channel, e.Src, e.Dst, e.Len)
}

// Tracker implements the g2.Tracker interface and keeps a history of
// transfers. The oldest entries are forgotten once the history is full.
type Tracker struct {
	clock   Clock
	entries []Entry
	max     int

	// number of entries forgotten
	dropped int
}

// NewTracker is the preferred method of initialisation for the Tracker type.
// The max argument is the number of entries to keep.
func NewTracker(clock Clock, max int) *Tracker {
	return &Tracker{
		clock:   clock,
		entries: make([]Entry, 0, max),
		max:     max,
	}
}

// Transfer implements the g2.Tracker interface.
func (tr *Tracker) Transfer(id g2.ChannelID, dst uint32, src uint32, n uint32) {
	if tr.max <= 0 {
		return
	}

	if len(tr.entries) >= tr.max {
		copy(tr.entries, tr.entries[1:])
		tr.entries = tr.entries[:len(tr.entries)-1]
		tr.dropped++
	}

	var cycle int64
	if tr.clock != nil {
		cycle = tr.clock.Now()
	}

	tr.entries = append(tr.entries, Entry{
		Cycle:   cycle,
		Channel: id,
		Dst:     dst,
		Src:     src,
		Len:     n,
	})
}

// BorrowTracker calls f with the history. The slice must not be kept after
// f returns.
func (tr *Tracker) BorrowTracker(f func([]Entry)) {
	f(tr.entries)
}

// Write the history to output.
func (tr *Tracker) Write(output io.Writer) {
	if tr.dropped > 0 {
		fmt.Fprintf(output, "(%d earlier transfers)\n", tr.dropped)
	}
	for _, e := range tr.entries {
		fmt.Fprintln(output, e)
	}
}
