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

package scheduler

import (
	"fmt"
	"strings"
)

// Tag is passed to the Handler when an event fires. The meaning of the tag is
// up to the user of the package.
type Tag int

// Handle identifies a registered event.
type Handle int

// NoHandle is the value of an unregistered Handle.
const NoHandle Handle = -1

// Handler implementations are called when a scheduled event fires. The
// elapsed value is the number of cycles since the event was requested and
// jitter is the number of cycles the event is late by.
//
// The return value is the number of cycles until the event next fires. A
// value of zero means the event is not to be rescheduled.
type Handler interface {
	ScheduledEvent(tag Tag, elapsed int, jitter int) int
}

// HandlerFunc is an adaptor to allow the use of an ordinary function as a
// Handler.
type HandlerFunc func(tag Tag, elapsed int, jitter int) int

// ScheduledEvent implements the Handler interface.
func (f HandlerFunc) ScheduledEvent(tag Tag, elapsed int, jitter int) int {
	return f(tag, elapsed, jitter)
}

type event struct {
	tag     Tag
	handler Handler
	armed   bool
	start   int64
	end     int64
}

// Scheduler coordinates events for any number of Handlers. The zero value is
// not usable, use NewScheduler().
type Scheduler struct {
	// the main clock counter
	now int64

	events []event

	// number of times an event has fired
	fired int
}

// NewScheduler is the preferred method of initialisation for the Scheduler
// type.
func NewScheduler() *Scheduler {
	return &Scheduler{
		events: make([]event, 0, 8),
	}
}

func (sch *Scheduler) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("cycle %d", sch.now))
	for i, e := range sch.events {
		if e.armed {
			s.WriteString(fmt.Sprintf("; [%d] tag %d -> %d", i, e.tag, e.end-sch.now))
		}
	}
	return s.String()
}

// Now returns the current value of the main clock counter.
func (sch *Scheduler) Now() int64 {
	return sch.now
}

// Fired returns the number of events that have fired since the scheduler was
// created.
func (sch *Scheduler) Fired() int {
	return sch.fired
}

// Register a Handler with the scheduler. The returned Handle is used with
// Request() to arm the event.
func (sch *Scheduler) Register(tag Tag, handler Handler) Handle {
	sch.events = append(sch.events, event{
		tag:     tag,
		handler: handler,
	})
	return Handle(len(sch.events) - 1)
}

func (sch *Scheduler) valid(h Handle) bool {
	return h >= 0 && int(h) < len(sch.events)
}

// Request the event identified by Handle to fire after the specified number
// of cycles. A negative number of cycles disarms the event. An event
// requested with zero cycles fires on the next call to Advance().
//
// Requesting an already armed event replaces the previous request.
func (sch *Scheduler) Request(h Handle, cycles int) {
	if !sch.valid(h) {
		panic(fmt.Sprintf("scheduler: invalid handle (%d)", h))
	}

	e := &sch.events[h]
	if cycles < 0 {
		e.armed = false
		return
	}

	e.armed = true
	e.start = sch.now
	e.end = sch.now + int64(cycles)
}

// Pending returns the number of cycles remaining before the event fires. The
// boolean return value is false if the event is not armed.
func (sch *Scheduler) Pending(h Handle) (int, bool) {
	if !sch.valid(h) {
		return 0, false
	}
	e := sch.events[h]
	if !e.armed {
		return 0, false
	}
	return int(e.end - sch.now), true
}

// next returns the index of the armed event that is due soonest and that is
// due no later than the limit. events registered earlier win ties.
func (sch *Scheduler) next(limit int64) int {
	idx := -1
	for i := range sch.events {
		e := &sch.events[i]
		if !e.armed || e.end > limit {
			continue
		}
		if idx == -1 || e.end < sch.events[idx].end {
			idx = i
		}
	}
	return idx
}

// Advance the main clock by the specified number of cycles, firing any
// events that fall due. Returns the number of events fired.
func (sch *Scheduler) Advance(cycles int) int {
	target := sch.now + int64(cycles)
	fired := 0

	for {
		idx := sch.next(target)
		if idx == -1 {
			break
		}

		e := &sch.events[idx]
		sch.now = e.end
		e.armed = false
		elapsed := int(e.end - e.start)

		next := e.handler.ScheduledEvent(e.tag, elapsed, 0)
		fired++
		sch.fired++

		// the handler may have re-armed the event itself
		if next > 0 && !sch.events[idx].armed {
			sch.Request(Handle(idx), next)
		}
	}

	sch.now = target

	return fired
}
