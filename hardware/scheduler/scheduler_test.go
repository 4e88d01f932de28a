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

package scheduler_test

import (
	"testing"

	"github.com/jetsetilly/g2aica/hardware/scheduler"
	"github.com/jetsetilly/g2aica/test"
)

type recorder struct {
	tags    []scheduler.Tag
	elapsed []int
	now     []int64
	sch     *scheduler.Scheduler
	repeat  int
}

func (r *recorder) ScheduledEvent(tag scheduler.Tag, elapsed int, _ int) int {
	r.tags = append(r.tags, tag)
	r.elapsed = append(r.elapsed, elapsed)
	r.now = append(r.now, r.sch.Now())
	return r.repeat
}

func TestOneShot(t *testing.T) {
	sch := scheduler.NewScheduler()
	r := &recorder{sch: sch}

	h := sch.Register(1, r)

	// nothing fires if nothing is requested
	test.Equate(t, sch.Advance(1000), 0)

	sch.Request(h, 100)
	rem, ok := sch.Pending(h)
	test.ExpectSuccess(t, ok)
	test.Equate(t, rem, 100)

	test.Equate(t, sch.Advance(99), 0)
	test.Equate(t, sch.Advance(1), 1)
	test.Equate(t, sch.Advance(1000), 0)

	test.DemandEquality(t, len(r.tags), 1)
	test.Equate(t, int(r.tags[0]), 1)
	test.Equate(t, r.elapsed[0], 100)
	test.Equate(t, r.now[0], int64(1100))
	test.Equate(t, sch.Now(), int64(2100))

	_, ok = sch.Pending(h)
	test.ExpectFailure(t, ok)
}

func TestRecurring(t *testing.T) {
	sch := scheduler.NewScheduler()
	r := &recorder{sch: sch, repeat: 10}

	h := sch.Register(7, r)
	sch.Request(h, 10)

	// fires at 10, 20, 30, 40 and 50
	test.Equate(t, sch.Advance(55), 5)
	test.Equate(t, sch.Fired(), 5)
	test.Equate(t, r.now[4], int64(50))

	rem, ok := sch.Pending(h)
	test.ExpectSuccess(t, ok)
	test.Equate(t, rem, 5)
}

func TestOrderAndReplace(t *testing.T) {
	sch := scheduler.NewScheduler()
	r := &recorder{sch: sch}

	a := sch.Register(1, r)
	b := sch.Register(2, r)

	sch.Request(a, 50)
	sch.Request(b, 20)

	// replace the request for a. it should now fire after b
	sch.Request(a, 30)
	sch.Advance(100)

	test.DemandEquality(t, len(r.tags), 2)
	test.Equate(t, int(r.tags[0]), 2)
	test.Equate(t, int(r.tags[1]), 1)
	test.Equate(t, r.now[1], int64(30))

	// disarm with a negative request
	sch.Request(a, 10)
	sch.Request(a, -1)
	test.Equate(t, sch.Advance(100), 0)
}

func TestHandlerFunc(t *testing.T) {
	sch := scheduler.NewScheduler()

	var count int
	h := sch.Register(0, scheduler.HandlerFunc(func(_ scheduler.Tag, _ int, _ int) int {
		count++
		return 0
	}))

	// zero cycles fires on the next advance, even an advance of zero
	sch.Request(h, 0)
	test.Equate(t, sch.Advance(0), 1)
	test.Equate(t, count, 1)
}
