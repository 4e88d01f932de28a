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
	"fmt"
	"time"

	"github.com/jetsetilly/g2aica/environment"
	"github.com/jetsetilly/g2aica/hardware/scheduler"
	"github.com/jetsetilly/g2aica/logger"
)

// TagRTC is the scheduler tag for the once per second RTC event.
const TagRTC scheduler.Tag = 0x100

// RegisterFile is the sound register file that register accesses are passed
// to when they are not intercepted by the interface.
type RegisterFile interface {
	ReadReg(addr uint32, width int) uint32
	WriteReg(addr uint32, data uint32, width int)
}

// ARM is the part of the ARM7 co-processor controlled by the ARMRST register.
type ARM interface {
	SetEnabled(enabled bool)
}

// Scheduler is the part of the scheduler used by the AICA interface.
type Scheduler interface {
	Register(tag scheduler.Tag, handler scheduler.Handler) scheduler.Handle
	Request(h scheduler.Handle, cycles int)
	Pending(h scheduler.Handle) (int, bool)
}

// AICA is the system side of the AICA interface.
type AICA struct {
	env *environment.Environment

	RTC RTC

	// the ARM reset register and its neighbour. VREG has no function other
	// than holding the last value written to it
	ARMRST uint8
	VREG   uint8

	// the time source used to seed the RTC when the preferences do not ask
	// for a fixed seed
	Time TimeSource

	regs RegisterFile
	arm  ARM
	sch  Scheduler

	rtcEvent scheduler.Handle
}

// NewAICA is the preferred method of initialisation for the AICA type. The
// regs and arm arguments can be nil.
func NewAICA(env *environment.Environment, sch Scheduler, regs RegisterFile, arm ARM) *AICA {
	return &AICA{
		env:      env,
		RTC:      RTC{env: env},
		Time:     WallClock{},
		regs:     regs,
		arm:      arm,
		sch:      sch,
		rtcEvent: scheduler.NoHandle,
	}
}

func (aica *AICA) String() string {
	return fmt.Sprintf("%s ARMRST=%02x VREG=%02x", aica.RTC.String(), aica.ARMRST, aica.VREG)
}

// Snapshot creates a copy of the AICA interface in its current state.
func (aica *AICA) Snapshot() *AICA {
	n := *aica
	return &n
}

// Restore the register state from a snapshot. The ARM7 enabled state is
// brought into line with the restored ARMRST register and the RTC event is
// started again if it had been stopped.
func (aica *AICA) Restore(from *AICA) {
	aica.RTC.Value = from.RTC.Value
	aica.RTC.Enable = from.RTC.Enable
	aica.VREG = from.VREG
	aica.ARMRST = from.ARMRST
	if aica.arm != nil {
		aica.arm.SetEnabled(aica.ARMRST&0x01 == 0x00)
	}
	aica.startRTC()
}

// startRTC requests the RTC event if it is registered but not armed.
func (aica *AICA) startRTC() {
	if aica.rtcEvent == scheduler.NoHandle {
		return
	}
	if _, ok := aica.sch.Pending(aica.rtcEvent); !ok {
		aica.sch.Request(aica.rtcEvent, aica.env.Prefs.CyclesPerSecond())
	}
}

// seed returns the initial value of the RTC.
func (aica *AICA) seed() uint32 {
	if aica.env.Prefs.FixedRTC.Get().(bool) {
		return uint32(aica.env.Prefs.RTCSeed.Get().(int))
	}
	if aica.Time == nil {
		return RTCEpoch(time.Now())
	}
	return RTCEpoch(aica.Time.Now())
}

// Init seeds the RTC, clears the enable latch and starts the RTC event if it
// is not already running. The event is only registered with the scheduler the
// first time Init() is called.
func (aica *AICA) Init() {
	aica.RTC.Value = aica.seed()
	aica.RTC.Enable = false

	if aica.rtcEvent == scheduler.NoHandle {
		aica.rtcEvent = aica.sch.Register(TagRTC, aica)
	}
	aica.startRTC()

	logger.Logf(aica.env, "aica", "rtc seeded with %08x", aica.RTC.Value)
}

// Reset the AICA interface. A manual reset leaves the RTC running. Any other
// reset is treated as a power cycle and reseeds the RTC.
func (aica *AICA) Reset(manual bool) {
	if !manual {
		aica.Init()
	}
	aica.ARMRST = 0
	aica.VREG = 0
}

// Term stops the RTC event.
func (aica *AICA) Term() {
	if aica.rtcEvent != scheduler.NoHandle {
		aica.sch.Request(aica.rtcEvent, -1)
	}
}

// ScheduledEvent implements the scheduler.Handler interface.
func (aica *AICA) ScheduledEvent(tag scheduler.Tag, _ int, _ int) int {
	if tag != TagRTC {
		logger.Logf(aica.env, "aica", "unexpected scheduler tag %d", tag)
		return 0
	}
	aica.RTC.Tick()
	return aica.env.Prefs.CyclesPerSecond()
}
