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

package hardware

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/g2aica/environment"
	"github.com/jetsetilly/g2aica/hardware/aica"
	"github.com/jetsetilly/g2aica/hardware/arm7"
	"github.com/jetsetilly/g2aica/hardware/g2"
	"github.com/jetsetilly/g2aica/hardware/interrupts"
	"github.com/jetsetilly/g2aica/hardware/memory"
	"github.com/jetsetilly/g2aica/hardware/scheduler"
	"github.com/jetsetilly/g2aica/hardware/soundregs"
	"github.com/jetsetilly/g2aica/logger"
)

// Address ranges decoded by ReadBus() and WriteBus().
const (
	OriginAICARegisters = 0x00700000
	MemtopAICARegisters = OriginAICARegisters + aica.AddrMask
	OriginRTC           = 0x00710000
	MemtopRTC           = OriginRTC + aica.RTCEnable + 3
)

// System is the main container for the emulated components of the AICA
// interface.
type System struct {
	Env *environment.Environment

	Scheduler *scheduler.Scheduler
	Mem       *memory.Memory
	IRQ       *interrupts.Controller
	ARM       *arm7.ARM7
	SoundRegs *soundregs.Registers

	AICA *aica.AICA
	G2   *g2.G2
}

// NewSystem creates a new System and everything associated with the
// hardware. The env argument can be nil, in which case a new environment for
// the main emulation is created.
//
// The System must be initialised with Init() before use.
func NewSystem(env *environment.Environment) (*System, error) {
	if env == nil {
		var err error
		env, err = environment.NewEnvironment(environment.MainEmulation, nil)
		if err != nil {
			return nil, err
		}
	}

	sys := &System{
		Env:       env,
		Scheduler: scheduler.NewScheduler(),
		Mem:       memory.NewMemory(env),
		IRQ:       interrupts.NewController(),
		ARM:       arm7.NewARM7(env),
		SoundRegs: soundregs.NewRegisters(),
	}

	sys.AICA = aica.NewAICA(env, sys.Scheduler, sys.SoundRegs, sys.ARM)
	sys.G2 = g2.NewG2(env, sys.Scheduler, sys.Mem, sys.IRQ)

	return sys, nil
}

func (sys *System) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s\n", sys.AICA))
	s.WriteString(fmt.Sprintf("%s\n", sys.G2))
	s.WriteString(fmt.Sprintf("%s\n", sys.IRQ))
	s.WriteString(sys.ARM.String())
	return s.String()
}

// Init seeds the RTC and registers the scheduler events. Calling Init() more
// than once reseeds the RTC but does not register the events again.
func (sys *System) Init() {
	sys.AICA.Init()
	sys.G2.Init()
}

// Reset the AICA interface and the G2 bus. A manual reset leaves the RTC
// running. Any other reset reseeds the RTC.
func (sys *System) Reset(manual bool) {
	sys.AICA.Reset(manual)
	sys.G2.Reset()
	logger.Logf(sys.Env, "hardware", "reset (manual=%v)", manual)
}

// Term stops all scheduler events.
func (sys *System) Term() {
	sys.AICA.Term()
	sys.G2.Term()
}

// ReadBus returns the value at addr as seen by the CPU. Width is the size of
// the access in bytes.
func (sys *System) ReadBus(addr uint32, width aica.Width) uint32 {
	addr &= 0x1fffffff

	switch {
	case addr >= OriginAICARegisters && addr <= MemtopAICARegisters:
		return sys.AICA.ReadReg(addr, width)
	case addr >= OriginRTC && addr <= MemtopRTC:
		return sys.AICA.RTC.ReadRTC(addr, width)
	case addr >= g2.OriginRegisters && addr <= g2.MemtopRegisters:
		if width != aica.Word {
			logger.Logf(sys.Env, "hardware", "read: %d byte access to G2 register %08x", width, addr)
			return 0
		}
		return sys.G2.Read(addr)
	}

	b, err := sys.Mem.Block(addr, uint32(width))
	if err != nil {
		logger.Log(sys.Env, "hardware", err.Error())
		return 0
	}

	var v uint32
	for i := len(b) - 1; i >= 0; i-- {
		v = v<<8 | uint32(b[i])
	}
	return v
}

// WriteBus writes data to addr as if it was the CPU. Width is the size of
// the access in bytes.
func (sys *System) WriteBus(addr uint32, data uint32, width aica.Width) {
	addr &= 0x1fffffff

	switch {
	case addr >= OriginAICARegisters && addr <= MemtopAICARegisters:
		sys.AICA.WriteReg(addr, data, width)
		return
	case addr >= OriginRTC && addr <= MemtopRTC:
		sys.AICA.RTC.WriteRTC(addr, data, width)
		return
	case addr >= g2.OriginRegisters && addr <= g2.MemtopRegisters:
		if width != aica.Word {
			logger.Logf(sys.Env, "hardware", "write: %d byte access to G2 register %08x", width, addr)
			return
		}
		sys.G2.Write(addr, data)
		return
	}

	b := make([]uint8, width)
	for i := range b {
		b[i] = uint8(data >> (i * 8))
	}
	if err := sys.Mem.Load(addr, b); err != nil {
		logger.Log(sys.Env, "hardware", err.Error())
	}
}
