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

package hardware_test

import (
	"bytes"
	"testing"

	"github.com/jetsetilly/g2aica/curated"
	"github.com/jetsetilly/g2aica/environment"
	"github.com/jetsetilly/g2aica/hardware"
	"github.com/jetsetilly/g2aica/hardware/aica"
	"github.com/jetsetilly/g2aica/hardware/g2"
	"github.com/jetsetilly/g2aica/hardware/interrupts"
	"github.com/jetsetilly/g2aica/test"
)

func newSystem(t *testing.T) *hardware.System {
	t.Helper()

	env, err := environment.NewEnvironment(environment.MainEmulation, nil)
	test.DemandSuccess(t, err)
	env.Normalise()
	env.Quiet = true

	sys, err := hardware.NewSystem(env)
	test.DemandSuccess(t, err)
	sys.Init()
	sys.Reset(false)

	return sys
}

// program the AICA channel through the bus as the CPU would
func programAICA(sys *hardware.System, stag, star, length uint32) {
	sys.WriteBus(0x005f7800+g2.OffsetSTAG, stag, aica.Word)
	sys.WriteBus(0x005f7800+g2.OffsetSTAR, star, aica.Word)
	sys.WriteBus(0x005f7800+g2.OffsetLEN, length, aica.Word)
	sys.WriteBus(0x005f7800+g2.OffsetDIR, 0, aica.Word)
	sys.WriteBus(0x005f7800+g2.OffsetEN, 1, aica.Word)
	sys.WriteBus(0x005f7800+g2.OffsetST, 1, aica.Word)
}

func TestBus(t *testing.T) {
	sys := newSystem(t)

	// RTC through the bus
	sys.WriteBus(0x00710008, 1, aica.Half)
	sys.WriteBus(0x00710004, 0x5678, aica.Half)
	sys.WriteBus(0x00710000, 0x1234, aica.Half)
	test.Equate(t, sys.ReadBus(0x00710000, aica.Half), 0x1234)
	test.Equate(t, sys.ReadBus(0x00710004, aica.Half), 0x5678)

	// the ARMRST/VREG pair and its mirror in P2
	sys.WriteBus(0x00702c00, 0x0100, aica.Half)
	test.Equate(t, sys.ReadBus(0xa0702c01, aica.Byte), 0x01)
	test.ExpectSuccess(t, sys.ARM.Enabled())

	// a sound register
	sys.WriteBus(0x00702800, 0xbeef, aica.Half)
	test.Equate(t, sys.SoundRegs.ReadReg(0x2800, 2), 0xbeef)

	// G2 registers only accept word accesses
	sys.WriteBus(0x005f7840, 0x00801000, aica.Word)
	test.Equate(t, sys.G2.Channels[g2.EXT2].STAG, 0x00801000)
	sys.WriteBus(0x005f7840, 0x1234, aica.Half)
	test.Equate(t, sys.ReadBus(0x005f7840, aica.Word), 0x00801000)
	test.Equate(t, sys.ReadBus(0x005f7840, aica.Half), 0)

	// everything else is memory
	sys.WriteBus(0x0c000000, 0x11223344, aica.Word)
	test.Equate(t, sys.ReadBus(0x8c000000, aica.Word), 0x11223344)
	test.Equate(t, sys.ReadBus(0x0c000001, aica.Byte), 0x33)
	test.Equate(t, sys.ReadBus(0x01000000, aica.Word), 0)
}

func TestTransfer(t *testing.T) {
	sys := newSystem(t)
	test.DemandSuccess(t, sys.Mem.Load(0x0c000000, []uint8{0x01, 0x02, 0x03, 0x04}))

	programAICA(sys, 0x00800000, 0x0c000000, 0x2000)
	test.Equate(t, sys.ReadBus(0x005f7800+g2.OffsetST, aica.Word), 1)
	test.Equate(t, sys.ReadBus(0x00800000, aica.Word), 0x04030201)

	test.DemandSuccess(t, sys.RunFor(32768, nil))
	test.Equate(t, sys.ReadBus(0x005f7800+g2.OffsetST, aica.Word), 0)
	test.ExpectSuccess(t, sys.IRQ.Pending(interrupts.AICADMA))
	test.Equate(t, sys.IRQ.Count(interrupts.AICADMA), 1)
}

func TestRunForSeconds(t *testing.T) {
	sys := newSystem(t)
	test.Equate(t, sys.AICA.RTC.Value, 0)

	test.DemandSuccess(t, sys.RunForSeconds(3, nil))
	test.Equate(t, sys.AICA.RTC.Value, 3)

	// continueCheck ends the run early
	n := 0
	err := sys.Run(func() (bool, error) {
		n++
		return n < 10, nil
	})
	test.DemandSuccess(t, err)
	test.Equate(t, n, 10)
	test.Equate(t, sys.Scheduler.Now(), int64(3*200000000+10*hardware.Quantum))
}

func TestReset(t *testing.T) {
	sys := newSystem(t)

	programAICA(sys, 0x00800000, 0x0c000000, 0x2000)
	sys.WriteBus(0x005f7860+g2.OffsetSTAR, 0x0c001000, aica.Word)
	sys.WriteBus(0x00702c00, 0x0301, aica.Half)
	test.DemandSuccess(t, sys.RunForSeconds(2, nil))
	test.Equate(t, sys.AICA.RTC.Value, 2)

	// a manual reset leaves the RTC running
	sys.Reset(true)
	for id := g2.AICA; id < g2.NumChannels; id++ {
		ch := sys.G2.Channels[id]
		test.Equate(t, ch.STAG, 0)
		test.Equate(t, ch.STAR, 0)
		test.Equate(t, ch.LEN, 0)
		test.Equate(t, ch.EN, 0)
		test.Equate(t, ch.ST, 0)
	}
	test.Equate(t, sys.AICA.VREG, 0)
	test.Equate(t, sys.AICA.ARMRST, 0)
	test.Equate(t, sys.AICA.RTC.Value, 2)

	// a power-on reset reseeds the RTC
	sys.Env.Prefs.RTCSeed.Set(1000)
	sys.Reset(false)
	test.Equate(t, sys.AICA.RTC.Value, 1000)
	test.DemandSuccess(t, sys.RunForSeconds(1, nil))
	test.Equate(t, sys.AICA.RTC.Value, 1001)
}

func TestResetWhilePending(t *testing.T) {
	sys := newSystem(t)

	programAICA(sys, 0x00800000, 0x0c000000, 0x2000)
	sys.Reset(true)
	test.DemandSuccess(t, sys.RunFor(100000, nil))

	test.Equate(t, sys.G2.Channels[g2.AICA].STAG, 0)
	test.Equate(t, sys.IRQ.Count(interrupts.AICADMA), 0)
}

func TestSnapshot(t *testing.T) {
	sys := newSystem(t)

	programAICA(sys, 0x00800000, 0x0c000000, 0x2000)
	sys.WriteBus(0x00702c00, 0x0201, aica.Half)
	state := sys.Snapshot()

	test.DemandSuccess(t, sys.RunFor(32768, nil))
	sys.WriteBus(0x00702c00, 0x0000, aica.Half)
	test.Equate(t, sys.IRQ.Count(interrupts.AICADMA), 1)

	sys.Plumb(state.Snapshot())
	test.Equate(t, sys.AICA.VREG, 0x02)
	test.Equate(t, sys.AICA.ARMRST, 0x01)
	test.ExpectFailure(t, sys.ARM.Enabled())
	test.Equate(t, sys.G2.Channels[g2.AICA].ST, 1)

	test.DemandSuccess(t, sys.RunFor(32768, nil))
	test.Equate(t, sys.IRQ.Count(interrupts.AICADMA), 2)
}

func TestState(t *testing.T) {
	sys := newSystem(t)

	sys.AICA.RTC.Value = 0xcafef00d
	sys.AICA.RTC.Enable = true
	sys.WriteBus(0x00702c00, 0x5501, aica.Half)
	sys.WriteBus(0x005f7820+g2.OffsetTSEL, 0x2, aica.Word)
	programAICA(sys, 0x00800000, 0x0c000000, 0x2000)

	var b bytes.Buffer
	test.DemandSuccess(t, sys.WriteState(&b))
	image := b.Bytes()

	// restore into a different system
	other := newSystem(t)
	test.DemandSuccess(t, other.ReadState(bytes.NewReader(image)))
	test.Equate(t, other.AICA.RTC.Value, 0xcafef00d)
	test.ExpectSuccess(t, other.AICA.RTC.Enable)
	test.Equate(t, other.AICA.VREG, 0x55)
	test.Equate(t, other.AICA.ARMRST, 0x01)
	test.Equate(t, other.G2.Channels[g2.EXT1].TSEL, 0x2)
	test.Equate(t, other.G2.Channels[g2.AICA].ST, 1)

	// the restored transfer completes in the restored system
	test.DemandSuccess(t, other.RunFor(32768, nil))
	test.Equate(t, other.G2.Channels[g2.AICA].STAG, 0x00802000)
	test.Equate(t, other.IRQ.Count(interrupts.AICADMA), 1)

	// a damaged image is rejected and the system is unchanged
	damaged := append([]uint8{}, image...)
	damaged[10] ^= 0xff
	err := other.ReadState(bytes.NewReader(damaged))
	test.ExpectSuccess(t, curated.Is(err, hardware.StateChecksum))
	test.Equate(t, other.G2.Channels[g2.AICA].STAG, 0x00802000)

	// as is an image from a future version
	future := append([]uint8{}, image...)
	future[6] = 2
	err = other.ReadState(bytes.NewReader(future))
	test.ExpectSuccess(t, curated.Is(err, hardware.StateUnsupported))

	err = other.ReadState(bytes.NewReader(image[:20]))
	test.ExpectSuccess(t, curated.Is(err, hardware.StateError))
}
