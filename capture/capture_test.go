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

package capture_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
	"github.com/jetsetilly/g2aica/capture"
	"github.com/jetsetilly/g2aica/environment"
	"github.com/jetsetilly/g2aica/hardware/g2"
	"github.com/jetsetilly/g2aica/hardware/interrupts"
	"github.com/jetsetilly/g2aica/hardware/memory"
	"github.com/jetsetilly/g2aica/hardware/scheduler"
	"github.com/jetsetilly/g2aica/test"
)

func TestCapture(t *testing.T) {
	env, err := environment.NewEnvironment(environment.MainEmulation, nil)
	test.DemandSuccess(t, err)
	env.Normalise()
	env.Quiet = true

	mem := memory.NewMemory(env)
	bus := g2.NewG2(env, scheduler.NewScheduler(), mem, interrupts.NewController())
	bus.Init()

	filename := filepath.Join(t.TempDir(), "capture.wav")
	c, err := capture.NewCapture(env, mem, filename, g2.EXT1, 8000)
	test.DemandSuccess(t, err)
	bus.AttachTracker(c)

	test.DemandSuccess(t, mem.Load(0x0c000000, []uint8{0x01, 0x00, 0xff, 0xff, 0x00, 0x80, 0xaa}))

	// an odd number of bytes. the last byte is not a complete sample
	ch := &bus.Channels[g2.EXT1]
	ch.STAG = 0x00800000
	ch.STAR = 0x0c000000
	ch.LEN = 7
	ch.EN = 1
	bus.Start(g2.EXT1)
	test.Equate(t, c.Len(), 3)

	// transfers on other channels are ignored
	ch = &bus.Channels[g2.EXT2]
	ch.STAG = 0x00800000
	ch.STAR = 0x0c000000
	ch.LEN = 4
	ch.EN = 1
	bus.Start(g2.EXT2)
	test.Equate(t, c.Len(), 3)

	test.DemandSuccess(t, c.EndCapture())

	f, err := os.Open(filename)
	test.DemandSuccess(t, err)
	defer f.Close()

	dec := wav.NewDecoder(f)
	test.ExpectSuccess(t, dec.IsValidFile())
	buf, err := dec.FullPCMBuffer()
	test.DemandSuccess(t, err)
	test.Equate(t, int(dec.SampleRate), 8000)
	test.DemandEquality(t, len(buf.Data), 3)
	test.Equate(t, buf.Data[0], 1)
	test.Equate(t, buf.Data[1], -1)
	test.Equate(t, buf.Data[2], -32768)
}

func TestBadSampleRate(t *testing.T) {
	_, err := capture.NewCapture(nil, nil, "", g2.AICA, 0)
	test.ExpectFailure(t, err)
}
