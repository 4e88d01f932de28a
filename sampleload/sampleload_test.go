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

package sampleload_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/jetsetilly/g2aica/curated"
	"github.com/jetsetilly/g2aica/environment"
	"github.com/jetsetilly/g2aica/hardware/memory"
	"github.com/jetsetilly/g2aica/sampleload"
	"github.com/jetsetilly/g2aica/test"
)

func writeWAV(t *testing.T, filename string, rate int, chans int, data []int) {
	t.Helper()

	f, err := os.Create(filename)
	test.DemandSuccess(t, err)

	enc := wav.NewEncoder(f, rate, 16, chans, 1)
	err = enc.Write(&audio.IntBuffer{
		Format:         &audio.Format{NumChannels: chans, SampleRate: rate},
		Data:           data,
		SourceBitDepth: 16,
	})
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, enc.Close())
	test.DemandSuccess(t, f.Close())
}

func TestLoadWAV(t *testing.T) {
	env, err := environment.NewEnvironment(environment.MainEmulation, nil)
	test.DemandSuccess(t, err)
	env.Normalise()
	env.Quiet = true

	mem := memory.NewMemory(env)

	// stereo file. only the left channel is loaded
	filename := filepath.Join(t.TempDir(), "sample.wav")
	writeWAV(t, filename, 22050, 2, []int{0x1234, 0, -2, 0, 0x7fff, 0})

	s, err := sampleload.Load(env, mem, filename, 0x0c010000)
	test.DemandSuccess(t, err)
	test.Equate(t, s.SampleRate, 22050)
	test.Equate(t, s.Samples, 3)
	test.Equate(t, s.Length(), 6)

	b, err := mem.Block(0x0c010000, 6)
	test.DemandSuccess(t, err)
	test.Equate(t, b[0], 0x34)
	test.Equate(t, b[1], 0x12)
	test.Equate(t, b[2], 0xfe)
	test.Equate(t, b[3], 0xff)
	test.Equate(t, b[4], 0xff)
	test.Equate(t, b[5], 0x7f)
}

func TestLoadErrors(t *testing.T) {
	env, err := environment.NewEnvironment(environment.MainEmulation, nil)
	test.DemandSuccess(t, err)
	env.Quiet = true

	mem := memory.NewMemory(env)
	dir := t.TempDir()

	filename := filepath.Join(dir, "sample.ogg")
	test.DemandSuccess(t, os.WriteFile(filename, []byte{0, 1, 2, 3}, 0o644))
	_, err = sampleload.Load(env, mem, filename, 0x0c010000)
	test.ExpectSuccess(t, curated.Is(err, sampleload.UnsupportedFormat))

	filename = filepath.Join(dir, "notwav.wav")
	test.DemandSuccess(t, os.WriteFile(filename, []byte("this is not a wav file"), 0o644))
	_, err = sampleload.Load(env, mem, filename, 0x0c010000)
	test.ExpectFailure(t, err)

	_, err = sampleload.Load(env, mem, filepath.Join(dir, "missing.wav"), 0x0c010000)
	test.ExpectFailure(t, err)

	// a valid file loaded to an unmapped address
	filename = filepath.Join(dir, "sample.wav")
	writeWAV(t, filename, 44100, 1, []int{1, 2, 3})
	_, err = sampleload.Load(env, mem, filename, 0x01000000)
	test.ExpectFailure(t, err)
}
