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

// Package sampleload decodes WAV and MP3 files and places the sample data in
// emulated memory, ready to be moved into wave RAM by a G2 DMA transfer.
//
// The data is converted to signed 16 bit little-endian mono samples. In the
// case of stereo source files the left channel is used.
package sampleload

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/jetsetilly/g2aica/curated"
	"github.com/jetsetilly/g2aica/environment"
	"github.com/jetsetilly/g2aica/hardware/memory/memorymap"
	"github.com/jetsetilly/g2aica/logger"
)

// UnsupportedFormat is returned by Load() for files that are not WAV or MP3.
const UnsupportedFormat = "sampleload: unsupported format (%s)"

const logTag = "sampleload"

// Memory is the part of the memory implementation used by Load().
type Memory interface {
	Load(address uint32, data []uint8) error
}

// Sample describes the data placed in memory by Load().
type Sample struct {
	Filename   string
	Address    uint32
	SampleRate int

	// number of samples. the number of bytes is twice this
	Samples int
}

func (s Sample) String() string {
	return fmt.Sprintf("%s: %d samples @ %dHz at %s", filepath.Base(s.Filename), s.Samples, s.SampleRate, memorymap.Summary(s.Address))
}

// Length is the number of bytes in memory occupied by the sample.
func (s Sample) Length() uint32 {
	return uint32(s.Samples) * 2
}

// Load decodes filename and copies the samples to memory at address. The
// format is decided by the file extension.
func Load(env *environment.Environment, mem Memory, filename string, address uint32) (Sample, error) {
	s := Sample{
		Filename: filename,
		Address:  address,
	}

	f, err := os.Open(filename)
	if err != nil {
		return s, curated.Errorf("sampleload: %v", err)
	}
	defer f.Close()

	var data []int16

	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".wav":
		data, s.SampleRate, err = decodeWAV(env, f)
	case ".mp3":
		data, s.SampleRate, err = decodeMP3(env, f)
	default:
		return s, curated.Errorf(UnsupportedFormat, ext)
	}
	if err != nil {
		return s, curated.Errorf("sampleload: %v", err)
	}

	b := make([]uint8, 0, len(data)*2)
	for _, v := range data {
		b = append(b, uint8(v), uint8(uint16(v)>>8))
	}

	if err := mem.Load(address, b); err != nil {
		return s, curated.Errorf("sampleload: %v", err)
	}
	s.Samples = len(data)

	logger.Logf(env, logTag, "%s", s)

	return s, nil
}

func decodeWAV(env *environment.Environment, r io.ReadSeeker) ([]int16, int, error) {
	dec := wav.NewDecoder(r)
	if dec == nil {
		return nil, 0, fmt.Errorf("wav: error decoding")
	}

	if !dec.IsValidFile() {
		return nil, 0, fmt.Errorf("wav: not a valid wav file")
	}

	logger.Log(env, logTag, "loading from wav file")

	// load all data at once
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("wav: %w", err)
	}

	chans := int(dec.NumChans)
	if chans < 1 {
		return nil, 0, fmt.Errorf("wav: no channels")
	}

	// copy first channel only of data stream, scaled to 16 bits
	data := make([]int16, 0, len(buf.Data)/chans)
	for i := 0; i < len(buf.Data); i += chans {
		v := buf.Data[i]
		switch dec.BitDepth {
		case 8:
			// eight bit wav data is unsigned
			v = (v - 128) << 8
		case 24:
			v >>= 8
		case 32:
			v >>= 16
		}
		data = append(data, int16(v))
	}

	return data, int(dec.SampleRate), nil
}

func decodeMP3(env *environment.Environment, r io.Reader) ([]int16, int, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return nil, 0, fmt.Errorf("mp3: %w", err)
	}

	logger.Log(env, logTag, "loading from mp3 file")

	data := make([]int16, 0)
	chunk := make([]byte, 4096)
	for err != io.EOF {
		var n int
		n, err = dec.Read(chunk)
		if err != nil && err != io.EOF {
			return nil, 0, fmt.Errorf("mp3: %w", err)
		}

		// the stream is always 16 bit little-endian stereo so four bytes per
		// sample. the left channel is the first two bytes
		for i := 0; i+1 < n; i += 4 {
			data = append(data, int16(uint16(chunk[i])|uint16(chunk[i+1])<<8))
		}
	}

	return data, dec.SampleRate(), nil
}
