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

package capture

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/jetsetilly/g2aica/curated"
	"github.com/jetsetilly/g2aica/environment"
	"github.com/jetsetilly/g2aica/hardware/g2"
	"github.com/jetsetilly/g2aica/logger"
)

// Memory is the part of the memory implementation used by the Capture type.
type Memory interface {
	Block(address uint32, n uint32) ([]uint8, error)
}

// Capture implements the g2.Tracker interface.
type Capture struct {
	env      *environment.Environment
	mem      Memory
	filename string

	// the channel to capture
	channel g2.ChannelID

	// sample rate of the output file
	sampleRate int

	buffer []int
}

// NewCapture is the preferred method of initialisation for the Capture type.
func NewCapture(env *environment.Environment, mem Memory, filename string, channel g2.ChannelID, sampleRate int) (*Capture, error) {
	if sampleRate <= 0 {
		return nil, curated.Errorf("capture: %v", "sample rate must be positive")
	}

	return &Capture{
		env:        env,
		mem:        mem,
		filename:   filename,
		channel:    channel,
		sampleRate: sampleRate,
		buffer:     make([]int, 0),
	}, nil
}

// Transfer implements the g2.Tracker interface.
func (c *Capture) Transfer(id g2.ChannelID, dst uint32, _ uint32, n uint32) {
	if id != c.channel {
		return
	}

	b, err := c.mem.Block(dst, n)
	if err != nil {
		logger.Log(c.env, "capture", err.Error())
		return
	}

	// a trailing odd byte is dropped
	for i := 1; i < len(b); i += 2 {
		c.buffer = append(c.buffer, int(int16(uint16(b[i-1])|uint16(b[i])<<8)))
	}
}

// Len returns the number of samples captured so far.
func (c *Capture) Len() int {
	return len(c.buffer)
}

// EndCapture writes the captured data to disk.
func (c *Capture) EndCapture() (rerr error) {
	f, err := os.Create(c.filename)
	if err != nil {
		return curated.Errorf("capture: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("capture: %v", err)
		}
	}()

	enc := wav.NewEncoder(f, c.sampleRate, 16, 1, 1)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  c.sampleRate,
		},
		Data:           c.buffer,
		SourceBitDepth: 16,
	}

	logger.Logf(c.env, "capture", "writing %d samples to %s", len(c.buffer), c.filename)

	if err := enc.Write(buf); err != nil {
		return curated.Errorf("capture: %v", err)
	}
	if err := enc.Close(); err != nil {
		return curated.Errorf("capture: %v", err)
	}

	return nil
}
