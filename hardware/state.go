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
	"bytes"
	"encoding/binary"
	"io"

	"github.com/jetsetilly/g2aica/curated"
	"github.com/jetsetilly/g2aica/hardware/g2"
	"github.com/sigurn/crc8"
)

// Sentinal error patterns returned by ReadState().
const (
	StateError       = "state: %v"
	StateUnsupported = "state: unsupported version (%d)"
	StateChecksum    = "state: checksum mismatch"
)

// the first bytes of every state image.
const stateMagic = "G2AICA"

const stateVersion = 1

var stateTable = crc8.MakeTable(crc8.CRC8)

// the fixed size body of the state image
type stateImage struct {
	RTC       uint32
	RTCEnable uint8
	VREG      uint8
	ARMRST    uint8
	_         uint8
	Channels  [g2.NumChannels]stateChannel
}

type stateChannel struct {
	STAG, STAR, LEN, DIR, TSEL, EN, ST, SUSP uint32
}

// WriteState writes the State of the System to w. The image is a small
// little-endian binary format followed by a CRC-8 checksum.
func (sys *System) WriteState(w io.Writer) error {
	img := stateImage{
		RTC:    sys.AICA.RTC.Value,
		VREG:   sys.AICA.VREG,
		ARMRST: sys.AICA.ARMRST,
	}
	if sys.AICA.RTC.Enable {
		img.RTCEnable = 1
	}
	for id, ch := range sys.G2.Channels {
		img.Channels[id] = stateChannel{
			STAG: ch.STAG, STAR: ch.STAR, LEN: ch.LEN, DIR: ch.DIR,
			TSEL: ch.TSEL, EN: ch.EN, ST: ch.ST, SUSP: ch.SUSP,
		}
	}

	var b bytes.Buffer
	b.WriteString(stateMagic)
	b.WriteByte(stateVersion)
	if err := binary.Write(&b, binary.LittleEndian, img); err != nil {
		return curated.Errorf(StateError, err)
	}
	b.WriteByte(crc8.Checksum(b.Bytes(), stateTable))

	if _, err := w.Write(b.Bytes()); err != nil {
		return curated.Errorf(StateError, err)
	}
	return nil
}

// ReadState reads a state image from r and plumbs it into the System. The
// System is unchanged if an error is returned.
func (sys *System) ReadState(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return curated.Errorf(StateError, err)
	}

	hdr := len(stateMagic) + 1
	if len(data) != hdr+binary.Size(stateImage{})+1 {
		return curated.Errorf(StateError, "wrong size")
	}
	if string(data[:len(stateMagic)]) != stateMagic {
		return curated.Errorf(StateError, "not a state image")
	}
	if data[len(stateMagic)] != stateVersion {
		return curated.Errorf(StateUnsupported, data[len(stateMagic)])
	}
	if crc8.Checksum(data[:len(data)-1], stateTable) != data[len(data)-1] {
		return curated.Errorf(StateChecksum)
	}

	var img stateImage
	err = binary.Read(bytes.NewReader(data[hdr:len(data)-1]), binary.LittleEndian, &img)
	if err != nil {
		return curated.Errorf(StateError, err)
	}

	state := sys.Snapshot()
	state.AICA.RTC.Value = img.RTC
	state.AICA.RTC.Enable = img.RTCEnable&0x01 == 0x01
	state.AICA.VREG = img.VREG
	state.AICA.ARMRST = img.ARMRST
	for id, ch := range img.Channels {
		c := &state.G2.Channels[id]
		c.STAG, c.STAR, c.LEN, c.DIR = ch.STAG, ch.STAR, ch.LEN, ch.DIR
		c.TSEL, c.EN, c.ST, c.SUSP = ch.TSEL, ch.EN, ch.ST, ch.SUSP
	}

	sys.Plumb(state)
	return nil
}
