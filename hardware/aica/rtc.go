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

	"github.com/jetsetilly/g2aica/environment"
	"github.com/jetsetilly/g2aica/logger"
)

// RTC register offsets. Only the low byte of the address is decoded.
const (
	RTCHigh   = 0x00
	RTCLow    = 0x04
	RTCEnable = 0x08
)

// RTC is the real time clock register file.
type RTC struct {
	env *environment.Environment

	// the seconds counter
	Value uint32

	// the write enable latch. must be set before the counter can be written to
	Enable bool
}

func (rtc *RTC) String() string {
	return fmt.Sprintf("RTC=%08x EN=%v", rtc.Value, rtc.Enable)
}

// ReadRTC returns the value of the RTC register at addr.
func (rtc *RTC) ReadRTC(addr uint32, width Width) uint32 {
	switch addr & 0xff {
	case RTCHigh:
		return rtc.Value >> 16
	case RTCLow:
		return rtc.Value & 0xffff
	case RTCEnable:
		return 0
	}

	logger.Logf(rtc.env, "rtc", "read: invalid register access %08x (width %d)", addr, width)
	return 0
}

// WriteRTC writes data to the RTC register at addr.
func (rtc *RTC) WriteRTC(addr uint32, data uint32, width Width) {
	switch addr & 0xff {
	case RTCHigh:
		if rtc.Enable {
			rtc.Value = (rtc.Value & 0x0000ffff) | (data&0xffff)<<16
			rtc.Enable = false
		}
	case RTCLow:
		// the latch remains set after a write to the low word
		if rtc.Enable {
			rtc.Value = (rtc.Value & 0xffff0000) | data&0xffff
		}
	case RTCEnable:
		rtc.Enable = data&0x01 == 0x01
	default:
		logger.Logf(rtc.env, "rtc", "write: invalid register access %08x (width %d)", addr, width)
	}
}

// Tick advances the RTC by one second.
func (rtc *RTC) Tick() {
	rtc.Value++
}
