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

import "time"

// TimeSource is used to seed the RTC.
type TimeSource interface {
	Now() time.Time
}

// WallClock is a TimeSource that returns the host time.
type WallClock struct{}

// Now implements the TimeSource interface.
func (WallClock) Now() time.Time {
	return time.Now()
}

// FixedTime is a TimeSource that always returns the same time.
type FixedTime time.Time

// Now implements the TimeSource interface.
func (ft FixedTime) Now() time.Time {
	return time.Time(ft)
}

// the number of seconds between the Dreamcast epoch of 1950-01-01 and the
// unix epoch of 1970-01-01. twenty years and five leap days
const epochBias = (20*365 + 5) * 24 * 60 * 60

// RTCEpoch converts a time to an RTC value.
//
// The Dreamcast has no concept of time zones or daylight saving so the RTC
// holds local time. The local offset from UTC (including any DST adjustment)
// is added to the result.
func RTCEpoch(t time.Time) uint32 {
	_, offset := t.Zone()
	return uint32(epochBias + t.Unix() + int64(offset))
}
