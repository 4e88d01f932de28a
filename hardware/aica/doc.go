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

// Package aica implements the system side of the AICA interface: the real
// time clock, the ARM reset register and the decoding of accesses to the AICA
// register area.
//
// The sound generation itself is not part of the package. Register accesses
// that are not intercepted by the interface are passed through to a
// RegisterFile implementation.
//
// The RTC is a 32 bit count of seconds since 1950-01-01 00:00. It is seeded
// from a TimeSource when the AICA is initialised and advanced once per
// emulated second by a recurring scheduler event. The RTC can only be written
// to when the enable latch is set. A write to the high word clears the latch
// but a write to the low word does not. The asymmetry is how the hardware
// works and is not a mistake.
//
// None of the functions in the package fail. Invalid accesses are logged and
// otherwise ignored, which is how the emulated CPU sees the hardware.
package aica
