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

// Package clocks defines the constant values that define the speed of the
// clocks in the Dreamcast that are of interest to the AICA interface.
//
// The main clock is the SH4 clock, which also drives the cycle scheduler. All
// scheduled event deltas are measured in main clock cycles.
package clocks

const (
	// SH4 main clock (Hz)
	SH4 = 200000000

	// the G2 bus is 16 bits wide and clocked at 25MHz
	G2Bus      = 25000000
	G2BusWidth = 2

	// ARM7 inside the AICA
	ARM7 = SH4 / 8
)

// CyclesPerG2Byte is the number of main clock cycles it takes to move one byte
// across the G2 bus. Integer division is important here.
func CyclesPerG2Byte(mainClock int, busClock int) int {
	if busClock <= 0 {
		return 0
	}
	return mainClock / G2BusWidth / busClock
}
