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

// Package hardware is the base package for the AICA interface and the G2
// bus. The System type collects the components of the interface together
// with the collaborators they depend on: the scheduler, memory, the interrupt
// controller, the ARM7 enable line and the sound register file.
//
// The System is driven by advancing the scheduler. The Run() and RunFor()
// functions do this in quanta, checking between each quantum whether the
// emulation should continue.
//
// Register accesses by the emulated CPU go through ReadBus() and WriteBus().
// These functions do not fail. Accesses to addresses that are not part of the
// interface are logged.
//
// The state of the interface can be saved and restored in memory with
// Snapshot() and Plumb() and to a file with WriteState() and ReadState().
package hardware
