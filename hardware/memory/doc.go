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

// Package memory implements the flat address space that the G2 DMA channels
// move data through. Only system RAM and the AICA wave RAM are backed by real
// storage. See the memorymap package for the address decoding.
//
// The Move() function is the block move primitive used by the DMA channels.
// It never fails from the point of view of the caller. Any bytes that cannot
// be mapped are logged and the move stops at that point.
//
// The Peek() and Poke() functions are intended for tools and tests and do
// return an error for unmapped addresses.
package memory
