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

// Package memorymap facilitates the translation of addresses to primary
// address equivalents. Only those areas of memory that take part in G2 DMA
// transfers are mapped: system RAM and the AICA wave RAM.
//
// The Undefined area is returned for every other address. It is the
// responsibility of the caller to decide what to do with such addresses.
package memorymap
