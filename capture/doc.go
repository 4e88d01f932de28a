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

// Package capture records the data moved by G2 DMA transfers and writes it to
// disk as a WAV file. The data is interpreted as signed 16 bit little-endian
// mono samples, which is the most common format for sample data in wave RAM.
//
// Data is buffered in memory in its entirety and written to disk when the
// capture is ended. It is therefore only suitable for testing purposes.
package capture
