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

// Package g2 implements the four DMA channels of the G2 bus: the AICA channel
// and the EXT1, EXT2 and DEV channels.
//
// A transfer is started by writing to a channel's ST register with bit 0 set.
// The channel's EN register must also have bit 0 set, otherwise the write
// does nothing. The memory move happens immediately in all cases but the AICA
// channel models the time taken by the transfer. Until the transfer is
// complete the AICA channel reads as busy and the completion interrupt is not
// raised. Short transfers are completed immediately, the threshold being a
// hardware preference.
//
// The other three channels always complete immediately.
//
// A transfer cannot be cancelled once started. A reset of the G2 bus zeroes
// the channel registers and a completion that falls due after the reset will
// have no effect.
package g2
