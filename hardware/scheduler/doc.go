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

// Package scheduler conceptualises events that happen at some point in the
// future, measured in main clock cycles. An event in this context is the
// completion of something started by the CPU. For example, when a program
// starts a G2 DMA transfer the end-of-transfer interrupt does not happen
// immediately. Instead there is a delay proportional to the size of the
// transfer.
//
// Users of the package register a Handler with a Tag. The Tag is passed back
// to the Handler when the event fires, which means that a single Handler can
// service more than one event kind by switching on the Tag. Registration
// returns a Handle, which is used to arm the event with Request().
//
// Each Handle has at most one pending firing. Calling Request() on a Handle
// that is already armed replaces the previous request.
//
// The return value of a Handler is the number of cycles until the event
// should fire again. A return value of zero (or less) means that the event
// will not fire again until Request() is called. This makes recurring events,
// like a once-per-second clock, very simple to implement.
//
// Time is moved forward with the Advance() function. It is up to the users of
// the package to govern how often and by how much time is advanced. Events
// are fired in the order of their due time, with the main clock counter set
// to exactly the due time while the Handler is running.
package scheduler
