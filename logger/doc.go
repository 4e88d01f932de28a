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

// Package logger is the central log for the emulation. Entries are made up of
// a tag and a detail string and are kept in a ring of fixed size. Adjacent
// entries that are identical are folded into a single entry with a repeat
// count, which keeps the log readable when a program repeatedly pokes at an
// invalid register.
//
// Every log request is accompanied by a Permission. The environment package
// implements the Permission interface so that logging can be silenced for
// some emulation instances. Use logger.Allow when an entry should always be
// made.
package logger
