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

package logger_test

import (
	"testing"

	"github.com/jetsetilly/g2aica/logger"
	"github.com/jetsetilly/g2aica/test"
)

type deny struct{}

func (_ deny) AllowLogging() bool {
	return false
}

func TestLogger(t *testing.T) {
	logger.Clear()
	tw := &test.Writer{}

	logger.Write(tw)
	test.Equate(t, tw.Compare(""), true)

	logger.Log(logger.Allow, "test", "this is a test")
	logger.Write(tw)
	test.Equate(t, tw.Compare("test: this is a test\n"), true)

	// clear the test.Writer buffer before continuing, makes comparisons easier
	// to manage
	tw.Clear()

	logger.Log(logger.Allow, "test2", "this is another test")
	logger.Write(tw)
	test.Equate(t, tw.Compare("test: this is a test\ntest2: this is another test\n"), true)

	// asking for too many entries in a Tail() should be okay
	tw.Clear()
	logger.Tail(tw, 100)
	test.Equate(t, tw.Compare("test: this is a test\ntest2: this is another test\n"), true)

	// asking for fewer entries is okay too
	tw.Clear()
	logger.Tail(tw, 1)
	test.Equate(t, tw.Compare("test2: this is another test\n"), true)

	// and no entries
	tw.Clear()
	logger.Tail(tw, 0)
	test.Equate(t, tw.Compare(""), true)
}

func TestRepeatsAndPermission(t *testing.T) {
	logger.Clear()
	tw := &test.Writer{}

	logger.Logf(logger.Allow, "aica", "invalid address %#x", 0x10)
	logger.Logf(logger.Allow, "aica", "invalid address %#x", 0x10)
	logger.Logf(logger.Allow, "aica", "invalid address %#x", 0x10)
	logger.Log(deny{}, "aica", "should not appear")

	logger.Write(tw)
	test.Equate(t, tw.String(), "aica: invalid address 0x10 (repeat x3)\n")

	n := 0
	logger.BorrowLog(func(e []logger.Entry) {
		n = len(e)
	})
	test.Equate(t, n, 1)
}

func TestEcho(t *testing.T) {
	logger.Clear()

	r, err := test.NewRingWriter(64)
	test.DemandSuccess(t, err)

	logger.Log(logger.Allow, "rtc", "before echo")
	logger.SetEcho(r, true)
	logger.Log(logger.Allow, "rtc", "after echo")
	logger.SetEcho(nil, false)
	logger.Log(logger.Allow, "rtc", "not echoed")

	test.Equate(t, r.String(), "rtc: before echo\nrtc: after echo\n")
}
