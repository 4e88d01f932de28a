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

package test

import (
	"fmt"
	"testing"
)

// returns an identifying string for the tags argument of the Expect* and
// Demand* functions
func id(tags ...any) string {
	if len(tags) == 0 {
		return ""
	}
	return fmt.Sprintf("%v: ", tags)
}

// returns true if v is a success value for its type
func expect(t *testing.T, v any, tags ...any) bool {
	t.Helper()

	switch v := v.(type) {
	case bool:
		return v
	case error:
		return v == nil
	case nil:
		return true
	default:
		t.Fatalf("%sunsupported type (%T) for expectation testing", id(tags...), v)
	}

	return false
}

// ExpectFailure tests argument v for a failure condition suitable for it's
// type. Currently supported types:
//
//	bool -> bool == false
//	error -> error != nil
//
// If type is nil then the test will fail.
func ExpectFailure(t *testing.T, v any, tags ...any) bool {
	t.Helper()
	if expect(t, v, tags...) {
		t.Errorf("%sexpected failure (%T)", id(tags...), v)
		return false
	}
	return true
}

// ExpectSuccess tests argument v for a success condition suitable for it's
// type. Currently supported types:
//
//	bool -> bool == true
//	error -> error == nil
//
// If type is nil then the test will succeed.
func ExpectSuccess(t *testing.T, v any, tags ...any) bool {
	t.Helper()
	if !expect(t, v, tags...) {
		t.Errorf("%sexpected success (%T: %v)", id(tags...), v, v)
		return false
	}
	return true
}
