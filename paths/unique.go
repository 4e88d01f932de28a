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

package paths

import (
	"fmt"
	"strings"
	"time"
)

// UniqueFilename creates a filename that (assuming a functioning clock) should
// not collide with any existing file. Note that the function does not test for
// this.
//
// Format of returned string is:
//
//	prepend_label_YYYYMMDD_HHMMSS
//
// If label is empty the returned string will be of the format:
//
//	prepend_YYYYMMDD_HHMMSS
func UniqueFilename(prepend string, label string) string {
	n := time.Now()
	timestamp := fmt.Sprintf("%04d%02d%02d_%02d%02d%02d", n.Year(), n.Month(), n.Day(), n.Hour(), n.Minute(), n.Second())

	c := strings.TrimSpace(label)
	if len(c) > 0 {
		return fmt.Sprintf("%s_%s_%s", prepend, c, timestamp)
	}
	return fmt.Sprintf("%s_%s", prepend, timestamp)
}
