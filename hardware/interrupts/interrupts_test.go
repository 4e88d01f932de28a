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

package interrupts_test

import (
	"testing"

	"github.com/jetsetilly/g2aica/hardware/interrupts"
	"github.com/jetsetilly/g2aica/test"
)

func TestController(t *testing.T) {
	ctl := interrupts.NewController()
	test.ExpectFailure(t, ctl.Pending(interrupts.AICADMA))

	ctl.Raise(interrupts.AICADMA)
	ctl.Raise(interrupts.AICADMA)
	ctl.Raise(interrupts.DEVDMA)
	test.ExpectSuccess(t, ctl.Pending(interrupts.AICADMA))
	test.Equate(t, ctl.ISTNRM, 0x00048000)
	test.Equate(t, ctl.Count(interrupts.AICADMA), 2)
	test.Equate(t, ctl.String(), "ISTNRM=00048000 AICA DMA=2 DEV DMA=1")

	ctl.Acknowledge(interrupts.AICADMA)
	test.ExpectFailure(t, ctl.Pending(interrupts.AICADMA))
	test.Equate(t, ctl.Count(interrupts.AICADMA), 2)

	ctl.Reset()
	test.Equate(t, ctl.ISTNRM, 0)
	test.Equate(t, ctl.Count(interrupts.DEVDMA), 0)
}
