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

package hardware

import (
	"github.com/jetsetilly/g2aica/hardware/aica"
	"github.com/jetsetilly/g2aica/hardware/g2"
)

// State stores the state of the AICA interface and the G2 bus. It is produced
// by the Snapshot() function and can be restored with the Plumb() function.
//
// Memory, the sound register file and the scheduler are not part of the
// State.
type State struct {
	AICA *aica.AICA
	G2   *g2.G2
}

// Snapshot creates a copy of a previously snapshotted State.
func (s *State) Snapshot() *State {
	return &State{
		AICA: s.AICA.Snapshot(),
		G2:   s.G2.Snapshot(),
	}
}

// Snapshot the state of the AICA interface and the G2 bus.
func (sys *System) Snapshot() *State {
	return &State{
		AICA: sys.AICA.Snapshot(),
		G2:   sys.G2.Snapshot(),
	}
}

// Plumb a previously snapshotted State into the System. An AICA DMA transfer
// that was in progress when the snapshot was taken will complete as though
// it had been started at the moment of the Plumb().
func (sys *System) Plumb(state *State) {
	if state == nil {
		panic("hardware: cannot plumb in a nil state")
	}
	sys.AICA.Restore(state.AICA)
	sys.G2.Restore(state.G2)
}
