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

// Package digest creates a running SHA-1 digest of the data moved by G2 DMA
// transfers. Two runs of the emulation that move the same data in the same
// order will produce the same digest, which makes the digest useful for
// regression testing.
package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/jetsetilly/g2aica/environment"
	"github.com/jetsetilly/g2aica/hardware/g2"
	"github.com/jetsetilly/g2aica/logger"
)

// Memory is the part of the memory implementation used by the Transfers type.
type Memory interface {
	Block(address uint32, n uint32) ([]uint8, error)
}

// Transfers implements the g2.Tracker interface.
type Transfers struct {
	env *environment.Environment
	mem Memory

	digest [sha1.Size]byte

	// the previous digest is the start of every buffer so that the digest
	// reflects the entire history of transfers
	buffer []uint8
}

// NewTransfers is the preferred method of initialisation for the Transfers
// type.
func NewTransfers(env *environment.Environment, mem Memory) *Transfers {
	dig := &Transfers{
		env:    env,
		mem:    mem,
		buffer: make([]uint8, 0, sha1.Size+4096),
	}
	return dig
}

func (dig *Transfers) String() string {
	return dig.Hash()
}

// Hash returns the current digest as a string.
func (dig *Transfers) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest resets the current digest value to 0.
func (dig *Transfers) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
}

// Transfer implements the g2.Tracker interface.
func (dig *Transfers) Transfer(id g2.ChannelID, dst uint32, _ uint32, n uint32) {
	b, err := dig.mem.Block(dst, n)
	if err != nil {
		logger.Log(dig.env, "digest", err.Error())
		return
	}

	dig.buffer = append(dig.buffer[:0], dig.digest[:]...)
	dig.buffer = append(dig.buffer, uint8(id))
	dig.buffer = append(dig.buffer, b...)
	dig.digest = sha1.Sum(dig.buffer)
}
