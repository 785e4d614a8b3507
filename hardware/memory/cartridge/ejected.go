// This file is part of GopherNES.
//
// GopherNES is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherNES is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherNES.  If not, see <https://www.gnu.org/licenses/>.

package cartridge

import "github.com/jetsetilly/gophernes/hardware/memory/cartridge/mapper"

// ejected is the mapper used when no cartridge is attached. Reads return zero
// and writes are ignored.
type ejected struct{}

const (
	ejectedName = "ejected"
	ejectedHash = "nohash"
)

func (cart ejected) ID() int {
	return -1
}

func (cart ejected) String() string {
	return ejectedName
}

func (cart ejected) PowerOn() {
}

func (cart ejected) ReadPRG(_ uint16) uint8 {
	return 0
}

func (cart ejected) WritePRG(_ uint16, _ uint8) {
}

func (cart ejected) ReadCHR(_ uint16) uint8 {
	return 0
}

func (cart ejected) WriteCHR(_ uint16, _ uint8) {
}

func (cart ejected) Mirroring() mapper.Mirroring {
	return mapper.Horizontal
}
