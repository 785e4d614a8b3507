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

package mapper

// Mirroring describes how the two physical nametables of the console are
// arranged in the four logical nametables of the PPU address space.
type Mirroring int

// List of valid Mirroring values.
const (
	Horizontal Mirroring = iota
	Vertical
	FourScreen
	SingleScreenLow
	SingleScreenHigh
)

func (m Mirroring) String() string {
	switch m {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case FourScreen:
		return "four-screen"
	case SingleScreenLow:
		return "single-screen (low)"
	case SingleScreenHigh:
		return "single-screen (high)"
	}
	return "unknown mirroring"
}

// Mapper implementations hold the actual data from the loaded cartridge and
// decide how the data is mapped into the CPU and PPU address spaces.
//
// PRG functions receive the CPU address unaltered. The cartridge space is
// $4020 to $FFFF. CHR functions receive the PPU address in the range $0000
// to $1FFF.
type Mapper interface {
	// the iNES mapper number
	ID() int
	String() string

	// clear volatile areas of the cartridge. called when power is applied,
	// never by the reset button
	PowerOn()

	ReadPRG(address uint16) uint8
	WritePRG(address uint16, data uint8)

	ReadCHR(address uint16) uint8
	WriteCHR(address uint16, data uint8)

	Mirroring() Mirroring
}

// IRQSource is implemented by mappers that can assert the IRQ line of the
// CPU.
type IRQSource interface {
	IRQ() bool
}

// Patcher is implemented by mappers that allow the otherwise read-only PRG
// memory to be changed. Used by the macro system and for testing.
type Patcher interface {
	PatchPRG(address uint16, data uint8) error
}
