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

package ppu

import "github.com/jetsetilly/gophernes/hardware/memory/cartridge/mapper"

// physical nametable for each of the four logical nametables.
var nametableMirrors = [...][4]uint16{
	mapper.Horizontal:       {0, 0, 1, 1},
	mapper.Vertical:         {0, 1, 0, 1},
	mapper.FourScreen:       {0, 1, 2, 3},
	mapper.SingleScreenLow:  {0, 0, 0, 0},
	mapper.SingleScreenHigh: {1, 1, 1, 1},
}

// index into nametable RAM for an address in the range $2000 to $3eff.
func (ppu *PPU) nametableAddress(address uint16) uint16 {
	address = (address - 0x2000) & 0x0fff
	table := address / 0x0400
	return nametableMirrors[ppu.cart.Mirroring()][table]*0x0400 + address&0x03ff
}

// index into palette RAM. $3f10, $3f14, $3f18 and $3f1c are mirrors of $3f00,
// $3f04, $3f08 and $3f0c.
func paletteAddress(address uint16) uint16 {
	address &= 0x1f
	if address >= 0x10 && address&0x03 == 0 {
		address -= 0x10
	}
	return address
}

func (ppu *PPU) read(address uint16) uint8 {
	address &= 0x3fff
	switch {
	case address < 0x2000:
		return ppu.cart.ReadCHR(address)
	case address < 0x3f00:
		return ppu.nametables[ppu.nametableAddress(address)]
	}
	return ppu.palette[paletteAddress(address)]
}

func (ppu *PPU) write(address uint16, data uint8) {
	address &= 0x3fff
	switch {
	case address < 0x2000:
		ppu.cart.WriteCHR(address, data)
	case address < 0x3f00:
		ppu.nametables[ppu.nametableAddress(address)] = data
	default:
		ppu.palette[paletteAddress(address)] = data & 0x3f
	}
}

// PeekVRAM returns the byte at the address in the PPU address space.
func (ppu *PPU) PeekVRAM(address uint16) uint8 {
	return ppu.read(address)
}

// PokeVRAM writes the byte at the address in the PPU address space.
func (ppu *PPU) PokeVRAM(address uint16, data uint8) {
	ppu.write(address, data)
}
