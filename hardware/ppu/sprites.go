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

// maximum number of sprites on a scanline.
const maxSprites = 8

type sprites struct {
	count int

	// eight pixels of four bits each. the high two bits of each pixel select
	// the palette
	patterns  [maxSprites]uint32
	positions [maxSprites]uint8
	behind    [maxSprites]bool

	// the OAM index of the sprite. used for sprite zero hit detection
	indexes [maxSprites]uint8
}

// selects the sprites for the next scanline. the OAM Y value is one less than
// the first scanline the sprite appears on so comparing against the current
// scanline selects for the next one.
func (ppu *PPU) evaluateSprites() {
	h := 8
	if ppu.ctrl.tallSprites {
		h = 16
	}

	count := 0
	for i := range 64 {
		y := ppu.OAM[i*4]
		row := ppu.Scanline - int(y)
		if row < 0 || row >= h {
			continue
		}

		if count < maxSprites {
			attr := ppu.OAM[i*4+2]
			ppu.spr.patterns[count] = ppu.fetchSpritePattern(i, row)
			ppu.spr.positions[count] = ppu.OAM[i*4+3]
			ppu.spr.behind[count] = attr&0x20 == 0x20
			ppu.spr.indexes[count] = uint8(i)
		}
		count++
	}

	if count > maxSprites {
		count = maxSprites
		ppu.spriteOverflow = true
	}
	ppu.spr.count = count
}

// the row of sprite i for the scanline being prepared. flipping is handled
// here so the result is in left to right order.
func (ppu *PPU) fetchSpritePattern(i int, row int) uint32 {
	tile := ppu.OAM[i*4+1]
	attr := ppu.OAM[i*4+2]

	var address uint16
	if !ppu.ctrl.tallSprites {
		if attr&0x80 == 0x80 {
			row = 7 - row
		}
		address = ppu.ctrl.spriteTable + uint16(tile)*16 + uint16(row)
	} else {
		if attr&0x80 == 0x80 {
			row = 15 - row
		}

		// tall sprites select the pattern table with bit zero of the tile
		// number
		table := uint16(tile&0x01) * 0x1000
		tile &= 0xfe
		if row > 7 {
			tile++
			row -= 8
		}
		address = table + uint16(tile)*16 + uint16(row)
	}

	lo := ppu.read(address)
	hi := ppu.read(address + 8)
	palette := (attr & 0x03) << 2

	var data uint32
	for range 8 {
		var p uint8
		if attr&0x40 == 0x40 {
			p = (lo & 0x01) | (hi&0x01)<<1
			lo >>= 1
			hi >>= 1
		} else {
			p = (lo&0x80)>>7 | (hi&0x80)>>6
			lo <<= 1
			hi <<= 1
		}
		data = (data << 4) | uint32(palette|p)
	}

	return data
}

// the first opaque sprite pixel for the current dot and the index into the
// list of selected sprites. a pixel value of zero means no sprite pixel.
func (ppu *PPU) spritePixel() (int, uint8) {
	if !ppu.mask.showSprites {
		return 0, 0
	}

	x := ppu.Dot - 1
	for i := range ppu.spr.count {
		offset := x - int(ppu.spr.positions[i])
		if offset < 0 || offset > 7 {
			continue
		}
		p := uint8(ppu.spr.patterns[i]>>((7-offset)*4)) & 0x0f
		if p&0x03 == 0 {
			continue
		}
		return i, p
	}

	return 0, 0
}
