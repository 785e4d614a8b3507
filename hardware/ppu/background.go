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

type background struct {
	// latches filled by the memory fetches
	nametableByte uint8
	attribute     uint8
	patternLo     uint8
	patternHi     uint8

	// shift registers. the high byte is the tile being drawn, the low byte is
	// the next tile
	patternShiftLo uint16
	patternShiftHi uint16
	attribShiftLo  uint16
	attribShiftHi  uint16
}

// copy latches into the low byte of the shift registers.
func (bg *background) reload() {
	bg.patternShiftLo = (bg.patternShiftLo & 0xff00) | uint16(bg.patternLo)
	bg.patternShiftHi = (bg.patternShiftHi & 0xff00) | uint16(bg.patternHi)

	bg.attribShiftLo &= 0xff00
	if bg.attribute&0x01 == 0x01 {
		bg.attribShiftLo |= 0x00ff
	}
	bg.attribShiftHi &= 0xff00
	if bg.attribute&0x02 == 0x02 {
		bg.attribShiftHi |= 0x00ff
	}
}

func (bg *background) shift() {
	bg.patternShiftLo <<= 1
	bg.patternShiftHi <<= 1
	bg.attribShiftLo <<= 1
	bg.attribShiftHi <<= 1
}

// background memory fetches, shift register updates and scroll increments for
// the current dot. only called on visible and pre-render scanlines when
// rendering is enabled.
func (ppu *PPU) fetchBackground(preLine bool) {
	dot := ppu.Dot

	if (dot >= 2 && dot <= 257) || (dot >= 322 && dot <= 337) {
		ppu.bg.shift()

		// the shift register reload happens at the start of each eight dot
		// group, in the same dot as the nametable fetch
		switch (dot - 1) % 8 {
		case 0:
			ppu.bg.reload()
			ppu.fetchNametableByte()
		case 2:
			ppu.fetchAttributeByte()
		case 4:
			ppu.fetchPatternLo()
		case 6:
			ppu.fetchPatternHi()
		case 7:
			ppu.incrementX()
		}
	} else if dot == 1 || dot == 321 {
		ppu.fetchNametableByte()
	}

	switch {
	case dot == 256:
		ppu.incrementY()
	case dot == 257:
		ppu.copyX()
	case preLine && dot >= 280 && dot <= 304:
		ppu.copyY()
	}
}

// the pixel value for the current dot. the high two bits select the palette
// and the low two bits select the colour within the palette.
func (ppu *PPU) backgroundPixel() uint8 {
	if !ppu.mask.showBackground {
		return 0
	}

	bit := uint16(0x8000) >> ppu.x

	var p uint8
	if ppu.bg.patternShiftLo&bit != 0 {
		p |= 0x01
	}
	if ppu.bg.patternShiftHi&bit != 0 {
		p |= 0x02
	}
	if ppu.bg.attribShiftLo&bit != 0 {
		p |= 0x04
	}
	if ppu.bg.attribShiftHi&bit != 0 {
		p |= 0x08
	}
	return p
}

func (ppu *PPU) fetchNametableByte() {
	ppu.bg.nametableByte = ppu.read(0x2000 | (ppu.v & 0x0fff))
}

func (ppu *PPU) fetchAttributeByte() {
	v := ppu.v
	address := 0x23c0 | (v & 0x0c00) | ((v >> 4) & 0x38) | ((v >> 2) & 0x07)
	shift := ((v >> 4) & 0x04) | (v & 0x02)
	ppu.bg.attribute = (ppu.read(address) >> shift) & 0x03
}

func (ppu *PPU) patternAddress() uint16 {
	fineY := (ppu.v >> 12) & 0x07
	return ppu.ctrl.backgroundTable + uint16(ppu.bg.nametableByte)*16 + fineY
}

func (ppu *PPU) fetchPatternLo() {
	ppu.bg.patternLo = ppu.read(ppu.patternAddress())
}

func (ppu *PPU) fetchPatternHi() {
	ppu.bg.patternHi = ppu.read(ppu.patternAddress() + 8)
}

// v: ....A.. ...BCDEF <- t: ....A.. ...BCDEF
func (ppu *PPU) copyX() {
	ppu.v = (ppu.v & 0xfbe0) | (ppu.t & 0x041f)
}

// v: GHIA.BC DEF..... <- t: GHIA.BC DEF.....
func (ppu *PPU) copyY() {
	ppu.v = (ppu.v & 0x841f) | (ppu.t & 0x7be0)
}

// coarse X increment. wrapping switches the horizontal nametable.
func (ppu *PPU) incrementX() {
	if ppu.v&0x001f == 31 {
		ppu.v &= 0xffe0
		ppu.v ^= 0x0400
	} else {
		ppu.v++
	}
}

// fine Y increment, overflowing into coarse Y. coarse Y wraps at 29 and
// switches the vertical nametable. coarse Y values of 30 and 31 point into the
// attribute table and wrap at 31 without switching the nametable.
func (ppu *PPU) incrementY() {
	if ppu.v&0x7000 != 0x7000 {
		ppu.v += 0x1000
		return
	}

	ppu.v &= 0x8fff
	y := (ppu.v & 0x03e0) >> 5
	switch y {
	case 29:
		y = 0
		ppu.v ^= 0x0800
	case 31:
		y = 0
	default:
		y++
	}
	ppu.v = (ppu.v & 0xfc1f) | (y << 5)
}
