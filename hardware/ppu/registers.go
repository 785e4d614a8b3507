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

type control struct {
	nametable       uint8
	increment32     bool
	spriteTable     uint16
	backgroundTable uint16
	tallSprites     bool
	nmi             bool
}

func (c *control) load(data uint8) {
	c.nametable = data & 0x03
	c.increment32 = data&0x04 == 0x04
	c.spriteTable = uint16(data&0x08) << 9
	c.backgroundTable = uint16(data&0x10) << 8
	c.tallSprites = data&0x20 == 0x20
	c.nmi = data&0x80 == 0x80
}

type mask struct {
	greyscale          bool
	showLeftBackground bool
	showLeftSprites    bool
	showBackground     bool
	showSprites        bool

	// colour emphasis bits are recorded but have no effect on the palette
	emphasis uint8
}

func (m *mask) load(data uint8) {
	m.greyscale = data&0x01 == 0x01
	m.showLeftBackground = data&0x02 == 0x02
	m.showLeftSprites = data&0x04 == 0x04
	m.showBackground = data&0x08 == 0x08
	m.showSprites = data&0x10 == 0x10
	m.emphasis = data >> 5
}

func (ppu *PPU) status() uint8 {
	s := ppu.latch & 0x1f
	if ppu.spriteOverflow {
		s |= 0x20
	}
	if ppu.spriteZeroHit {
		s |= 0x40
	}
	if ppu.vblank {
		s |= 0x80
	}
	return s
}

// ReadRegister is called by the CPU bus for reads from the PPU's register
// window. Only the lower three bits of the address are used.
func (ppu *PPU) ReadRegister(address uint16) uint8 {
	var data uint8

	switch address & 0x07 {
	case 2:
		data = ppu.status()
		ppu.vblank = false
		ppu.w = false
	case 4:
		data = ppu.readOAM()
	case 7:
		data = ppu.readData()
	default:
		// write only registers return the latch
		data = ppu.latch
	}

	ppu.latch = data
	return data
}

// Peek returns the value that would be returned by ReadRegister() without any
// of the side effects.
func (ppu *PPU) Peek(address uint16) uint8 {
	switch address & 0x07 {
	case 2:
		return ppu.status()
	case 4:
		return ppu.readOAM()
	case 7:
		a := ppu.v & 0x3fff
		if a >= 0x3f00 {
			return ppu.read(a)
		}
		return ppu.dataBuffer
	}
	return ppu.latch
}

// WriteRegister is called by the CPU bus for writes to the PPU's register
// window. Only the lower three bits of the address are used.
func (ppu *PPU) WriteRegister(address uint16, data uint8) {
	ppu.latch = data

	switch address & 0x07 {
	case 0:
		// t: ...BA.. ........ <- d: ......BA
		ppu.ctrl.load(data)
		ppu.t = (ppu.t & 0xf3ff) | (uint16(data&0x03) << 10)
	case 1:
		ppu.mask.load(data)
	case 3:
		ppu.oamAddr = data
	case 4:
		ppu.WriteOAM(data)
	case 5:
		ppu.writeScroll(data)
	case 6:
		ppu.writeAddress(data)
	case 7:
		ppu.writeData(data)
	}
}

// WriteOAM writes to OAM at the current OAM address and increments the
// address. Used by PPUDATA writes and by OAM DMA.
func (ppu *PPU) WriteOAM(data uint8) {
	ppu.OAM[ppu.oamAddr] = data
	ppu.oamAddr++
}

func (ppu *PPU) readOAM() uint8 {
	data := ppu.OAM[ppu.oamAddr]

	// unimplemented bits of the attribute byte read as zero
	if ppu.oamAddr&0x03 == 0x02 {
		data &= 0xe3
	}
	return data
}

func (ppu *PPU) writeScroll(data uint8) {
	if !ppu.w {
		// t: ....... ...ABCDE <- d: ABCDE...
		// x:              FGH <- d: .....FGH
		ppu.t = (ppu.t & 0xffe0) | (uint16(data) >> 3)
		ppu.x = data & 0x07
	} else {
		// t: FGH..AB CDE..... <- d: ABCDEFGH
		ppu.t = (ppu.t & 0x8fff) | (uint16(data&0x07) << 12)
		ppu.t = (ppu.t & 0xfc1f) | (uint16(data&0xf8) << 2)
	}
	ppu.w = !ppu.w
}

func (ppu *PPU) writeAddress(data uint8) {
	if !ppu.w {
		// t: .CDEFGH ........ <- d: ..CDEFGH
		// t: Z...... ........ <- 0
		ppu.t = (ppu.t & 0x80ff) | (uint16(data&0x3f) << 8)
		ppu.t &= 0x3fff
	} else {
		// t: ....... ABCDEFGH <- d: ABCDEFGH
		ppu.t = (ppu.t & 0xff00) | uint16(data)
		ppu.v = ppu.t
	}
	ppu.w = !ppu.w
}

func (ppu *PPU) incrementAddress() {
	if ppu.ctrl.increment32 {
		ppu.v += 32
	} else {
		ppu.v++
	}
	ppu.v &= 0x7fff
}

func (ppu *PPU) readData() uint8 {
	address := ppu.v & 0x3fff

	var data uint8
	if address < 0x3f00 {
		data = ppu.dataBuffer
		ppu.dataBuffer = ppu.read(address)
	} else {
		// palette reads are not delayed but the buffer is filled with the
		// nametable byte underneath the palette
		data = ppu.read(address)
		ppu.dataBuffer = ppu.read(address - 0x1000)
	}

	ppu.incrementAddress()
	return data
}

func (ppu *PPU) writeData(data uint8) {
	ppu.write(ppu.v&0x3fff, data)
	ppu.incrementAddress()
}
