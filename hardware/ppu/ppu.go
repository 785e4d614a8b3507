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

import (
	"fmt"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge/mapper"
	"github.com/jetsetilly/gophernes/hardware/television"
)

// Cartridge is the PPU's view of the cartridge. The pattern tables are on the
// cartridge and the cartridge decides how the nametables are mirrored.
type Cartridge interface {
	ReadCHR(address uint16) uint8
	WriteCHR(address uint16, data uint8)
	Mirroring() mapper.Mirroring
}

// Frame timing.
const (
	DotsPerScanline   = 341
	ScanlinesPerFrame = 262
	VisibleScanlines  = 240
	PostRenderLine    = 240
	VBlankLine        = 241
	PreRenderLine     = 261
)

// PPU implements the 2C02.
type PPU struct {
	cart Cartridge
	tv   television.FrameTrigger

	// the position of the most recently processed dot
	Scanline int
	Dot      int

	// number of frames since reset
	Frame int

	oddFrame bool

	ctrl control
	mask mask

	// PPUSTATUS
	vblank         bool
	spriteZeroHit  bool
	spriteOverflow bool

	// internal registers. v and t are 15 bits, x is three bits and w is the
	// write toggle shared by PPUSCROLL and PPUADDR
	v uint16
	t uint16
	x uint8
	w bool

	// the last value written to or read from a register
	latch uint8

	// PPUDATA reads below the palette are delayed by one read
	dataBuffer uint8

	oamAddr uint8

	// nametable RAM. only the first 2KiB is used unless the cartridge asks
	// for four-screen mirroring
	nametables [0x1000]uint8

	// palette RAM. entries are six bits
	palette [32]uint8

	// object attribute memory. 64 sprites of four bytes each
	OAM [256]uint8

	bg  background
	spr sprites

	// frame being drawn
	frame television.Frame
}

// NewPPU is the preferred method of initialisation for the PPU type. The
// FrameTrigger can be nil.
func NewPPU(cart Cartridge, tv television.FrameTrigger) *PPU {
	ppu := &PPU{
		cart: cart,
		tv:   tv,
	}
	ppu.Reset()
	return ppu
}

// Snapshot creates a copy of the PPU in its current state. The copy is not
// attached to a television or a cartridge.
func (ppu *PPU) Snapshot() *PPU {
	n := *ppu
	n.tv = nil
	n.cart = nil
	return &n
}

func (ppu *PPU) String() string {
	return fmt.Sprintf("FR=%04d SL=%03d DOT=%03d", ppu.Frame, ppu.Scanline, ppu.Dot)
}

// Reset the PPU registers and timing. Nametable, palette and OAM contents are
// unchanged.
func (ppu *PPU) Reset() {
	// dot zero of scanline zero is idle so it is treated as already
	// processed
	ppu.Scanline = 0
	ppu.Dot = 0
	ppu.Frame = 0
	ppu.oddFrame = false

	ppu.ctrl.load(0)
	ppu.mask.load(0)
	ppu.vblank = false
	ppu.spriteZeroHit = false
	ppu.spriteOverflow = false
	ppu.v = 0
	ppu.t = 0
	ppu.x = 0
	ppu.w = false
	ppu.latch = 0
	ppu.dataBuffer = 0
	ppu.oamAddr = 0
	ppu.bg = background{}
	ppu.spr = sprites{}
}

// NMI returns the level of the NMI line. The line is high while the vertical
// blank flag is set and NMI generation is enabled in PPUCTRL.
func (ppu *PPU) NMI() bool {
	return ppu.vblank && ppu.ctrl.nmi
}

// VBlank returns true if the vertical blank flag is set.
func (ppu *PPU) VBlank() bool {
	return ppu.vblank
}

// IsRendering returns true if either background or sprite rendering is
// enabled.
func (ppu *PPU) IsRendering() bool {
	return ppu.mask.showBackground || ppu.mask.showSprites
}

// CurrentFrame returns the frame being drawn. The returned frame is only
// complete at the start of the post-render scanline.
func (ppu *PPU) CurrentFrame() *television.Frame {
	return &ppu.frame
}

// advance to the next dot.
func (ppu *PPU) tick() {
	if ppu.IsRendering() && ppu.oddFrame && ppu.Scanline == PreRenderLine && ppu.Dot == DotsPerScanline-2 {
		ppu.Dot = 0
		ppu.Scanline = 0
		ppu.Frame++
		ppu.oddFrame = !ppu.oddFrame
		return
	}

	ppu.Dot++
	if ppu.Dot >= DotsPerScanline {
		ppu.Dot = 0
		ppu.Scanline++
		if ppu.Scanline >= ScanlinesPerFrame {
			ppu.Scanline = 0
			ppu.Frame++
			ppu.oddFrame = !ppu.oddFrame
		}
	}
}

// Step advances the PPU by one dot.
func (ppu *PPU) Step() error {
	ppu.tick()

	visibleLine := ppu.Scanline < VisibleScanlines
	preLine := ppu.Scanline == PreRenderLine

	if ppu.IsRendering() && (visibleLine || preLine) {
		ppu.fetchBackground(preLine)

		if ppu.Dot == 257 {
			if visibleLine {
				ppu.evaluateSprites()
			} else {
				ppu.spr.count = 0
			}
		}
	}

	if visibleLine && ppu.Dot >= 1 && ppu.Dot <= 256 {
		ppu.renderPixel()
	}

	switch ppu.Scanline {
	case PostRenderLine:
		if ppu.Dot == 0 && ppu.tv != nil {
			ppu.frame.Number = ppu.Frame
			if err := ppu.tv.NewFrame(&ppu.frame); err != nil {
				return curated.Errorf("ppu: %v", err)
			}
		}
	case VBlankLine:
		if ppu.Dot == 1 {
			ppu.vblank = true
		}
	case PreRenderLine:
		if ppu.Dot == 1 {
			ppu.vblank = false
			ppu.spriteZeroHit = false
			ppu.spriteOverflow = false
		}
	}

	return nil
}

// combines background and sprite pixels for the current dot and writes the
// result to the frame.
func (ppu *PPU) renderPixel() {
	x := ppu.Dot - 1

	bg := ppu.backgroundPixel()
	idx, spr := ppu.spritePixel()

	if x < 8 {
		if !ppu.mask.showLeftBackground {
			bg = 0
		}
		if !ppu.mask.showLeftSprites {
			spr = 0
		}
	}

	// the low two bits of the pixel value select the colour within the
	// palette. a value of zero is transparent
	b := bg&0x03 != 0
	s := spr&0x03 != 0

	var address uint16
	switch {
	case !b && !s:
		address = 0
	case !b && s:
		address = 0x10 | uint16(spr)
	case b && !s:
		address = uint16(bg)
	default:
		if ppu.spr.indexes[idx] == 0 && x < 255 {
			ppu.spriteZeroHit = true
		}
		if ppu.spr.behind[idx] {
			address = uint16(bg)
		} else {
			address = 0x10 | uint16(spr)
		}
	}

	colour := ppu.palette[paletteAddress(address)]
	if ppu.mask.greyscale {
		colour &= 0x30
	}
	ppu.frame.Set(x, ppu.Scanline, colour)
}
