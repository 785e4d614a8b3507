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

package ppu_test

import (
	"testing"

	"github.com/jetsetilly/gophernes/hardware/memory/cartridge/mapper"
	"github.com/jetsetilly/gophernes/hardware/ppu"
	"github.com/jetsetilly/gophernes/hardware/television"
	"github.com/jetsetilly/gophernes/test"
)

type mockCart struct {
	chr       [0x2000]uint8
	mirroring mapper.Mirroring
}

func (c *mockCart) ReadCHR(address uint16) uint8 {
	return c.chr[address&0x1fff]
}

func (c *mockCart) WriteCHR(address uint16, data uint8) {
	c.chr[address&0x1fff] = data
}

func (c *mockCart) Mirroring() mapper.Mirroring {
	return c.mirroring
}

type mockTV struct {
	frames []*television.Frame
}

func (tv *mockTV) NewFrame(f *television.Frame) error {
	c := *f
	tv.frames = append(tv.frames, &c)
	return nil
}

func setAddress(p *ppu.PPU, address uint16) {
	p.WriteRegister(0x2006, uint8(address>>8))
	p.WriteRegister(0x2006, uint8(address))
}

func step(t *testing.T, p *ppu.PPU) {
	t.Helper()
	test.DemandSuccess(t, p.Step())
}

// step until the PPU has processed the dot at the scanline/dot position.
func stepTo(t *testing.T, p *ppu.PPU, scanline int, dot int) {
	t.Helper()
	for range ppu.DotsPerScanline * ppu.ScanlinesPerFrame {
		step(t, p)
		if p.Scanline == scanline && p.Dot == dot {
			return
		}
	}
	t.Fatalf("position %d/%d never reached", scanline, dot)
}

func TestAddressRoundTrip(t *testing.T) {
	cart := &mockCart{mirroring: mapper.Vertical}
	p := ppu.NewPPU(cart, nil)

	p.PokeVRAM(0x2305, 0x66)
	p.PokeVRAM(0x2306, 0x77)
	p.PokeVRAM(0x2325, 0x88)
	p.PokeVRAM(0x2345, 0x99)

	// increment by one
	setAddress(p, 0x2305)
	_ = p.ReadRegister(0x2007)
	test.ExpectEquality(t, p.ReadRegister(0x2007), uint8(0x66))
	test.ExpectEquality(t, p.ReadRegister(0x2007), uint8(0x77))

	// increment by 32
	p.WriteRegister(0x2000, 0x04)
	setAddress(p, 0x2305)
	_ = p.ReadRegister(0x2007)
	test.ExpectEquality(t, p.ReadRegister(0x2007), uint8(0x66))
	test.ExpectEquality(t, p.ReadRegister(0x2007), uint8(0x88))
	test.ExpectEquality(t, p.ReadRegister(0x2007), uint8(0x99))

	// writes through PPUDATA
	p.WriteRegister(0x2000, 0x00)
	setAddress(p, 0x2100)
	p.WriteRegister(0x2007, 0xaa)
	p.WriteRegister(0x2007, 0xbb)
	test.ExpectEquality(t, p.PeekVRAM(0x2100), uint8(0xaa))
	test.ExpectEquality(t, p.PeekVRAM(0x2101), uint8(0xbb))

	// the address is masked to 14 bits. $7f05 is $3f05 which is palette RAM
	// and is not buffered
	setAddress(p, 0x7f05)
	p.WriteRegister(0x2007, 0x2c)
	setAddress(p, 0x3f05)
	test.ExpectEquality(t, p.ReadRegister(0x2007), uint8(0x2c))

	// the register window repeats every eight bytes
	p.WriteRegister(0x3ffe, 0x21)
	p.WriteRegister(0x3ffe, 0x00)
	_ = p.ReadRegister(0x3fff)
	test.ExpectEquality(t, p.ReadRegister(0x2fff), uint8(0xaa))
}

func TestCHR(t *testing.T) {
	cart := &mockCart{}
	p := ppu.NewPPU(cart, nil)

	setAddress(p, 0x1234)
	p.WriteRegister(0x2007, 0x5a)
	test.ExpectEquality(t, cart.chr[0x1234], uint8(0x5a))

	setAddress(p, 0x1234)
	_ = p.ReadRegister(0x2007)
	test.ExpectEquality(t, p.ReadRegister(0x2007), uint8(0x5a))
}

func TestNametableMirroring(t *testing.T) {
	cart := &mockCart{mirroring: mapper.Horizontal}
	p := ppu.NewPPU(cart, nil)

	p.PokeVRAM(0x2405, 0x66)
	p.PokeVRAM(0x2805, 0x77)
	test.ExpectEquality(t, p.PeekVRAM(0x2005), uint8(0x66))
	test.ExpectEquality(t, p.PeekVRAM(0x2c05), uint8(0x77))

	cart.mirroring = mapper.Vertical
	p.PokeVRAM(0x2005, 0x11)
	p.PokeVRAM(0x2c05, 0x22)
	test.ExpectEquality(t, p.PeekVRAM(0x2805), uint8(0x11))
	test.ExpectEquality(t, p.PeekVRAM(0x2405), uint8(0x22))

	// $3000 to $3eff mirrors $2000 to $2eff
	test.ExpectEquality(t, p.PeekVRAM(0x3005), uint8(0x11))

	cart.mirroring = mapper.FourScreen
	p.PokeVRAM(0x2c05, 0x33)
	test.ExpectEquality(t, p.PeekVRAM(0x2405), uint8(0x22))
	test.ExpectEquality(t, p.PeekVRAM(0x2c05), uint8(0x33))
}

func TestPaletteMirroring(t *testing.T) {
	p := ppu.NewPPU(&mockCart{}, nil)

	for _, a := range []uint16{0x3f10, 0x3f14, 0x3f18, 0x3f1c} {
		p.PokeVRAM(a, uint8(a&0x0f)+1)
		test.ExpectEquality(t, p.PeekVRAM(a-0x10), uint8(a&0x0f)+1)
	}

	// other sprite palette entries are distinct
	p.PokeVRAM(0x3f11, 0x05)
	p.PokeVRAM(0x3f01, 0x06)
	test.ExpectEquality(t, p.PeekVRAM(0x3f11), uint8(0x05))

	// palette RAM repeats every 32 bytes
	test.ExpectEquality(t, p.PeekVRAM(0x3f21), uint8(0x06))

	// palette entries are six bits
	p.PokeVRAM(0x3f02, 0xff)
	test.ExpectEquality(t, p.PeekVRAM(0x3f02), uint8(0x3f))
}

func TestStatusRegister(t *testing.T) {
	p := ppu.NewPPU(&mockCart{}, nil)

	stepTo(t, p, ppu.VBlankLine, 0)
	test.ExpectEquality(t, p.Peek(0x2002)&0x80, uint8(0x00))
	step(t, p)
	test.ExpectEquality(t, p.Peek(0x2002)&0x80, uint8(0x80))

	// reading clears the vblank flag
	test.ExpectEquality(t, p.ReadRegister(0x2002)&0x80, uint8(0x80))
	test.ExpectEquality(t, p.ReadRegister(0x2002)&0x80, uint8(0x00))

	// and resets the write toggle
	p.WriteRegister(0x2006, 0x21)
	_ = p.ReadRegister(0x2002)
	setAddress(p, 0x2345)
	p.WriteRegister(0x2007, 0x42)
	test.ExpectEquality(t, p.PeekVRAM(0x2345), uint8(0x42))

	// low five bits come from the last value written to a register
	p.WriteRegister(0x2003, 0x1f)
	test.ExpectEquality(t, p.ReadRegister(0x2002)&0x1f, uint8(0x1f))
}

func TestOAM(t *testing.T) {
	p := ppu.NewPPU(&mockCart{}, nil)

	p.WriteRegister(0x2003, 0x10)
	p.WriteRegister(0x2004, 0x01)
	p.WriteRegister(0x2004, 0x02)
	p.WriteRegister(0x2004, 0xff)
	test.ExpectEquality(t, p.OAM[0x10], uint8(0x01))
	test.ExpectEquality(t, p.OAM[0x11], uint8(0x02))

	// attribute bytes have three unimplemented bits
	p.WriteRegister(0x2003, 0x12)
	test.ExpectEquality(t, p.ReadRegister(0x2004), uint8(0xe3))

	// OAM address wraps
	p.WriteRegister(0x2003, 0xff)
	p.WriteOAM(0x01)
	p.WriteOAM(0x02)
	test.ExpectEquality(t, p.OAM[0xff], uint8(0x01))
	test.ExpectEquality(t, p.OAM[0x00], uint8(0x02))
}

// count the rising edges of the NMI line over a full frame.
func countNMI(t *testing.T, p *ppu.PPU) (int, int, int) {
	t.Helper()

	var count, scanline, dot int
	prev := p.NMI()
	for range ppu.DotsPerScanline * ppu.ScanlinesPerFrame {
		step(t, p)
		if p.NMI() && !prev {
			count++
			scanline = p.Scanline
			dot = p.Dot
		}
		prev = p.NMI()
	}
	return count, scanline, dot
}

func TestNMI(t *testing.T) {
	p := ppu.NewPPU(&mockCart{}, nil)

	p.WriteRegister(0x2000, 0x80)
	count, scanline, dot := countNMI(t, p)
	test.ExpectEquality(t, count, 1)
	test.ExpectEquality(t, scanline, ppu.VBlankLine)
	test.ExpectEquality(t, dot, 1)

	p.WriteRegister(0x2000, 0x00)
	count, _, _ = countNMI(t, p)
	test.ExpectEquality(t, count, 0)

	// enabling NMI during vblank raises the line immediately
	stepTo(t, p, ppu.VBlankLine+1, 0)
	test.ExpectFailure(t, p.NMI())
	p.WriteRegister(0x2000, 0x80)
	test.ExpectSuccess(t, p.NMI())

	// and lowering it when the vblank flag is read
	_ = p.ReadRegister(0x2002)
	test.ExpectFailure(t, p.NMI())

	// the line goes low at the pre-render line
	p.WriteRegister(0x2000, 0x00)
	p.WriteRegister(0x2000, 0x80)
	stepTo(t, p, ppu.PreRenderLine, 1)
	test.ExpectFailure(t, p.NMI())
	test.ExpectFailure(t, p.VBlank())
}

// a background of opaque tiles and sprite zero at the position.
func spriteScene(x uint8, y uint8) (*mockCart, *ppu.PPU) {
	cart := &mockCart{}

	// tile one is opaque in every pixel
	for i := range 8 {
		cart.chr[16+i] = 0xff
	}

	p := ppu.NewPPU(cart, nil)
	for a := uint16(0x2000); a < 0x23c0; a++ {
		p.PokeVRAM(a, 0x01)
	}

	for i := range 64 {
		p.OAM[i*4] = 0xff
	}
	p.OAM[0] = y
	p.OAM[1] = 0x01
	p.OAM[2] = 0x00
	p.OAM[3] = x

	return cart, p
}

func findSpriteZeroHit(t *testing.T, p *ppu.PPU) (bool, int, int) {
	t.Helper()
	for range ppu.DotsPerScanline * ppu.ScanlinesPerFrame {
		step(t, p)
		if p.Peek(0x2002)&0x40 == 0x40 {
			return true, p.Scanline, p.Dot
		}
	}
	return false, 0, 0
}

func TestSpriteZeroHit(t *testing.T) {
	_, p := spriteScene(40, 30)
	p.WriteRegister(0x2001, 0x1e)

	// sprite Y is one less than the first scanline the sprite appears on and
	// pixel x is drawn at dot x+1
	hit, scanline, dot := findSpriteZeroHit(t, p)
	test.DemandSuccess(t, hit)
	test.ExpectEquality(t, scanline, 31)
	test.ExpectEquality(t, dot, 41)

	// flag is cleared on the pre-render line
	stepTo(t, p, ppu.PreRenderLine, 1)
	test.ExpectEquality(t, p.Peek(0x2002)&0x40, uint8(0x00))
}

func TestSpriteZeroHitEdges(t *testing.T) {
	// never at x=255
	_, p := spriteScene(255, 30)
	p.WriteRegister(0x2001, 0x1e)
	hit, _, _ := findSpriteZeroHit(t, p)
	test.ExpectFailure(t, hit)

	// never in a masked left column
	_, p = spriteScene(0, 30)
	p.WriteRegister(0x2001, 0x18)
	hit, _, _ = findSpriteZeroHit(t, p)
	test.ExpectFailure(t, hit)

	// partially masked sprite hits at the first unmasked pixel
	_, p = spriteScene(4, 30)
	p.WriteRegister(0x2001, 0x18)
	hit, scanline, dot := findSpriteZeroHit(t, p)
	test.DemandSuccess(t, hit)
	test.ExpectEquality(t, scanline, 31)
	test.ExpectEquality(t, dot, 9)

	// requires background rendering
	_, p = spriteScene(40, 30)
	p.WriteRegister(0x2001, 0x16)
	hit, _, _ = findSpriteZeroHit(t, p)
	test.ExpectFailure(t, hit)
}

func TestSpriteOverflow(t *testing.T) {
	_, p := spriteScene(40, 30)
	for i := 1; i <= 8; i++ {
		p.OAM[i*4] = 50
	}
	p.WriteRegister(0x2001, 0x18)

	stepTo(t, p, 60, 0)
	test.ExpectEquality(t, p.Peek(0x2002)&0x20, uint8(0x00))

	p.OAM[9*4] = 50
	stepTo(t, p, 50, 256)
	test.ExpectEquality(t, p.Peek(0x2002)&0x20, uint8(0x00))
	step(t, p)
	test.ExpectEquality(t, p.Peek(0x2002)&0x20, uint8(0x20))

	stepTo(t, p, ppu.PreRenderLine, 1)
	test.ExpectEquality(t, p.Peek(0x2002)&0x20, uint8(0x00))
}

// number of steps until the frame number changes.
func frameLength(t *testing.T, p *ppu.PPU) int {
	t.Helper()
	n := 0
	f := p.Frame
	for p.Frame == f {
		step(t, p)
		n++
	}
	return n
}

func TestOddFrameSkip(t *testing.T) {
	p := ppu.NewPPU(&mockCart{}, nil)

	// no skipping without rendering
	test.ExpectEquality(t, frameLength(t, p), ppu.DotsPerScanline*ppu.ScanlinesPerFrame)
	test.ExpectEquality(t, frameLength(t, p), ppu.DotsPerScanline*ppu.ScanlinesPerFrame)

	p.WriteRegister(0x2001, 0x08)
	test.ExpectEquality(t, frameLength(t, p), ppu.DotsPerScanline*ppu.ScanlinesPerFrame)
	test.ExpectEquality(t, frameLength(t, p), ppu.DotsPerScanline*ppu.ScanlinesPerFrame-1)
	test.ExpectEquality(t, frameLength(t, p), ppu.DotsPerScanline*ppu.ScanlinesPerFrame)
}

func TestFrameHandOver(t *testing.T) {
	tv := &mockTV{}
	p := ppu.NewPPU(&mockCart{}, tv)

	// rendering is disabled so every pixel is the backdrop colour
	p.PokeVRAM(0x3f00, 0x21)

	stepTo(t, p, ppu.PostRenderLine, 0)
	test.DemandEquality(t, len(tv.frames), 1)

	f := tv.frames[0]
	for y := range television.Height {
		for x := range television.Width {
			if f.Pixels[y][x] != 0x21 {
				t.Fatalf("unexpected pixel value at %d,%d", x, y)
			}
		}
	}

	// one frame per frame
	stepTo(t, p, ppu.PostRenderLine-1, 0)
	test.ExpectEquality(t, len(tv.frames), 1)
	stepTo(t, p, ppu.PostRenderLine, 0)
	test.ExpectEquality(t, len(tv.frames), 2)
}

func TestBackgroundScroll(t *testing.T) {
	cart := &mockCart{}

	// tile one is colour one, tile two is colour two
	for i := range 8 {
		cart.chr[16+i] = 0xff
		cart.chr[32+8+i] = 0xff
	}

	p := ppu.NewPPU(cart, nil)
	p.PokeVRAM(0x3f01, 0x11)
	p.PokeVRAM(0x3f02, 0x12)

	// first column of the nametable is tile one, second is tile two
	for row := range uint16(30) {
		p.PokeVRAM(0x2000+row*32, 0x01)
		p.PokeVRAM(0x2000+row*32+1, 0x02)
	}

	// fine X scroll of three pixels
	p.WriteRegister(0x2005, 0x03)
	p.WriteRegister(0x2005, 0x00)
	p.WriteRegister(0x2001, 0x0a)

	// the first frame has no pre-render line so pixels are correct from the
	// second frame
	stepTo(t, p, ppu.PostRenderLine, 1)
	stepTo(t, p, ppu.PostRenderLine, 0)

	f := p.CurrentFrame()
	for _, y := range []int{0, 100, 239} {
		for x := range 5 {
			test.ExpectEquality(t, f.Pixels[y][x], uint8(0x11), x, y)
		}
		for x := 5; x < 13; x++ {
			test.ExpectEquality(t, f.Pixels[y][x], uint8(0x12), x, y)
		}
		test.ExpectEquality(t, f.Pixels[y][13], uint8(0x00), y)
	}
}
