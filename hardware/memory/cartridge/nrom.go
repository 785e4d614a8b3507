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

import (
	"fmt"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge/mapper"
)

// nrom implements iNES mapper 0. There is no bank switching:
//
//	$6000-$7FFF PRG RAM (8KiB)
//	$8000-$BFFF first 16KiB of PRG ROM
//	$C000-$FFFF last 16KiB of PRG ROM, or a mirror of $8000-$BFFF
//	PPU $0000-$1FFF 8KiB CHR ROM, or CHR RAM if the header declares no CHR
type nrom struct {
	prg    []uint8
	prgRAM [0x2000]uint8

	chr      []uint8
	chrIsRAM bool

	mirroring mapper.Mirroring
}

func newNROM(h Header, prg []uint8, chr []uint8) (*nrom, error) {
	if len(prg) != prgBankSize && len(prg) != prgBankSize*2 {
		return nil, curated.Errorf(ROMFormat, fmt.Sprintf("NROM requires 16KiB or 32KiB of PRG (not %d bytes)", len(prg)))
	}

	cart := &nrom{
		prg:       prg,
		chr:       chr,
		mirroring: h.Mirroring,
	}

	if len(chr) == 0 {
		cart.chr = make([]uint8, chrBankSize)
		cart.chrIsRAM = true
	} else if len(chr) != chrBankSize {
		return nil, curated.Errorf(ROMFormat, fmt.Sprintf("NROM requires 8KiB of CHR (not %d bytes)", len(chr)))
	}

	return cart, nil
}

// ID implements the mapper.Mapper interface.
func (cart *nrom) ID() int {
	return 0
}

func (cart *nrom) String() string {
	chr := "ROM"
	if cart.chrIsRAM {
		chr = "RAM"
	}
	return fmt.Sprintf("NROM-%d [CHR %s]", len(cart.prg)/1024*8, chr)
}

// PowerOn implements the mapper.Mapper interface.
func (cart *nrom) PowerOn() {
	clear(cart.prgRAM[:])
	if cart.chrIsRAM {
		clear(cart.chr)
	}
}

// ReadPRG implements the mapper.Mapper interface.
func (cart *nrom) ReadPRG(address uint16) uint8 {
	switch {
	case address >= 0x8000:
		// the modulo mirrors a 16KiB PRG across both halves
		return cart.prg[int(address-0x8000)%len(cart.prg)]
	case address >= 0x6000:
		return cart.prgRAM[address-0x6000]
	}
	return 0
}

// WritePRG implements the mapper.Mapper interface. Writes to PRG ROM are
// ignored.
func (cart *nrom) WritePRG(address uint16, data uint8) {
	if address >= 0x6000 && address < 0x8000 {
		cart.prgRAM[address-0x6000] = data
	}
}

// PatchPRG implements the mapper.Patcher interface.
func (cart *nrom) PatchPRG(address uint16, data uint8) error {
	if address < 0x8000 {
		return curated.Errorf("nrom: patch address out of range (%#04x)", address)
	}
	cart.prg[int(address-0x8000)%len(cart.prg)] = data
	return nil
}

// ReadCHR implements the mapper.Mapper interface.
func (cart *nrom) ReadCHR(address uint16) uint8 {
	return cart.chr[address&0x1fff]
}

// WriteCHR implements the mapper.Mapper interface. Writes are ignored if the
// cartridge has CHR ROM.
func (cart *nrom) WriteCHR(address uint16, data uint8) {
	if cart.chrIsRAM {
		cart.chr[address&0x1fff] = data
	}
}

// Mirroring implements the mapper.Mapper interface.
func (cart *nrom) Mirroring() mapper.Mirroring {
	return cart.mirroring
}
