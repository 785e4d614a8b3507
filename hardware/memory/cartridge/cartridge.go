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
	"crypto/sha1"
	"fmt"

	"github.com/jetsetilly/gophernes/cartridgeloader"
	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge/mapper"
	"github.com/jetsetilly/gophernes/logger"
)

// Sentinel error patterns.
const (
	ROMFormat         = "cartridge: rom format: %v"
	UnsupportedMapper = "cartridge: unsupported mapper: %d"
	NotPatchable      = "cartridge: mapper does not support patching: %s"
)

// Cartridge defines the information and operations for a NES cartridge.
type Cartridge struct {
	Filename string
	Hash     string
	Header   Header

	// the specific cartridge data, mapped appropriately to the memory
	// interfaces
	mapper mapper.Mapper
}

// NewCartridge is the preferred method of initialisation for the Cartridge
// type. The cartridge is in the ejected state.
func NewCartridge() *Cartridge {
	cart := &Cartridge{}
	cart.Eject()
	return cart
}

func (cart *Cartridge) String() string {
	return cart.Summary()
}

// Summary returns brief information about the cartridge. Two lines: the
// first line is the path to the cartridge and the second line is information
// about the mapper.
func (cart *Cartridge) Summary() string {
	return fmt.Sprintf("%s\n%s", cart.Filename, cart.mapper)
}

// ID returns the iNES mapper number of the attached cartridge.
func (cart *Cartridge) ID() int {
	return cart.mapper.ID()
}

// Eject removes the cartridge. Unlike the real hardware, the cartridge space
// remains readable and always returns zero.
func (cart *Cartridge) Eject() {
	cart.Filename = ejectedName
	cart.Hash = ejectedHash
	cart.Header = Header{}
	cart.mapper = ejected{}
}

// IsEjected returns true if no cartridge is attached.
func (cart *Cartridge) IsEjected() bool {
	return cart.Hash == ejectedHash
}

// Attach the cartridge described by the loader. The loader will be asked to
// load the data if it hasn't already done so.
func (cart *Cartridge) Attach(cartload *cartridgeloader.Loader) error {
	err := cartload.Load()
	if err != nil {
		return curated.Errorf("cartridge: %v", err)
	}

	err = cart.AttachData(cartload.Filename, cartload.Data)
	if err != nil {
		return err
	}

	logger.Logf(logger.Allow, "cartridge", "attached %s (%s)", cartload.ShortName(), cart.mapper)

	return nil
}

// AttachData attaches a cartridge from an iNES image already in memory. The
// cartridge is left ejected if the data cannot be used.
func (cart *Cartridge) AttachData(filename string, data []byte) error {
	cart.Eject()

	h, err := ParseHeader(data)
	if err != nil {
		return err
	}

	prg := make([]uint8, h.PRGBanks*prgBankSize)
	copy(prg, data[h.prgOffset():])

	chr := make([]uint8, h.CHRBanks*chrBankSize)
	copy(chr, data[h.chrOffset():])

	var m mapper.Mapper

	switch h.Mapper {
	case 0:
		m, err = newNROM(h, prg, chr)
	default:
		return curated.Errorf(UnsupportedMapper, h.Mapper)
	}
	if err != nil {
		return err
	}

	cart.Filename = filename
	cart.Hash = fmt.Sprintf("%x", sha1.Sum(data))
	cart.Header = h
	cart.mapper = m

	return nil
}

// PowerOn clears the volatile areas of the cartridge: PRG RAM and CHR RAM.
// The reset button of the console does not affect the cartridge.
func (cart *Cartridge) PowerOn() {
	cart.mapper.PowerOn()
}

// Read is an implementation of cpubus.Memory for the cartridge space of $4020
// to $FFFF.
func (cart *Cartridge) Read(address uint16) (uint8, error) {
	return cart.mapper.ReadPRG(address), nil
}

// Write is an implementation of cpubus.Memory for the cartridge space of
// $4020 to $FFFF.
func (cart *Cartridge) Write(address uint16, data uint8) error {
	cart.mapper.WritePRG(address, data)
	return nil
}

// Peek returns the value at the address without side effects.
func (cart *Cartridge) Peek(address uint16) (uint8, error) {
	return cart.mapper.ReadPRG(address), nil
}

// Poke writes to cartridge memory. Unlike Write(), ROM areas are changed if
// the mapper supports patching.
func (cart *Cartridge) Poke(address uint16, data uint8) error {
	if address < 0x8000 {
		cart.mapper.WritePRG(address, data)
		return nil
	}
	if p, ok := cart.mapper.(mapper.Patcher); ok {
		return p.PatchPRG(address, data)
	}
	return curated.Errorf(NotPatchable, cart.mapper)
}

// ReadCHR is used by the PPU to read the pattern tables.
func (cart *Cartridge) ReadCHR(address uint16) uint8 {
	return cart.mapper.ReadCHR(address)
}

// WriteCHR is used by the PPU to write the pattern tables.
func (cart *Cartridge) WriteCHR(address uint16, data uint8) {
	cart.mapper.WriteCHR(address, data)
}

// Mirroring returns the nametable mirroring arrangement of the cartridge.
func (cart *Cartridge) Mirroring() mapper.Mirroring {
	return cart.mapper.Mirroring()
}

// IRQ returns the state of the cartridge's IRQ line. Always false for
// cartridges that have no IRQ logic.
func (cart *Cartridge) IRQ() bool {
	if irq, ok := cart.mapper.(mapper.IRQSource); ok {
		return irq.IRQ()
	}
	return false
}
