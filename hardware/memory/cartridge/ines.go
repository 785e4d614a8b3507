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

// the first four bytes of every iNES file
const magic = "NES\x1a"

// sizes of the fixed-size parts of an iNES file.
const (
	headerSize  = 16
	trainerSize = 512
	prgBankSize = 16384
	chrBankSize = 8192
)

// Header is the decoded 16 byte header of an iNES file.
type Header struct {
	// number of 16KiB PRG banks and 8KiB CHR banks. zero CHR banks means
	// that the cartridge uses CHR RAM
	PRGBanks int
	CHRBanks int

	Mapper    int
	Mirroring mapper.Mirroring

	// cartridge has battery backed PRG RAM at $6000-$7FFF
	Battery bool

	// a 512 byte trainer precedes the PRG data
	Trainer bool

	// header uses the NES 2.0 extensions. the extensions are not otherwise
	// used
	NES20 bool
}

func (h Header) String() string {
	return fmt.Sprintf("mapper %d, %dx16KiB PRG, %dx8KiB CHR, %s mirroring", h.Mapper, h.PRGBanks, h.CHRBanks, h.Mirroring)
}

// ParseHeader decodes the header at the start of an iNES file. The
// remainder of data is checked to be large enough to contain the banks
// declared by the header.
func ParseHeader(data []byte) (Header, error) {
	var h Header

	if len(data) < headerSize {
		return h, curated.Errorf(ROMFormat, "file too short")
	}

	if string(data[0:4]) != magic {
		return h, curated.Errorf(ROMFormat, "bad magic")
	}

	h.PRGBanks = int(data[4])
	h.CHRBanks = int(data[5])
	if h.PRGBanks == 0 {
		return h, curated.Errorf(ROMFormat, "no PRG banks")
	}

	flags6 := data[6]
	flags7 := data[7]

	switch {
	case flags6&0x08 == 0x08:
		h.Mirroring = mapper.FourScreen
	case flags6&0x01 == 0x01:
		h.Mirroring = mapper.Vertical
	default:
		h.Mirroring = mapper.Horizontal
	}

	h.Battery = flags6&0x02 == 0x02
	h.Trainer = flags6&0x04 == 0x04
	h.NES20 = flags7&0x0c == 0x08

	// some old dumping tools wrote text into the last bytes of the header.
	// the high nibble of the mapper number can't be trusted in that case
	h.Mapper = int(flags6 >> 4)
	if h.NES20 || (data[12] == 0 && data[13] == 0 && data[14] == 0 && data[15] == 0) {
		h.Mapper |= int(flags7 & 0xf0)
	}

	if len(data) < h.size() {
		return h, curated.Errorf(ROMFormat, fmt.Sprintf("file truncated (%d bytes instead of %d)", len(data), h.size()))
	}

	return h, nil
}

// the offset of the PRG data in the file.
func (h Header) prgOffset() int {
	if h.Trainer {
		return headerSize + trainerSize
	}
	return headerSize
}

// the offset of the CHR data in the file.
func (h Header) chrOffset() int {
	return h.prgOffset() + h.PRGBanks*prgBankSize
}

// the minimum size of a file with this header.
func (h Header) size() int {
	return h.chrOffset() + h.CHRBanks*chrBankSize
}
