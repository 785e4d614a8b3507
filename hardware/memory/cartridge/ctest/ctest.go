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

// Package ctest creates iNES images for use in tests.
package ctest

// Image returns an iNES image with the specified number of PRG and CHR banks
// and header flags. The banks are filled with zeros.
func Image(prgBanks int, chrBanks int, flags6 uint8, flags7 uint8) []byte {
	data := make([]byte, 16+prgBanks*16384+chrBanks*8192)
	copy(data, "NES\x1a")
	data[4] = uint8(prgBanks)
	data[5] = uint8(chrBanks)
	data[6] = flags6
	data[7] = flags7
	return data
}

// Program returns an NROM image with a single 16KiB PRG bank and CHR RAM. The
// program is placed at $8000 (and the mirror at $C000) and the reset vector
// points to it. The NMI and IRQ vectors point to an RTI instruction at
// $BFF0.
func Program(program ...uint8) []byte {
	data := Image(1, 0, 0x01, 0x00)
	prg := data[16 : 16+16384]
	copy(prg, program)

	// RTI
	prg[0x3ff0] = 0x40

	// NMI, RESET and IRQ vectors
	prg[0x3ffa] = 0xf0
	prg[0x3ffb] = 0xbf
	prg[0x3ffc] = 0x00
	prg[0x3ffd] = 0x80
	prg[0x3ffe] = 0xf0
	prg[0x3fff] = 0xbf

	return data
}
