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

// Package cartridge parses NES cartridge images in the iNES format and
// attaches them to the emulation.
//
// The Cartridge type is the single point of contact for the rest of the
// emulation. The CPU side of the bus uses Read() and Write() and the PPU uses
// ReadCHR() and WriteCHR(). How these accesses are mapped to cartridge memory
// is decided by an implementation of the mapper.Mapper interface. Only the
// NROM mapper (iNES mapper 0) is implemented.
//
// Errors are curated errors. A malformed image results in a ROMFormat error
// and an image that requires any other mapper results in an
// UnsupportedMapper error:
//
//	err := cart.Attach(loader)
//	if curated.Is(err, cartridge.UnsupportedMapper) {
//		...
//	}
package cartridge
