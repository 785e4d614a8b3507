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

// Package memorymap facilitates the translation of addresses to primary
// address equivalents.
//
// The CPU address space is divided into four areas: the 2KiB of internal RAM,
// the PPU registers, the APU and joypad registers (the IO area) and the
// cartridge. The RAM and PPU areas are mirrored. The MapAddress() function
// takes any address in the 16 bit address space and returns the primary
// address and the area the address belongs to.
//
// The Summary() function describes the memory map in a human readable form.
package memorymap
