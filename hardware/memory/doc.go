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

// Package memory implements the CPU bus of the NES. The Bus type owns the
// internal RAM and routes every other address to the component that owns it.
//
//	                     APU          joypads
//	                      |              |
//	                AudioHandler    InputHandler
//	                      |              |
//	    CPU ---- cpubus ---- BUS ---------
//	                          |
//	                          |---- PPU registers
//	                          |
//	                          |---- RAM
//	                          |
//	                           ---- Cartridge
//
// The memorymap package describes how addresses are divided between the
// areas. Every address belongs to exactly one area.
//
// A write to $4014 requests OAM DMA. The Bus only records the request. It is
// the responsibility of the clock driver to perform the transfer, by calling
// TakeDMA(), because the transfer stalls the CPU for 513 or 514 cycles and
// only the clock driver knows the CPU cycle parity.
//
// Addresses in the IO area that are not claimed by the APU or the joypads
// return the last value seen on the data bus (open bus).
package memory
