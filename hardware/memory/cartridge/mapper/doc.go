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

// Package mapper defines the capability interface for cartridge mappers.
// Cartridge hardware decides how the PRG and CHR memory of the cartridge
// appears to the CPU and to the PPU. Each mapping scheme is an implementation
// of the Mapper interface.
//
// The PPU needs the mirroring arrangement of the nametables, which is also
// decided by the cartridge. The Mirroring type is therefore defined here
// rather than in the PPU package.
package mapper
