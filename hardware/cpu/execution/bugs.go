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

package execution

// Bug describes a hardware quirk of the CPU that was triggered during
// execution of an instruction.
type Bug string

// List of CPU bugs that can be triggered.
const (
	NoBug               Bug = ""
	JmpIndirectPageBug  Bug = "indirect JMP page wrap"
	ZeroPagePointerWrap Bug = "zero page pointer wrap"
	ZeroPageIndexWrap   Bug = "zero page index wrap"
)
