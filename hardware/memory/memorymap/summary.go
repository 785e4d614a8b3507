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


package memorymap

import (
	"fmt"
	"strings"
)

// the areas in address order
var areas = []struct {
	area   Area
	origin uint16
	memtop uint16
	mask   uint16
}{
	{area: RAM, origin: OriginRAM, memtop: MemtopRAM, mask: MaskRAM},
	{area: PPU, origin: OriginPPU, memtop: MemtopPPU, mask: MaskPPU},
	{area: IO, origin: OriginIO, memtop: MemtopIO},
	{area: Cartridge, origin: OriginCart, memtop: MemtopCart},
}

// Summary returns a single multiline string detailing all the areas in memory.
// Mirrored areas show the size of the primary region.
func Summary() string {
	var s strings.Builder
	for _, a := range areas {
		fmt.Fprintf(&s, "%04x -> %04x\t%s", a.origin, a.memtop, a.area)
		if a.mask != 0 {
			size := int(a.mask&^a.origin) + 1
			fmt.Fprintf(&s, " (mirrored every %d bytes)", size)
		}
		s.WriteRune('\n')
	}
	return s.String()
}
