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

package memory

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gophernes/hardware/memory/memorymap"
	"github.com/jetsetilly/gophernes/hardware/preferences"
)

// RAM is the 2KiB of internal RAM.
type RAM struct {
	prefs *preferences.Preferences

	memory [memorymap.MaskRAM + 1]uint8
}

func newRAM(prefs *preferences.Preferences) *RAM {
	ram := &RAM{prefs: prefs}
	ram.Reset()
	return ram
}

// Snapshot creates a copy of RAM in its current state.
func (ram *RAM) Snapshot() *RAM {
	n := *ram
	return &n
}

// String returns the first page of RAM as a hex dump.
func (ram *RAM) String() string {
	s := strings.Builder{}
	s.WriteString("      -0 -1 -2 -3 -4 -5 -6 -7 -8 -9 -A -B -C -D -E -F\n")
	s.WriteString("    ---- -- -- -- -- -- -- -- -- -- -- -- -- -- -- --\n")
	for y := range 16 {
		s.WriteString(fmt.Sprintf("%X- | ", y))
		for x := range 16 {
			s.WriteString(fmt.Sprintf(" %02x", ram.memory[(y*16)+x]))
		}
		s.WriteString("\n")
	}
	return strings.Trim(s.String(), "\n")
}

// Reset contents of RAM. The contents are randomised if the hardware
// preferences ask for it.
func (ram *RAM) Reset() {
	if ram.prefs != nil && ram.prefs.RandomState.Get().(bool) {
		for i := range ram.memory {
			ram.memory[i] = uint8(ram.prefs.RandSrc.Intn(256))
		}
		return
	}
	clear(ram.memory[:])
}

// Peek returns the value at the address. The address is mirrored.
func (ram *RAM) Peek(address uint16) uint8 {
	return ram.memory[address&memorymap.MaskRAM]
}

// Poke sets the value at the address. The address is mirrored.
func (ram *RAM) Poke(address uint16, data uint8) {
	ram.memory[address&memorymap.MaskRAM] = data
}
