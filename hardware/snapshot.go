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

package hardware

import (
	"github.com/jetsetilly/gophernes/hardware/apu"
	"github.com/jetsetilly/gophernes/hardware/cpu"
	"github.com/jetsetilly/gophernes/hardware/memory"
	"github.com/jetsetilly/gophernes/hardware/ppu"
)

// State is a copy of the NES sub-systems. It is produced by the Snapshot()
// function and can be examined without interfering with the emulation.
//
// Note in particular that the TV and the cartridge are not part of the
// snapshot.
type State struct {
	Clock uint64
	CPU   *cpu.CPU
	RAM   *memory.RAM
	PPU   *ppu.PPU
	APU   *apu.APU
}

// Snapshot the state of the NES sub-systems.
func (nes *NES) Snapshot() *State {
	return &State{
		Clock: nes.Clock,
		CPU:   nes.CPU.Snapshot(),
		RAM:   nes.Mem.RAM.Snapshot(),
		PPU:   nes.PPU.Snapshot(),
		APU:   nes.APU.Snapshot(),
	}
}
