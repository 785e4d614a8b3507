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
	"fmt"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/logger"
)

// cycle advances the rest of the NES hardware by one CPU cycle. The cycle
// callback given to the CPU.
func (nes *NES) cycle() error {
	nes.Clock++

	// three PPU dots per CPU cycle
	for range 3 {
		if err := nes.PPU.Step(); err != nil {
			return err
		}
	}

	if err := nes.APU.Step(); err != nil {
		return err
	}

	// interrupt lines are sampled by the CPU at the next instruction boundary
	nes.CPU.SetNMI(nes.PPU.NMI())
	nes.CPU.SetIRQ(nes.APU.IRQ() || nes.Cart.IRQ())

	return nil
}

// Step the emulation by one CPU instruction, or one interrupt service, plus
// any OAM DMA requested by the instruction. Returns the number of CPU cycles
// consumed.
func (nes *NES) Step() (int, error) {
	if nes.resetRequest.Load() {
		if err := nes.Reset(); err != nil {
			return 0, err
		}
	}

	var trace string
	if nes.trace {
		trace = fmt.Sprintf("%s PPU:%3d,%3d CYC:%d", nes.CPU, nes.PPU.Scanline, nes.PPU.Dot, nes.Clock)
	}

	if err := nes.CPU.ExecuteInstruction(nes.cycle); err != nil {
		return 0, curated.Errorf("nes: %v", err)
	}

	if page, ok := nes.Mem.TakeDMA(); ok {
		stall, err := nes.dma(page)
		if err != nil {
			return 0, curated.Errorf("nes: %v", err)
		}
		nes.CPU.LastResult.Cycles += stall
	}

	if nes.trace {
		logger.Logf(logger.Allow, "trace", "%s %s", nes.CPU.LastResult.String(), trace)
	}

	return nes.CPU.LastResult.Cycles, nil
}

// dma copies a page of memory into OAM, starting at the current OAM address.
// Returns the number of cycles the CPU was stalled for.
func (nes *NES) dma(page uint8) (int, error) {
	stall := 513

	// an additional alignment cycle is required if the DMA begins on an odd
	// CPU cycle
	if nes.Clock&0x01 == 0x01 {
		stall++
		if err := nes.cycle(); err != nil {
			return 0, err
		}
	}

	// dummy read cycle
	if err := nes.cycle(); err != nil {
		return 0, err
	}

	addr := uint16(page) << 8
	for i := range uint16(256) {
		v, err := nes.Mem.Read(addr | i)
		if err != nil {
			return 0, err
		}
		if err := nes.cycle(); err != nil {
			return 0, err
		}

		nes.PPU.WriteOAM(v)
		if err := nes.cycle(); err != nil {
			return 0, err
		}
	}

	return stall, nil
}
