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
	"sync/atomic"

	"github.com/jetsetilly/gophernes/cartridgeloader"
	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/hardware/apu"
	"github.com/jetsetilly/gophernes/hardware/cpu"
	"github.com/jetsetilly/gophernes/hardware/input"
	"github.com/jetsetilly/gophernes/hardware/memory"
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge"
	"github.com/jetsetilly/gophernes/hardware/memory/cpubus"
	"github.com/jetsetilly/gophernes/hardware/ppu"
	"github.com/jetsetilly/gophernes/hardware/preferences"
	"github.com/jetsetilly/gophernes/hardware/television"
	"github.com/jetsetilly/gophernes/logger"
)

// NES struct is the main container for the emulated components of the NES.
type NES struct {
	Prefs *preferences.Preferences

	// the television is not part of the NES but is attached to it
	TV *television.Television

	CPU   *cpu.CPU
	Mem   *memory.Bus
	PPU   *ppu.PPU
	APU   *apu.APU
	Input *input.Input
	Cart  *cartridge.Cartridge

	// number of CPU cycles since the last reset
	Clock uint64

	// reset requested from another goroutine
	resetRequest atomic.Bool

	// log every instruction in a format similar to the nestest log
	trace bool
}

// NewNES creates a new NES and everything associated with the hardware. It is
// used for all aspects of emulation. The cartridge slot is empty until
// AttachCartridge() is called.
func NewNES(tv *television.Television, prefs *preferences.Preferences) (*NES, error) {
	if tv == nil {
		return nil, curated.Errorf("nes: a television is required")
	}
	if prefs == nil {
		return nil, curated.Errorf("nes: hardware preferences are required")
	}

	nes := &NES{
		Prefs: prefs,
		TV:    tv,
		Cart:  cartridge.NewCartridge(),
		Input: input.NewInput(),
	}

	nes.PPU = ppu.NewPPU(nes.Cart, nes.TV)
	nes.APU = apu.NewAPU(nes.Prefs, nes.TV)
	nes.Mem = memory.NewBus(nes.Prefs, nes.PPU, nes.Cart)
	nes.Mem.Plumb(nes.APU, nes.Input)
	nes.APU.Plumb(nes.Mem)
	nes.CPU = cpu.NewCPU(nes.Mem)

	if err := nes.powerOn(); err != nil {
		return nil, err
	}

	return nes, nil
}

func (nes *NES) String() string {
	return nes.PPU.String()
}

// AttachCartridge to this NES. The NES is powered on after the cartridge has been
// attached. On error the cartridge slot is left empty.
func (nes *NES) AttachCartridge(cartload *cartridgeloader.Loader) error {
	if err := nes.Cart.Attach(cartload); err != nil {
		return curated.Errorf("nes: %v", err)
	}
	return nes.powerOn()
}

// AttachCartridgeData attaches a cartridge from an iNES image already in
// memory. The NES is powered on after the cartridge has been attached.
func (nes *NES) AttachCartridgeData(filename string, data []byte) error {
	if err := nes.Cart.AttachData(filename, data); err != nil {
		return curated.Errorf("nes: %v", err)
	}
	logger.Logf(logger.Allow, "nes", "attached %s (%s)", filename, nes.Cart.Header)
	return nes.powerOn()
}

// powerOn is a cold start. RAM is reinitialised according to the hardware
// preferences and the cartridge's volatile memory is cleared before the
// console is reset.
func (nes *NES) powerOn() error {
	nes.Cart.PowerOn()
	nes.Mem.PowerOn()
	return nes.Reset()
}

// Reset emulates the reset button of the console. The CPU, PPU, APU and
// joypads are returned to their reset state. Work RAM and cartridge memory
// are not discarded.
func (nes *NES) Reset() error {
	nes.resetRequest.Store(false)
	nes.Clock = 0

	nes.Mem.Reset()
	nes.PPU.Reset()
	nes.APU.Reset()
	nes.Input.Reset()
	nes.CPU.Reset()

	if err := nes.CPU.LoadPCIndirect(cpubus.Reset); err != nil {
		return curated.Errorf("nes: %v", err)
	}

	return nil
}

// RequestReset can be called from any goroutine. The reset happens at the
// next instruction boundary.
func (nes *NES) RequestReset() {
	nes.resetRequest.Store(true)
}

// SetTrace turns instruction logging on or off.
func (nes *NES) SetTrace(trace bool) {
	nes.trace = trace
}
