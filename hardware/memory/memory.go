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
	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/hardware/memory/cpubus"
	"github.com/jetsetilly/gophernes/hardware/memory/memorymap"
	"github.com/jetsetilly/gophernes/hardware/preferences"
)

// PPU is the Bus's view of the PPU.
type PPU interface {
	ReadRegister(address uint16) uint8
	WriteRegister(address uint16, data uint8)
	Peek(address uint16) uint8
}

// Cartridge is the Bus's view of the cartridge.
type Cartridge interface {
	cpubus.Memory
	Peek(address uint16) (uint8, error)
	Poke(address uint16, data uint8) error
}

// AudioHandler is implemented by the APU. WriteRegister() receives writes to
// $4000 to $4013, $4015 and $4017. ReadStatus() is called for reads of $4015.
type AudioHandler interface {
	WriteRegister(address uint16, data uint8)
	ReadStatus() uint8
}

// InputHandler is implemented by the joypads. Read() is called for reads of
// $4016 and $4017 and Write() for writes to $4016.
type InputHandler interface {
	Read(address uint16) uint8
	Write(data uint8)
}

// Address of the OAM DMA register.
const OAMDMA = uint16(0x4014)

// Bus is the CPU bus of the NES. It implements the cpubus.Memory interface.
type Bus struct {
	RAM *RAM

	ppu   PPU
	cart  Cartridge
	audio AudioHandler
	input InputHandler

	// the last value seen on the data bus
	openBus uint8

	// OAM DMA requested by a write to $4014. the page is the high byte of
	// the source address
	dmaPending bool
	dmaPage    uint8
}

// NewBus is the preferred method of initialisation for the Bus type. The
// audio and input handlers are plumbed in with Plumb().
func NewBus(prefs *preferences.Preferences, ppu PPU, cart Cartridge) *Bus {
	return &Bus{
		RAM:  newRAM(prefs),
		ppu:  ppu,
		cart: cart,
	}
}

// Plumb the audio and input handlers into the Bus. Either can be nil, in which
// case the addresses they would otherwise claim are open bus.
func (bus *Bus) Plumb(audio AudioHandler, input InputHandler) {
	bus.audio = audio
	bus.input = input
}

func (bus *Bus) String() string {
	return memorymap.Summary()
}

// PowerOn reinitialises RAM according to the hardware preferences and then
// resets the Bus.
func (bus *Bus) PowerOn() {
	bus.RAM.Reset()
	bus.Reset()
}

// Reset the Bus. Pending DMA requests and the open bus value are cleared. The
// contents of RAM are unchanged.
func (bus *Bus) Reset() {
	bus.openBus = 0
	bus.dmaPending = false
	bus.dmaPage = 0
}

// Read is an implementation of cpubus.Memory.
func (bus *Bus) Read(address uint16) (uint8, error) {
	ma, area := memorymap.MapAddress(address)

	var data uint8

	switch area {
	case memorymap.RAM:
		data = bus.RAM.Peek(ma)
	case memorymap.PPU:
		data = bus.ppu.ReadRegister(ma)
	case memorymap.IO:
		data = bus.readIO(ma)
	case memorymap.Cartridge:
		var err error
		data, err = bus.cart.Read(ma)
		if err != nil {
			return 0, curated.Errorf("bus: %v", err)
		}
	default:
		return 0, curated.Errorf("bus: %v: %#04x", cpubus.AddressError, address)
	}

	bus.openBus = data
	return data, nil
}

func (bus *Bus) readIO(address uint16) uint8 {
	switch address {
	case 0x4015:
		if bus.audio != nil {
			return bus.audio.ReadStatus()
		}
	case 0x4016, 0x4017:
		if bus.input != nil {
			// only the low bits are driven by the joypads
			return (bus.openBus & 0xe0) | (bus.input.Read(address) & 0x1f)
		}
	}
	return bus.openBus
}

// Write is an implementation of cpubus.Memory.
func (bus *Bus) Write(address uint16, data uint8) error {
	bus.openBus = data

	ma, area := memorymap.MapAddress(address)

	switch area {
	case memorymap.RAM:
		bus.RAM.Poke(ma, data)
	case memorymap.PPU:
		bus.ppu.WriteRegister(ma, data)
	case memorymap.IO:
		bus.writeIO(ma, data)
	case memorymap.Cartridge:
		if err := bus.cart.Write(ma, data); err != nil {
			return curated.Errorf("bus: %v", err)
		}
	default:
		return curated.Errorf("bus: %v: %#04x", cpubus.AddressError, address)
	}

	return nil
}

func (bus *Bus) writeIO(address uint16, data uint8) {
	switch {
	case address == OAMDMA:
		bus.dmaPending = true
		bus.dmaPage = data
	case address == 0x4016:
		if bus.input != nil {
			bus.input.Write(data)
		}
	case address <= 0x4013 || address == 0x4015 || address == 0x4017:
		if bus.audio != nil {
			bus.audio.WriteRegister(address, data)
		}
	}
}

// TakeDMA returns the source page of a pending OAM DMA request. The request
// is cleared.
func (bus *Bus) TakeDMA() (uint8, bool) {
	if !bus.dmaPending {
		return 0, false
	}
	bus.dmaPending = false
	return bus.dmaPage, true
}

// Peek returns the value at the address without side effects. IO addresses
// return the open bus value.
func (bus *Bus) Peek(address uint16) (uint8, error) {
	ma, area := memorymap.MapAddress(address)

	switch area {
	case memorymap.RAM:
		return bus.RAM.Peek(ma), nil
	case memorymap.PPU:
		return bus.ppu.Peek(ma), nil
	case memorymap.IO:
		return bus.openBus, nil
	case memorymap.Cartridge:
		return bus.cart.Peek(ma)
	}

	return 0, curated.Errorf("bus: %v: %#04x", cpubus.AddressError, address)
}

// Poke sets the value at the address without side effects. PPU and IO
// addresses cannot be poked. Cartridge ROM is patched if the cartridge
// supports it.
func (bus *Bus) Poke(address uint16, data uint8) error {
	ma, area := memorymap.MapAddress(address)

	switch area {
	case memorymap.RAM:
		bus.RAM.Poke(ma, data)
		return nil
	case memorymap.Cartridge:
		return bus.cart.Poke(ma, data)
	}

	return curated.Errorf("bus: %v: %#04x", cpubus.AddressError, address)
}
