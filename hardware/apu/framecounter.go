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

package apu

// the frame counter sequence points in APU cycles
const (
	step1 = 3729
	step2 = 7457
	step3 = 11186
	step4 = 14915
	step5 = 18641
)

type frameCounter struct {
	fiveStep bool
	inhibit  bool
	irq      bool
	cycle    int
}

// the clocks produced by the frame counter on a single APU cycle.
type frameClock struct {
	quarter bool
	half    bool
}

// write to $4017. a write in five step mode clocks the quarter-frame and
// half-frame units immediately.
func (fc *frameCounter) write(data uint8) frameClock {
	fc.fiveStep = data&0x80 == 0x80
	fc.inhibit = data&0x40 == 0x40
	if fc.inhibit {
		fc.irq = false
	}
	fc.cycle = 0
	return frameClock{
		quarter: fc.fiveStep,
		half:    fc.fiveStep,
	}
}

// clocked every APU cycle.
func (fc *frameCounter) step() frameClock {
	fc.cycle++

	switch fc.cycle {
	case step1, step3:
		return frameClock{quarter: true}
	case step2:
		return frameClock{quarter: true, half: true}
	case step4:
		if fc.fiveStep {
			return frameClock{}
		}
		fc.cycle = 0
		if !fc.inhibit {
			fc.irq = true
		}
		return frameClock{quarter: true, half: true}
	case step5:
		fc.cycle = 0
		return frameClock{quarter: true, half: true}
	}

	return frameClock{}
}
