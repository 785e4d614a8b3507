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

import "fmt"

type triangle struct {
	length length

	// control flag is also the length counter halt flag
	control bool
	reload  bool

	linearLoad    uint8
	linearCounter uint8

	step uint8

	period uint16
	timer  uint16
}

func (tr *triangle) String() string {
	return fmt.Sprintf("lin=%03d period=%04d len=%03d", tr.linearCounter, tr.period, tr.length.counter)
}

// write to one of the four triangle registers. reg is in the range 0 to 3.
func (tr *triangle) write(reg uint16, data uint8) {
	switch reg {
	case 0:
		tr.control = data&0x80 == 0x80
		tr.linearLoad = data & 0x7f
	case 2:
		tr.period = (tr.period & 0xff00) | uint16(data)
	case 3:
		tr.period = (tr.period & 0x00ff) | (uint16(data&0x07) << 8)
		tr.length.load(data)
		tr.reload = true
	}
}

// the triangle timer is clocked every CPU cycle.
func (tr *triangle) clockTimer() {
	if tr.timer > 0 {
		tr.timer--
		return
	}
	tr.timer = tr.period
	if tr.length.active() && tr.linearCounter > 0 {
		tr.step = (tr.step + 1) & 0x1f
	}
}

// clocked on every quarter frame.
func (tr *triangle) clockLinear() {
	if tr.reload {
		tr.linearCounter = tr.linearLoad
	} else if tr.linearCounter > 0 {
		tr.linearCounter--
	}
	if !tr.control {
		tr.reload = false
	}
}

func (tr *triangle) output() uint8 {
	// periods below two produce ultrasonic frequencies, which are silenced
	if !tr.length.active() || tr.linearCounter == 0 || tr.period < 2 {
		return 0
	}
	return triangleSequence[tr.step]
}
