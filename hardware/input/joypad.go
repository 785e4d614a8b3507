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

package input

import (
	"strings"
	"sync/atomic"
)

// Joypad is a standard NES controller.
type Joypad struct {
	// buttons currently held down. a bit is set for each pressed Button
	buttons atomic.Uint32

	strobe bool
	shift  uint8
}

func (jp *Joypad) String() string {
	s := strings.Builder{}
	pressed := jp.Pressed()
	for _, b := range Buttons {
		if pressed&b == b {
			s.WriteString(b.String()[:1])
		} else {
			s.WriteRune('-')
		}
	}
	return s.String()
}

// Press a button. Safe to call from any goroutine.
func (jp *Joypad) Press(b Button) {
	jp.buttons.Or(uint32(b))
}

// Release a button. Safe to call from any goroutine.
func (jp *Joypad) Release(b Button) {
	jp.buttons.And(^uint32(b))
}

// Set the state of a button. Safe to call from any goroutine.
func (jp *Joypad) Set(b Button, pressed bool) {
	if pressed {
		jp.Press(b)
	} else {
		jp.Release(b)
	}
}

// Pressed returns the state of all buttons as a bit mask.
func (jp *Joypad) Pressed() Button {
	return Button(jp.buttons.Load())
}

// IsPressed returns true if the specified button is being held down.
func (jp *Joypad) IsPressed(b Button) bool {
	return jp.Pressed()&b == b
}

// reset releases all buttons and clears the serial interface.
func (jp *Joypad) reset() {
	jp.buttons.Store(0)
	jp.strobe = false
	jp.shift = 0
}

// write the strobe line.
func (jp *Joypad) write(strobe bool) {
	jp.strobe = strobe
	if jp.strobe {
		jp.shift = uint8(jp.Pressed())
	}
}

// read the next bit from the shift register.
func (jp *Joypad) read() uint8 {
	if jp.strobe {
		jp.shift = uint8(jp.Pressed())
		return jp.shift & 0x01
	}
	v := jp.shift & 0x01
	jp.shift = (jp.shift >> 1) | 0x80
	return v
}
