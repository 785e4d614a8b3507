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

// Package input implements the two standard NES controllers and the serial
// interface through which the CPU reads them.
//
// A write to $4016 sets the strobe line of both controllers. While the strobe
// is high the shift register of each controller is continually reloaded with
// the state of the buttons. When the strobe falls, reads of $4016 (player one)
// and $4017 (player two) return the buttons one at a time in the order:
//
//	A, B, Select, Start, Up, Down, Left, Right
//
// After eight reads every subsequent read returns 1.
//
// The state of the buttons is stored atomically. Press() and Release() can be
// called from any goroutine, most probably the GUI goroutine, without
// synchronising with the emulation.
package input
