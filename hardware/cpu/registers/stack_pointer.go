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

package registers

import "fmt"

// the stack always occupies page one of memory
const stackPage = 0x0100

// StackPointer is the 8-bit stack register. Pushing and popping wrap within
// page one and never reach any other page.
type StackPointer struct {
	Register
}

// NewStackPointer is the preferred method of initialisation for
// StackPointer.
func NewStackPointer(val uint8) StackPointer {
	return StackPointer{Register: NewRegister(val, "SP")}
}

func (sp StackPointer) String() string {
	return fmt.Sprintf("%02x", sp.value)
}

// Address returns the address in memory that the stack pointer indicates.
func (sp StackPointer) Address() uint16 {
	return stackPage | uint16(sp.value)
}

// Push returns the address for the next push and then decrements the stack
// pointer.
func (sp *StackPointer) Push() uint16 {
	a := sp.Address()
	sp.value--
	return a
}

// Pop increments the stack pointer and returns the address of the value to
// pop.
func (sp *StackPointer) Pop() uint16 {
	sp.value++
	return sp.Address()
}
