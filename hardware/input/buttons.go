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

	"github.com/jetsetilly/gophernes/curated"
)

// Button is a bit mask of one of the buttons on a standard controller. The
// value of each button is the position of the button in the serial output.
type Button uint8

// List of valid Button values.
const (
	A Button = 1 << iota
	B
	Select
	Start
	Up
	Down
	Left
	Right
)

// Buttons lists every button in serial order.
var Buttons = []Button{A, B, Select, Start, Up, Down, Left, Right}

func (b Button) String() string {
	switch b {
	case A:
		return "A"
	case B:
		return "B"
	case Select:
		return "Select"
	case Start:
		return "Start"
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	}
	return "unknown"
}

// Sentinal error returned by ParseButton().
const UnknownButton = "input: unknown button: %s"

// ParseButton converts a string to a Button value. Case is ignored.
func ParseButton(s string) (Button, error) {
	for _, b := range Buttons {
		if strings.EqualFold(s, b.String()) {
			return b, nil
		}
	}
	return 0, curated.Errorf(UnknownButton, s)
}
