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


package gui

import "github.com/jetsetilly/gophernes/hardware/input"

// Action is what a key, or other user input, means to the emulation. Every
// frontend maps its native key values to an Action.
type Action int

// List of valid Action values.
const (
	NoAction Action = iota
	ActionA
	ActionB
	ActionSelect
	ActionStart
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionReset
	ActionScreenshot
	ActionQuit
)

func (act Action) String() string {
	if b, ok := act.Button(); ok {
		return b.String()
	}
	switch act {
	case ActionReset:
		return "Reset"
	case ActionScreenshot:
		return "Screenshot"
	case ActionQuit:
		return "Quit"
	}
	return "none"
}

// Button returns the controller button for the Action. The boolean is false
// if the Action is not a button.
func (act Action) Button() (input.Button, bool) {
	switch act {
	case ActionA:
		return input.A, true
	case ActionB:
		return input.B, true
	case ActionSelect:
		return input.Select, true
	case ActionStart:
		return input.Start, true
	case ActionUp:
		return input.Up, true
	case ActionDown:
		return input.Down, true
	case ActionLeft:
		return input.Left, true
	case ActionRight:
		return input.Right, true
	}
	return 0, false
}
