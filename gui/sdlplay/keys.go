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


package sdlplay

import (
	"github.com/jetsetilly/gophernes/gui"
	"github.com/veandco/go-sdl2/sdl"
)

var keyMap = map[sdl.Keycode]gui.Action{
	sdl.K_UP:     gui.ActionUp,
	sdl.K_DOWN:   gui.ActionDown,
	sdl.K_LEFT:   gui.ActionLeft,
	sdl.K_RIGHT:  gui.ActionRight,
	sdl.K_z:      gui.ActionA,
	sdl.K_a:      gui.ActionA,
	sdl.K_x:      gui.ActionB,
	sdl.K_s:      gui.ActionB,
	sdl.K_SPACE:  gui.ActionSelect,
	sdl.K_RSHIFT: gui.ActionSelect,
	sdl.K_RETURN: gui.ActionStart,
	sdl.K_r:      gui.ActionReset,
	sdl.K_F12:    gui.ActionScreenshot,
	sdl.K_ESCAPE: gui.ActionQuit,
}

// lookupKey returns the Action for the SDL key. Unmapped keys return
// gui.NoAction.
func lookupKey(key sdl.Keycode) gui.Action {
	return keyMap[key]
}
