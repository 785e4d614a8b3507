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


// Package macro controls an emulation from a Lua script. The script is run
// once when the macro is created and then the global function frame(), if it
// exists, is called at the end of every television frame with the frame
// number as the only argument.
//
//	function frame(n)
//		if n == 60 then
//			press("start")
//		elseif n == 62 then
//			release("start")
//		elseif n == 300 then
//			screenshot("title", 2)
//			quit()
//		end
//	end
//
// The following functions are available to the script:
//
//	press(button [, player])
//	release(button [, player])
//	peek(address)
//	poke(address, value)
//	screenshot([filename [, scale]])
//	reset()
//	quit()
//	log(message)
//
// Button names are A, B, Select, Start, Up, Down, Left and Right in any
// letter case. The player is 1 or 2 and defaults to 1.
//
// The frame function runs in the emulation goroutine so there is no delay
// between a press() and the console seeing the button. Peek and poke access
// memory without the side effects of a normal CPU access.
//
// quit() does not stop the emulation directly. The Quit() function of the
// Macro type should be checked by the emulation loop.
//
// Any error in the script results in a log entry and the script is no longer
// called. The emulation itself continues.
package macro
