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


// Package gui is the common ground for the windowed frontends. The GUI
// interface is what the main thread services. Actions are the frontend
// independent meaning of a key press and the Controls type applies them to
// the emulation.
//
// The FrameBuffer type carries frames from the emulation goroutine to the
// main thread. Frames are converted to RGBA on request, in the main thread,
// so the emulation is never held up by the conversion.
package gui
