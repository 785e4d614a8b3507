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

import (
	"io"
	"sync/atomic"

	"github.com/jetsetilly/gophernes/hardware/input"
	"github.com/jetsetilly/gophernes/hardware/television"
	"github.com/jetsetilly/gophernes/logger"
	"github.com/jetsetilly/gophernes/screenshot"
)

// GUI is implemented by the windowed frontends. Many GUI solutions (notably
// SDL) require window event handling to occur on the main thread.
type GUI interface {
	// Service() should not pause or loop longer than necessary (if at all). It
	// MUST ONLY be called as part of a larger loop from the main thread.
	Service()

	// cleanup resources used by the gui
	Destroy(io.Writer)
}

// Input is the part of the console that receives button events.
type Input interface {
	HandleEvent(input.Event) error
}

// Console is the part of the NES that the user can control directly.
type Console interface {
	RequestReset()
}

// Controls translates Actions into changes to the emulation. Controls is safe
// to use from any goroutine.
type Controls struct {
	inp     Input
	console Console
	frames  *FrameBuffer

	// used to name screenshot files
	cartName string

	// scale of screenshots
	screenshotScale int

	// screenshots are also copied to the clipboard
	clipboard atomic.Bool

	quit atomic.Bool
}

// NewControls is the preferred method of initialisation for the Controls
// type.
func NewControls(inp Input, console Console, frames *FrameBuffer, cartName string) *Controls {
	return &Controls{
		inp:             inp,
		console:         console,
		frames:          frames,
		cartName:        cartName,
		screenshotScale: 2,
	}
}

// SetClipboard sets whether screenshots are copied to the system clipboard as
// well as saved to disk.
func (c *Controls) SetClipboard(set bool) {
	c.clipboard.Store(set)
}

// Quit returns true if the Quit action has been received.
func (c *Controls) Quit() bool {
	return c.quit.Load()
}

// SetQuit is used when a GUI wants to end the emulation for a reason other
// than the Quit action (eg. the window has been closed).
func (c *Controls) SetQuit() {
	c.quit.Store(true)
}

// Handle an action. Non-button actions are only triggered when down is true.
func (c *Controls) Handle(act Action, down bool) {
	if act == NoAction {
		return
	}

	if b, ok := act.Button(); ok {
		err := c.inp.HandleEvent(input.Event{Player: 0, Button: b, Pressed: down})
		if err != nil {
			logger.Log(logger.Allow, "gui", err)
		}
		return
	}

	if !down {
		return
	}

	switch act {
	case ActionReset:
		c.console.RequestReset()
	case ActionScreenshot:
		c.screenshot()
	case ActionQuit:
		c.quit.Store(true)
	}
}

func (c *Controls) screenshot() {
	var frame *television.Frame
	if c.frames != nil {
		frame = c.frames.Frame()
	}
	if err := screenshot.Save(frame, c.screenshotScale, screenshot.Filename(c.cartName)); err != nil {
		logger.Log(logger.Allow, "gui", err)
		return
	}
	if c.clipboard.Load() {
		if err := screenshot.Clipboard(frame, c.screenshotScale); err != nil {
			logger.Log(logger.Allow, "gui", err)
		}
	}
}
