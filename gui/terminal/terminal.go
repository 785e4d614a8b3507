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


// Package terminal is a frontend that draws the television frame in an ANSI
// terminal with half block characters, at reduced resolution. Keyboard input
// is read in cbreak mode.
//
// Terminals do not report key releases so a button is released automatically
// a short time after it was pressed.
package terminal

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/jetsetilly/gophernes/gui"
	"github.com/jetsetilly/gophernes/gui/terminal/easyterm"
	"github.com/jetsetilly/gophernes/logger"
)

// buttons are released automatically after this duration
const holdDuration = 150 * time.Millisecond

// terminal output is slow. frames are drawn no more often than this
const drawInterval = time.Second / 30

var keyMap = map[byte]gui.Action{
	'w':                        gui.ActionUp,
	's':                        gui.ActionDown,
	'a':                        gui.ActionLeft,
	'd':                        gui.ActionRight,
	'k':                        gui.ActionA,
	'j':                        gui.ActionB,
	' ':                        gui.ActionSelect,
	easyterm.KeyCarriageReturn: gui.ActionStart,
	easyterm.KeyLineFeed:       gui.ActionStart,
	'r':                        gui.ActionReset,
	'p':                        gui.ActionScreenshot,
	'q':                        gui.ActionQuit,
	easyterm.KeyInterrupt:      gui.ActionQuit,
}

// Terminal implements the gui.GUI interface.
type Terminal struct {
	easyterm.Terminal

	ctrl   *gui.Controls
	frames *gui.FrameBuffer

	// when each held button should be released
	crit    sync.Mutex
	release map[gui.Action]time.Time

	lastDraw time.Time
}

// NewTerminal is the preferred method of initialisation for the Terminal
// type. The terminal is put into cbreak mode immediately.
func NewTerminal(ctrl *gui.Controls, frames *gui.FrameBuffer) (*Terminal, error) {
	trm := &Terminal{
		ctrl:    ctrl,
		frames:  frames,
		release: make(map[gui.Action]time.Time),
	}

	if err := trm.Initialise(os.Stdin, os.Stdout); err != nil {
		return nil, err
	}

	trm.CBreakMode()
	trm.Print("%s%s", easyterm.ClearScreen, easyterm.HideCursor)

	go trm.readKeys()

	return trm, nil
}

func (trm *Terminal) readKeys() {
	b := make([]byte, 16)
	for {
		n, err := trm.Read(b)
		if err != nil {
			logger.Log(logger.Allow, "terminal", err)
			trm.ctrl.SetQuit()
			return
		}
		for _, c := range b[:n] {
			trm.key(c)
		}
	}
}

func (trm *Terminal) key(c byte) {
	act, ok := keyMap[c]
	if !ok {
		return
	}

	if _, isButton := act.Button(); isButton {
		trm.crit.Lock()
		trm.release[act] = time.Now().Add(holdDuration)
		trm.crit.Unlock()
	}

	trm.ctrl.Handle(act, true)
}

// Service implements the gui.GUI interface.
func (trm *Terminal) Service() {
	now := time.Now()

	trm.crit.Lock()
	for act, t := range trm.release {
		if now.After(t) {
			delete(trm.release, act)
			trm.ctrl.Handle(act, false)
		}
	}
	trm.crit.Unlock()

	if now.Sub(trm.lastDraw) < drawInterval {
		time.Sleep(time.Millisecond)
		return
	}

	if _, updated := trm.frames.Image(); !updated {
		time.Sleep(time.Millisecond)
		return
	}
	trm.lastDraw = now

	frame := trm.frames.Frame()
	if frame == nil {
		return
	}
	geom := trm.Geometry()

	// leave a line free at the bottom so the terminal does not scroll
	if err := render(&trm.Terminal, frame, geom.Cols, geom.Rows-1); err != nil {
		logger.Log(logger.Allow, "terminal", err)
	}
}

// Destroy implements the gui.GUI interface.
func (trm *Terminal) Destroy(output io.Writer) {
	trm.Print("%s%s%s", easyterm.ResetColours, easyterm.ShowCursor, easyterm.ClearScreen)
	trm.CleanUp()
}
