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


// Package ebitenplay is an alternative windowed frontend using ebiten for the
// window and keyboard, and oto for audio.
//
// Unlike the SDL frontend, ebiten owns the main loop. The Service() function
// therefore blocks for the lifetime of the window.
package ebitenplay

import (
	"errors"
	"fmt"
	"io"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jetsetilly/gophernes/gui"
	"github.com/jetsetilly/gophernes/hardware/television"
	"github.com/jetsetilly/gophernes/logger"
)

const windowTitle = "GopherNES"

const defaultScale = 3

var keyMap = map[ebiten.Key]gui.Action{
	ebiten.KeyArrowUp:    gui.ActionUp,
	ebiten.KeyArrowDown:  gui.ActionDown,
	ebiten.KeyArrowLeft:  gui.ActionLeft,
	ebiten.KeyArrowRight: gui.ActionRight,
	ebiten.KeyZ:          gui.ActionA,
	ebiten.KeyA:          gui.ActionA,
	ebiten.KeyX:          gui.ActionB,
	ebiten.KeyS:          gui.ActionB,
	ebiten.KeySpace:      gui.ActionSelect,
	ebiten.KeyShiftRight: gui.ActionSelect,
	ebiten.KeyEnter:      gui.ActionStart,
	ebiten.KeyR:          gui.ActionReset,
	ebiten.KeyF12:        gui.ActionScreenshot,
	ebiten.KeyEscape:     gui.ActionQuit,
}

// EbitenPlay implements the gui.GUI and ebiten.Game interfaces.
type EbitenPlay struct {
	ctrl   *gui.Controls
	frames *gui.FrameBuffer

	screen *ebiten.Image

	// audio is nil if the audio device could not be opened
	Audio *Audio

	// RunGame() has returned
	finished bool
}

// NewEbitenPlay is the preferred method of initialisation for EbitenPlay.
func NewEbitenPlay(ctrl *gui.Controls, frames *gui.FrameBuffer, title string, sampleRate int) (*EbitenPlay, error) {
	eb := &EbitenPlay{
		ctrl:   ctrl,
		frames: frames,
	}

	ebiten.SetWindowSize(television.Width*defaultScale, television.Height*defaultScale)
	ebiten.SetWindowTitle(fmt.Sprintf("%s - %s", windowTitle, title))
	ebiten.SetWindowResizable(true)
	ebiten.SetRunnableOnUnfocused(true)
	ebiten.SetVsyncEnabled(true)

	// audio failure is not fatal
	var err error
	eb.Audio, err = NewAudio(sampleRate)
	if err != nil {
		logger.Log(logger.Allow, "ebitenplay", err)
		eb.Audio = nil
	}

	return eb, nil
}

// Service implements the gui.GUI interface. It blocks until the window has
// been closed.
//
// MUST ONLY be called from the #mainthread
func (eb *EbitenPlay) Service() {
	if eb.finished {
		return
	}
	err := ebiten.RunGame(eb)
	if err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Log(logger.Allow, "ebitenplay", err)
	}
	eb.finished = true
	eb.ctrl.SetQuit()
}

// Destroy implements the gui.GUI interface.
func (eb *EbitenPlay) Destroy(_ io.Writer) {
	if eb.screen != nil {
		eb.screen.Deallocate()
	}
}

// Update implements the ebiten.Game interface.
func (eb *EbitenPlay) Update() error {
	if ebiten.IsWindowBeingClosed() || eb.ctrl.Quit() {
		return ebiten.Termination
	}

	for k, act := range keyMap {
		if inpututil.IsKeyJustPressed(k) {
			eb.ctrl.Handle(act, true)
		} else if inpututil.IsKeyJustReleased(k) {
			eb.ctrl.Handle(act, false)
		}
	}

	return nil
}

// Draw implements the ebiten.Game interface.
func (eb *EbitenPlay) Draw(screen *ebiten.Image) {
	if eb.screen == nil {
		eb.screen = ebiten.NewImage(television.Width, television.Height)
	}

	if img, updated := eb.frames.Image(); updated {
		eb.screen.WritePixels(img.Pix)
	}

	screen.DrawImage(eb.screen, nil)
}

// Layout implements the ebiten.Game interface. The logical screen is always
// the size of the television and ebiten scales it to the window.
func (eb *EbitenPlay) Layout(_, _ int) (int, int) {
	return television.Width, television.Height
}
