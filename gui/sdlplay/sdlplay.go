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


// Package sdlplay is a simple windowed frontend using SDL for the window,
// keyboard and audio, and OpenGL for presenting the frames.
package sdlplay

import (
	"fmt"
	"io"
	"runtime"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/gui"
	"github.com/jetsetilly/gophernes/hardware/television"
	"github.com/jetsetilly/gophernes/logger"
	"github.com/veandco/go-sdl2/sdl"
)

const windowTitle = "GopherNES"

// list of swap interval values as expected by the SDL.GLSetSwapInterval()
// function
const (
	syncImmediateUpdate     = 0
	syncWithVerticalRetrace = 1
)

// SdlPlay implements the gui.GUI interface.
type SdlPlay struct {
	Prefs *Preferences

	ctrl   *gui.Controls
	frames *gui.FrameBuffer

	window *sdl.Window
	glctx  sdl.GLContext
	hasCtx bool
	rnd    *gl32

	// audio is nil if the audio device could not be opened
	Audio *Audio
}

// NewSdlPlay is the preferred method of initialisation for SdlPlay.
//
// MUST ONLY be called from the #mainthread
func NewSdlPlay(ctrl *gui.Controls, frames *gui.FrameBuffer, title string, sampleRate int) (*SdlPlay, error) {
	// the SDL package calls LockOSThread() but we call it here too. it can't
	// hurt and we never unlock it in any case
	runtime.LockOSThread()

	scr := &SdlPlay{
		ctrl:   ctrl,
		frames: frames,
	}

	var err error

	scr.Prefs, err = newPreferences()
	if err != nil {
		return nil, err
	}

	err = sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO | sdl.INIT_EVENTS)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	err = sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 3)
	if err == nil {
		err = sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 2)
	}
	if err == nil {
		err = sdl.GLSetAttribute(sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG)
	}
	if err == nil {
		err = sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	}
	if err != nil {
		sdl.Quit()
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	var sdlVersion sdl.Version
	sdl.VERSION(&sdlVersion)
	logger.Logf(logger.Allow, "sdlplay", "sdl version %d.%d.%d", sdlVersion.Major, sdlVersion.Minor, sdlVersion.Patch)

	scale := int32(scr.Prefs.Scale.Get().(int))

	scr.window, err = sdl.CreateWindow(fmt.Sprintf("%s - %s", windowTitle, title),
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		television.Width*scale, television.Height*scale,
		sdl.WINDOW_OPENGL|sdl.WINDOW_ALLOW_HIGHDPI|sdl.WINDOW_RESIZABLE)
	if err != nil {
		sdl.Quit()
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.glctx, err = scr.window.GLCreateContext()
	if err != nil {
		scr.destroy()
		return nil, curated.Errorf("sdlplay: %v", err)
	}
	scr.hasCtx = true

	err = scr.window.GLMakeCurrent(scr.glctx)
	if err != nil {
		scr.destroy()
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	if scr.Prefs.VSync.Get().(bool) {
		scr.setSwapInterval(syncWithVerticalRetrace)
	} else {
		scr.setSwapInterval(syncImmediateUpdate)
	}

	scr.rnd, err = newGL32()
	if err != nil {
		scr.destroy()
		return nil, err
	}
	logger.Logf(logger.Allow, "sdlplay", "using GL version %s", gl.GoStr(gl.GetString(gl.VERSION)))

	// audio failure is not fatal
	scr.Audio, err = NewAudio(sampleRate)
	if err != nil {
		logger.Log(logger.Allow, "sdlplay", err)
		scr.Audio = nil
	}

	// MOUSEMOTION events fill up the event queue and we have no use for them
	sdl.EventState(sdl.MOUSEMOTION, sdl.IGNORE)

	return scr, nil
}

func (scr *SdlPlay) setSwapInterval(i int) {
	err := sdl.GLSetSwapInterval(i)
	if err != nil {
		logger.Logf(logger.Allow, "sdlplay", "GLSetSwapInterval(%d): %v", i, err)
	}
}

// Service implements the gui.GUI interface.
//
// MUST ONLY be called from the #mainthread
func (scr *SdlPlay) Service() {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			scr.ctrl.SetQuit()

		case *sdl.KeyboardEvent:
			if ev.Repeat != 0 {
				continue
			}
			scr.ctrl.Handle(lookupKey(ev.Keysym.Sym), ev.Type == sdl.KEYDOWN)
		}
	}

	img, updated := scr.frames.Image()
	if !updated {
		// nothing to draw. don't spin the main thread
		sdl.Delay(1)
		return
	}

	scr.rnd.update(img)
	w, h := scr.window.GLGetDrawableSize()
	scr.rnd.render(w, h)
	scr.window.GLSwap()
}

// Destroy implements the gui.GUI interface.
//
// MUST ONLY be called from the #mainthread
func (scr *SdlPlay) Destroy(output io.Writer) {
	if err := scr.Prefs.Save(); err != nil {
		fmt.Fprintln(output, err)
	}
	scr.destroy()
}

func (scr *SdlPlay) destroy() {
	if scr.rnd != nil {
		scr.rnd.destroy()
		scr.rnd = nil
	}
	if scr.hasCtx {
		sdl.GLDeleteContext(scr.glctx)
		scr.hasCtx = false
	}
	if scr.window != nil {
		_ = scr.window.Destroy()
		scr.window = nil
	}
	sdl.Quit()
}
