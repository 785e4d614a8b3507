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


package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gophernes/cartridgeloader"
	"github.com/jetsetilly/gophernes/govern"
	"github.com/jetsetilly/gophernes/gui"
	"github.com/jetsetilly/gophernes/gui/ebitenplay"
	"github.com/jetsetilly/gophernes/gui/sdlplay"
	"github.com/jetsetilly/gophernes/gui/terminal"
	"github.com/jetsetilly/gophernes/hardware"
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge"
	"github.com/jetsetilly/gophernes/hardware/preferences"
	"github.com/jetsetilly/gophernes/hardware/television"
	"github.com/jetsetilly/gophernes/logger"
	"github.com/jetsetilly/gophernes/macro"
	"github.com/jetsetilly/gophernes/modalflag"
	"github.com/jetsetilly/gophernes/performance"
	"github.com/jetsetilly/gophernes/resources"
	"github.com/jetsetilly/gophernes/statsview"
	"github.com/jetsetilly/gophernes/wavwriter"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// reset interrupt signal handling. used when an alternative handler is
	// more appropriate. for example, the emulation loop ends gracefully on
	// ctrl-c so that wav files are completed.
	//
	// takes no arguments.
	reqNoIntSig stateReq = "NOINTSIG"
)

type stateRequest struct {
	req  stateReq
	args any
}

// GuiCreator facilitates the creation, servicing and destruction of GUIs
// that need to be run in the main thread.
//
// Note that there is no Create() function because we need the freedom to
// create the GUI how we want. Instead the creator is a channel which accepts
// a function that returns an instance of GuiCreator.
type GuiCreator interface {
	gui.GUI
}

// communication between the main() function and the launch() function. this is
// required because many gui solutions (notably SDL) require window event
// handling (including creation) to occur on the main thread.
type mainSync struct {
	state   chan stateRequest
	creator chan func() (GuiCreator, error)

	// the result of creator will be returned on either of these two channels.
	creation      chan GuiCreator
	creationError chan error
}

// #mainthread
func main() {
	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (GuiCreator, error)),
		creation:      make(chan GuiCreator),
		creationError: make(chan error),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// #ctrlc default handler. can be turned off with reqNoIntSig request
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	// launch program as a go routine. further communication is through
	// the mainSync instance
	go launch(sync, os.Args[1:])

	// loop until done is true. every iteration of the loop we listen for:
	//
	//  1. interrupt signals
	//  2. new gui creation functions
	//  3. state requests
	//  4. anything in the Service() function of the most recently created GUI
	//
	done := false
	var scr GuiCreator
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case creator := <-sync.creator:
			var err error

			// destroy existing gui
			if scr != nil {
				scr.Destroy(os.Stderr)
			}

			scr, err = creator()
			if err != nil {
				sync.creationError <- err

				// scr may be a typed nil
				scr = nil
			} else {
				sync.creation <- scr
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if scr != nil {
					scr.Destroy(os.Stderr)
				}

				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}

			case reqNoIntSig:
				signal.Reset(os.Interrupt)
				if state.args != nil {
					panic(fmt.Sprintf("%s does not accept any arguments", reqNoIntSig))
				}
			}

		default:
			if scr != nil {
				scr.Service()
			}
		}
	}

	fmt.Print("\r")
	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate gui creation and to quit.
func launch(sync *mainSync, args []string) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("PLAY", "TERM", "PERFORMANCE", "INSPECT", "ROMINFO")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	switch md.Mode() {
	case "PLAY":
		err = play(md, sync)

	case "TERM":
		err = term(md, sync)

	case "PERFORMANCE":
		err = perform(md)

	case "INSPECT":
		err = inspect(md)

	case "ROMINFO":
		err = rominfo(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// options common to the PLAY and TERM modes.
type emulationOptions struct {
	fpsCap    *bool
	wav       *string
	macro     *string
	log       *bool
	trace     *bool
	stats     *bool
	clipboard *bool
}

func addEmulationOptions(md *modalflag.Modes) emulationOptions {
	opts := emulationOptions{
		fpsCap:    md.AddBool("fpscap", true, "cap fps to the NTSC refresh rate"),
		wav:       md.AddString("wav", "", "record audio to wav file"),
		macro:     md.AddString("macro", "", "lua script to run alongside the emulation"),
		log:       md.AddBool("log", false, "echo debugging log to stdout"),
		trace:     md.AddBool("trace", false, "log every CPU instruction (implies -log)"),
		clipboard: md.AddBool("clipboard", false, "copy screenshots to the clipboard"),
	}
	if statsview.Available() {
		opts.stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}
	return opts
}

// the parts of the emulation shared by the PLAY and TERM modes.
type emulation struct {
	opts     emulationOptions
	cartload cartridgeloader.Loader

	tv     *television.Television
	nes    *hardware.NES
	frames *gui.FrameBuffer
	ctrl   *gui.Controls
}

func newEmulation(md *modalflag.Modes, opts emulationOptions) (*emulation, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return nil, fmt.Errorf("NES cartridge required for %s mode", md)
	case 1:
	default:
		return nil, fmt.Errorf("too many arguments for %s mode", md)
	}

	if *opts.log || *opts.trace {
		logger.SetEcho(os.Stdout, false)
	} else {
		logger.SetEcho(nil, false)
	}

	if opts.stats != nil && *opts.stats {
		statsview.Launch(os.Stdout)
	}

	emu := &emulation{
		opts:     opts,
		cartload: cartridgeloader.NewLoader(md.GetArg(0)),
		tv:       television.NewTelevision(),
		frames:   gui.NewFrameBuffer(),
	}

	emu.tv.SetFPSCap(*opts.fpsCap)
	emu.tv.AddFrameTrigger(emu.frames)

	prefs, err := preferences.NewPreferences()
	if err != nil {
		return nil, err
	}

	emu.nes, err = hardware.NewNES(emu.tv, prefs)
	if err != nil {
		return nil, err
	}
	emu.nes.SetTrace(*opts.trace)

	err = emu.nes.AttachCartridge(&emu.cartload)
	if err != nil {
		return nil, err
	}

	emu.ctrl = gui.NewControls(emu.nes.Input, emu.nes, emu.frames, emu.cartload.ShortName())
	emu.ctrl.SetClipboard(*opts.clipboard)

	return emu, nil
}

// run the emulation until the GUI or the macro asks to quit, or until ctrl-c
// is pressed. the GUI must have been created before calling run().
func (emu *emulation) run() error {
	defer emu.tv.End()

	if *emu.opts.wav != "" {
		aw, err := wavwriter.New(*emu.opts.wav, emu.nes.APU.SampleRate())
		if err != nil {
			return err
		}
		emu.tv.AddAudioMixer(aw)
	}

	var mcr *macro.Macro
	if *emu.opts.macro != "" {
		var err error
		mcr, err = macro.NewMacro(*emu.opts.macro, emu.nes.Input, emu.nes.Mem, emu.nes, emu.tv)
		if err != nil {
			return err
		}
		defer mcr.End()
	}

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	// the GUI may be waiting for the quit signal whatever the reason the
	// emulation ended
	defer emu.ctrl.SetQuit()

	var brake int

	return emu.nes.Run(func() (govern.State, error) {
		brake++
		if brake < hardware.PerformanceBrake {
			return govern.Running, nil
		}
		brake = 0

		select {
		case <-intChan:
			return govern.Ending, nil
		default:
		}

		if emu.ctrl.Quit() || (mcr != nil && mcr.Quit()) {
			return govern.Ending, nil
		}

		return govern.Running, nil
	})
}

// waits for the result of a gui creation request. some GUIs block the main
// thread in Service() so no other state requests should be sent after this
// other than reqQuit
func waitForGUI(sync *mainSync, creator func() (GuiCreator, error)) error {
	// turn off fallback ctrl-c handling. the emulation ends normally on
	// ctrl-c so that the television can finish cleanly
	sync.state <- stateRequest{req: reqNoIntSig}

	sync.creator <- creator
	select {
	case <-sync.creation:
		return nil
	case err := <-sync.creationError:
		return err
	}
}

func play(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	guiType := md.AddString("gui", "SDL", "window frontend: SDL, EBITEN")
	opts := addEmulationOptions(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	emu, err := newEmulation(md, opts)
	if err != nil {
		return err
	}

	title := fmt.Sprintf("GopherNES - %s", emu.cartload.ShortName())
	rate := emu.nes.APU.SampleRate()

	var creator func() (GuiCreator, error)

	switch strings.ToUpper(*guiType) {
	case "SDL":
		creator = func() (GuiCreator, error) {
			scr, err := sdlplay.NewSdlPlay(emu.ctrl, emu.frames, title, rate)
			if err != nil {
				return nil, err
			}
			if scr.Audio != nil {
				emu.tv.AddAudioMixer(scr.Audio)
			}
			return scr, nil
		}
	case "EBITEN":
		creator = func() (GuiCreator, error) {
			scr, err := ebitenplay.NewEbitenPlay(emu.ctrl, emu.frames, title, rate)
			if err != nil {
				return nil, err
			}
			if scr.Audio != nil {
				emu.tv.AddAudioMixer(scr.Audio)
			}
			return scr, nil
		}
	default:
		return fmt.Errorf("unknown gui type (%s)", *guiType)
	}

	if err := waitForGUI(sync, creator); err != nil {
		return err
	}

	return emu.run()
}

func term(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	opts := addEmulationOptions(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// log echoing would corrupt the terminal display
	*opts.log = false
	*opts.trace = false

	emu, err := newEmulation(md, opts)
	if err != nil {
		return err
	}

	err = waitForGUI(sync, func() (GuiCreator, error) {
		scr, err := terminal.NewTerminal(emu.ctrl, emu.frames)
		if err != nil {
			return nil, err
		}
		return scr, nil
	})
	if err != nil {
		return err
	}

	return emu.run()
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	uncapped := md.AddBool("uncapped", false, "run without the FPS cap")
	duration := md.AddString("duration", "5s", "run duration (note: there is a 2s overhead)")
	profile := md.AddString("profile", "none", "run performance check with profiling: CPU, MEM, TRACE, ALL (comma separated)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("NES cartridge required for %s mode", md)
	case 1:
		cartload := cartridgeloader.NewLoader(md.GetArg(0))
		return performance.Check(md.Output, prf, cartload, *uncapped, *duration)
	}

	return fmt.Errorf("too many arguments for %s mode", md)
}

func inspect(md *modalflag.Modes) error {
	md.NewMode()

	frames := md.AddInt("frames", 60, "number of frames to run before inspection")
	output := md.AddString("out", "", "dot file to write (default is a unique filename)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("NES cartridge required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	cartload := cartridgeloader.NewLoader(md.GetArg(0))

	tv := television.NewTelevision()
	defer tv.End()
	tv.SetFPSCap(false)

	nes, err := hardware.NewNES(tv, preferences.NewDefaultPreferences())
	if err != nil {
		return err
	}

	err = nes.AttachCartridge(&cartload)
	if err != nil {
		return err
	}

	err = nes.RunForFrameCount(*frames, nil)
	if err != nil {
		return err
	}

	fn := *output
	if fn == "" {
		fn = resources.UniqueFilename("inspect", cartload.ShortName(), "dot")
	}

	f, err := os.Create(fn)
	if err != nil {
		return err
	}
	defer f.Close()

	writeInspection(f, nes.Snapshot())

	return nil
}

// the CPU and PPU as a graphviz dot graph
func writeInspection(w io.Writer, state *hardware.State) {
	memviz.Map(w, state.CPU, state.PPU)
}

func rominfo(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("NES cartridge required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	cartload := cartridgeloader.NewLoader(md.GetArg(0))
	if err := cartload.Load(); err != nil {
		return err
	}

	h, err := cartridge.ParseHeader(cartload.Data)
	if err != nil {
		return err
	}

	fmt.Fprintf(md.Output, "%s\n", cartload.Filename)
	fmt.Fprintf(md.Output, "  header: %s\n", h)
	fmt.Fprintf(md.Output, "    sha1: %s\n", cartload.Hash)

	return nil
}
